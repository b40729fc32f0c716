package chesscore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// perft counts leaf nodes reachable in depth plies of legal moves, the
// standard move-generator correctness harness.
func perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.Push(m)
		nodes += perft(b, depth-1)
		if _, err := b.Pop(); err != nil {
			panic(err)
		}
	}
	return nodes
}

func TestPerftStartPosition(t *testing.T) {
	b := NewBoard()
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		require.Equal(t, c.want, perft(b, c.depth), "depth %d", c.depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	b, err := BoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		require.Equal(t, c.want, perft(b, c.depth), "depth %d", c.depth)
	}
}
