package chesscore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestChess960RoundTrip checks that every Scharnagl number in [0, 959]
// round-trips through SetChess960Pos/Chess960Pos.
func TestChess960RoundTrip(t *testing.T) {
	for n := 0; n < 960; n++ {
		b := NewBoard()
		require.NoError(t, b.SetChess960Pos(n), "n=%d", n)
		got, ok := b.Chess960Pos()
		require.True(t, ok, "n=%d: position not recognized as a valid Chess960 setup", n)
		require.Equal(t, n, got, "n=%d round-trip mismatch", n)
	}
}

func TestChess960PosRejectsOutOfRange(t *testing.T) {
	b := NewBoard()
	require.Error(t, b.SetChess960Pos(-1))
	require.Error(t, b.SetChess960Pos(960))
}

func TestChess960RecognizesStandardStart(t *testing.T) {
	std := NewBoard()
	n, ok := std.Chess960Pos()
	require.True(t, ok, "the standard starting position must be a recognized Chess960 setup")

	b := NewBoard()
	require.NoError(t, b.SetChess960Pos(n))
	require.Equal(t, std.FEN()[:encodeFENBoardFieldLen(std.FEN())], b.FEN()[:encodeFENBoardFieldLen(b.FEN())])
}

// encodeFENBoardFieldLen returns the length of the piece-placement field
// (everything before the first space) so the two boards above can be
// compared on piece placement alone.
func encodeFENBoardFieldLen(fen string) int {
	for i, c := range fen {
		if c == ' ' {
			return i
		}
	}
	return len(fen)
}
