package chesscore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// hasMoveTo reports whether moves contains a move from `from` to `to`.
func hasMoveTo(moves []Move, from, to Square) bool {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return true
		}
	}
	return false
}

// TestEnPassantDiscoveredCheckPin covers the classic case where an en
// passant capture would remove the only blocker between the capturing
// side's king and an enemy rook on the same rank, exposing check. The
// capture must not appear among LegalMoves even though the destination
// square itself is unattacked.
func TestEnPassantDiscoveredCheckPin(t *testing.T) {
	b, err := BoardFromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P3/8 b - - 0 1")
	require.NoError(t, err)

	c7 := mustSquare(t, "c7")
	c5 := mustSquare(t, "c5")
	require.True(t, hasMoveTo(b.LegalMoves(), c7, c5), "c7-c5 should be a legal two-square pawn push")

	// It is black's move in this FEN (side to move should actually be
	// black here so c7-c5 is playable); push it and check white's reply.
	b.Push(Move{From: c7, To: c5, Promotion: NoPieceType, Drop: NoPieceType})
	require.Equal(t, mustSquare(t, "c6"), b.EpSquare())

	b5 := mustSquare(t, "b5")
	c6 := mustSquare(t, "c6")
	require.False(t, hasMoveTo(b.LegalMoves(), b5, c6),
		"b5xc6 en passant must be illegal: it would expose the a5 king to the h5 rook")
}

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := SquareFromName(s)
	require.NoError(t, err)
	return sq
}

func TestCastlingThroughCheckIsIllegal(t *testing.T) {
	b, err := BoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	e1 := mustSquare(t, "e1")
	g1 := mustSquare(t, "g1")
	c1 := mustSquare(t, "c1")
	require.True(t, hasMoveTo(b.LegalMoves(), e1, g1))
	require.True(t, hasMoveTo(b.LegalMoves(), e1, c1))

	// Place a black rook on f1's file (f8->f1 open file) to forbid
	// kingside castling by attacking the king's transit square f1.
	b2, err := BoardFromFEN("r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	require.False(t, hasMoveTo(b2.LegalMoves(), e1, g1), "castling through an attacked square must be illegal")
	require.True(t, hasMoveTo(b2.LegalMoves(), e1, c1), "queenside castling unaffected by f-file attack")
}

func TestCastlingOutOfCheckIsIllegal(t *testing.T) {
	b, err := BoardFromFEN("r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	e1 := mustSquare(t, "e1")
	g1 := mustSquare(t, "g1")
	c1 := mustSquare(t, "c1")
	require.False(t, hasMoveTo(b.LegalMoves(), e1, g1))
	require.False(t, hasMoveTo(b.LegalMoves(), e1, c1))
}
