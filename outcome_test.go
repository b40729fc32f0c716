package chesscore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestThreefoldRepetitionViaKnightShuffle repeats a knight out-and-back
// shuffle between both sides until the starting position has recurred a
// third time, then asserts the repetition oracle fires.
func TestThreefoldRepetitionViaKnightShuffle(t *testing.T) {
	b := NewBoard()
	require.False(t, b.IsThreefoldRepetition())

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	occurrences := 1 // the starting position itself
	for occurrences < 3 {
		for _, uci := range shuffle {
			m, err := ParseUCI(uci)
			require.NoError(t, err)
			legal := b.LegalMoves()
			require.True(t, containsMove(legal, m), "uci %s not legal from %s", uci, b.FEN())
			b.Push(m)
		}
		occurrences++
	}
	require.True(t, b.IsThreefoldRepetition())
	require.True(t, b.CanClaimThreefoldRepetition())
}

func containsMove(moves []Move, m Move) bool {
	for _, c := range moves {
		if c.From == m.From && c.To == m.To && c.Promotion == m.Promotion {
			return true
		}
	}
	return false
}

func TestInsufficientMaterialKingVsKing(t *testing.T) {
	b, err := BoardFromFEN("8/8/4k3/8/8/3K4/8/8 w - - 0 1")
	require.NoError(t, err)
	require.True(t, b.IsInsufficientMaterial())
	require.True(t, b.Status().Has(StatusInsufficientMaterial))
}

func TestInsufficientMaterialKingAndBishopVsKing(t *testing.T) {
	b, err := BoardFromFEN("8/8/4k3/8/8/3KB3/8/8 w - - 0 1")
	require.NoError(t, err)
	require.True(t, b.IsInsufficientMaterial())
}

func TestSufficientMaterialKingAndTwoBishopsOppositeColors(t *testing.T) {
	// Opposite-colored-square bishops for the same side can force mate
	// (with the opposing king cornered), so this must NOT be flagged
	// insufficient even though it is a rare practical win.
	b, err := BoardFromFEN("8/8/4k3/8/8/3KBB2/8/8 w - - 0 1")
	require.NoError(t, err)
	require.False(t, b.IsInsufficientMaterial())
}

func TestSufficientMaterialKingAndRookVsKing(t *testing.T) {
	b, err := BoardFromFEN("8/8/4k3/8/8/3KR3/8/8 w - - 0 1")
	require.NoError(t, err)
	require.False(t, b.IsInsufficientMaterial())
}

func TestFiftyMoveRuleClaimable(t *testing.T) {
	b, err := BoardFromFEN("8/8/4k3/8/8/3KR3/8/8 w - - 99 70")
	require.NoError(t, err)
	require.False(t, b.CanClaimFiftyMoves())

	m, err := ParseUCI("d3d4")
	require.NoError(t, err)
	b.Push(m)
	require.True(t, b.CanClaimFiftyMoves())
	require.False(t, b.IsSeventyFiveMoves())
}
