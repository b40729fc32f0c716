package san

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/chesscore"
)

func TestEncodeOpeningMoves(t *testing.T) {
	b := chesscore.NewBoard()
	e2 := mustSq(t, "e2")
	e4 := mustSq(t, "e4")
	require.Equal(t, "e4", Encode(b, plainMove(e2, e4)))
	b.Push(plainMove(e2, e4))

	e7 := mustSq(t, "e7")
	e5 := mustSq(t, "e5")
	require.Equal(t, "e5", Encode(b, plainMove(e7, e5)))
	b.Push(plainMove(e7, e5))

	g1 := mustSq(t, "g1")
	f3 := mustSq(t, "f3")
	require.Equal(t, "Nf3", Encode(b, plainMove(g1, f3)))
}

func TestEncodeCastling(t *testing.T) {
	b, err := chesscore.BoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	e1, g1, c1 := mustSq(t, "e1"), mustSq(t, "g1"), mustSq(t, "c1")
	require.Equal(t, "O-O", Encode(b, chesscore.Move{From: e1, To: g1}))
	require.Equal(t, "O-O-O", Encode(b, chesscore.Move{From: e1, To: c1}))
}

func TestEncodeDisambiguation(t *testing.T) {
	// Two white knights can reach d2: one from b1 (still on its home
	// square, requires two legal rooks/pieces removed from the path)...
	// simpler: two rooks on the same rank both able to reach d1.
	b, err := chesscore.BoardFromFEN("4k3/8/8/8/8/8/3K4/R6R w - - 0 1")
	require.NoError(t, err)
	a1, h1, d1 := mustSq(t, "a1"), mustSq(t, "h1"), mustSq(t, "d1")
	require.Equal(t, "Rad1", Encode(b, plainMove(a1, d1)))
	require.Equal(t, "Rhd1", Encode(b, plainMove(h1, d1)))
}

func TestEncodeCheckAndCheckmateSuffix(t *testing.T) {
	// Fool's mate final move: 1. f3 e5 2. g4 Qh4#
	b := chesscore.NewBoard()
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}
	for _, uci := range moves {
		m, err := chesscore.ParseUCI(uci)
		require.NoError(t, err)
		if uci == "d8h4" {
			require.Equal(t, "Qh4#", Encode(b, m))
		}
		b.Push(m)
	}
	require.True(t, b.IsCheckmate())
}

func TestDecodeRoundTrip(t *testing.T) {
	b := chesscore.NewBoard()
	m, err := Decode(b, "e4")
	require.NoError(t, err)
	require.Equal(t, mustSq(t, "e2"), m.From)
	require.Equal(t, mustSq(t, "e4"), m.To)
}

func TestParseCompactRoundTripAgainstEncode(t *testing.T) {
	b := chesscore.NewBoard()
	for _, uci := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		m, err := chesscore.ParseUCI(uci)
		require.NoError(t, err)

		text := Encode(b, m)
		parsed, err := ParseCompact(b, text)
		require.NoError(t, err)
		require.Equal(t, m, parsed)
		b.Push(m)
	}
}

func TestParseCompactCastling(t *testing.T) {
	b, err := chesscore.BoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	m, err := ParseCompact(b, "O-O")
	require.NoError(t, err)
	require.Equal(t, mustSq(t, "e1"), m.From)
	require.Equal(t, mustSq(t, "g1"), m.To)
}

func TestParseCompactPromotion(t *testing.T) {
	b, err := chesscore.BoardFromFEN("8/4P3/4k3/8/8/8/4K3/8 w - - 0 1")
	require.NoError(t, err)
	m, err := ParseCompact(b, "e8=Q")
	require.NoError(t, err)
	require.Equal(t, chesscore.Queen, m.Promotion)
}

func TestParseCompactRejectsUnknownToken(t *testing.T) {
	b := chesscore.NewBoard()
	_, err := ParseCompact(b, "Zz9")
	require.Error(t, err)
}

// plainMove builds a move with no promotion and no drop. A bare
// Move{From, To} literal would carry PieceType's zero value, King, as its
// promotion.
func plainMove(from, to chesscore.Square) chesscore.Move {
	return chesscore.Move{From: from, To: to, Promotion: chesscore.NoPieceType, Drop: chesscore.NoPieceType}
}

func mustSq(t *testing.T, s string) chesscore.Square {
	t.Helper()
	sq, err := chesscore.SquareFromName(s)
	require.NoError(t, err)
	return sq
}
