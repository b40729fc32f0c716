package svgboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/chesscore"
)

func TestWriteBoardEmitsSVGWithPieceGlyphs(t *testing.T) {
	b := chesscore.NewBoard()
	var sb strings.Builder
	require.NoError(t, WriteBoard(&sb, &b.BaseBoard, 40))

	out := sb.String()
	require.Contains(t, out, "<svg")
	require.Contains(t, out, "</svg>")
	require.Contains(t, out, "&#9817;") // white pawn glyph
	require.Contains(t, out, "&#9823;") // black pawn glyph
}

func TestWriteBoardEmptyBoardHasNoGlyphs(t *testing.T) {
	empty := chesscore.NewEmptyBaseBoard()
	var sb strings.Builder
	require.NoError(t, WriteBoard(&sb, empty, 32))
	require.NotContains(t, sb.String(), "&#9812;")
}
