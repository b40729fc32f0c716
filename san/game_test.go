package san

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGamePushSANTracksOutcome(t *testing.T) {
	g := NewGame()
	moves := []string{"f3", "e5", "g4", "Qh4#"}
	for _, m := range moves {
		require.NoError(t, g.PushSAN(m))
	}
	require.Equal(t, BlackWon, g.Outcome)
	require.Len(t, g.Moves, 4)
}

func TestGameFromFENStartsWithEmptyHistory(t *testing.T) {
	g, err := NewGameFromFEN("8/8/4k3/8/8/3K4/8/8 w - - 0 1")
	require.NoError(t, err)
	require.Empty(t, g.Moves)
	require.Equal(t, NoOutcome, g.Outcome)
}

func TestGameStringRendersMoveNumbers(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.PushSAN("e4"))
	require.NoError(t, g.PushSAN("e5"))
	out := g.String()
	require.Contains(t, out, "1. e4")
	require.Contains(t, out, "e5")
}
