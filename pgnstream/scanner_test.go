package pgnstream

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/chesscore/san"
)

const fischerSpassky = `[Event "F/S Return Match"]
[Site "Belgrade, Serbia JUG"]
[Date "1992.11.04"]
[Round "29"]
[White "Fischer, Robert J."]
[Black "Spassky, Boris V."]
[Result "1/2-1/2"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 Nf6 5. O-O Be7 1/2-1/2

`

func TestDecodePGNSingleGame(t *testing.T) {
	g, err := DecodePGN(fischerSpassky)
	require.NoError(t, err)
	require.Equal(t, "Fischer, Robert J.", g.TagPairs["White"])
	require.Equal(t, san.Draw, g.Outcome)
	require.Len(t, g.Moves, 10)
}

func TestScannerScansMultipleGames(t *testing.T) {
	pgn := fischerSpassky + fischerSpassky
	sc := NewScanner(strings.NewReader(pgn))
	count := 0
	for sc.Scan() {
		g := sc.Next()
		require.NotNil(t, g)
		count++
	}
	require.ErrorIs(t, sc.Err(), io.EOF)
	require.Equal(t, 2, count)
}

func TestParallelScannerDecodesAllGames(t *testing.T) {
	pgn := fischerSpassky + fischerSpassky + fischerSpassky
	ps := NewParallelScanner(strings.NewReader(pgn))
	out := make(chan *san.Game, 8)
	done := make(chan error, 1)
	go func() {
		done <- ps.Begin(context.Background(), out)
	}()

	count := 0
	for range out {
		count++
	}
	require.NoError(t, <-done)
	require.Equal(t, 3, count)
}
