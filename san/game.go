package san

import (
	"fmt"
	"strings"

	"github.com/halvorsen/chesscore"
)

// Outcome is the result of a game, PGN-compatible text (ported from the
// teacher's game.go Outcome type).
type Outcome string

const (
	NoOutcome Outcome = "*"
	WhiteWon  Outcome = "1-0"
	BlackWon  Outcome = "0-1"
	Draw      Outcome = "1/2-1/2"
)

// Game tracks a single game's board, move history, and PGN tag pairs. It
// is the adapted, exercised descendant of the teacher's game.go Game: the
// outcome predicates it used to compute by hand (stalemate, fivefold
// repetition, seventy-five move rule, insufficient material) are instead
// read directly off chesscore.Board.Status, since that oracle is now part
// of the core this package depends on.
type Game struct {
	Board    *chesscore.Board
	Moves    []chesscore.Move
	TagPairs map[string]string
	Outcome  Outcome
}

// NewGame returns a game starting from the standard position.
func NewGame() *Game {
	return &Game{Board: chesscore.NewBoard(), Outcome: NoOutcome}
}

// NewGameFromFEN returns a game starting from the given FEN. The move list
// is empty since FEN carries no move history.
func NewGameFromFEN(fen string) (*Game, error) {
	b, err := chesscore.BoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{Board: b, Outcome: NoOutcome}, nil
}

// Push applies m (already validated as legal by the caller, typically via
// chesscore.Board.LegalMoves or san.Decode) and records it, refreshing the
// outcome from the board's termination oracle.
func (g *Game) Push(m chesscore.Move) {
	g.Board.Push(m)
	g.Moves = append(g.Moves, m)
	g.refreshOutcome()
}

// PushSAN decodes s against the current position and pushes it.
func (g *Game) PushSAN(s string) error {
	m, err := Decode(g.Board, s)
	if err != nil {
		return err
	}
	g.Push(m)
	return nil
}

func (g *Game) refreshOutcome() {
	status := g.Board.Status()
	switch {
	case status.Has(chesscore.StatusCheckmate):
		if g.Board.Turn() == chesscore.White {
			g.Outcome = BlackWon
		} else {
			g.Outcome = WhiteWon
		}
	case status.Has(chesscore.StatusStalemate),
		status.Has(chesscore.StatusInsufficientMaterial),
		status.Has(chesscore.StatusSeventyFiveMoves),
		status.Has(chesscore.StatusFiveFoldRepetition):
		g.Outcome = Draw
	}
}

// AddTagPair adds or overwrites a PGN tag pair.
func (g *Game) AddTagPair(k, v string) {
	if g.TagPairs == nil {
		g.TagPairs = make(map[string]string)
	}
	g.TagPairs[k] = v
}

// String renders the game as PGN text.
func (g *Game) String() string {
	var sb strings.Builder
	for k, v := range g.TagPairs {
		fmt.Fprintf(&sb, "[%s %q]\n", k, v)
	}
	sb.WriteString("\n")

	replay := chesscore.NewBoard()
	if fen, ok := g.TagPairs["FEN"]; ok {
		if b, err := chesscore.BoardFromFEN(fen); err == nil {
			replay = b
		}
	}
	for i, m := range g.Moves {
		text := Encode(replay, m)
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. %s ", i/2+1, text)
		} else {
			fmt.Fprintf(&sb, "%s ", text)
		}
		replay.Push(m)
	}
	sb.WriteString(string(g.Outcome))
	return sb.String()
}
