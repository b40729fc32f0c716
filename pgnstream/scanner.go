// Package pgnstream scans concatenated PGN text into san.Game values, one
// game at a time or across a worker pool. It is a collaborator package
// (distilled spec §1 names PGN scanning as outside the move-generation
// core) depending on chesscore only through san.Game; chesscore itself has
// no knowledge of this package.
//
// Adapted from the teacher's pgn.go, which scanned directly into its own
// *Game/*Move types; this scans into san.Game and decodes moves through
// san.ParseCompact, trusting well-formed PGN text the way a database dump
// scan must to keep up with its input.
package pgnstream

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/halvorsen/chesscore/san"
)

// Scanner reads chess games from concatenated PGN text, modeled on
// bufio.Scanner's Scan/Next/Err shape.
type Scanner struct {
	scanr *bufio.Scanner
	game  *san.Game
	err   error
}

// NewScanner returns a new scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{scanr: bufio.NewScanner(r)}
}

type scanState int

const (
	notInPGN scanState = iota
	inTagPairs
	inMoves
)

// Scan advances to the next game, returning false on error or EOF. Scan
// populates the value returned by Next.
func (s *Scanner) Scan() bool {
	if s.err == io.EOF {
		return false
	}
	s.err = nil
	var sb strings.Builder
	state := notInPGN
	setGame := func() bool {
		game, err := DecodePGN(sb.String())
		if err != nil {
			s.err = err
			return false
		}
		s.game = game
		return true
	}
	for {
		if !s.scanr.Scan() {
			s.err = s.scanr.Err()
			if s.err == nil {
				s.err = io.EOF
			}
			if state == notInPGN {
				return false
			}
			return setGame()
		}
		line := strings.TrimSpace(s.scanr.Text())
		isTagPair := strings.HasPrefix(line, "[")
		isMoveSeq := strings.HasPrefix(line, "1. ")
		switch state {
		case notInPGN:
			if !isTagPair {
				continue
			}
			state = inTagPairs
			sb.WriteString(line + "\n")
		case inTagPairs:
			if isMoveSeq {
				state = inMoves
			}
			sb.WriteString(line + "\n")
		case inMoves:
			if line == "" {
				return setGame()
			}
			sb.WriteString(line + "\n")
		}
	}
}

// Next returns the game from the most recent Scan.
func (s *Scanner) Next() *san.Game { return s.game }

// Err returns the error (typically io.EOF or a parse error) from the most
// recent Scan.
func (s *Scanner) Err() error { return s.err }

var tagPairRegex = regexp.MustCompile(`\[(\S+)\s"(.*)"\]`)

type tagPair struct{ key, value string }

func parseTagPairs(pgn string) []tagPair {
	var pairs []tagPair
	for _, line := range strings.Split(pgn, "\n") {
		m := tagPairRegex.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		pairs = append(pairs, tagPair{key: m[1], value: m[2]})
	}
	return pairs
}

var moveListTokenRe = regexp.MustCompile(`(?:\d+\.)|(O-O(?:-O)?|\w*[a-h][1-8]\w*(?:=[QRBN])?(?:\+|#)?)|(?:\{([^}]*)\})|(?:\*|0-1|1-0|1/2-1/2)`)

func stripTagPairs(pgn string) string {
	var lines []string
	for _, line := range strings.Split(pgn, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "[") {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func moveListAndOutcome(pgn string) ([]string, san.Outcome) {
	body := stripTagPairs(pgn)
	var moves []string
	outcome := san.NoOutcome
	for _, match := range moveListTokenRe.FindAllString(body, -1) {
		switch match {
		case "1-0":
			outcome = san.WhiteWon
		case "0-1":
			outcome = san.BlackWon
		case "1/2-1/2":
			outcome = san.Draw
		case "*":
		default:
			if strings.HasPrefix(match, "{") || strings.HasSuffix(match, ".") {
				continue
			}
			moves = append(moves, match)
		}
	}
	return moves, outcome
}

// DecodePGN parses a single PGN game's text into a san.Game.
func DecodePGN(pgn string) (*san.Game, error) {
	pairs := parseTagPairs(pgn)
	moves, outcome := moveListAndOutcome(pgn)

	var g *san.Game
	var err error
	for _, tp := range pairs {
		if strings.EqualFold(tp.key, "fen") {
			g, err = san.NewGameFromFEN(tp.value)
			if err != nil {
				return nil, fmt.Errorf("pgnstream: decode error %w on tag %s", err, tp.key)
			}
			break
		}
	}
	if g == nil {
		g = san.NewGame()
	}
	for _, tp := range pairs {
		g.AddTagPair(tp.key, tp.value)
	}

	for i, moveStr := range moves {
		m, err := san.ParseCompact(g.Board, moveStr)
		if err != nil {
			return nil, fmt.Errorf("pgnstream: decode error %w on move %d (%q)", err, i+1, moveStr)
		}
		g.Push(m)
	}
	if outcome != san.NoOutcome {
		g.Outcome = outcome
	}
	return g, nil
}
