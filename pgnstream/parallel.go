package pgnstream

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/halvorsen/chesscore/san"
)

// ParallelScanner decodes PGN text across a worker pool sized to
// runtime.NumCPU, the same shape as the teacher's parallel_scanner.go.
// Kept as a distinct type from Scanner because its Begin method pushes
// completed games onto a channel rather than returning them one at a time
// from Scan/Next, matching the teacher's own API split.
type ParallelScanner struct {
	scanr *bufio.Scanner
	err   error
}

// NewParallelScanner returns a new scanner reading from r.
func NewParallelScanner(r io.Reader) *ParallelScanner {
	return &ParallelScanner{scanr: bufio.NewScanner(r)}
}

// Begin splits r into per-game PGN text on the calling goroutine and farms
// decoding out to runtime.NumCPU workers, sending completed games to
// output. It blocks until the input is exhausted or ctx is cancelled, then
// closes output. A per-game decode error is dropped rather than aborting
// the scan, since one malformed game in a multi-million-game database dump
// should not sink the rest.
func (s *ParallelScanner) Begin(ctx context.Context, output chan<- *san.Game) error {
	if s.err == io.EOF {
		return s.err
	}
	s.err = nil

	work := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go decodeWorker(work, output, &wg)
	}

	var sb strings.Builder
	state := notInPGN
OUTER:
	for {
		select {
		case <-ctx.Done():
			break OUTER
		default:
			if !s.scanr.Scan() {
				s.err = s.scanr.Err()
				if s.err == nil {
					s.err = io.EOF
				}
				break OUTER
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
					work <- sb.String()
					sb.Reset()
					state = notInPGN
					continue
				}
				sb.WriteString(line + "\n")
			}
		}
	}
	close(work)
	wg.Wait()
	close(output)
	return ctx.Err()
}

// Err returns the error (typically io.EOF) from the most recent Begin.
func (s *ParallelScanner) Err() error { return s.err }

func decodeWorker(work <-chan string, out chan<- *san.Game, wg *sync.WaitGroup) {
	defer wg.Done()
	for pgn := range work {
		game, err := DecodePGN(pgn)
		if err != nil {
			continue
		}
		out <- game
	}
}
