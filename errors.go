package chesscore

import "errors"

// Sentinel errors returned by the parsing and set-algebra operations named
// in distilled spec §7. Parsers wrap them with fmt.Errorf's %w; SquareSet
// and Board.Pop return them bare. Either way errors.Is matches them.
var (
	ErrInvalidFEN          = errors.New("invalid FEN")
	ErrInvalidUCI           = errors.New("invalid UCI move")
	ErrInvalidSquareName    = errors.New("invalid square name")
	ErrInvalidPieceSymbol   = errors.New("invalid piece symbol")
	ErrInvalidChess960Index = errors.New("invalid Chess960 starting-position index")
	ErrEmptySetOperation    = errors.New("operation on empty square set")
	ErrEmptyMoveStack       = errors.New("pop from empty move stack")
)

// Status is a bitmask describing why a position is (or is not) game-over,
// per distilled spec §4.7. Bits may combine (e.g. a position can be both
// InCheck and a member of the fifty-move window simultaneously with no
// conflict; only the terminal bits are meant to be exclusive in practice).
type Status uint16

const StatusNone Status = 0

const (
	StatusCheck Status = 1 << iota
	StatusCheckmate
	StatusStalemate
	StatusInsufficientMaterial
	StatusSeventyFiveMoves
	StatusFiveFoldRepetition
	StatusFiftyMoves
	StatusThreefoldRepetition
)

// IsGameOver reports whether any automatically-terminal condition is set
// (checkmate, stalemate, insufficient material, or the seventy-five-move /
// fivefold-repetition automatic draws). The fifty-move and threefold-
// repetition bits are claimable, not automatic, per distilled spec §4.7,
// and are deliberately excluded here.
func (s Status) IsGameOver() bool {
	const automatic = StatusCheckmate | StatusStalemate | StatusInsufficientMaterial |
		StatusSeventyFiveMoves | StatusFiveFoldRepetition
	return s&automatic != 0
}

func (s Status) Has(bit Status) bool {
	return s&bit != 0
}
