package chesscore

// snapshot captures every field needed to restore a Board's identity
// across pop(), copied by value -- no aliasing, per distilled spec §3. It
// generalises the teacher's position.go, which instead allocated a fresh
// *Position and *Board per Update call; Board mutates in place and keeps
// its history on an explicit stack instead.
type snapshot struct {
	pieces   [6]Bitboard
	color    [2]Bitboard
	promoted Bitboard
	kingSq   [2]Square

	turn           Color
	castlingRights Bitboard
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int
}

// Board extends BaseBoard with side-to-move, castling rights, en-passant
// square, clocks, and the move/snapshot stacks that drive make/unmake
// (distilled spec §3, "Board adds").
type Board struct {
	BaseBoard

	turn           Color
	castlingRights Bitboard // rook origin squares whose castling right survives
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int

	chess960 bool

	moveStack []Move
	stack     []snapshot
}

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoard returns the standard chess starting position.
func NewBoard() *Board {
	b, err := BoardFromFEN(startFEN)
	if err != nil {
		panic("chesscore: starting FEN failed to parse: " + err.Error())
	}
	return b
}

// Turn returns the side to move.
func (b *Board) Turn() Color { return b.turn }

// CastlingRights returns the bitboard of rook origin squares whose
// castling privilege is still intact.
func (b *Board) CastlingRights() Bitboard { return b.castlingRights }

// EpSquare returns the en-passant target square, or NoSquare.
func (b *Board) EpSquare() Square { return b.epSquare }

// HalfmoveClock returns the number of plies since the last capture or pawn
// move.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the current fullmove number, starting at 1.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// MoveStack returns a copy of the move history, oldest first.
func (b *Board) MoveStack() []Move {
	return append([]Move(nil), b.moveStack...)
}

// IsChess960 reports whether the board was set up for Chess960 castling
// rules (affects only castling move encoding and legality, not the piece
// placement rules themselves).
func (b *Board) IsChess960() bool { return b.chess960 }

// SetChess960 toggles Chess960 castling semantics.
func (b *Board) SetChess960(v bool) { b.chess960 = v }

// Reset restores the standard starting position, discarding history.
func (b *Board) Reset() {
	fresh, _ := BoardFromFEN(startFEN)
	*b = *fresh
}

// Clear empties the board, discarding history. Turn defaults to White and
// castling rights to none.
func (b *Board) Clear() {
	b.BaseBoard = *NewEmptyBaseBoard()
	b.turn = White
	b.castlingRights = Empty
	b.epSquare = NoSquare
	b.halfmoveClock = 0
	b.fullmoveNumber = 1
	b.moveStack = nil
	b.stack = nil
}

func (b *Board) snapshotState() snapshot {
	return snapshot{
		pieces:         b.pieces,
		color:          b.color,
		promoted:       b.promoted,
		kingSq:         b.kingSq,
		turn:           b.turn,
		castlingRights: b.castlingRights,
		epSquare:       b.epSquare,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
	}
}

func (b *Board) restore(s snapshot) {
	b.pieces = s.pieces
	b.color = s.color
	b.promoted = s.promoted
	b.kingSq = s.kingSq
	b.turn = s.turn
	b.castlingRights = s.castlingRights
	b.epSquare = s.epSquare
	b.halfmoveClock = s.halfmoveClock
	b.fullmoveNumber = s.fullmoveNumber
}

// backrankFor returns the back rank bitboard for the given color.
func backrankFor(c Color) Bitboard {
	if c == White {
		return bbRank1
	}
	return bbRank8
}

// isQueenSideRook reports whether rookSq is the a-side (queen-side) rook
// relative to the king, the Chess960-compatible generalisation of
// "left of the king".
func isQueenSideRook(kingSq, rookSq Square) bool {
	return rookSq < kingSq
}

// Push applies move to the board. The move is assumed pseudo-legal
// (callers generate moves via LegalMoves/PseudoLegalMoves, or validate
// externally via ParseUCI + a legality check). Implements the nine-step
// protocol of distilled spec §4.6. Castling moves are encoded internally
// as king-captures-own-rook (m.To is the castling rook's origin square),
// matching Chess960's native castling-move encoding (distilled spec §4.5:
// "In Chess960 mode the move is encoded as king-to-rook-square"). Standard
// castling moves use the complementary encoding named in the same
// sentence, king-to-final-square, recognised below as a two-square
// horizontal king move along its own back rank -- a king can never
// legally travel two squares in any other circumstance.
func (b *Board) Push(m Move) {
	epBefore := b.epSquare
	b.stack = append(b.stack, b.snapshotState())
	b.moveStack = append(b.moveStack, m)

	mover := b.PieceAt(m.From)
	captured := b.PieceAt(m.To)
	isEnPassant := mover.Type() == Pawn && m.To == epBefore && epBefore != NoSquare && captured == NoPiece
	isCastle := mover.Type() == King && (
		(captured != NoPiece && captured.Color() == mover.Color() && captured.Type() == Rook) ||
		(m.From.Rank() == m.To.Rank() && SquareDistance(m.From, m.To) == 2))

	if mover.Type() == Pawn || (captured != NoPiece && !isCastle) || isEnPassant {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if b.turn == Black {
		b.fullmoveNumber++
	}

	wasTwoSquareAdvance := mover.Type() == Pawn && m.From.File() == m.To.File() &&
		SquareDistance(m.From, m.To) == 2
	b.epSquare = NoSquare

	if isCastle {
		b.applyCastle(mover.Color(), m)
	} else {
		promoted := b.IsPromoted(m.From)
		b.RemovePieceAt(m.From)
		if isEnPassant {
			b.RemovePieceAt(epCapturedPawnSquare(b.turn, epBefore))
		} else if captured != NoPiece {
			b.RemovePieceAt(m.To)
		}
		placed := mover
		if m.Promotion != NoPieceType {
			placed = GetPiece(m.Promotion, mover.Color())
			promoted = true
		}
		b.SetPieceAt(m.To, placed, promoted)
	}

	if wasTwoSquareAdvance {
		if b.turn == White {
			b.epSquare = m.From + 8
		} else {
			b.epSquare = m.From - 8
		}
	}

	b.revokeCastlingRights(mover, m, captured)
	b.turn = b.turn.Other()
}

func epCapturedPawnSquare(moverColor Color, ep Square) Square {
	if moverColor == White {
		return ep - 8
	}
	return ep + 8
}

// applyCastle moves king and rook to their destinations, accepting either
// castling move encoding: m.To names the rook's origin square (Chess960)
// or the king's own final square (standard).
func (b *Board) applyCastle(c Color, m Move) {
	kingFrom := m.From
	rank := Rank1
	if c == Black {
		rank = Rank8
	}

	var rookFrom Square
	var queenSide bool
	if b.ColorAt(m.To) == c && b.PieceAt(m.To).Type() == Rook {
		rookFrom = m.To
		queenSide = isQueenSideRook(kingFrom, rookFrom)
	} else {
		queenSide = m.To.File() == FileC
		rookFrom = b.castlingRookOrigin(c, queenSide)
	}

	kingTo := NewSquare(FileG, rank)
	rookTo := NewSquare(FileF, rank)
	if queenSide {
		kingTo = NewSquare(FileC, rank)
		rookTo = NewSquare(FileD, rank)
	}
	b.RemovePieceAt(kingFrom)
	b.RemovePieceAt(rookFrom)
	b.SetPieceAt(kingTo, GetPiece(King, c), false)
	b.SetPieceAt(rookTo, GetPiece(Rook, c), false)
}

// castlingRookOrigin returns the surviving castling-rights rook on the
// given side for color c.
func (b *Board) castlingRookOrigin(c Color, queenSide bool) Square {
	candidates := b.castlingRights & backrankFor(c)
	king := b.King(c)
	for it := candidates.ScanForward(); it.HasNext(); {
		sq := it.Next()
		if isQueenSideRook(king, sq) == queenSide {
			return sq
		}
	}
	return NoSquare
}

// revokeCastlingRights clears rights forfeited by a king move, a rook
// moving from its origin square, or a capture landing on a rook's origin
// square.
func (b *Board) revokeCastlingRights(mover Piece, m Move, captured Piece) {
	if mover.Type() == King {
		b.castlingRights &= ^backrankFor(mover.Color())
	}
	b.castlingRights &= ^bbForSquare(m.From)
	b.castlingRights &= ^bbForSquare(m.To)
}

// Pop restores the previous snapshot, pops the move stack, and returns the
// move that was undone. Returns ErrEmptyMoveStack if the stack is empty.
func (b *Board) Pop() (Move, error) {
	if len(b.moveStack) == 0 {
		return Move{}, ErrEmptyMoveStack
	}
	m := b.moveStack[len(b.moveStack)-1]
	b.moveStack = b.moveStack[:len(b.moveStack)-1]
	s := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.restore(s)
	return m, nil
}

// Peek returns the most recently pushed move without popping it, and
// whether one exists.
func (b *Board) Peek() (Move, bool) {
	if len(b.moveStack) == 0 {
		return Move{}, false
	}
	return b.moveStack[len(b.moveStack)-1], true
}

// String returns the full FEN of the position.
func (b *Board) String() string {
	return b.FEN()
}

// checkersMask returns the squares of opponent pieces currently checking
// the side to move's king.
func (b *Board) checkersMask() Bitboard {
	king := b.King(b.turn)
	if king == NoSquare {
		return Empty
	}
	return b.AttackersMask(b.turn.Other(), king, b.Occupied())
}

// InCheck reports whether the side to move's king is currently attacked.
func (b *Board) InCheck() bool {
	return b.checkersMask() != Empty
}

// GivesCheck reports whether pushing m would leave the opponent's king in
// check. Requires exclusive access for the duration of the lookahead,
// per distilled spec §5.
func (b *Board) GivesCheck(m Move) bool {
	b.Push(m)
	inCheck := b.InCheck()
	b.Pop()
	return inCheck
}
