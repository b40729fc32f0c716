package chesscore

import (
	"fmt"
	"strconv"
	"strings"
)

// BaseBoard is the piece-placement layer: six per-piece-type bitboards, two
// per-color occupancy bitboards, and a promoted mask recording which
// occupied squares hold a promoted piece (needed for the `~` FEN
// extension). This generalises the teacher's Board, which instead kept a
// sparse [22]bitboard array indexed directly by raw Piece value; distilled
// spec §3 names the nine-bitboard set explicitly, so BaseBoard follows that
// rather than the teacher's indexing scheme. King squares are cached the
// same way the teacher's Board caches whiteKingSq/blackKingSq.
type BaseBoard struct {
	pieces [6]Bitboard // indexed by PieceType
	color  [2]Bitboard // indexed by Color
	promoted Bitboard

	kingSq [2]Square
}

// NewEmptyBaseBoard returns a BaseBoard with no pieces.
func NewEmptyBaseBoard() *BaseBoard {
	return &BaseBoard{kingSq: [2]Square{NoSquare, NoSquare}}
}

// NewBaseBoard returns a BaseBoard from a square-to-piece mapping.
func NewBaseBoard(m map[Square]Piece) *BaseBoard {
	b := NewEmptyBaseBoard()
	for sq, p := range m {
		b.SetPieceAt(sq, p, false)
	}
	return b
}

// Occupied returns the union of all occupied squares.
func (b *BaseBoard) Occupied() Bitboard {
	return b.color[White] | b.color[Black]
}

// OccupiedColor returns the squares occupied by pieces of the given color.
func (b *BaseBoard) OccupiedColor(c Color) Bitboard {
	return b.color[c]
}

// PieceMask returns the bitboard of all pieces of the given type, either
// color.
func (b *BaseBoard) PieceMask(pt PieceType) Bitboard {
	return b.pieces[pt]
}

// PieceTypeColorMask returns the bitboard of pieces of the given type and
// color.
func (b *BaseBoard) PieceTypeColorMask(pt PieceType, c Color) Bitboard {
	return b.pieces[pt] & b.color[c]
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (b *BaseBoard) PieceAt(sq Square) Piece {
	bb := bbForSquare(sq)
	if b.Occupied()&bb == 0 {
		return NoPiece
	}
	c := White
	if b.color[Black]&bb != 0 {
		c = Black
	}
	for pt := King; pt <= Pawn; pt++ {
		if b.pieces[pt]&bb != 0 {
			return GetPiece(pt, c)
		}
	}
	return NoPiece
}

// ColorAt returns the color of the piece occupying sq, or NoColor if sq is
// empty.
func (b *BaseBoard) ColorAt(sq Square) Color {
	bb := bbForSquare(sq)
	switch {
	case b.color[White]&bb != 0:
		return White
	case b.color[Black]&bb != 0:
		return Black
	}
	return NoColor
}

// IsPromoted reports whether the piece on sq, if any, is a promoted piece.
func (b *BaseBoard) IsPromoted(sq Square) bool {
	return b.promoted&bbForSquare(sq) != 0
}

// King returns the square of the king of the given color, or NoSquare if
// absent.
func (b *BaseBoard) King(c Color) Square {
	return b.kingSq[c]
}

// SetPieceAt places p on sq, replacing whatever was there. promoted marks
// the placed piece as a promoted piece for FEN round-tripping.
func (b *BaseBoard) SetPieceAt(sq Square, p Piece, promoted bool) {
	b.RemovePieceAt(sq)
	if p == NoPiece {
		return
	}
	bb := bbForSquare(sq)
	b.pieces[p.Type()] |= bb
	b.color[p.Color()] |= bb
	if promoted {
		b.promoted |= bb
	}
	if p.Type() == King {
		b.kingSq[p.Color()] = sq
	}
}

// RemovePieceAt clears sq and returns what was removed, or NoPiece if it
// was already empty.
func (b *BaseBoard) RemovePieceAt(sq Square) Piece {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return NoPiece
	}
	bb := ^bbForSquare(sq)
	b.pieces[p.Type()] &= bb
	b.color[p.Color()] &= bb
	b.promoted &= bb
	if p.Type() == King {
		b.kingSq[p.Color()] = NoSquare
	}
	return p
}

// AttacksMask returns the squares attacked by whatever piece sits on sq,
// given the current occupancy. Empty if sq has no piece.
func (b *BaseBoard) AttacksMask(sq Square) Bitboard {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return Empty
	}
	return AttacksFor(p.Type(), p.Color(), sq, b.Occupied())
}

// AttackersMask returns the set of squares holding a piece of color c that
// attacks sq, given occupancy occ (callers pass a modified occupancy to
// answer "would square X be attacked if Y were removed/added", as required
// for castling-through-check and absolute-pin checks).
func (b *BaseBoard) AttackersMask(c Color, sq Square, occ Bitboard) Bitboard {
	var attackers Bitboard
	attackers |= KnightAttacks(sq) & b.PieceTypeColorMask(Knight, c)
	attackers |= KingAttacks(sq) & b.PieceTypeColorMask(King, c)
	attackers |= BishopAttacks(sq, occ) & (b.PieceTypeColorMask(Bishop, c) | b.PieceTypeColorMask(Queen, c))
	attackers |= RookAttacks(sq, occ) & (b.PieceTypeColorMask(Rook, c) | b.PieceTypeColorMask(Queen, c))
	attackers |= PawnAttacks(c.Other(), sq) & b.PieceTypeColorMask(Pawn, c)
	return attackers & occ
}

// IsAttackedBy reports whether any piece of color c attacks sq on the
// board's actual occupancy.
func (b *BaseBoard) IsAttackedBy(c Color, sq Square) bool {
	return b.AttackersMask(c, sq, b.Occupied()) != 0
}

// PinMask returns the ray along which the piece on sq is absolutely pinned
// to the king of color c, or All (no restriction) if sq holds no piece or
// it is not pinned. Used by movegen.go to restrict a pinned piece's legal
// destinations to the pin ray.
func (b *BaseBoard) PinMask(c Color, sq Square) Bitboard {
	king := b.kingSq[c]
	if king == NoSquare {
		return All
	}
	dir, ok := aligned(king, sq)
	if !ok {
		return All
	}
	var sniperTypes Bitboard
	switch dir {
	case dirNorth, dirSouth, dirEast, dirWest:
		sniperTypes = b.PieceTypeColorMask(Rook, c.Other()) | b.PieceTypeColorMask(Queen, c.Other())
	default:
		sniperTypes = b.PieceTypeColorMask(Bishop, c.Other()) | b.PieceTypeColorMask(Queen, c.Other())
	}
	snipers := sniperTypes & rayThrough(king, sq)
	for it := snipers.ScanForward(); it.HasNext(); {
		sniper := it.Next()
		between := between(king, sniper)
		if between&b.Occupied() == bbForSquare(sq) {
			return between | bbForSquare(sniper)
		}
	}
	return All
}

// BoardFEN returns the board-placement field of a FEN string, with
// promoted pieces suffixed by `~` per distilled spec §7.
func (b *BaseBoard) BoardFEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := NewSquare(File(f), Rank(r))
			p := b.PieceAt(sq)
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.getFENChar())
			if b.IsPromoted(sq) {
				sb.WriteByte('~')
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// SetBoardFEN replaces the board placement from the board-placement field
// of a FEN string. It returns ErrInvalidFEN if fen is malformed.
func (b *BaseBoard) SetBoardFEN(fen string) error {
	ranks := strings.Split(fen, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("chesscore: %w: %q", ErrInvalidFEN, fen)
	}
	*b = *NewEmptyBaseBoard()
	for i, rankStr := range ranks {
		r := 7 - i
		f := 0
		prevDigit := false
		runes := []rune(rankStr)
		for idx := 0; idx < len(runes); idx++ {
			ch := runes[idx]
			if ch >= '1' && ch <= '8' {
				if prevDigit {
					return fmt.Errorf("chesscore: %w: %q", ErrInvalidFEN, fen)
				}
				prevDigit = true
				f += int(ch - '0')
				continue
			}
			prevDigit = false
			if f > 7 {
				return fmt.Errorf("chesscore: %w: %q", ErrInvalidFEN, fen)
			}
			p, ok := fenPieceMap[byte(ch)]
			if !ok {
				return fmt.Errorf("chesscore: %w: %q", ErrInvalidFEN, fen)
			}
			promoted := false
			if idx+1 < len(runes) && runes[idx+1] == '~' {
				promoted = true
				idx++
			}
			b.SetPieceAt(NewSquare(File(f), Rank(r)), p, promoted)
			f++
		}
		if f != 8 {
			return fmt.Errorf("chesscore: %w: %q", ErrInvalidFEN, fen)
		}
	}
	return nil
}

// ApplyMirror flips the board vertically and swaps piece colors, producing
// the same position as viewed by the other player.
func (b *BaseBoard) ApplyMirror() {
	nb := NewEmptyBaseBoard()
	for sq := Square(0); sq < numOfSquaresInBoard; sq++ {
		p := b.PieceAt(sq)
		if p == NoPiece {
			continue
		}
		mirrored := NewSquare(sq.File(), Rank(7-sq.Rank()))
		nb.SetPieceAt(mirrored, GetPiece(p.Type(), p.Color().Other()), b.IsPromoted(sq))
	}
	*b = *nb
}

// ApplyTransform rewrites every piece bitboard by applying f, then rebuilds
// the cached king squares. Used for the flip/rotate family of board
// transforms, e.g. Bitboard.FlipHorizontal or Bitboard.FlipDiagonal.
func (b *BaseBoard) ApplyTransform(f func(Bitboard) Bitboard) {
	for pt := King; pt <= Pawn; pt++ {
		b.pieces[pt] = f(b.pieces[pt])
	}
	b.color[White] = f(b.color[White])
	b.color[Black] = f(b.color[Black])
	b.promoted = f(b.promoted)
	b.kingSq[White] = NoSquare
	b.kingSq[Black] = NoSquare
	for sq := Square(0); sq < numOfSquaresInBoard; sq++ {
		if b.pieces[King]&bbForSquare(sq) == 0 {
			continue
		}
		if b.color[White]&bbForSquare(sq) != 0 {
			b.kingSq[White] = sq
		} else {
			b.kingSq[Black] = sq
		}
	}
}

// String returns the board-placement FEN field.
func (b *BaseBoard) String() string {
	return b.BoardFEN()
}
