package chesscore

import (
	"fmt"
	"strconv"
	"strings"
)

// BoardFromFEN parses a full FEN string (distilled spec §6) into a new
// Board. Chess960 castling notation (file letters instead of KQkq) is
// recognised automatically and sets IsChess960.
func BoardFromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("chesscore: %w: %q", ErrInvalidFEN, fen)
	}
	placement, turnStr, castleStr, epStr, halfStr, fullStr := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	b := &Board{epSquare: NoSquare}
	if err := b.SetBoardFEN(placement); err != nil {
		return nil, err
	}

	switch turnStr {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return nil, fmt.Errorf("chesscore: %w: bad turn field %q", ErrInvalidFEN, fen)
	}

	rights, chess960, err := parseCastlingField(b, castleStr)
	if err != nil {
		return nil, err
	}
	b.castlingRights = rights
	b.chess960 = chess960

	if epStr == "-" {
		b.epSquare = NoSquare
	} else {
		sq, err := SquareFromName(epStr)
		if err != nil {
			return nil, fmt.Errorf("chesscore: %w: bad ep field %q", ErrInvalidFEN, fen)
		}
		b.epSquare = sq
	}

	half, err := strconv.Atoi(halfStr)
	if err != nil || half < 0 {
		return nil, fmt.Errorf("chesscore: %w: bad halfmove field %q", ErrInvalidFEN, fen)
	}
	b.halfmoveClock = half

	full, err := strconv.Atoi(fullStr)
	if err != nil || full < 1 {
		return nil, fmt.Errorf("chesscore: %w: bad fullmove field %q", ErrInvalidFEN, fen)
	}
	b.fullmoveNumber = full

	return b, nil
}

// parseCastlingField accepts both standard KQkq notation and the Chess960
// file-letter notation (e.g. "HAha" naming rook files), returning the
// castling-rights bitboard and whether Chess960 notation was used.
func parseCastlingField(b *Board, field string) (Bitboard, bool, error) {
	if field == "-" {
		return Empty, false, nil
	}
	var rights Bitboard
	chess960 := false
	for _, ch := range field {
		switch ch {
		case 'K', 'Q', 'k', 'q':
			c := White
			if ch == 'k' || ch == 'q' {
				c = Black
			}
			king := b.King(c)
			if king == NoSquare {
				return Empty, false, fmt.Errorf("chesscore: %w: castling right with no king", ErrInvalidFEN)
			}
			queenSide := ch == 'Q' || ch == 'q'
			rook := findBackrankRook(b, c, queenSide)
			if rook == NoSquare {
				return Empty, false, fmt.Errorf("chesscore: %w: castling right with no rook", ErrInvalidFEN)
			}
			rights |= bbForSquare(rook)
		default:
			f, ok := fileFromChessFileLetter(ch)
			if !ok {
				return Empty, false, fmt.Errorf("chesscore: %w: bad castling char %q", ErrInvalidFEN, string(ch))
			}
			chess960 = true
			c := White
			if ch >= 'a' && ch <= 'h' {
				c = Black
			}
			sq := NewSquare(f, Rank1)
			if c == Black {
				sq = NewSquare(f, Rank8)
			}
			if b.PieceAt(sq).Type() != Rook || b.ColorAt(sq) != c {
				return Empty, false, fmt.Errorf("chesscore: %w: castling file names no rook", ErrInvalidFEN)
			}
			rights |= bbForSquare(sq)
		}
	}
	return rights, chess960, nil
}

func fileFromChessFileLetter(ch rune) (File, bool) {
	switch {
	case ch >= 'A' && ch <= 'H':
		return File(ch - 'A'), true
	case ch >= 'a' && ch <= 'h':
		return File(ch - 'a'), true
	}
	return 0, false
}

func findBackrankRook(b *Board, c Color, queenSide bool) Square {
	king := b.King(c)
	rooks := b.PieceTypeColorMask(Rook, c) & backrankFor(c)
	var best Square = NoSquare
	for it := rooks.ScanForward(); it.HasNext(); {
		sq := it.Next()
		if isQueenSideRook(king, sq) != queenSide {
			continue
		}
		if best == NoSquare {
			best = sq
			continue
		}
		if queenSide && sq < best {
			best = sq
		}
		if !queenSide && sq > best {
			best = sq
		}
	}
	return best
}

// FEN returns the full FEN string for the position.
func (b *Board) FEN() string {
	ep := "-"
	if b.epSquare != NoSquare {
		ep = b.epSquare.String()
	}
	return fmt.Sprintf("%s %s %s %s %d %d",
		b.BoardFEN(), b.turn.String(), b.castlingField(), ep, b.halfmoveClock, b.fullmoveNumber)
}

func (b *Board) castlingField() string {
	if b.castlingRights == Empty {
		return "-"
	}
	var sb strings.Builder
	if !b.chess960 {
		if b.castlingRights&bbForSquare(H1) != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&bbForSquare(A1) != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&bbForSquare(H8) != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&bbForSquare(A8) != 0 {
			sb.WriteByte('q')
		}
		return sb.String()
	}
	write := func(c Color) {
		king := b.King(c)
		rooks := b.castlingRights & backrankFor(c)
		var files []File
		for it := rooks.ScanForward(); it.HasNext(); {
			files = append(files, it.Next().File())
		}
		_ = king
		for _, f := range files {
			ch := byte('A' + f)
			if c == Black {
				ch = byte('a' + f)
			}
			sb.WriteByte(ch)
		}
	}
	write(White)
	write(Black)
	return sb.String()
}
