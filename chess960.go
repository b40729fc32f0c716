package chesscore

import "fmt"

// scharnaglFiles follows the standard decomposition also used by
// python-chess's set_chess960_pos: n%4 picks the b/d/f/h bishop, (n/4)%4
// the a/c/e/g bishop, (n/16)%6 the queen among the six free files, and
// n/96 the knight pair among the remaining five.

// SetChess960Pos arranges the back rank (and pawns) per the Scharnagl
// numbering scheme for starting position n in [0,959] (distilled spec
// §4.4). Returns ErrInvalidChess960Index if n is out of range.
func (b *Board) SetChess960Pos(n int) error {
	files, err := scharnaglFiles(n)
	if err != nil {
		return err
	}
	b.BaseBoard = *NewEmptyBaseBoard()
	for f := File(0); f < 8; f++ {
		b.SetPieceAt(NewSquare(f, Rank1), GetPiece(files[f], White), false)
		b.SetPieceAt(NewSquare(f, Rank2), GetPiece(Pawn, White), false)
		b.SetPieceAt(NewSquare(f, Rank7), GetPiece(Pawn, Black), false)
		b.SetPieceAt(NewSquare(f, Rank8), GetPiece(files[f], Black), false)
	}
	b.turn = White
	b.epSquare = NoSquare
	b.halfmoveClock = 0
	b.fullmoveNumber = 1
	b.chess960 = true
	b.castlingRights = rookCastlingRights(files)
	b.moveStack = nil
	b.stack = nil
	return nil
}

// Chess960Pos returns the Scharnagl number of the current position if it
// is a valid Chess960 (or standard) starting position; otherwise -1, false.
func (b *Board) Chess960Pos() (int, bool) {
	if b.turn != White || b.epSquare != NoSquare || b.halfmoveClock != 0 || b.fullmoveNumber != 1 {
		return -1, false
	}
	var files [8]PieceType
	for f := File(0); f < 8; f++ {
		w := b.PieceAt(NewSquare(f, Rank1))
		bl := b.PieceAt(NewSquare(f, Rank8))
		p2 := b.PieceAt(NewSquare(f, Rank2))
		p7 := b.PieceAt(NewSquare(f, Rank7))
		if p2 != GetPiece(Pawn, White) || p7 != GetPiece(Pawn, Black) {
			return -1, false
		}
		if w.Color() != White || bl.Color() != Black || w.Type() != bl.Type() {
			return -1, false
		}
		files[f] = w.Type()
	}
	if b.castlingRights != rookCastlingRights(files) {
		return -1, false
	}
	for n := 0; n < 960; n++ {
		candidate, err := scharnaglFiles(n)
		if err != nil {
			continue
		}
		if candidate == files {
			return n, true
		}
	}
	return -1, false
}

// rookCastlingRights returns the castling-rights bitboard naming the two
// rook squares on each back rank for a back-rank arrangement produced by
// scharnaglFiles, rather than assuming the standard a/h corners (distilled
// spec §3: every set bit must coincide with a rook of matching colour).
func rookCastlingRights(files [8]PieceType) Bitboard {
	var rights Bitboard
	for f := File(0); f < 8; f++ {
		if files[f] != Rook {
			continue
		}
		rights |= bbForSquare(NewSquare(f, Rank1))
		rights |= bbForSquare(NewSquare(f, Rank8))
	}
	return rights
}

// scharnaglFiles decodes n into the back-rank piece-type arrangement using
// the standard bw-file / bb-file / queen-file / knight-pair decomposition.
func scharnaglFiles(n int) ([8]PieceType, error) {
	var files [8]PieceType
	if n < 0 || n > 959 {
		return files, fmt.Errorf("chesscore: %w: %d", ErrInvalidChess960Index, n)
	}
	for i := range files {
		files[i] = NoPieceType
	}

	n2, bw := n/4, n%4
	n3, bb := n2/4, n2%4
	n4, q := n3/6, n3%6

	darkBishopFile := File(bw*2 + 1)
	lightBishopFile := File(bb * 2)
	files[darkBishopFile] = Bishop
	files[lightBishopFile] = Bishop

	placeNth := func(pt PieceType, k int) {
		count := 0
		for f := File(0); f < 8; f++ {
			if files[f] != NoPieceType {
				continue
			}
			if count == k {
				files[f] = pt
				return
			}
			count++
		}
	}
	placeNth(Queen, q)

	// The 10 ways to choose 2 of the 5 remaining empty files for the
	// knights, in lexicographic order of the pair of indices.
	knightTable := [10][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}
	kp := knightTable[n4]
	// place knights among the remaining five empty files, indices relative
	// to that reduced set.
	remaining := func() []File {
		var r []File
		for f := File(0); f < 8; f++ {
			if files[f] == NoPieceType {
				r = append(r, f)
			}
		}
		return r
	}
	rem := remaining()
	files[rem[kp[0]]] = Knight
	rem = remaining()
	files[rem[kp[1]-1]] = Knight

	rem = remaining()
	files[rem[0]] = Rook
	files[rem[1]] = King
	files[rem[2]] = Rook

	return files, nil
}
