package chesscore

// movegen.go generates pseudo-legal and legal moves in the stable order
// required by distilled spec §4.5: non-pawn pieces, castling, pawn
// captures (with promotions), single pawn advances (with promotions),
// double pawn advances, en passant.

var nonKingNonPawnTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves yields every pseudo-legal move for the side to move,
// restricted to moves whose origin is in fromMask and destination is in
// toMask. It does not check whether the mover's own king is left in
// check.
func (b *Board) PseudoLegalMoves(fromMask, toMask Bitboard) []Move {
	var moves []Move
	c := b.turn
	own := b.OccupiedColor(c)
	occ := b.Occupied()

	appendStepper := func(pt PieceType) {
		for it := (b.PieceTypeColorMask(pt, c) & fromMask).ScanForward(); it.HasNext(); {
			sq := it.Next()
			targets := AttacksFor(pt, c, sq, occ) & ^own & toMask
			for jt := targets.ScanForward(); jt.HasNext(); {
				moves = append(moves, Move{From: sq, To: jt.Next(), Promotion: NoPieceType, Drop: NoPieceType})
			}
		}
	}

	appendStepper(King)
	for _, pt := range nonKingNonPawnTypes {
		appendStepper(pt)
	}

	if king := b.King(c); king != NoSquare && fromMask.Occupied(king) {
		moves = append(moves, b.castlingMoves(toMask)...)
	}
	moves = append(moves, b.pawnCaptureMoves(fromMask, toMask)...)
	moves = append(moves, b.pawnAdvanceMoves(fromMask, toMask, false)...)
	moves = append(moves, b.pawnAdvanceMoves(fromMask, toMask, true)...)
	moves = append(moves, b.enPassantMoves(fromMask, toMask)...)

	return moves
}

func promotionRankFor(c Color) Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

func startingPawnRankFor(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

func appendPawnMoves(moves []Move, from, to Square, c Color) []Move {
	if to.Rank() == promotionRankFor(c) {
		for _, pt := range promotionTypes {
			moves = append(moves, Move{From: from, To: to, Promotion: pt, Drop: NoPieceType})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Promotion: NoPieceType, Drop: NoPieceType})
}

func (b *Board) pawnCaptureMoves(fromMask, toMask Bitboard) []Move {
	var moves []Move
	c := b.turn
	enemy := b.OccupiedColor(c.Other())
	for it := (b.PieceTypeColorMask(Pawn, c) & fromMask).ScanForward(); it.HasNext(); {
		sq := it.Next()
		targets := PawnAttacks(c, sq) & enemy & toMask
		for jt := targets.ScanForward(); jt.HasNext(); {
			moves = appendPawnMoves(moves, sq, jt.Next(), c)
		}
	}
	return moves
}

func (b *Board) pawnAdvanceMoves(fromMask, toMask Bitboard, double bool) []Move {
	var moves []Move
	c := b.turn
	occ := b.Occupied()
	for it := (b.PieceTypeColorMask(Pawn, c) & fromMask).ScanForward(); it.HasNext(); {
		sq := it.Next()
		var one Bitboard
		if c == White {
			one = bbForSquare(sq).Up()
		} else {
			one = bbForSquare(sq).Down()
		}
		if one&occ != 0 {
			continue
		}
		if !double {
			if one&toMask != 0 {
				moves = appendPawnMoves(moves, sq, one.Lsb(), c)
			}
			continue
		}
		if sq.Rank() != startingPawnRankFor(c) {
			continue
		}
		var two Bitboard
		if c == White {
			two = one.Up()
		} else {
			two = one.Down()
		}
		if two&occ != 0 {
			continue
		}
		if two&toMask != 0 {
			moves = append(moves, Move{From: sq, To: two.Lsb(), Promotion: NoPieceType, Drop: NoPieceType})
		}
	}
	return moves
}

func (b *Board) enPassantMoves(fromMask, toMask Bitboard) []Move {
	var moves []Move
	if b.epSquare == NoSquare || bbForSquare(b.epSquare)&toMask == 0 {
		return moves
	}
	c := b.turn
	captureRank := Rank5
	if c == Black {
		captureRank = Rank4
	}
	candidates := b.PieceTypeColorMask(Pawn, c) & fromMask & bbRanks[captureRank]
	for it := candidates.ScanForward(); it.HasNext(); {
		sq := it.Next()
		if PawnAttacks(c, sq)&bbForSquare(b.epSquare) == 0 {
			continue
		}
		moves = append(moves, Move{From: sq, To: b.epSquare, Promotion: NoPieceType, Drop: NoPieceType})
	}
	return moves
}

// castlingMoves generates at most one king-side and one queen-side move,
// encoded king-to-rook-square in Chess960 mode and king-to-final-square
// otherwise (Board.Push accepts both encodings). Legality (path clearance, attacked squares) is checked
// here at generation time, per distilled spec §4.5.
func (b *Board) castlingMoves(toMask Bitboard) []Move {
	var moves []Move
	c := b.turn
	king := b.King(c)
	if king == NoSquare {
		return moves
	}
	backrank := backrankFor(c)
	rookCandidates := b.castlingRights & backrank

	for it := rookCandidates.ScanForward(); it.HasNext(); {
		rook := it.Next()
		queenSide := isQueenSideRook(king, rook)
		rank := Rank1
		if c == Black {
			rank = Rank8
		}
		kingTo := NewSquare(FileG, rank)
		rookTo := NewSquare(FileF, rank)
		if queenSide {
			kingTo = NewSquare(FileC, rank)
			rookTo = NewSquare(FileD, rank)
		}

		kingPath := Between(king, kingTo).Union(SquareSet(bbForSquare(kingTo)))
		rookPath := Between(rook, rookTo).Union(SquareSet(bbForSquare(rookTo)))
		occupiedExceptKingRook := b.Occupied() & ^bbForSquare(king) & ^bbForSquare(rook)
		blockers := (kingPath.Union(rookPath)).Bitboard() & occupiedExceptKingRook
		if blockers != Empty {
			continue
		}

		occNoKing := b.Occupied() & ^bbForSquare(king)
		attackedAlongKingPath := false
		for jt := (Between(king, kingTo).Union(SquareSet(bbForSquare(king)))).ScanForward(); jt.HasNext(); {
			sq := jt.Next()
			if b.AttackersMask(c.Other(), sq, occNoKing) != 0 {
				attackedAlongKingPath = true
				break
			}
		}
		if attackedAlongKingPath {
			continue
		}

		occFinal := (b.Occupied() & ^bbForSquare(king) & ^bbForSquare(rook)) | bbForSquare(kingTo) | bbForSquare(rookTo)
		if b.AttackersMask(c.Other(), kingTo, occFinal) != 0 {
			continue
		}

		dest := rook
		if !b.chess960 {
			dest = kingTo
		}
		if bbForSquare(dest)&toMask == 0 {
			continue
		}
		moves = append(moves, Move{From: king, To: dest, Promotion: NoPieceType, Drop: NoPieceType})
	}
	return moves
}

// LegalMoves returns every strictly legal move for the side to move, in
// the same stable order as PseudoLegalMoves.
func (b *Board) LegalMoves() []Move {
	checkers := b.checkersMask()
	var fromMask, toMask Bitboard = All, All

	if checkers != Empty {
		king := b.King(b.turn)
		if checkers.Popcount() > 1 {
			return b.kingEvasions()
		}
		checker := checkers.Lsb()
		toMask = bbForSquare(checker) | between(king, checker)
		fromMask = All
	}

	candidates := b.PseudoLegalMoves(fromMask, toMask)
	var legal []Move
	if checkers != Empty {
		legal = b.kingEvasions()
	}
	for _, m := range candidates {
		if !b.isLegalCandidate(m, checkers) {
			continue
		}
		legal = append(legal, m)
	}
	if checkers != Empty && b.epSquare != NoSquare && checkers == bbForSquare(epCapturedPawnSquare(b.turn, b.epSquare)) {
		for _, m := range b.enPassantMoves(All, bbForSquare(b.epSquare)) {
			if b.isLegalCandidate(m, checkers) {
				legal = append(legal, m)
			}
		}
	}
	return dedupMoves(legal)
}

// kingEvasions returns the king's legal destination squares when in
// check (used directly for double check, and merged in for single check).
func (b *Board) kingEvasions() []Move {
	var moves []Move
	c := b.turn
	king := b.King(c)
	if king == NoSquare {
		return moves
	}
	own := b.OccupiedColor(c)
	occWithoutKing := b.Occupied() & ^bbForSquare(king)
	targets := KingAttacks(king) & ^own
	for it := targets.ScanForward(); it.HasNext(); {
		to := it.Next()
		occAfter := (occWithoutKing & ^bbForSquare(to)) | bbForSquare(to)
		if b.AttackersMask(c.Other(), to, occAfter) != 0 {
			continue
		}
		moves = append(moves, Move{From: king, To: to, Promotion: NoPieceType, Drop: NoPieceType})
	}
	return moves
}

// isLegalCandidate checks a pseudo-legal, non-castling-aware candidate
// move for king safety: pin restriction and, for en passant, the
// discovered-check special case. Castling moves were already validated at
// generation time and king moves are re-validated in full here too (a
// cheap King-Attacks-based evasion check suffices since a non-castling
// king move changes occupancy by exactly one square).
func (b *Board) isLegalCandidate(m Move, checkers Bitboard) bool {
	c := b.turn
	mover := b.PieceAt(m.From)
	if mover.Type() == King {
		dest := b.PieceAt(m.To)
		isCastle := (dest != NoPiece && dest.Color() == c && dest.Type() == Rook) ||
			(m.From.Rank() == m.To.Rank() && SquareDistance(m.From, m.To) == 2)
		if isCastle {
			return true // castling, already validated at generation time
		}
		occAfter := (b.Occupied() & ^bbForSquare(m.From)) | bbForSquare(m.To)
		return b.AttackersMask(c.Other(), m.To, occAfter) == 0
	}

	isEnPassant := mover.Type() == Pawn && m.To == b.epSquare && b.epSquare != NoSquare && b.PieceAt(m.To) == NoPiece
	if isEnPassant && b.epExposesCheck(m) {
		return false
	}

	pin := b.PinMask(c, m.From)
	if pin != All && pin&bbForSquare(m.To) == 0 {
		return false
	}
	return true
}

// epExposesCheck reports whether performing the en-passant capture m
// would expose the king to a rank/diagonal slider once both pawns are
// removed -- the en-passant discovered check.
func (b *Board) epExposesCheck(m Move) bool {
	c := b.turn
	king := b.King(c)
	if king == NoSquare {
		return false
	}
	capturedSq := epCapturedPawnSquare(c, b.epSquare)
	occAfter := b.Occupied() & ^bbForSquare(m.From) & ^bbForSquare(capturedSq) | bbForSquare(m.To)
	return b.AttackersMask(c.Other(), king, occAfter) != 0
}

func dedupMoves(moves []Move) []Move {
	seen := make(map[Move]bool, len(moves))
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
