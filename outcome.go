package chesscore

// outcome.go implements the termination oracle of distilled spec §4.7:
// checkmate, stalemate, per-colour insufficient material, the fifty- and
// seventy-five-move rules, and threefold/fivefold repetition keyed on a
// transposition key. The insufficient-material predicate corrects the
// teacher's combined hasSufficientMaterial (board.go in the original
// retrieval), which folds both colours together and misses the lone-
// knight-selfmate nuance; this instead checks each colour independently.

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && len(b.LegalMoves()) == 0
}

// IsStalemate reports whether the side to move is not in check but has no
// legal moves.
func (b *Board) IsStalemate() bool {
	return !b.InCheck() && len(b.LegalMoves()) == 0
}

// HasInsufficientMaterial reports whether color c alone lacks enough
// material to deliver checkmate against any opposing arrangement, per the
// per-colour rule of distilled spec §4.7.
func (b *Board) HasInsufficientMaterial(c Color) bool {
	occ := b.OccupiedColor(c)
	if occ&(b.PieceMask(Pawn)|b.PieceMask(Rook)|b.PieceMask(Queen)) != 0 {
		return false
	}
	if occ&b.PieceMask(Knight) != 0 {
		opp := b.OccupiedColor(c.Other())
		return occ.Popcount() <= 2 && opp & ^b.PieceMask(King) & ^b.PieceMask(Queen) == Empty
	}
	if occ&b.PieceMask(Bishop) != 0 {
		bishops := b.PieceMask(Bishop)
		sameComplex := bishops&bbDarkSquares == Empty || bishops&bbLightSquares == Empty
		return sameComplex && b.PieceMask(Pawn) == Empty && b.PieceMask(Knight) == Empty
	}
	return true
}

// IsInsufficientMaterial reports whether neither side has enough material
// to force checkmate.
func (b *Board) IsInsufficientMaterial() bool {
	return b.HasInsufficientMaterial(White) && b.HasInsufficientMaterial(Black)
}

// IsSeventyFiveMoves reports the automatic seventy-five-move draw: the
// halfmove clock has reached 150 and the side to move has at least one
// legal move (checkmate/stalemate take precedence).
func (b *Board) IsSeventyFiveMoves() bool {
	return b.halfmoveClock >= 150 && len(b.LegalMoves()) > 0
}

// CanClaimFiftyMoves reports the claimable fifty-move draw: the halfmove
// clock has reached 100 and at least one legal move exists.
func (b *Board) CanClaimFiftyMoves() bool {
	return b.halfmoveClock >= 100 && len(b.LegalMoves()) > 0
}

// PositionKey is the transposition key of distilled spec §4.7: every
// piece bitboard, side to move, effective castling rights, and effective
// en-passant square. "Effective" excludes a phantom ep square that no
// pawn could actually capture on -- two positions differing only in an
// unusable ep square must hash equal.
type PositionKey struct {
	pieces   [6]Bitboard
	color    [2]Bitboard
	turn     Color
	castling Bitboard
	ep       Square
}

// TranspositionKey returns the current position's transposition key.
func (b *Board) TranspositionKey() PositionKey {
	ep := NoSquare
	if b.epSquare != NoSquare && b.hasLegalEnPassant() {
		ep = b.epSquare
	}
	return PositionKey{
		pieces:   b.pieces,
		color:    b.color,
		turn:     b.turn,
		castling: b.castlingRights,
		ep:       ep,
	}
}

// hasLegalEnPassant reports whether some fully legal move (pin- and
// discovered-check-filtered, not merely pseudo-legal) captures en passant
// on b.epSquare. A pawn move lands on the ep square only by capturing
// diagonally onto it -- the square itself is always otherwise empty --
// so From/To file mismatch is enough to identify the capture among the
// candidates LegalMoves returns.
func (b *Board) hasLegalEnPassant() bool {
	for _, m := range b.LegalMoves() {
		if m.To != b.epSquare {
			continue
		}
		mover := b.PieceAt(m.From)
		if mover.Type() == Pawn && m.From.File() != m.To.File() {
			return true
		}
	}
	return false
}

func keyFromSnapshot(s snapshot, chess960 bool) PositionKey {
	tmp := Board{chess960: chess960}
	tmp.pieces = s.pieces
	tmp.color = s.color
	tmp.promoted = s.promoted
	tmp.kingSq = s.kingSq
	tmp.turn = s.turn
	tmp.castlingRights = s.castlingRights
	tmp.epSquare = s.epSquare
	return tmp.TranspositionKey()
}

// historyKeys returns the transposition key of every position visited so
// far, oldest first, the current position last.
func (b *Board) historyKeys() []PositionKey {
	keys := make([]PositionKey, 0, len(b.stack)+1)
	for _, s := range b.stack {
		keys = append(keys, keyFromSnapshot(s, b.chess960))
	}
	keys = append(keys, b.TranspositionKey())
	return keys
}

func countOccurrences(keys []PositionKey, want PositionKey) int {
	n := 0
	for _, k := range keys {
		if k == want {
			n++
		}
	}
	return n
}

// IsThreefoldRepetition reports whether the current position's
// transposition key has occurred at least three times.
func (b *Board) IsThreefoldRepetition() bool {
	keys := b.historyKeys()
	return countOccurrences(keys, keys[len(keys)-1]) >= 3
}

// IsFivefoldRepetition reports whether the current position's
// transposition key has occurred at least five times (an automatic draw
// under FIDE rules).
func (b *Board) IsFivefoldRepetition() bool {
	keys := b.historyKeys()
	return countOccurrences(keys, keys[len(keys)-1]) >= 5
}

// CanClaimThreefoldRepetition reports whether the current position's key
// has occurred three times, or some legal move would produce a position
// whose key has occurred twice already. It pushes and pops each legal move
// for the lookahead, so it requires exclusive access to b for the duration
// of the call.
func (b *Board) CanClaimThreefoldRepetition() bool {
	if b.IsThreefoldRepetition() {
		return true
	}
	keys := b.historyKeys()
	for _, m := range b.LegalMoves() {
		b.Push(m)
		next := b.TranspositionKey()
		b.Pop()
		if countOccurrences(keys, next) >= 2 {
			return true
		}
	}
	return false
}

// Status reports every terminal and near-terminal condition that holds
// for the current position, as a bitmask (distilled spec §4.7).
func (b *Board) Status() Status {
	var s Status
	if b.InCheck() {
		s |= StatusCheck
	}
	switch {
	case b.IsCheckmate():
		s |= StatusCheckmate
	case b.IsStalemate():
		s |= StatusStalemate
	}
	if b.IsInsufficientMaterial() {
		s |= StatusInsufficientMaterial
	}
	if b.IsSeventyFiveMoves() {
		s |= StatusSeventyFiveMoves
	}
	if b.IsFivefoldRepetition() {
		s |= StatusFiveFoldRepetition
	}
	if b.CanClaimFiftyMoves() {
		s |= StatusFiftyMoves
	}
	if b.CanClaimThreefoldRepetition() {
		s |= StatusThreefoldRepetition
	}
	return s
}
