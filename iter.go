package chesscore

// ForwardIter lazily yields the set squares of a bitboard in ascending
// index order by repeatedly extracting the lowest set bit, per distilled
// spec §4.2. It is finite and not restartable once consumed.
type ForwardIter struct {
	remaining Bitboard
}

// ScanForward returns a forward iterator over b's set squares.
func (b Bitboard) ScanForward() ForwardIter {
	return ForwardIter{remaining: b}
}

// HasNext reports whether another square remains.
func (it *ForwardIter) HasNext() bool {
	return it.remaining != 0
}

// Next returns the next square in ascending order. Calling Next after
// HasNext reports false is undefined (matches distilled spec's "finite,
// lazy" contract -- there is no sentinel return).
func (it *ForwardIter) Next() Square {
	sq := it.remaining.Lsb()
	it.remaining &= it.remaining - 1
	return sq
}

// ReverseIter lazily yields the set squares of a bitboard in descending
// index order via repeated most-significant-bit extraction.
type ReverseIter struct {
	remaining Bitboard
}

// ScanReverse returns a reverse iterator over b's set squares.
func (b Bitboard) ScanReverse() ReverseIter {
	return ReverseIter{remaining: b}
}

// HasNext reports whether another square remains.
func (it *ReverseIter) HasNext() bool {
	return it.remaining != 0
}

// Next returns the next square in descending order.
func (it *ReverseIter) Next() Square {
	sq := it.remaining.Msb()
	it.remaining &= ^bbForSquare(sq)
	return sq
}

// SubsetIter enumerates every subset of a mask bitboard in strictly
// increasing order under the lexicographic bit order of the mask, using
// the Carry-Rippler recurrence S <- (S - M) & M, starting from S = 0 and
// terminating when S returns to 0. Used exclusively at attack-table
// construction time (distilled spec §4.2/§4.3).
type SubsetIter struct {
	mask    Bitboard
	subset  Bitboard
	started bool
}

// Subsets returns a Carry-Rippler iterator over every subset of mask,
// including the empty subset.
func Subsets(mask Bitboard) *SubsetIter {
	return &SubsetIter{mask: mask}
}

// HasNext reports whether another subset remains. The empty subset is
// always produced first; iteration ends once the rippled subset returns
// to zero.
func (it *SubsetIter) HasNext() bool {
	return !it.started || it.subset != 0
}

// Next returns the next subset of the mask.
func (it *SubsetIter) Next() Bitboard {
	s := it.subset
	it.subset = (it.subset - it.mask) & it.mask
	it.started = true
	return s
}
