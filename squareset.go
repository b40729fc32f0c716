package chesscore

// SquareSet is a thin set-algebra wrapper over a Bitboard, per distilled
// spec §2 item 4: set operations, iteration, and ray helpers.
type SquareSet Bitboard

// NewSquareSet builds a SquareSet containing the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s |= SquareSet(bbForSquare(sq))
	}
	return s
}

// Bitboard exposes the underlying bitboard.
func (s SquareSet) Bitboard() Bitboard { return Bitboard(s) }

// Union, Intersect, Difference and SymmetricDifference implement the usual
// set algebra.
func (s SquareSet) Union(other SquareSet) SquareSet {
	return s | other
}

func (s SquareSet) Intersect(other SquareSet) SquareSet {
	return s & other
}

func (s SquareSet) Difference(other SquareSet) SquareSet {
	return s &^ other
}

func (s SquareSet) SymmetricDifference(other SquareSet) SquareSet {
	return s ^ other
}

// Complement returns every square not in s.
func (s SquareSet) Complement() SquareSet {
	return ^s
}

// Contains reports whether sq is a member of s.
func (s SquareSet) Contains(sq Square) bool {
	return Bitboard(s).Occupied(sq)
}

// Len returns the number of members.
func (s SquareSet) Len() int {
	return Bitboard(s).Popcount()
}

// IsEmpty reports whether s has no members.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// Squares returns every member in ascending order.
func (s SquareSet) Squares() []Square {
	return Bitboard(s).Squares()
}

// ScanForward returns a forward iterator over s's members.
func (s SquareSet) ScanForward() ForwardIter {
	return Bitboard(s).ScanForward()
}

// Add inserts sq into s.
func (s *SquareSet) Add(sq Square) {
	*s |= SquareSet(bbForSquare(sq))
}

// Remove deletes sq from s. It returns ErrEmptySetOperation if sq is not a
// member, per distilled spec §7.
func (s *SquareSet) Remove(sq Square) error {
	if !s.Contains(sq) {
		return ErrEmptySetOperation
	}
	*s &^= SquareSet(bbForSquare(sq))
	return nil
}

// Pop removes and returns the lowest-indexed member of s. It returns
// ErrEmptySetOperation if s is empty, per distilled spec §7.
func (s *SquareSet) Pop() (Square, error) {
	if *s == 0 {
		return NoSquare, ErrEmptySetOperation
	}
	sq := Bitboard(*s).Lsb()
	*s &= *s - 1
	return sq, nil
}

// Between returns the squares strictly between a and b, exclusive, if they
// share a rank, file, or diagonal; otherwise the empty set.
func Between(a, b Square) SquareSet {
	return SquareSet(between(a, b))
}

// RayThrough returns every square on the rank, file, or diagonal line that
// passes through both a and b; the empty set if no such line exists.
func RayThrough(a, b Square) SquareSet {
	return SquareSet(rayThrough(a, b))
}
