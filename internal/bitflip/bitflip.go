// Package bitflip computes sliding-piece attack bitboards using the
// Hyperbola Quintessence o-(2s) trick, ported from the teacher's
// bitflip/chessdata.go and bitflip/wrapper.go. Mask and location bitboards
// are supplied by the caller (attacks.go already has its own per-square
// diagonal/anti-diagonal/rank/file tables) rather than duplicated here,
// matching the teacher's own wrapper.go signatures exactly. Used only at
// attack-table construction time, which runs once at package init; the
// runtime lookup path is the mask-indexed table that construction builds,
// not this package.
package bitflip

import "math/bits"

// linearAttack computes the sliding attack along mask given occupied and
// the slider's own singleton bitboard location: subtracting twice the
// slider's bit from the masked occupancy produces the forward ray, and the
// same trick applied to the bit-reversed board produces the reverse ray.
func linearAttack(occupied, location, mask uint64) uint64 {
	oInMask := occupied & mask
	forward := oInMask - (location << 1)

	revLocation := bits.Reverse64(location) << 1
	revOccupied := bits.Reverse64(oInMask)
	reverse := bits.Reverse64(revOccupied - revLocation)

	return (forward ^ reverse) & mask
}

// BishopRookAttacks returns the sliding attack set from location given
// occupied, along the two supplied masks (diagonal+antidiagonal for a
// bishop, rank+file for a rook).
func BishopRookAttacks(occupied, location, rankOrDiag, fileOrAntiDiag uint64) uint64 {
	return linearAttack(occupied, location, rankOrDiag) | linearAttack(occupied, location, fileOrAntiDiag)
}

// QueenAttacks returns the sliding attack set from location given occupied,
// along all four mask lines.
func QueenAttacks(occupied, location, rank, file, diag, antidiag uint64) uint64 {
	return linearAttack(occupied, location, rank) | linearAttack(occupied, location, file) |
		linearAttack(occupied, location, diag) | linearAttack(occupied, location, antidiag)
}
