package chesscore

import "fmt"

// A Move is the movement of a piece from one square to another, with an
// optional promotion and an optional drop piece type (drops are unused in
// standard and Chess960 chess but present for variants, per distilled
// spec §3).
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
	Drop      PieceType
}

// NullMove is the distinguished "no move" value: from A1 to A1, no
// promotion, no drop. It is deliberately not the Go zero value of Move,
// since PieceType's zero value is King, not NoPieceType -- mirroring the
// teacher's own NoPiece=255/NoColor=15 sentinel convention rather than
// relying on zero-value aliasing.
var NullMove = Move{From: A1, To: A1, Promotion: NoPieceType, Drop: NoPieceType}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m == NullMove
}

// String returns a string useful for debugging; it is UCI notation, not
// algebraic notation -- matching the teacher's own String() doc comment
// on move.go.
func (m Move) String() string {
	if m.Drop != NoPieceType {
		return fmt.Sprintf("%s@%s", charFromPieceType(m.Drop), m.To)
	}
	promo := ""
	if m.Promotion != NoPieceType {
		promo = m.Promotion.String()
	}
	return fmt.Sprintf("%s%s%s", m.From, m.To, promo)
}
