// Package san implements Standard Algebraic Notation encode/decode against
// a chesscore.Board. It is a collaborator package (distilled spec §1 names
// SAN as an external collaborator, not part of the move-generation core):
// chesscore has no dependency on san, only the reverse.
//
// Two decode paths are provided, mirroring the teacher's own two SAN
// paths in notation.go and san_decode.go: Decode validates against the
// board's actual LegalMoves and renders each one's SAN text, which is
// slower but always correct; ParseCompact is a hand-rolled parser that
// splits the SAN token itself and only scans LegalMoves for a matching
// origin, skipping the per-move SAN rendering.
package san

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/halvorsen/chesscore"
)

// Encode returns the SAN text for m, a legal move on board b. It does not
// mutate b.
func Encode(b *chesscore.Board, m chesscore.Move) string {
	return encodeInternal(b, m, nil)
}

func encodeInternal(b *chesscore.Board, m chesscore.Move, legal []chesscore.Move) string {
	if isCastle(b, m) {
		return castleText(b, m) + checkSuffix(b, m)
	}

	mover := b.PieceAt(m.From)
	pieceChar := pieceLetter(mover.Type())
	origin := originDisambiguation(b, m, mover, legal)
	captures := isCapture(b, m)
	capChar := ""
	if captures {
		capChar = "x"
		if mover.Type() == chesscore.Pawn && origin == "" {
			capChar = m.From.File().String() + "x"
		}
	}
	promo := ""
	if m.Promotion != chesscore.NoPieceType {
		promo = "=" + strings.ToUpper(m.Promotion.String())
	}

	var sb strings.Builder
	sb.WriteString(pieceChar)
	sb.WriteString(origin)
	sb.WriteString(capChar)
	sb.WriteString(m.To.String())
	sb.WriteString(promo)
	sb.WriteString(checkSuffix(b, m))
	return sb.String()
}

func pieceLetter(pt chesscore.PieceType) string {
	switch pt {
	case chesscore.King:
		return "K"
	case chesscore.Queen:
		return "Q"
	case chesscore.Rook:
		return "R"
	case chesscore.Bishop:
		return "B"
	case chesscore.Knight:
		return "N"
	}
	return ""
}

func isCastle(b *chesscore.Board, m chesscore.Move) bool {
	mover := b.PieceAt(m.From)
	if mover.Type() != chesscore.King {
		return false
	}
	dest := b.PieceAt(m.To)
	if dest != chesscore.NoPiece && dest.Color() == mover.Color() && dest.Type() == chesscore.Rook {
		return true
	}
	return m.From.Rank() == m.To.Rank() && chesscore.SquareDistance(m.From, m.To) == 2
}

func castleText(b *chesscore.Board, m chesscore.Move) string {
	king := b.PieceAt(m.From)
	rank := chesscore.Rank1
	if king.Color() == chesscore.Black {
		rank = chesscore.Rank8
	}
	kingSideDest := chesscore.NewSquare(chesscore.FileG, rank)
	dest := b.PieceAt(m.To)
	queenSide := false
	if dest != chesscore.NoPiece && dest.Type() == chesscore.Rook {
		queenSide = m.To < m.From
	} else {
		queenSide = m.To.File() != kingSideDest.File()
	}
	if queenSide {
		return "O-O-O"
	}
	return "O-O"
}

func isCapture(b *chesscore.Board, m chesscore.Move) bool {
	if b.PieceAt(m.To) != chesscore.NoPiece {
		return true
	}
	mover := b.PieceAt(m.From)
	return mover.Type() == chesscore.Pawn && m.To == b.EpSquare() && b.EpSquare() != chesscore.NoSquare
}

// checkSuffix pushes m, inspects the resulting position, and pops it. This
// requires exclusive access to b for the duration of the call, the same
// contract chesscore.Board.GivesCheck documents.
func checkSuffix(b *chesscore.Board, m chesscore.Move) string {
	b.Push(m)
	defer b.Pop()
	if !b.InCheck() {
		return ""
	}
	if b.IsCheckmate() {
		return "#"
	}
	return "+"
}

// originDisambiguation returns the file/rank/square prefix needed to
// distinguish m from other legal moves of the same piece type to the same
// destination, per distilled spec's SAN surface (ported from the teacher's
// notation.go formS1).
func originDisambiguation(b *chesscore.Board, m chesscore.Move, mover chesscore.Piece, legal []chesscore.Move) string {
	if mover.Type() == chesscore.Pawn || mover.Type() == chesscore.King {
		return ""
	}
	if legal == nil {
		legal = b.LegalMoves()
	}
	var sameFile, sameRank, ambiguous bool
	for _, other := range legal {
		if other.From == m.From || other.To != m.To {
			continue
		}
		if b.PieceAt(other.From).Type() != mover.Type() {
			continue
		}
		ambiguous = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	s := ""
	if !sameFile {
		s = m.From.File().String()
	} else if !sameRank {
		s = m.From.Rank().String()
	} else {
		s = m.From.String()
	}
	return s
}

// EncodeLine encodes a sequence of moves applied successively to b,
// restoring b to its original position before returning.
func EncodeLine(b *chesscore.Board, moves []chesscore.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		legal := b.LegalMoves()
		out[i] = encodeInternal(b, m, legal)
		b.Push(m)
	}
	for range moves {
		b.Pop()
	}
	return out
}

// Decode parses SAN text s against b's legal moves, matching the teacher's
// primary notation.go decode path: generate every legal move's SAN text and
// find the one s names. This is always correct but pays for full legal
// move generation.
func Decode(b *chesscore.Board, s string) (chesscore.Move, error) {
	s = strings.TrimSpace(s)
	legal := b.LegalMoves()
	for _, m := range legal {
		if encodeInternal(b, m, legal) == s {
			return m, nil
		}
	}
	cleaned := stripAnnotations(s)
	for _, m := range legal {
		if strings.HasPrefix(encodeInternal(b, m, legal), cleaned) {
			return m, nil
		}
	}
	return chesscore.Move{}, fmt.Errorf("san: could not decode %q for position %s", s, b.FEN())
}

func stripAnnotations(s string) string {
	s = strings.ReplaceAll(s, "!", "")
	s = strings.ReplaceAll(s, "?", "")
	return s
}

var sanTokenRe = regexp.MustCompile(`^(?:([RNBQKP]?)([a-h]?)(\d?)(x?)([a-h])(\d)(=[QRBN])?|(O-O(?:-O)?))[+#]?$`)

// ParseCompact parses well-formed SAN text without rendering SAN for every
// legal move; it still consults LegalMoves to find the origin square.
// Falls back to an error, never a silently wrong move, if disambiguation
// fails to narrow to exactly one candidate.
func ParseCompact(b *chesscore.Board, s string) (chesscore.Move, error) {
	s = stripAnnotations(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "0-0-0", "O-O-O")
	s = strings.ReplaceAll(s, "0-0", "O-O")

	m := sanTokenRe.FindStringSubmatch(strings.TrimRight(s, "+#"))
	if m == nil {
		return chesscore.Move{}, fmt.Errorf("san: %w: %q", chesscore.ErrInvalidPieceSymbol, s)
	}
	if m[8] != "" {
		return parseCastleCompact(b, m[8])
	}

	pieceCh, fileHintCh, rankHintCh, toFileCh, toRankCh, promoCh :=
		m[1], m[2], m[3], m[5], m[6], m[7]

	pt := chesscore.Pawn
	if pieceCh != "" {
		pt = pieceTypeFromUpper(pieceCh)
	}
	toSq, err := chesscore.SquareFromName(toFileCh + toRankCh)
	if err != nil {
		return chesscore.Move{}, err
	}

	fileHint, hasFileHint := fileHint(fileHintCh)
	rankHint, hasRankHint := rankHint(rankHintCh)

	from, err := findOrigin(b, pt, toSq, fileHint, hasFileHint, rankHint, hasRankHint)
	if err != nil {
		return chesscore.Move{}, fmt.Errorf("san: %w", err)
	}

	promo := chesscore.NoPieceType
	if promoCh != "" {
		promo = pieceTypeFromUpper(strings.TrimPrefix(promoCh, "="))
	}
	return chesscore.Move{From: from, To: toSq, Promotion: promo, Drop: chesscore.NoPieceType}, nil
}

func parseCastleCompact(b *chesscore.Board, token string) (chesscore.Move, error) {
	c := b.Turn()
	rank := chesscore.Rank1
	if c == chesscore.Black {
		rank = chesscore.Rank8
	}
	king := b.King(c)
	queenSide := token == "O-O-O"
	for _, cand := range b.LegalMoves() {
		if cand.From != king {
			continue
		}
		mover := b.PieceAt(cand.From)
		if mover.Type() != chesscore.King {
			continue
		}
		dest := b.PieceAt(cand.To)
		isCastleMove := (dest != chesscore.NoPiece && dest.Type() == chesscore.Rook) ||
			(cand.From.Rank() == cand.To.Rank() && chesscore.SquareDistance(cand.From, cand.To) == 2)
		if !isCastleMove {
			continue
		}
		candQueenSide := cand.To < cand.From
		if candQueenSide == queenSide {
			return cand, nil
		}
	}
	_ = rank
	return chesscore.Move{}, fmt.Errorf("san: no legal castle %q available", token)
}

func pieceTypeFromUpper(c string) chesscore.PieceType {
	if c == "" {
		return chesscore.NoPieceType
	}
	switch c[0] {
	case 'Q':
		return chesscore.Queen
	case 'R':
		return chesscore.Rook
	case 'B':
		return chesscore.Bishop
	case 'N':
		return chesscore.Knight
	case 'K':
		return chesscore.King
	case 'P':
		return chesscore.Pawn
	}
	return chesscore.NoPieceType
}

func fileHint(s string) (chesscore.File, bool) {
	if s == "" {
		return 0, false
	}
	return chesscore.File(s[0] - 'a'), true
}

func rankHint(s string) (chesscore.Rank, bool) {
	if s == "" {
		return 0, false
	}
	return chesscore.Rank(s[0] - '1'), true
}

// findOrigin locates the unique legal move's origin square among pieces of
// type pt that can reach toSq, narrowed by the optional file/rank hints.
// Ambiguity or absence is an error rather than a guess.
func findOrigin(b *chesscore.Board, pt chesscore.PieceType, toSq chesscore.Square, fh chesscore.File, hasFh bool, rh chesscore.Rank, hasRh bool) (chesscore.Square, error) {
	var found chesscore.Square = chesscore.NoSquare
	count := 0
	for _, m := range b.LegalMoves() {
		if m.To != toSq {
			continue
		}
		mover := b.PieceAt(m.From)
		if mover.Type() != pt {
			continue
		}
		if hasFh && m.From.File() != fh {
			continue
		}
		if hasRh && m.From.Rank() != rh {
			continue
		}
		if m.From == found {
			continue // further promotion choices of the same pawn move
		}
		found = m.From
		count++
	}
	if count == 0 {
		return chesscore.NoSquare, fmt.Errorf("no legal %s move to %s", pt, toSq)
	}
	if count > 1 {
		return chesscore.NoSquare, fmt.Errorf("ambiguous %s move to %s", pt, toSq)
	}
	return found, nil
}
