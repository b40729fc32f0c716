// Package svgboard renders a chesscore.BaseBoard as an SVG diagram using
// ajstarks/svgo, the teacher's own diagramming dependency (present in its
// go.mod; its svg.go file itself was outside the retrieved source set, so
// this package is new, grounded on the teacher's declared dependency and
// the well known svgo canvas API: Start/Rect/Text/End). svgboard depends
// on chesscore; chesscore has no knowledge of svgboard.
package svgboard

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/halvorsen/chesscore"
)

// pieceGlyph mirrors chesscore's own Piece.String() unicode glyphs, kept
// as a local table so this package draws from BaseBoard.PieceAt alone and
// never needs an unexported lookup.
var pieceGlyph = map[chesscore.Piece]string{
	chesscore.WhiteKing:   "&#9812;",
	chesscore.WhiteQueen:  "&#9813;",
	chesscore.WhiteRook:   "&#9814;",
	chesscore.WhiteBishop: "&#9815;",
	chesscore.WhiteKnight: "&#9816;",
	chesscore.WhitePawn:   "&#9817;",
	chesscore.BlackKing:   "&#9818;",
	chesscore.BlackQueen:  "&#9819;",
	chesscore.BlackRook:   "&#9820;",
	chesscore.BlackBishop: "&#9821;",
	chesscore.BlackKnight: "&#9822;",
	chesscore.BlackPawn:   "&#9823;",
}

const (
	lightSquareFill = "#f0d9b5"
	darkSquareFill  = "#b58863"
)

// WriteBoard draws b to w as an SVG diagram, squareSize pixels per square,
// White's first rank at the bottom.
func WriteBoard(w io.Writer, b *chesscore.BaseBoard, squareSize int) error {
	dim := squareSize * 8
	canvas := svg.New(w)
	canvas.Start(dim, dim)
	defer canvas.End()

	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			x := f * squareSize
			y := (7 - r) * squareSize
			fill := lightSquareFill
			if (f+r)%2 == 0 {
				fill = darkSquareFill
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			sq := chesscore.NewSquare(chesscore.File(f), chesscore.Rank(r))
			p := b.PieceAt(sq)
			if p == chesscore.NoPiece {
				continue
			}
			glyph, ok := pieceGlyph[p]
			if !ok {
				continue
			}
			cx := x + squareSize/2
			cy := y + squareSize*3/4
			fontSize := squareSize * 3 / 4
			canvas.Text(cx, cy, glyph, textStyle(fontSize))
		}
	}
	return nil
}

func textStyle(fontSize int) string {
	return "text-anchor:middle;font-size:" + itoa(fontSize) + "px"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
