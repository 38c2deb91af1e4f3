package board

import "strings"

// Position is the full placement of pieces plus the side to move. It has
// value semantics: applying a move produces a new Position, never an aliased
// one. Index 0 of Squares is unused so squares index directly by number.
type Position struct {
	Squares [NumSquares + 1]Piece
	ToMove  Color
}

// Initial returns the FMJD starting position: Black men on squares 1-20,
// White men on 31-50, White to move.
func Initial() Position {
	var pos Position
	for sq := Square(1); sq <= 20; sq++ {
		pos.Squares[sq] = BlackMan
	}
	for sq := Square(31); sq <= 50; sq++ {
		pos.Squares[sq] = WhiteMan
	}
	pos.ToMove = White
	return pos
}

// At returns the occupant of sq. Invalid squares panic.
func (p *Position) At(sq Square) Piece {
	if !Valid(sq) {
		panic("board: position access with invalid square")
	}
	return p.Squares[sq]
}

// Set places pc on sq, overwriting any previous occupant.
func (p *Position) Set(sq Square, pc Piece) {
	if !Valid(sq) {
		panic("board: position update with invalid square")
	}
	p.Squares[sq] = pc
}

// String renders the board as ten rows from White's opponent side down, with
// light squares as spaces. Intended for logs and test failure output.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			if sq, ok := SquareAt(row, col); ok {
				sb.WriteString(p.Squares[sq].String())
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(p.ToMove.String())
	sb.WriteString(" to move")
	return sb.String()
}
