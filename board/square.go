package board

import "fmt"

// Square identifies one of the 50 playable dark squares of the 10x10 board
// using FMJD numbering: square 1 sits in the top row, square 50 in the bottom
// row. Light squares are not addressable.
type Square int

// NumSquares is the number of playable squares on the board.
const NumSquares = 50

// Valid reports whether sq is a playable square number.
func Valid(sq Square) bool {
	return sq >= 1 && sq <= NumSquares
}

// Coords converts a square to its (row, col) pair, with row 0 at the top
// (squares 1-5) and col 0 at the left. Passing an invalid square is a
// programming error and panics.
func Coords(sq Square) (row, col int) {
	if !Valid(sq) {
		panic(fmt.Sprintf("board: invalid square %d", sq))
	}
	i := int(sq) - 1
	row = i / 5
	col = 2*(i%5) + 1 - row%2
	return row, col
}

// SquareAt converts a (row, col) pair back to its square number. The second
// return value is false for coordinates off the board or on a light square.
func SquareAt(row, col int) (Square, bool) {
	if row < 0 || row > 9 || col < 0 || col > 9 {
		return 0, false
	}
	if (row+col)%2 == 0 {
		return 0, false
	}
	return Square(row*5 + col/2 + 1), true
}

// PromotionSquare reports whether sq lies on the back row where a man of the
// given color promotes: the top row for White, the bottom row for Black.
func PromotionSquare(c Color, sq Square) bool {
	if c == White {
		return sq <= 5
	}
	return sq >= 46
}
