package board

// Direction is one of the four diagonals. North is toward row 0 (square 1),
// which is the forward direction for White.
type Direction int

const (
	NorthWest Direction = iota
	NorthEast
	SouthWest
	SouthEast
)

// Directions lists all four diagonals in a fixed order; move generation
// iterates it so output order stays deterministic within a process.
var Directions = [4]Direction{NorthWest, NorthEast, SouthWest, SouthEast}

func (d Direction) Opposite() Direction {
	return 3 - d
}

var rowDelta = [4]int{-1, -1, 1, 1}
var colDelta = [4]int{-1, 1, -1, 1}

// Forward returns the two diagonals a man of color c may step along.
func Forward(c Color) [2]Direction {
	if c == White {
		return [2]Direction{NorthWest, NorthEast}
	}
	return [2]Direction{SouthWest, SouthEast}
}

var (
	neighborTable [NumSquares + 1][4]Square
	rayTable      [NumSquares + 1][4][]Square
)

func init() {
	for sq := Square(1); sq <= NumSquares; sq++ {
		row, col := Coords(sq)
		for _, d := range Directions {
			r, c := row, col
			for {
				r += rowDelta[d]
				c += colDelta[d]
				next, ok := SquareAt(r, c)
				if !ok {
					break
				}
				if neighborTable[sq][d] == 0 {
					neighborTable[sq][d] = next
				}
				rayTable[sq][d] = append(rayTable[sq][d], next)
			}
		}
	}
}

// Neighbor returns the square adjacent to sq along d, or 0 at the board edge.
func Neighbor(sq Square, d Direction) Square {
	if !Valid(sq) {
		panic("board: neighbor of invalid square")
	}
	return neighborTable[sq][d]
}

// Ray lists every square reachable from sq along d in order of distance,
// up to the board edge. The returned slice is shared; callers must not
// modify it.
func Ray(sq Square, d Direction) []Square {
	if !Valid(sq) {
		panic("board: ray of invalid square")
	}
	return rayTable[sq][d]
}
