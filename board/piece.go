package board

// Color identifies a side. White moves first and plays toward row 0.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Piece is the occupant of a square, encoded in one byte. Pieces are values:
// promotion replaces a man with a king, it never mutates in place.
type Piece uint8

const (
	Empty Piece = iota
	WhiteMan
	WhiteKing
	BlackMan
	BlackKing
)

func MakePiece(c Color, king bool) Piece {
	if c == White {
		if king {
			return WhiteKing
		}
		return WhiteMan
	}
	if king {
		return BlackKing
	}
	return BlackMan
}

func (p Piece) IsEmpty() bool { return p == Empty }

func (p Piece) Color() Color {
	if p == WhiteMan || p == WhiteKing {
		return White
	}
	return Black
}

func (p Piece) IsKing() bool { return p == WhiteKing || p == BlackKing }

func (p Piece) IsMan() bool { return p == WhiteMan || p == BlackMan }

// Promoted returns the king of the same color. Promoting a king or an empty
// square is a programming error.
func (p Piece) Promoted() Piece {
	switch p {
	case WhiteMan:
		return WhiteKing
	case BlackMan:
		return BlackKing
	}
	panic("board: promoting a non-man piece")
}

func (p Piece) String() string {
	switch p {
	case WhiteMan:
		return "w"
	case WhiteKing:
		return "W"
	case BlackMan:
		return "b"
	case BlackKing:
		return "B"
	}
	return "."
}
