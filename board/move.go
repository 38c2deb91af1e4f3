package board

// CaptureStep is one jump in a capture sequence: the piece travels From→To
// and removes the enemy piece on Captured.
type CaptureStep struct {
	From     Square
	To       Square
	Captured Square
}

// Move is a tagged value with two cases. A quiet move has nil Steps and moves
// From→To; a capture sequence carries its ordered steps (length >= 1) and
// From/To mirror the first origin and final landing square. A move is always
// a complete unit: partial capture sequences never appear in legal move
// lists.
type Move struct {
	From  Square
	To    Square
	Steps []CaptureStep
}

// QuietMove builds a non-capturing move.
func QuietMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// CaptureMove builds a capture sequence from its steps. The steps slice is
// owned by the returned move.
func CaptureMove(steps []CaptureStep) Move {
	if len(steps) == 0 {
		panic("board: capture move with no steps")
	}
	return Move{
		From:  steps[0].From,
		To:    steps[len(steps)-1].To,
		Steps: steps,
	}
}

func (m Move) IsCapture() bool { return len(m.Steps) > 0 }

// CapturedSquares lists the squares of the removed pieces in jump order.
func (m Move) CapturedSquares() []Square {
	if len(m.Steps) == 0 {
		return nil
	}
	squares := make([]Square, len(m.Steps))
	for i, st := range m.Steps {
		squares[i] = st.Captured
	}
	return squares
}

// Equal reports whether two moves describe the same action, including the
// full jump order for captures.
func (m Move) Equal(other Move) bool {
	if m.From != other.From || m.To != other.To || len(m.Steps) != len(other.Steps) {
		return false
	}
	for i := range m.Steps {
		if m.Steps[i] != other.Steps[i] {
			return false
		}
	}
	return true
}
