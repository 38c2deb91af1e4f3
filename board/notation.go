package board

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the move in standard notation: "32-28" for a quiet move,
// "28x39x50" for a capture listing every landing square.
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(m.From)))
	if len(m.Steps) == 0 {
		sb.WriteString("-")
		sb.WriteString(strconv.Itoa(int(m.To)))
		return sb.String()
	}
	for _, st := range m.Steps {
		sb.WriteString("x")
		sb.WriteString(strconv.Itoa(int(st.To)))
	}
	return sb.String()
}

// Notation is a parsed move string. It names only the origin and landing
// squares, so it must be resolved against a position's legal move list to
// recover the captured pieces.
type Notation struct {
	From     Square
	Landings []Square
	Capture  bool
}

// ParseNotation parses "A-B" or "AxBxC..." (the "×" glyph is accepted as a
// separator too). Malformed input yields a descriptive error, never a panic.
func ParseNotation(s string) (Notation, error) {
	normalized := strings.ReplaceAll(s, "×", "x")
	var sep string
	switch {
	case strings.Contains(normalized, "x"):
		sep = "x"
	case strings.Contains(normalized, "-"):
		sep = "-"
	default:
		return Notation{}, fmt.Errorf("notation %q: missing '-' or 'x' separator", s)
	}

	tokens := strings.Split(normalized, sep)
	if sep == "-" && len(tokens) != 2 {
		return Notation{}, fmt.Errorf("notation %q: a quiet move needs exactly two squares", s)
	}
	squares := make([]Square, len(tokens))
	for i, token := range tokens {
		n, err := strconv.Atoi(token)
		if err != nil {
			return Notation{}, fmt.Errorf("notation %q: square %q is not a number", s, token)
		}
		if !Valid(Square(n)) {
			return Notation{}, fmt.Errorf("notation %q: square %d is out of range 1-%d", s, n, NumSquares)
		}
		squares[i] = Square(n)
	}

	return Notation{
		From:     squares[0],
		Landings: squares[1:],
		Capture:  sep == "x",
	}, nil
}

// Matches reports whether m realizes the parsed notation: same origin and,
// for captures, the same landing square after every jump.
func (n Notation) Matches(m Move) bool {
	if n.From != m.From || n.Capture != m.IsCapture() {
		return false
	}
	if !n.Capture {
		return len(n.Landings) == 1 && n.Landings[0] == m.To
	}
	if len(n.Landings) != len(m.Steps) {
		return false
	}
	for i, st := range m.Steps {
		if n.Landings[i] != st.To {
			return false
		}
	}
	return true
}
