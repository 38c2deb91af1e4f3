package game

import (
	"fmt"

	"draughts/board"
)

// DrawReason names which of the three FMJD draw rules ended the game.
type DrawReason int

const (
	NoDraw DrawReason = iota
	ThreefoldRepetition
	TwentyFiveMoveRule
	SixteenMoveRule
)

func (r DrawReason) String() string {
	switch r {
	case NoDraw:
		return "none"
	case ThreefoldRepetition:
		return "threefold repetition"
	case TwentyFiveMoveRule:
		return "25-move rule"
	case SixteenMoveRule:
		return "16-move rule"
	}
	return fmt.Sprintf("DrawReason(%d)", int(r))
}

// Draw thresholds, in half-moves.
const (
	KingOnlyDrawHalfMoves = 50 // 25 moves per side with only kings on the board
	EndgameDrawHalfMoves  = 32 // 16 moves per side in a qualifying endgame
)

// Material is the piece census of a position.
type Material struct {
	WhiteMen   int
	WhiteKings int
	BlackMen   int
	BlackKings int
}

func CountMaterial(pos *board.Position) Material {
	var m Material
	for sq := board.Square(1); sq <= board.NumSquares; sq++ {
		switch pos.At(sq) {
		case board.WhiteMan:
			m.WhiteMen++
		case board.WhiteKing:
			m.WhiteKings++
		case board.BlackMan:
			m.BlackMen++
		case board.BlackKing:
			m.BlackKings++
		}
	}
	return m
}

func (m Material) total() int {
	return m.WhiteMen + m.WhiteKings + m.BlackMen + m.BlackKings
}

// qualifiesEndgame reports whether the material exactly matches one of the
// three configurations the 16-move rule recognizes, in either color
// orientation: 3K v 1K, 2K+1M v 1K, 1K+2M v 1K. Exactly these three; rule
// variants with more configurations are not implemented.
func (m Material) qualifiesEndgame() bool {
	return endgameSide(m.WhiteKings, m.WhiteMen, m.BlackKings, m.BlackMen) ||
		endgameSide(m.BlackKings, m.BlackMen, m.WhiteKings, m.WhiteMen)
}

func endgameSide(strongKings, strongMen, weakKings, weakMen int) bool {
	if weakKings != 1 || weakMen != 0 {
		return false
	}
	switch {
	case strongKings == 3 && strongMen == 0:
		return true
	case strongKings == 2 && strongMen == 1:
		return true
	case strongKings == 1 && strongMen == 2:
		return true
	}
	return false
}

// DrawCounters holds the two move counters of the draw rules. Advance is a
// pure transition so the searcher can stack transient copies during
// lookahead without touching the game's own state.
type DrawCounters struct {
	KingOnlyMoves int
	EndgameMoves  int
	EndgameActive bool
	EndgameSig    Material
}

// Advance applies one half-move's counter transitions given the material of
// the position just reached.
func (c DrawCounters) Advance(mat Material) DrawCounters {
	if mat.WhiteMen == 0 && mat.BlackMen == 0 {
		c.KingOnlyMoves++
	} else {
		c.KingOnlyMoves = 0
	}

	if mat.qualifiesEndgame() {
		// Entering the rule, or switching to a different qualifying
		// configuration, restarts the count.
		if !c.EndgameActive || c.EndgameSig != mat {
			c.EndgameActive = true
			c.EndgameSig = mat
			c.EndgameMoves = 0
		}
		c.EndgameMoves++
	} else {
		c.EndgameActive = false
		c.EndgameMoves = 0
		c.EndgameSig = Material{}
	}
	return c
}

// Drawn reports whether either counter has reached its threshold.
func (c DrawCounters) Drawn() bool {
	return c.KingOnlyMoves >= KingOnlyDrawHalfMoves ||
		(c.EndgameActive && c.EndgameMoves >= EndgameDrawHalfMoves)
}

// DrawRuleState is the per-game draw bookkeeping. History grows by one hash
// per applied half-move and includes the starting position. Only the
// game-state engine mutates it; the searcher works on transient copies.
type DrawRuleState struct {
	History  []PositionHash
	Counters DrawCounters
}

func (d DrawRuleState) clone() DrawRuleState {
	d.History = append([]PositionHash(nil), d.History...)
	return d
}

// advance records the post-move position and reports the first draw rule it
// trips, checked in fixed order: repetition, then the king-only counter,
// then the endgame counter.
func (d *DrawRuleState) advance(pos *board.Position) DrawReason {
	h := Hash(pos)
	d.History = append(d.History, h)

	occurrences := 0
	for _, prev := range d.History {
		if prev == h {
			occurrences++
		}
	}
	if occurrences >= 3 {
		return ThreefoldRepetition
	}

	d.Counters = d.Counters.Advance(CountMaterial(pos))
	if d.Counters.KingOnlyMoves >= KingOnlyDrawHalfMoves {
		return TwentyFiveMoveRule
	}
	if d.Counters.EndgameActive && d.Counters.EndgameMoves >= EndgameDrawHalfMoves {
		return SixteenMoveRule
	}
	return NoDraw
}
