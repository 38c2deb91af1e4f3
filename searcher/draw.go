package searcher

import "draughts/game"

// drawTracker is the searcher's transient view of the draw rules: the game's
// repetition history stays frozen in base, while the current root-to-node
// path and counter stack move with make/unmake. The game's own DrawRuleState
// is never touched by lookahead.
type drawTracker struct {
	base     map[game.PositionHash]int
	path     map[game.PositionHash]int
	counters []game.DrawCounters
}

func newDrawTracker(d game.DrawRuleState) *drawTracker {
	base := make(map[game.PositionHash]int, len(d.History))
	for _, h := range d.History {
		base[h]++
	}
	return &drawTracker{
		base:     base,
		path:     make(map[game.PositionHash]int),
		counters: []game.DrawCounters{d.Counters},
	}
}

func (t *drawTracker) push(h game.PositionHash, mat game.Material) {
	t.path[h]++
	t.counters = append(t.counters, t.top().Advance(mat))
}

func (t *drawTracker) pop(h game.PositionHash) {
	if t.path[h] <= 1 {
		delete(t.path, h)
	} else {
		t.path[h]--
	}
	t.counters = t.counters[:len(t.counters)-1]
}

func (t *drawTracker) top() game.DrawCounters {
	return t.counters[len(t.counters)-1]
}

// drawn reports whether the node with hash h, already pushed, is a draw:
// a cycle along the current line, a threefold repetition against the game
// history, or a tripped move counter.
func (t *drawTracker) drawn(h game.PositionHash) bool {
	if t.path[h] >= 2 {
		return true
	}
	if t.base[h]+t.path[h] >= 3 {
		return true
	}
	return t.top().Drawn()
}
