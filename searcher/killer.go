package searcher

import "draughts/board"

const maxPly = 64

// killerTable remembers, per ply, the last two non-capturing moves that
// caused a beta cutoff, so sibling nodes try them early.
type killerTable struct {
	moves [maxPly][2]board.Move
	set   [maxPly][2]bool
}

func (k *killerTable) insert(ply int, m board.Move) {
	if ply >= maxPly {
		return
	}
	if k.set[ply][0] && k.moves[ply][0].Equal(m) {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.set[ply][1] = k.set[ply][0]
	k.moves[ply][0] = m
	k.set[ply][0] = true
}

func (k *killerTable) isKiller(ply int, m board.Move) bool {
	if ply >= maxPly {
		return false
	}
	return (k.set[ply][0] && k.moves[ply][0].Equal(m)) ||
		(k.set[ply][1] && k.moves[ply][1].Equal(m))
}

func (k *killerTable) reset() {
	*k = killerTable{}
}
