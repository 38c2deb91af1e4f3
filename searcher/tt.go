package searcher

import "draughts/game"

type boundFlag uint8

const (
	flagExact boundFlag = iota
	flagLower
	flagUpper
)

type ttEntry struct {
	key   game.PositionHash
	score float64
	depth int16
	move  int16 // index into the node's deterministic move list
	flag  boundFlag
	used  bool
}

const defaultTableBits = 20

// transpositionTable is a fixed-size open-addressed array indexed by
// hash & mask with a replace-always policy: one probe, one store, no
// allocation per node. Entries are scoped to a single search call.
type transpositionTable struct {
	mask    uint32
	entries []ttEntry
}

func newTranspositionTable(bits uint) *transpositionTable {
	size := uint32(1) << bits
	return &transpositionTable{
		mask:    size - 1,
		entries: make([]ttEntry, size),
	}
}

func (t *transpositionTable) probe(key game.PositionHash) (ttEntry, bool) {
	e := t.entries[uint32(key)&t.mask]
	if !e.used || e.key != key {
		return ttEntry{}, false
	}
	return e, true
}

func (t *transpositionTable) store(key game.PositionHash, depth int, flag boundFlag, move int, score float64) {
	t.entries[uint32(key)&t.mask] = ttEntry{
		key:   key,
		score: score,
		depth: int16(depth),
		move:  int16(move),
		flag:  flag,
		used:  true,
	}
}

func (t *transpositionTable) reset() {
	clear(t.entries)
}
