package searcher

import (
	"testing"

	"draughts/board"
	"draughts/game"

	"github.com/stretchr/testify/require"
)

func TestTranspositionTableStoreAndProbe(t *testing.T) {
	tt := newTranspositionTable(4)

	_, ok := tt.probe(0x1234)
	require.False(t, ok)

	tt.store(0x1234, 5, flagExact, 2, 80)
	e, ok := tt.probe(0x1234)
	require.True(t, ok)
	require.Equal(t, int16(5), e.depth)
	require.Equal(t, flagExact, e.flag)
	require.Equal(t, int16(2), e.move)
	require.Equal(t, 80.0, e.score)
}

func TestTranspositionTableRejectsKeyCollision(t *testing.T) {
	// Two keys mapping to the same slot: the stored full key disambiguates,
	// and replace-always lets the newcomer win.
	tt := newTranspositionTable(4)
	a := game.PositionHash(0x10)
	b := game.PositionHash(0x10 + 1<<4)
	tt.store(a, 3, flagLower, 0, 10)

	_, ok := tt.probe(b)
	require.False(t, ok)

	tt.store(b, 2, flagUpper, 1, -5)
	_, ok = tt.probe(a)
	require.False(t, ok)
	e, ok := tt.probe(b)
	require.True(t, ok)
	require.Equal(t, flagUpper, e.flag)
}

func TestTranspositionTableReset(t *testing.T) {
	tt := newTranspositionTable(4)
	tt.store(0x42, 1, flagExact, 0, 1)
	tt.reset()
	_, ok := tt.probe(0x42)
	require.False(t, ok)
}

func TestKillerTableKeepsTwoMostRecent(t *testing.T) {
	k := &killerTable{}
	m1 := board.QuietMove(32, 28)
	m2 := board.QuietMove(31, 27)
	m3 := board.QuietMove(33, 29)

	require.False(t, k.isKiller(2, m1))
	k.insert(2, m1)
	k.insert(2, m2)
	require.True(t, k.isKiller(2, m1))
	require.True(t, k.isKiller(2, m2))

	// A third insert evicts the oldest.
	k.insert(2, m3)
	require.True(t, k.isKiller(2, m2))
	require.True(t, k.isKiller(2, m3))
	require.False(t, k.isKiller(2, m1))

	// Re-inserting the current first slot is a no-op, not a shift.
	k.insert(2, m3)
	require.True(t, k.isKiller(2, m2))

	require.False(t, k.isKiller(3, m2), "killers are per ply")

	k.reset()
	require.False(t, k.isKiller(2, m3))
}

func TestKillerTableIgnoresOutOfRangePly(t *testing.T) {
	k := &killerTable{}
	k.insert(maxPly, board.QuietMove(32, 28))
	require.False(t, k.isKiller(maxPly, board.QuietMove(32, 28)))
}
