package engine

import (
	"testing"

	"draughts/board"
	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/searcher"

	"github.com/stretchr/testify/require"
)

// firstMovePlayer always plays the first legal move. It keeps game-loop tests
// independent of search behavior.
type firstMovePlayer struct {
	label string
}

func (p firstMovePlayer) Name() string { return p.label }

func (p firstMovePlayer) ChooseMove(gs *game.GameState) (board.Move, metrics.SearchMetric, error) {
	moves := gs.LegalMoves()
	return moves[0], metrics.SearchMetric{}, nil
}

func twoKings() *game.GameState {
	var pos board.Position
	pos.ToMove = board.White
	pos.Set(45, board.WhiteKing)
	pos.Set(3, board.BlackKing)
	return game.NewGameFrom(pos)
}

func TestRunPlaysGameToCompletion(t *testing.T) {
	// First-legal-move play from this position is a fully determined seven
	// half-move game: the kings walk 45-40, 3-8, 40-34, 8-2, 34-29, 2-7 and
	// then the black king on 7 sits on the white king's northwest ray with
	// square 1 open behind it, forcing 29x1.
	e := &Engine{
		State:   twoKings(),
		Players: [2]Player{firstMovePlayer{"white"}, firstMovePlayer{"black"}},
	}
	phase, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, game.WhiteWins, phase)
	require.Equal(t, "White wins", e.Outcome())

	require.Len(t, e.State.MoveHistory, 7)
	require.Len(t, e.Moves, 7)
	for i, mm := range e.Moves {
		require.Equal(t, i+1, mm.Step)
		if i%2 == 0 {
			require.Equal(t, "white", mm.Player)
		} else {
			require.Equal(t, "black", mm.Player)
		}
	}
	require.Equal(t, "29x1", e.State.MoveHistory[6].String())
}

func TestRunWithSearchPlayersRecordsDiagnostics(t *testing.T) {
	// A bare two-king game cannot outlast the king-only counter, so the loop
	// is guaranteed to terminate long before the move cap.
	profile := searcher.Profile{MaxDepth: 2, EvalFeatureScale: 0.5}
	white, err := NewSearchPlayer("shallow-white", profile)
	require.NoError(t, err)
	black, err := NewSearchPlayer("shallow-black", profile)
	require.NoError(t, err)

	e := &Engine{State: twoKings(), Players: [2]Player{white, black}}
	phase, err := e.Run()
	require.NoError(t, err)
	require.NotEqual(t, game.InProgress, phase)
	require.NotEmpty(t, e.Moves)

	for _, mm := range e.Moves {
		require.Equal(t, 2, mm.Depth)
		require.Greater(t, mm.Nodes, 0)
	}
}

func TestRunReturnsImmediatelyOnFinishedGame(t *testing.T) {
	gs := twoKings()
	shuttle := []string{"45-40", "3-9", "40-45", "9-3"}
	for i := 0; i < 8; i++ {
		m, err := gs.MoveFromNotation(shuttle[i%4])
		require.NoError(t, err)
		gs, err = gs.Apply(m)
		require.NoError(t, err)
	}
	require.Equal(t, game.Drawn, gs.Phase)

	e := &Engine{
		State:   gs,
		Players: [2]Player{firstMovePlayer{"w"}, firstMovePlayer{"b"}},
	}
	phase, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, game.Drawn, phase)
	require.Empty(t, e.Moves)
	require.Equal(t, "draw (threefold repetition)", e.Outcome())
}

func TestSearchPlayerReportsErrorWithoutMoves(t *testing.T) {
	var pos board.Position
	pos.ToMove = board.Black
	pos.Set(46, board.BlackMan)
	pos.Set(25, board.WhiteMan)

	p, err := NewSearchPlayer("stuck", searcher.Profile{MaxDepth: 2})
	require.NoError(t, err)
	_, _, err = p.ChooseMove(game.NewGameFrom(pos))
	require.Error(t, err)
}

func TestPlayerIndex(t *testing.T) {
	require.Equal(t, 0, playerIndex(board.White))
	require.Equal(t, 1, playerIndex(board.Black))
}
