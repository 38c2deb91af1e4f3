// Package engine runs complete games between two move providers, typically
// search-backed players at different difficulty tiers. It is the library's
// harness around the game-state and search boundaries; no transport or UI
// concerns live here.
package engine

import (
	"fmt"

	"draughts/board"
	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/searcher"

	"github.com/rs/zerolog/log"
)

// MaxMoves caps a single game so stalled match-ups cannot loop forever. The
// draw rules end well-played games far earlier.
const MaxMoves = 300

// Player supplies one move for the current state, plus search diagnostics
// (zero-valued for players that do not search).
type Player interface {
	Name() string
	ChooseMove(gs *game.GameState) (board.Move, metrics.SearchMetric, error)
}

// SearchPlayer answers with the searcher's chosen move.
type SearchPlayer struct {
	Label    string
	Searcher *searcher.Searcher

	collector metrics.Collector
}

func NewSearchPlayer(label string, profile searcher.Profile) (*SearchPlayer, error) {
	collector := metrics.NewCollector()
	s, err := searcher.New(profile, searcher.WithMetrics(collector))
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", label, err)
	}
	return &SearchPlayer{Label: label, Searcher: s, collector: collector}, nil
}

func (p *SearchPlayer) Name() string { return p.Label }

func (p *SearchPlayer) ChooseMove(gs *game.GameState) (board.Move, metrics.SearchMetric, error) {
	result := p.Searcher.FindBestMove(gs)
	if result == nil {
		return board.Move{}, metrics.SearchMetric{}, fmt.Errorf("player %s has no legal move", p.Label)
	}
	return result.Move, p.collector.Last(), nil
}

// Engine drives one game loop. White is Players[0], Black Players[1].
type Engine struct {
	State   *game.GameState
	Players [2]Player
	Moves   []metrics.MoveMetric
}

func NewLocal(white, black Player) *Engine {
	return &Engine{
		State:   game.NewGame(),
		Players: [2]Player{white, black},
	}
}

// Run plays until the game reaches a terminal phase or the move cap, and
// returns the final phase. Per-move diagnostics accumulate in Moves.
func (e *Engine) Run() (game.Phase, error) {
	step := 1
	for e.State.Phase == game.InProgress && step <= MaxMoves {
		side := e.State.CurrentPlayer()
		player := e.Players[playerIndex(side)]

		move, metric, err := player.ChooseMove(e.State)
		if err != nil {
			return e.State.Phase, fmt.Errorf("move %d: %w", step, err)
		}

		next, err := e.State.Apply(move)
		if err != nil {
			return e.State.Phase, fmt.Errorf("move %d: applying %s: %w", step, move, err)
		}
		e.State = next

		e.Moves = append(e.Moves, metrics.MoveMetric{
			Step:         step,
			Player:       player.Name(),
			SearchMetric: metric,
		})

		log.Debug().
			Int("step", step).
			Str("side", side.String()).
			Str("player", player.Name()).
			Str("move", move.String()).
			Msg("move applied")
		step++
	}

	log.Info().
		Str("outcome", e.Outcome()).
		Int("moves", len(e.State.MoveHistory)).
		Msg("game finished")
	return e.State.Phase, nil
}

// Outcome renders the final phase, including the draw reason when drawn.
func (e *Engine) Outcome() string {
	if e.State.Phase == game.Drawn {
		return fmt.Sprintf("draw (%s)", e.State.DrawReason)
	}
	return e.State.Phase.String()
}

func playerIndex(c board.Color) int {
	if c == board.White {
		return 0
	}
	return 1
}
