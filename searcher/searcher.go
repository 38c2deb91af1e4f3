// Package searcher selects moves with iterative-deepening negamax and
// alpha-beta pruning over the game package's move generator. One Searcher
// owns its transposition and killer tables; concurrent searches need
// independent instances.
package searcher

import (
	"time"

	"draughts/board"
	"draughts/experiments/metrics"
	"draughts/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// SearchResult reports the chosen move plus diagnostics. Produced fresh per
// call, never persisted.
type SearchResult struct {
	Move           board.Move
	Score          float64
	NodesEvaluated int
	DepthReached   int
}

type Option func(*Searcher)

// WithRand fixes the noise/blunder random source, for reproducible play.
func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithMetrics attaches a diagnostics collector.
func WithMetrics(c metrics.Collector) Option {
	return func(s *Searcher) {
		if c != nil {
			s.metrics = c
		}
	}
}

type Searcher struct {
	profile Profile
	tt      *transpositionTable
	killers *killerTable
	rng     *rand.Rand
	metrics metrics.Collector
}

// New builds a searcher for one difficulty profile. The profile is validated
// here, before any search work; a malformed profile never reaches recursion.
func New(profile Profile, options ...Option) (*Searcher, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	s := &Searcher{
		profile: profile,
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: metrics.NewDummyCollector(),
	}
	if profile.UseTranspositionTable {
		s.tt = newTranspositionTable(defaultTableBits)
	}
	if profile.UseKillerMoves {
		s.killers = &killerTable{}
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

// FindBestMove searches gs and returns the chosen move with diagnostics, or
// nil when the side to move has no legal move (the caller's win check covers
// that case). Iterative deepening runs from depth 1 to the profile's
// MaxDepth; the time budget is checked between iterations only, and the
// result is that of the deepest completed iteration.
func (s *Searcher) FindBestMove(gs *game.GameState) *SearchResult {
	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return nil
	}

	// Tables are owned by this instance and cleared per invocation.
	if s.tt != nil {
		s.tt.reset()
	}
	if s.killers != nil {
		s.killers.reset()
	}

	ctx := &searchContext{
		pos:     gs.Position,
		hash:    game.Hash(&gs.Position),
		draw:    newDrawTracker(gs.Draw),
		profile: s.profile,
		tt:      s.tt,
		killers: s.killers,
		rng:     s.rng,
	}

	s.metrics.Start()
	start := time.Now()

	var scores []float64
	bestIdx := 0
	result := SearchResult{}
	for depth := 1; depth <= s.profile.MaxDepth; depth++ {
		if depth > 1 && s.profile.TimeLimit > 0 && time.Since(start) >= s.profile.TimeLimit {
			break
		}
		scores = ctx.searchRoot(moves, depth)
		bestIdx = 0
		for i, sc := range scores {
			if sc > scores[bestIdx] {
				bestIdx = i
			}
		}
		result = SearchResult{
			Move:           moves[bestIdx],
			Score:          scores[bestIdx],
			NodesEvaluated: ctx.nodes,
			DepthReached:   depth,
		}
		log.Debug().
			Int("depth", depth).
			Int("nodes", ctx.nodes).
			Float64("score", result.Score).
			Str("move", result.Move.String()).
			Msg("search iteration complete")
	}

	if idx, ok := s.blunderIndex(scores, bestIdx); ok {
		result.Move = moves[idx]
		result.Score = scores[idx]
	}

	s.metrics.Complete(result.DepthReached, result.NodesEvaluated, result.Score)
	return &result
}

// blunderIndex implements the root weakening step: with the profile's
// probability, pick uniformly among moves scoring within BlunderMargin of
// the best, preferring alternatives over the best move itself whenever one
// qualifies.
func (s *Searcher) blunderIndex(scores []float64, bestIdx int) (int, bool) {
	if s.profile.BlunderProbability <= 0 || len(scores) < 2 {
		return 0, false
	}
	if s.rng.Float64() >= s.profile.BlunderProbability {
		return 0, false
	}
	var candidates []int
	for i, sc := range scores {
		if i != bestIdx && sc >= scores[bestIdx]-s.profile.BlunderMargin {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}
