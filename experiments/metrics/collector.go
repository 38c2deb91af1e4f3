package metrics

import "time"

// SearchMetric captures the diagnostics of one findBestMove call.
type SearchMetric struct {
	Duration time.Duration
	Depth    int
	Nodes    int
	Score    float64
}

// MoveMetric ties a search metric to its place in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	Outcome    string
	TotalMoves int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// Collector gathers per-search diagnostics. The searcher drives Start and
// Complete; callers read the most recent metric back through Last. Searches
// that do not need instrumentation get the dummy implementation.
type Collector interface {
	Start()
	Complete(depth, nodes int, score float64) SearchMetric
	Last() SearchMetric
}

type collector struct {
	startTime time.Time
	last      SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
}

func (c *collector) Complete(depth, nodes int, score float64) SearchMetric {
	c.last = SearchMetric{
		Duration: time.Since(c.startTime),
		Depth:    depth,
		Nodes:    nodes,
		Score:    score,
	}
	return c.last
}

func (c *collector) Last() SearchMetric {
	return c.last
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start() {}

func (dummyCollector) Complete(depth, nodes int, score float64) SearchMetric {
	return SearchMetric{}
}

func (dummyCollector) Last() SearchMetric { return SearchMetric{} }
