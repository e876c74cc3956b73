package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes the work of a single move search. Depth is set for
// negamax searches, Budget for Monte Carlo ones.
type SearchMetric struct {
	Depth    int
	Budget   int
	Duration time.Duration
	Nodes    int
	Prunes   int
	Rollouts int
}

// MoveMetric ties a search to its position in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes a completed game.
type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw
	Outcome        string
	TotalMoves     int
	Forfeited      bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// Collector accumulates search counters. Counters are atomic so root-level
// parallel searches can share one collector.
type Collector interface {
	Start(depth, budget int)
	AddNode()
	AddPrune()
	AddRollout()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	budget    int
	startTime time.Time
	nodes     atomic.Int64
	prunes    atomic.Int64
	rollouts  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth, budget int) {
	c.startTime = time.Now()
	c.depth = depth
	c.budget = budget
	c.nodes.Store(0)
	c.prunes.Store(0)
	c.rollouts.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddPrune() {
	c.prunes.Add(1)
}

func (c *collector) AddRollout() {
	c.rollouts.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Budget:   c.budget,
		Duration: time.Since(c.startTime),
		Nodes:    int(c.nodes.Load()),
		Prunes:   int(c.prunes.Load()),
		Rollouts: int(c.rollouts.Load()),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for searches that do not
// record metrics.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start(depth, budget int) {}
func (d *dummyCollector) AddNode()                {}
func (d *dummyCollector) AddPrune()               {}
func (d *dummyCollector) AddRollout()             {}
func (d *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
