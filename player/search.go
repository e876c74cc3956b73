package player

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
)

// Search wraps any Searcher as a Player and keeps the metrics of its most
// recent move. Near-duplicate strategy variants (plain negamax, heuristic
// negamax, Monte Carlo) are all just this type with a different searcher.
type Search struct {
	name     string
	searcher searcher.Searcher
	last     metrics.SearchMetric
}

func NewSearch(name string, s searcher.Searcher) *Search {
	return &Search{name: name, searcher: s}
}

// NewNegamax builds a negamax player with the given depth and evaluator.
func NewNegamax(name string, depth int, evaluate game.Evaluate) *Search {
	return NewSearch(name, searcher.NewNegamax(depth,
		searcher.WithEvaluate(evaluate),
		searcher.WithMetrics()))
}

// NewMonteCarlo builds a flat Monte Carlo player with a total rollout budget.
func NewMonteCarlo(name string, budget int) *Search {
	return NewSearch(name, searcher.NewMonteCarlo(budget,
		searcher.WithRolloutMetrics()))
}

func (p *Search) Name() string {
	return p.name
}

func (p *Search) ChooseMove(b game.Board, side game.Side) (int, error) {
	move, metric, err := p.searcher.FindBestMove(b, side)
	if err != nil {
		return 0, err
	}
	p.last = metric
	return move, nil
}

func (p *Search) SearchMetrics() metrics.SearchMetric {
	return p.last
}

// Phased delegates to an opening player while the ply count is below the
// switch threshold and to an endgame player afterward. The threshold is
// fixed; there is no feedback-driven adjustment.
type Phased struct {
	name      string
	opening   Player
	endgame   Player
	switchPly int
	last      Player
}

// DefaultSwitchPly is the ply at which the phased player hands over from its
// opening strategy to its endgame strategy.
const DefaultSwitchPly = 14

func NewPhased(name string, opening, endgame Player, switchPly int) *Phased {
	return &Phased{
		name:      name,
		opening:   opening,
		endgame:   endgame,
		switchPly: switchPly,
	}
}

func (p *Phased) Name() string {
	return p.name
}

func (p *Phased) delegate(b game.Board) Player {
	if b.Ply() < p.switchPly {
		return p.opening
	}
	return p.endgame
}

func (p *Phased) ChooseMove(b game.Board, side game.Side) (int, error) {
	p.last = p.delegate(b)
	return p.last.ChooseMove(b, side)
}

// SearchMetrics reports the metrics of whichever delegate moved last.
func (p *Phased) SearchMetrics() metrics.SearchMetric {
	if reporter, ok := p.last.(MetricsReporter); ok {
		return reporter.SearchMetrics()
	}
	return metrics.SearchMetric{}
}
