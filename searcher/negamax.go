package searcher

import (
	"fmt"

	"connectfour/experiments/metrics"
	"connectfour/game"
)

const (
	// winScore dominates any heuristic value; remaining depth is added so
	// faster wins and slower losses order correctly.
	winScore = 10000
	infinity = 1 << 20
)

// Negamax is a fixed-depth negamax search with alpha-beta pruning and a
// pluggable leaf evaluator. It is fully deterministic: identical board, side,
// depth, and evaluator always produce the same move.
type Negamax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

type Option func(*Negamax)

// WithEvaluate plugs in a static evaluator for depth-exhausted leaves.
func WithEvaluate(evaluate game.Evaluate) Option {
	return func(n *Negamax) {
		if evaluate != nil {
			n.evaluate = evaluate
		}
	}
}

// WithMetrics enables node and prune counting.
func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = metrics.NewCollector()
	}
}

func NewNegamax(depth int, options ...Option) *Negamax {
	if depth < 1 {
		panic("Must specify a search depth of at least 1")
	}
	n := &Negamax{ // Default values
		depth:    depth,
		evaluate: game.EvaluateNothing,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *Negamax) Depth() int {
	return n.depth
}

// FindBestMove scores every legal root move and returns the first column
// with the maximal score. Move order is ascending, so ties are deterministic.
func (n *Negamax) FindBestMove(b game.Board, side game.Side) (int, metrics.SearchMetric, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return 0, metrics.SearchMetric{}, ErrNoMoves
	}

	n.metrics.Start(n.depth, 0)

	best := -1
	bestScore := -infinity - 1
	for _, move := range moves {
		child, _, err := b.Apply(move, side)
		if err != nil {
			return 0, metrics.SearchMetric{}, fmt.Errorf("apply legal move %d: %w", move, err)
		}
		score := -n.search(child, side.Opponent(), n.depth-1, -infinity, infinity, side)
		if score > bestScore {
			bestScore = score
			best = move
		}
	}

	return best, n.metrics.Complete(), nil
}

// search returns the position's value from toMove's point of view. Terminal
// positions are scored immediately; at depth zero the evaluator's
// perspective-relative score is negated when it is not toMove's turn.
func (n *Negamax) search(b game.Board, toMove game.Side, depth, alpha, beta int, perspective game.Side) int {
	n.metrics.AddNode()

	switch outcome := b.Outcome(); outcome {
	case game.WinnerOf(toMove):
		return winScore + depth
	case game.WinnerOf(toMove.Opponent()):
		return -winScore - depth
	case game.Draw:
		return 0
	}

	if depth == 0 {
		if toMove == perspective {
			return n.evaluate(b, perspective)
		}
		return -n.evaluate(b, perspective)
	}

	best := -infinity
	for _, move := range b.LegalMoves() {
		child, _, err := b.Apply(move, toMove)
		if err != nil {
			panic(fmt.Sprintf("legal move %d failed to apply: %v", move, err))
		}
		score := -n.search(child, toMove.Opponent(), depth-1, -beta, -alpha, perspective)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			n.metrics.AddPrune()
			break
		}
	}
	return best
}
