package searcher

import (
	"fmt"
	"time"

	"connectfour/experiments/metrics"
	"connectfour/game"

	"golang.org/x/exp/rand"
)

// MonteCarlo is a flat Monte Carlo move selector: a fixed simulation budget
// is split evenly across the legal moves (remainder discarded), every rollout
// plays uniformly-random moves to game completion, and the move with the best
// empirical win ratio is chosen. No tree, no UCB, no statistics reuse.
type MonteCarlo struct {
	budget  int
	rng     *rand.Rand
	metrics metrics.Collector
}

type RolloutOption func(*MonteCarlo)

// WithSeed fixes the rollout RNG seed for reproducible runs.
func WithSeed(seed uint64) RolloutOption {
	return func(m *MonteCarlo) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRolloutMetrics enables rollout counting.
func WithRolloutMetrics() RolloutOption {
	return func(m *MonteCarlo) {
		m.metrics = metrics.NewCollector()
	}
}

// NewMonteCarlo creates a selector with a total rollout budget. Each selector
// owns its RNG, so concurrent selectors in one process never interfere.
func NewMonteCarlo(budget int, options ...RolloutOption) *MonteCarlo {
	if budget < 1 {
		panic("Must specify a positive simulation budget")
	}
	m := &MonteCarlo{ // Default values
		budget:  budget,
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MonteCarlo) Budget() int {
	return m.budget
}

// FindBestMove allocates floor(budget/k) rollouts to each of the k legal
// moves and returns the first move with the greatest win ratio. A move with
// zero rollouts (k > budget) scores zero.
func (m *MonteCarlo) FindBestMove(b game.Board, side game.Side) (int, metrics.SearchMetric, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return 0, metrics.SearchMetric{}, ErrNoMoves
	}

	m.metrics.Start(0, m.budget)

	perMove := m.budget / len(moves)
	best := moves[0]
	bestRatio := -1.0
	for _, move := range moves {
		child, _, err := b.Apply(move, side)
		if err != nil {
			return 0, metrics.SearchMetric{}, fmt.Errorf("apply legal move %d: %w", move, err)
		}

		wins := 0
		for i := 0; i < perMove; i++ {
			if m.rollout(child, side.Opponent(), side) {
				wins++
			}
		}

		ratio := 0.0
		if perMove > 0 {
			ratio = float64(wins) / float64(perMove)
		}
		if ratio > bestRatio {
			bestRatio = ratio
			best = move
		}
	}

	return best, m.metrics.Complete(), nil
}

// rollout plays random legal moves until the game ends and reports whether
// the terminal outcome favors the given side. Draws count as non-wins.
func (m *MonteCarlo) rollout(b game.Board, toMove, side game.Side) bool {
	m.metrics.AddRollout()
	for {
		outcome := b.Outcome()
		if outcome != game.Ongoing {
			return outcome == game.WinnerOf(side)
		}
		moves := b.LegalMoves()
		move := moves[m.rng.Intn(len(moves))] // Random rollout policy
		next, _, err := b.Apply(move, toMove)
		if err != nil {
			panic(fmt.Sprintf("legal move %d failed to apply: %v", move, err))
		}
		b = next
		toMove = toMove.Opponent()
	}
}
