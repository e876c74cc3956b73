// Package player defines the strategy contract the game loop drives and its
// implementations: human, random, search-backed, and the phase-switching
// composite.
package player

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
)

// Player is any strategy that can pick a column for the side to move. A
// returned error means the player cannot produce a move; the driver treats
// that, and any illegal column, as the player's forfeiture.
type Player interface {
	Name() string
	ChooseMove(b game.Board, side game.Side) (int, error)
}

// MetricsReporter is implemented by players whose last move came from an
// instrumented search.
type MetricsReporter interface {
	SearchMetrics() metrics.SearchMetric
}
