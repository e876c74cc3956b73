package engine

import "connectfour/experiments/metrics"

// MaxMoves caps a game's length. A legal game ends within 42 plies; the cap
// guards against driver bugs only.
const MaxMoves = 42

type Engine interface {
	// Run plays a game to its terminal position and reports the winner's
	// name ("" on a draw) with the game's metrics.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
