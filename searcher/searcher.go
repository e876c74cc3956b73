package searcher

import (
	"errors"

	"connectfour/experiments/metrics"
	"connectfour/game"
)

// Searcher finds a move for the side to play, reporting how much work the
// search did. A searcher must only be invoked on a non-terminal board.
type Searcher interface {
	FindBestMove(b game.Board, side game.Side) (int, metrics.SearchMetric, error)
}

// ErrNoMoves is returned when a searcher is asked to move on a board with no
// legal moves. That is a caller precondition violation, not a draw result.
var ErrNoMoves = errors.New("no legal moves: board is terminal")
