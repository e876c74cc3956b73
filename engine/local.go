package engine

import (
	"time"

	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/player"

	"github.com/rs/zerolog/log"
)

// Local drives one game between two players in-process. Each game owns a
// fresh board chain, so nothing here needs locking.
type Local struct {
	board   game.Board
	toMove  game.Side
	players map[game.Side]player.Player
	history []int
}

// NewLocal starts a game from the empty board with x moving first.
func NewLocal(x, o player.Player) *Local {
	return NewLocalFrom(game.Empty(), game.SideX, x, o)
}

// NewLocalFrom starts from a replayed position, e.g. a fixed opening.
func NewLocalFrom(board game.Board, toMove game.Side, x, o player.Player) *Local {
	return &Local{
		board:  board,
		toMove: toMove,
		players: map[game.Side]player.Player{
			game.SideX: x,
			game.SideO: o,
		},
	}
}

// Board returns the current position.
func (e *Local) Board() game.Board {
	return e.board
}

// History returns the 0-based columns played so far, in order.
func (e *Local) History() []int {
	return e.history
}

// Run loops until the game is terminal. A player that errors or picks an
// illegal column forfeits immediately and the opposing side is awarded the
// win; the board itself never accepts the illegal move.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.players[e.toMove].Name(),
		StartTime:      start,
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().
		Str("x", e.players[game.SideX].Name()).
		Str("o", e.players[game.SideO].Name()).
		Msg("game started")

	outcome := e.board.Outcome()
	for outcome == game.Ongoing && len(e.history) < MaxMoves {
		current := e.players[e.toMove]

		col, err := current.ChooseMove(e.board, e.toMove)
		if err == nil {
			var applyErr error
			e.board, _, applyErr = e.board.Apply(col, e.toMove)
			err = applyErr
		}
		if err != nil {
			log.Warn().
				Str("player", current.Name()).
				Int("column", col).
				Err(err).
				Msg("illegal move, forfeiting")
			outcome = game.WinnerOf(e.toMove.Opponent())
			gameMetric.Forfeited = true
			break
		}

		e.history = append(e.history, col)
		if reporter, ok := current.(player.MetricsReporter); ok {
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         len(e.history),
				Player:       current.Name(),
				SearchMetric: reporter.SearchMetrics(),
			})
		}

		log.Debug().
			Str("player", current.Name()).
			Int("column", col).
			Int("ply", e.board.Ply()).
			Msg("move played")

		e.toMove = e.toMove.Opponent()
		outcome = e.board.Outcome()
	}

	winner := ""
	switch outcome {
	case game.WinX:
		winner = e.players[game.SideX].Name()
	case game.WinO:
		winner = e.players[game.SideO].Name()
	}

	gameMetric.Winner = winner
	gameMetric.Outcome = outcome.String()
	gameMetric.TotalMoves = len(e.history)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(start)

	log.Info().
		Str("outcome", outcome.String()).
		Str("winner", winner).
		Int("moves", len(e.history)).
		Msg("game over")

	return winner, gameMetric, moveMetrics
}
