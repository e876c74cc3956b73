package engine

import (
	"testing"

	"connectfour/game"
	"connectfour/player"

	"github.com/stretchr/testify/require"
)

// columnFiller always plays the same column, legal or not.
type columnFiller struct {
	name string
	col  int
}

func (p columnFiller) Name() string { return p.name }
func (p columnFiller) ChooseMove(game.Board, game.Side) (int, error) {
	return p.col, nil
}

func TestLocalRunsToTerminal(t *testing.T) {
	t.Run("deterministic players finish with a vertical win", func(t *testing.T) {
		// X stacks column 1, O stacks column 2; X gets four first.
		e := NewLocal(columnFiller{"stack-1", 0}, columnFiller{"stack-2", 1})

		winner, gameMetric, _ := e.Run()

		require.Equal(t, "stack-1", winner)
		require.Equal(t, game.WinX, e.Board().Outcome())
		require.Equal(t, 7, gameMetric.TotalMoves)
		require.False(t, gameMetric.Forfeited)
		require.Equal(t, []int{0, 1, 0, 1, 0, 1, 0}, e.History())
	})

	t.Run("search players finish a full game", func(t *testing.T) {
		x := player.NewNegamax("nega", 2, game.EvaluateThreats)
		o := player.NewSeededRandom("rand", 7)
		e := NewLocal(x, o)

		winner, gameMetric, moveMetrics := e.Run()

		require.NotEqual(t, game.Ongoing, e.Board().Outcome())
		require.LessOrEqual(t, gameMetric.TotalMoves, MaxMoves)
		require.Equal(t, gameMetric.Outcome, e.Board().Outcome().String())
		require.NotEmpty(t, moveMetrics, "the negamax player reports per-move metrics")
		if winner == "" {
			require.Equal(t, game.Draw, e.Board().Outcome())
		}
	})

	t.Run("starts from a replayed opening", func(t *testing.T) {
		// X already has three in column 1; stacking once more wins.
		opening, err := game.Replay("1 2 1 2 1 2", game.SideX)
		require.NoError(t, err)

		e := NewLocalFrom(opening, game.SideX, columnFiller{"stack-1", 0}, columnFiller{"stack-2", 1})
		winner, gameMetric, _ := e.Run()

		require.Equal(t, "stack-1", winner)
		require.Equal(t, 1, gameMetric.TotalMoves)
	})
}

func TestLocalForfeiture(t *testing.T) {
	t.Run("illegal column forfeits to the opponent", func(t *testing.T) {
		// X fills column 1 alone; its 4th stack wins before overflow, so
		// use an out-of-range column to force the violation immediately.
		e := NewLocal(columnFiller{"cheater", 9}, columnFiller{"honest", 1})

		winner, gameMetric, _ := e.Run()

		require.Equal(t, "honest", winner)
		require.True(t, gameMetric.Forfeited)
		require.Equal(t, game.WinO.String(), gameMetric.Outcome)
		require.Empty(t, e.History(), "the illegal move is never applied")
	})

	t.Run("player error forfeits to the opponent", func(t *testing.T) {
		failing := failingPlayer{name: "broken"}
		e := NewLocal(columnFiller{"honest", 0}, failing)

		winner, gameMetric, _ := e.Run()

		require.Equal(t, "honest", winner)
		require.True(t, gameMetric.Forfeited)
		require.Len(t, e.History(), 1, "only the legal first move stands")
	})
}

type failingPlayer struct {
	name string
}

func (p failingPlayer) Name() string { return p.name }
func (p failingPlayer) ChooseMove(game.Board, game.Side) (int, error) {
	return 0, game.ErrColumnFull
}
