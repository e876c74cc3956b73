package searcher

import (
	"testing"

	"connectfour/game"

	"github.com/stretchr/testify/require"
)

func TestMonteCarloPreconditions(t *testing.T) {
	t.Run("non-positive budget panics", func(t *testing.T) {
		require.Panics(t, func() { NewMonteCarlo(0) })
	})

	t.Run("board without legal moves is a caller error", func(t *testing.T) {
		full := game.Empty()
		side := game.SideX
		for col := 0; col < game.Columns; col++ {
			for row := 0; row < game.Rows; row++ {
				var err error
				full, _, err = full.Apply(col, side)
				require.NoError(t, err)
				side = side.Opponent()
			}
		}
		_, _, err := NewMonteCarlo(100).FindBestMove(full, game.SideX)
		require.ErrorIs(t, err, ErrNoMoves)
	})
}

func TestMonteCarloBudgetAllocation(t *testing.T) {
	t.Run("budget below the move count yields zero rollouts", func(t *testing.T) {
		// 7 legal moves, budget 3: floor(3/7) = 0 rollouts for every move,
		// all ratios are 0, the first column wins the tie.
		m := NewMonteCarlo(3, WithSeed(1), WithRolloutMetrics())
		move, metric, err := m.FindBestMove(game.Empty(), game.SideX)
		require.NoError(t, err)
		require.Equal(t, 0, move, "all-zero ratios fall back to the first legal column")
		require.Zero(t, metric.Rollouts)
	})

	t.Run("budget is split evenly and the remainder discarded", func(t *testing.T) {
		// 7 legal moves, budget 100: floor(100/7) = 14 rollouts per move.
		m := NewMonteCarlo(100, WithSeed(1), WithRolloutMetrics())
		_, metric, err := m.FindBestMove(game.Empty(), game.SideX)
		require.NoError(t, err)
		require.Equal(t, 14*7, metric.Rollouts, "2 leftover simulations are dropped")
		require.Equal(t, 100, metric.Budget)
	})

	t.Run("fewer legal moves get bigger shares", func(t *testing.T) {
		b := game.Empty()
		side := game.SideX
		for i := 0; i < game.Rows; i++ { // Fill column 1
			var err error
			b, _, err = b.Apply(0, side)
			require.NoError(t, err)
			side = side.Opponent()
		}

		m := NewMonteCarlo(60, WithSeed(1), WithRolloutMetrics())
		_, metric, err := m.FindBestMove(b, side)
		require.NoError(t, err)
		require.Equal(t, 10*6, metric.Rollouts)
	})
}

func TestMonteCarloFindsForcedWin(t *testing.T) {
	// X can complete a vertical four in column 1. Every rollout through that
	// move is an instant win (ratio 1.0), and since column 1 is also the
	// first legal move, any tie still resolves to it.
	b := game.Empty()
	for i := 0; i < 3; i++ {
		var err error
		b, _, err = b.Apply(0, game.SideX)
		require.NoError(t, err)
		b, _, err = b.Apply(6, game.SideO)
		require.NoError(t, err)
	}

	m := NewMonteCarlo(700, WithSeed(42))
	move, _, err := m.FindBestMove(b, game.SideX)
	require.NoError(t, err)
	require.Equal(t, 0, move, "the immediately winning column has a perfect win ratio")
}

func TestMonteCarloSeededReproducibility(t *testing.T) {
	b := replay(t, "4 3 5 2")

	first, _, err := NewMonteCarlo(210, WithSeed(7)).FindBestMove(b, game.SideX)
	require.NoError(t, err)
	second, _, err := NewMonteCarlo(210, WithSeed(7)).FindBestMove(b, game.SideX)
	require.NoError(t, err)
	require.Equal(t, first, second, "identical seeds must replay identical rollouts")
}
