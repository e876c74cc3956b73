package player

import (
	"strings"
	"testing"

	"connectfour/game"

	"github.com/stretchr/testify/require"
)

func TestRandomStaysLegal(t *testing.T) {
	p := NewSeededRandom("rand", 99)
	b := game.Empty()
	side := game.SideX
	for b.Outcome() == game.Ongoing {
		col, err := p.ChooseMove(b, side)
		require.NoError(t, err)
		require.Contains(t, b.LegalMoves(), col, "random player must only pick playable columns")
		b, _, err = b.Apply(col, side)
		require.NoError(t, err)
		side = side.Opponent()
	}
}

func TestHuman(t *testing.T) {
	t.Run("accepts a valid column", func(t *testing.T) {
		var out strings.Builder
		p := NewHuman("alice", strings.NewReader("3\n"), &out)

		col, err := p.ChooseMove(game.Empty(), game.SideX)
		require.NoError(t, err)
		require.Equal(t, 2, col, "input is 1-based, moves are 0-based")
		require.Contains(t, out.String(), "choose a column")
	})

	t.Run("reprompts on garbage and out-of-range input", func(t *testing.T) {
		var out strings.Builder
		p := NewHuman("alice", strings.NewReader("zero\n9\n0\n5\n"), &out)

		col, err := p.ChooseMove(game.Empty(), game.SideX)
		require.NoError(t, err)
		require.Equal(t, 4, col)
		require.Contains(t, out.String(), `"zero" is not a column`)
	})

	t.Run("reprompts on a full column", func(t *testing.T) {
		b := game.Empty()
		side := game.SideX
		for i := 0; i < game.Rows; i++ {
			var err error
			b, _, err = b.Apply(0, side)
			require.NoError(t, err)
			side = side.Opponent()
		}

		var out strings.Builder
		p := NewHuman("alice", strings.NewReader("1\n2\n"), &out)

		col, err := p.ChooseMove(b, side)
		require.NoError(t, err)
		require.Equal(t, 1, col)
		require.Contains(t, out.String(), "column 1 is full")
	})

	t.Run("closed input is an error", func(t *testing.T) {
		var out strings.Builder
		p := NewHuman("alice", strings.NewReader(""), &out)

		_, err := p.ChooseMove(game.Empty(), game.SideX)
		require.Error(t, err)
	})
}

func TestSearchPlayers(t *testing.T) {
	t.Run("negamax player reports metrics", func(t *testing.T) {
		p := NewNegamax("nega", 3, game.EvaluateThreats)

		col, err := p.ChooseMove(game.Empty(), game.SideX)
		require.NoError(t, err)
		require.Contains(t, game.Empty().LegalMoves(), col)
		require.Positive(t, p.SearchMetrics().Nodes)
		require.Equal(t, 3, p.SearchMetrics().Depth)
	})

	t.Run("monte carlo player reports metrics", func(t *testing.T) {
		p := NewMonteCarlo("mc", 70)

		col, err := p.ChooseMove(game.Empty(), game.SideX)
		require.NoError(t, err)
		require.Contains(t, game.Empty().LegalMoves(), col)
		require.Equal(t, 70, p.SearchMetrics().Budget)
		require.Equal(t, 70, p.SearchMetrics().Rollouts)
	})
}

// scriptedPlayer plays a fixed column every turn.
type scriptedPlayer struct {
	name string
	col  int
}

func (p scriptedPlayer) Name() string { return p.name }
func (p scriptedPlayer) ChooseMove(game.Board, game.Side) (int, error) {
	return p.col, nil
}

func TestPhasedSwitchesDelegates(t *testing.T) {
	opening := scriptedPlayer{name: "opening", col: 1}
	endgame := scriptedPlayer{name: "endgame", col: 5}
	p := NewPhased("hybrid", opening, endgame, 2)

	b := game.Empty()

	col, err := p.ChooseMove(b, game.SideX)
	require.NoError(t, err)
	require.Equal(t, 1, col, "below the threshold the opening player decides")

	b, _, err = b.Apply(col, game.SideX)
	require.NoError(t, err)
	b, _, err = b.Apply(col, game.SideO)
	require.NoError(t, err)
	require.Equal(t, 2, b.Ply())

	col, err = p.ChooseMove(b, game.SideX)
	require.NoError(t, err)
	require.Equal(t, 5, col, "at the threshold the endgame player takes over")
}

func TestPhasedMetricsFollowDelegate(t *testing.T) {
	opening := scriptedPlayer{name: "opening", col: 1}
	endgame := NewNegamax("endgame", 2, game.EvaluateNothing)
	p := NewPhased("hybrid", opening, endgame, 0)

	_, err := p.ChooseMove(game.Empty(), game.SideX)
	require.NoError(t, err)
	require.Positive(t, p.SearchMetrics().Nodes, "endgame negamax metrics should surface")
}
