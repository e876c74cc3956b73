package player

import (
	"time"

	"connectfour/game"
	"connectfour/searcher"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal moves. Each instance owns its RNG.
type Random struct {
	name string
	rng  *rand.Rand
}

func NewRandom(name string) *Random {
	return NewSeededRandom(name, uint64(time.Now().UnixNano()))
}

func NewSeededRandom(name string, seed uint64) *Random {
	return &Random{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *Random) Name() string {
	return p.name
}

func (p *Random) ChooseMove(b game.Board, side game.Side) (int, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return 0, searcher.ErrNoMoves
	}
	return moves[p.rng.Intn(len(moves))], nil
}
