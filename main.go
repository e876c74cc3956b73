package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"connectfour/engine"
	"connectfour/experiments"
	"connectfour/game"
	"connectfour/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play a single game or run a tournament (play|tournament)")
	p1 := flag.String("p1", "human", "first player: human|random|negamax|montecarlo|phased")
	p2 := flag.String("p2", "negamax", "second player: human|random|negamax|montecarlo|phased")
	depth := flag.Int("depth", 6, "negamax search depth")
	budget := flag.Int("budget", 1000, "Monte Carlo rollout budget per move")
	switchPly := flag.Int("switch", player.DefaultSwitchPly, "ply at which a phased player switches to negamax")
	games := flag.Int("games", 20, "games per matchup in tournament mode")
	opening := flag.String("opening", "", "opening moves to replay, e.g. \"4 3 5\"")
	verbose := flag.Bool("verbose", false, "log every move")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch *mode {
	case "play":
		playGame(*p1, *p2, *depth, *budget, *switchPly, *opening)
	case "tournament":
		err := experiments.Run("round_robin", experiments.DefaultConfigs,
			experiments.RoundRobin(experiments.DefaultConfigs), *games)
		if err != nil {
			log.Fatal().Err(err).Msg("tournament failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func playGame(kind1, kind2 string, depth, budget, switchPly int, opening string) {
	board := game.Empty()
	toMove := game.SideX
	if opening != "" {
		var err error
		board, err = game.Replay(opening, game.SideX)
		if err != nil {
			log.Fatal().Err(err).Msg("bad opening")
		}
		if board.Ply()%2 == 1 {
			toMove = game.SideO
		}
	}

	x := buildPlayer(kind1, "player1", depth, budget, switchPly)
	o := buildPlayer(kind2, "player2", depth, budget, switchPly)
	e := engine.NewLocalFrom(board, toMove, x, o)

	winner, gameMetric, _ := e.Run()

	final := e.Board()
	fmt.Print(final.Render())
	fmt.Printf("moves: %s\n", game.Notation(e.History()))
	switch outcome := final.Outcome(); outcome {
	case game.WinX, game.WinO:
		side := game.SideX
		if outcome == game.WinO {
			side = game.SideO
		}
		line, err := final.WinningLine(side)
		if err == nil {
			cells := make([]string, len(line))
			for i, c := range line {
				cells[i] = fmt.Sprintf("%d%c", c.Col+1, 'a'+rune(c.Row))
			}
			fmt.Printf("%s wins through %s in %s\n", winner, strings.Join(cells, " "), gameMetric.Duration)
		}
	case game.Draw:
		fmt.Println("draw")
	default:
		if gameMetric.Forfeited {
			fmt.Printf("%s wins by forfeit\n", winner)
		} else {
			fmt.Printf("game stopped: %s\n", gameMetric.Outcome)
		}
	}
}

func buildPlayer(kind, name string, depth, budget, switchPly int) player.Player {
	switch kind {
	case "human":
		return player.NewHuman(name, os.Stdin, os.Stdout)
	case "random":
		return player.NewRandom(name)
	case "negamax":
		return player.NewNegamax(name, depth, game.EvaluateThreats)
	case "montecarlo":
		return player.NewMonteCarlo(name, budget)
	case "phased":
		opening := player.NewMonteCarlo(name+"-opening", budget)
		endgame := player.NewNegamax(name+"-endgame", depth, game.EvaluateThreats)
		return player.NewPhased(name, opening, endgame, switchPly)
	default:
		log.Fatal().Msgf("unknown player kind %q", kind)
		return nil
	}
}
