// Package experiments runs tournaments between configured players and stores
// per-game and per-move records as CSV for offline analysis.
package experiments

import (
	"fmt"

	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/player"

	"github.com/rs/zerolog/log"
)

// DefaultConfigs is the baseline tournament field: random, plain and
// heuristic negamax, flat Monte Carlo, and the phased composite.
var DefaultConfigs = []metrics.PlayerConfig{
	{ID: 1, Kind: "random"},
	{ID: 2, Kind: "negamax", Depth: 4},
	{ID: 3, Kind: "negamax", Depth: 4, Heuristic: true},
	{ID: 4, Kind: "montecarlo", Budget: 500},
	{ID: 5, Kind: "phased", Budget: 500, Depth: 6, Heuristic: true, SwitchPly: player.DefaultSwitchPly},
}

// RoundRobin pairs every config against every other config.
func RoundRobin(configs []metrics.PlayerConfig) [][2]metrics.PlayerConfig {
	matchUps := [][2]metrics.PlayerConfig{}
	for i := 0; i < len(configs); i++ {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, [2]metrics.PlayerConfig{configs[i], configs[j]})
		}
	}
	return matchUps
}

// Run plays numGames per matchup, alternating the starting seat each game,
// then writes the records and prints a win table.
func Run(name string, configs []metrics.PlayerConfig, matchUps [][2]metrics.PlayerConfig, numGames int) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	wins := map[int]int{}
	draws := map[int]int{}
	games := map[int]int{}

	log.Info().Msgf("starting %s tournament...", name)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between player%d and player%d...",
			mi+1, len(matchUps), config1.ID, config2.ID)

		for i := 0; i < numGames; i++ {
			first, second := config1, config2
			if i%2 == 1 { // Alternate the starting seat
				first, second = config2, config1
			}

			winner, gameMetric, moveMetrics := runGame(first, second)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Player1:    first.ID,
				Player2:    second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			games[config1.ID]++
			games[config2.ID]++
			switch winner {
			case playerName(first):
				wins[first.ID]++
			case playerName(second):
				wins[second.ID]++
			default:
				draws[config1.ID]++
				draws[config2.ID]++
			}

			log.Info().Msgf("completed matchup %d game %d of %d with outcome: %s",
				mi+1, i+1, numGames, gameMetric.Outcome)
		}
	}

	log.Info().Msgf("completed %s tournament", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create tournament writer: %w", err)
	}
	if err := writer.WritePlayerConfigs(configs); err != nil {
		return fmt.Errorf("failed to store player configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records under %s", writer.BaseDir())

	printSummary(configs, wins, draws, games)
	return nil
}

func printSummary(configs []metrics.PlayerConfig, wins, draws, games map[int]int) {
	fmt.Printf("%-24s %6s %6s %6s %6s\n", "player", "games", "wins", "draws", "losses")
	for _, config := range configs {
		name := playerName(config)
		played := games[config.ID]
		won := wins[config.ID]
		drawn := draws[config.ID]
		fmt.Printf("%-24s %6d %6d %6d %6d\n", name, played, won, drawn, played-won-drawn)
	}
}

// runGame executes a single game between two configured players and returns
// the winner's name.
func runGame(first, second metrics.PlayerConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocal(buildPlayer(first), buildPlayer(second))
	return e.Run()
}

func playerName(config metrics.PlayerConfig) string {
	return fmt.Sprintf("player%d-%s", config.ID, config.Kind)
}

func buildPlayer(config metrics.PlayerConfig) player.Player {
	name := playerName(config)
	evaluate := game.EvaluateNothing
	if config.Heuristic {
		evaluate = game.EvaluateThreats
	}

	switch config.Kind {
	case "random":
		if config.Seed != 0 {
			return player.NewSeededRandom(name, config.Seed)
		}
		return player.NewRandom(name)
	case "negamax":
		return player.NewNegamax(name, config.Depth, evaluate)
	case "montecarlo":
		return player.NewMonteCarlo(name, config.Budget)
	case "phased":
		opening := player.NewMonteCarlo(name+"-opening", config.Budget)
		endgame := player.NewNegamax(name+"-endgame", config.Depth, game.EvaluateThreats)
		return player.NewPhased(name, opening, endgame, config.SwitchPly)
	default:
		panic(fmt.Sprintf("unknown player kind %q", config.Kind))
	}
}
