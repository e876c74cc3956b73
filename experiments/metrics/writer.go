package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// PlayerConfig describes a tournament participant.
type PlayerConfig struct {
	ID        int
	Kind      string // random | negamax | montecarlo | phased
	Depth     int    // Negamax depth (negamax, phased)
	Budget    int    // Rollout budget (montecarlo, phased)
	SwitchPly int    // Phase-switch threshold (phased)
	Heuristic bool   // Use the threat evaluator instead of the null one
	Seed      uint64 // RNG seed, 0 for time-based
}

type GameRecord struct {
	ID      int
	Player1 int // PlayerConfig.ID
	Player2 int // PlayerConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped result directory for one tournament run.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WritePlayerConfigs(configs []PlayerConfig) error {
	path := filepath.Join(w.baseDir, "player_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create player configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "kind", "depth", "budget", "switch_ply", "heuristic", "seed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write player configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Budget),
			strconv.Itoa(config.SwitchPly),
			strconv.FormatBool(config.Heuristic),
			strconv.FormatUint(config.Seed, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write player config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "player1", "player2", "starting_player", "outcome", "winner", "total_moves", "forfeited", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Player1),
			strconv.Itoa(record.Player2),
			record.StartingPlayer,
			record.Outcome,
			record.Winner,
			strconv.Itoa(record.TotalMoves),
			strconv.FormatBool(record.Forfeited),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "depth", "budget", "duration", "nodes", "prunes", "rollouts"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Budget),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Prunes),
			strconv.Itoa(record.Rollouts),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}
