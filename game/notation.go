package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Replay rebuilds a position from space-separated 1-based column numbers,
// alternating sides starting with first. Moves apply left to right; on a bad
// token or an illegal drop the board built from the already-applied prefix is
// returned alongside the error. Callers relying on atomicity must discard it.
func Replay(notation string, first Side) (Board, error) {
	board := Empty()
	side := first
	for i, token := range strings.Fields(notation) {
		col, err := strconv.Atoi(token)
		if err != nil || col < 1 || col > Columns {
			return board, fmt.Errorf("move %d: %q is not a column in [1,%d]", i+1, token, Columns)
		}
		next, _, err := board.Apply(col-1, side)
		if err != nil {
			return board, fmt.Errorf("move %d: %w", i+1, err)
		}
		board = next
		side = side.Opponent()
	}
	return board, nil
}

// Notation serializes a 0-based column history back to the textual form
// Replay accepts.
func Notation(moves []int) string {
	tokens := make([]string, len(moves))
	for i, col := range moves {
		tokens[i] = strconv.Itoa(col + 1)
	}
	return strings.Join(tokens, " ")
}
