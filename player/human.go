package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectfour/game"
)

// Human prompts for a 1-based column on each turn and reprompts until the
// input is a playable column. Reads and writes go through the injected
// streams so tests can drive it.
type Human struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Human) Name() string {
	return p.name
}

func (p *Human) ChooseMove(b game.Board, side game.Side) (int, error) {
	fmt.Fprint(p.out, b.Render())
	for {
		fmt.Fprintf(p.out, "%s (%v) choose a column [1-%d]: ", p.name, side, game.Columns)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return 0, fmt.Errorf("read move: %w", err)
			}
			return 0, fmt.Errorf("read move: input closed")
		}

		token := strings.TrimSpace(p.scanner.Text())
		col, err := strconv.Atoi(token)
		if err != nil || col < 1 || col > game.Columns {
			fmt.Fprintf(p.out, "%q is not a column in [1,%d]\n", token, game.Columns)
			continue
		}
		if b.ColumnHeight(col-1) >= game.Rows {
			fmt.Fprintf(p.out, "column %d is full\n", col)
			continue
		}
		return col - 1, nil
	}
}
