package game

import "fmt"

// Side identifies one of the two players. There is no "empty" side; use Cell
// for board-cell contents.
type Side uint8

const (
	SideX Side = iota
	SideO
)

func (s Side) Opponent() Side {
	if s == SideX {
		return SideO
	}
	return SideX
}

func (s Side) String() string {
	switch s {
	case SideX:
		return "X"
	case SideO:
		return "O"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Cell is the tri-state content of a single board cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

// Cell converts a side into the cell marker it leaves on the board.
func (s Side) Cell() Cell {
	if s == SideX {
		return CellX
	}
	return CellO
}

// Side converts an occupied cell back into its owner. Converting an empty
// cell is a programming error and fails explicitly.
func (c Cell) Side() (Side, error) {
	switch c {
	case CellX:
		return SideX, nil
	case CellO:
		return SideO, nil
	default:
		return 0, fmt.Errorf("cell %v has no side", c)
	}
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "."
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}
