package game

import (
	"errors"
	"fmt"
	"math/bits"
)

const (
	Columns = 7
	Rows    = 6
	Cells   = Columns * Rows

	// Each column occupies 7 bits: 6 playable rows plus a guard bit at row 6.
	// The guard bit is never set by a move; it keeps shift-based adjacency
	// tests from wrapping into the neighboring column.
	columnBits = Rows + 1
)

var (
	ErrColumnFull = errors.New("column is full")
	ErrBadColumn  = errors.New("column out of range")
)

// boardMask covers the 42 playable cells, excluding guard bits.
const boardMask uint64 = 0x3F |
	0x3F<<columnBits |
	0x3F<<(2*columnBits) |
	0x3F<<(3*columnBits) |
	0x3F<<(4*columnBits) |
	0x3F<<(5*columnBits) |
	0x3F<<(6*columnBits)

func columnMask(col int) uint64 {
	return 0x3F << (col * columnBits)
}

// Board is an immutable 7x6 Connect Four position packed into two bitmasks,
// one per side, with bit col*7+row addressing. Boards are plain values: every
// move returns a new Board and the two masks are always disjoint.
type Board struct {
	x, o uint64
}

// Empty returns the starting position.
func Empty() Board {
	return Board{}
}

// Bitboard exposes one side's occupancy mask as a read-only fast path for
// evaluators. All other callers should prefer Cell or Grid.
func (b Board) Bitboard(s Side) uint64 {
	if s == SideX {
		return b.x
	}
	return b.o
}

func (b Board) occupied() uint64 {
	return b.x | b.o
}

// Ply returns the number of moves played so far.
func (b Board) Ply() int {
	return bits.OnesCount64(b.occupied())
}

// ColumnHeight returns how many pieces are stacked in a column.
func (b Board) ColumnHeight(col int) int {
	return bits.OnesCount64(b.occupied() & columnMask(col))
}

// Apply drops a piece for the given side into a column and returns the
// resulting board together with the landing row (0-indexed from the bottom).
// The receiver is never modified. A full or out-of-range column yields an
// error so that search code can never proceed on a silently-wrong board.
func (b Board) Apply(col int, s Side) (Board, int, error) {
	if col < 0 || col >= Columns {
		return b, 0, fmt.Errorf("apply column %d: %w", col, ErrBadColumn)
	}
	row := b.ColumnHeight(col)
	if row >= Rows {
		return b, 0, fmt.Errorf("apply column %d: %w", col, ErrColumnFull)
	}
	bit := uint64(1) << (col*columnBits + row)
	next := b
	if s == SideX {
		next.x |= bit
	} else {
		next.o |= bit
	}
	return next, row, nil
}

// LegalMoves returns the playable columns in ascending order. The result is
// empty only when all 42 cells are filled.
func (b Board) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.ColumnHeight(col) < Rows {
			moves = append(moves, col)
		}
	}
	return moves
}

// Cell reports the content of a single cell.
func (b Board) Cell(col, row int) Cell {
	bit := uint64(1) << (col*columnBits + row)
	switch {
	case b.x&bit != 0:
		return CellX
	case b.o&bit != 0:
		return CellO
	default:
		return CellEmpty
	}
}

// Grid converts the bit-packed position into a row-major cell array, the only
// sanctioned non-bitwise read path. Renderers print row 5 first.
func (b Board) Grid() [Rows][Columns]Cell {
	var grid [Rows][Columns]Cell
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			grid[row][col] = b.Cell(col, row)
		}
	}
	return grid
}

// Render draws the board as text, top row first.
func (b Board) Render() string {
	grid := b.Grid()
	out := ""
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			out += grid[row][col].String() + " "
		}
		out += "\n"
	}
	return out + "1 2 3 4 5 6 7\n"
}
