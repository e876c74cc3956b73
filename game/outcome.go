package game

import (
	"fmt"
	"math/bits"
)

// Outcome is the terminal status of a position.
type Outcome uint8

const (
	Ongoing Outcome = iota
	WinX
	WinO
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case WinX:
		return "X wins"
	case WinO:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// WinnerOf maps a side to its winning outcome.
func WinnerOf(s Side) Outcome {
	if s == SideX {
		return WinX
	}
	return WinO
}

// lineDeltas are the bit-shift distances of the four alignment directions in
// the fixed scan order: horizontal (next column), vertical (next row), then
// the two diagonals. Guard bits keep every shift from crossing columns.
var lineDeltas = [4]int{Columns, 1, columnBits - 1, columnBits + 1}

func hasFour(mask uint64) bool {
	for _, d := range lineDeltas {
		m := mask & (mask >> d)
		if m&(m>>(2*d)) != 0 {
			return true
		}
	}
	return false
}

// Outcome classifies the position. Win detection runs before draw detection:
// the winning move may also fill the last cell.
func (b Board) Outcome() Outcome {
	if hasFour(b.x) {
		return WinX
	}
	if hasFour(b.o) {
		return WinO
	}
	if b.occupied() == boardMask {
		return Draw
	}
	return Ongoing
}

// Coord addresses a single cell; Row is 0-indexed from the bottom.
type Coord struct {
	Col int
	Row int
}

func coordOf(bit int) Coord {
	return Coord{Col: bit / columnBits, Row: bit % columnBits}
}

// WinningLine returns the four cells of the first four-in-a-row found for the
// given side, scanning directions in the fixed order and bit positions from
// least significant upward. Calling it for a side that has not won is a
// caller bug and fails fast.
func (b Board) WinningLine(s Side) ([4]Coord, error) {
	mask := b.Bitboard(s)
	for _, d := range lineDeltas {
		m := mask & (mask >> d)
		m &= m >> (2 * d)
		if m == 0 {
			continue
		}
		start := bits.TrailingZeros64(m)
		var line [4]Coord
		for i := 0; i < 4; i++ {
			line[i] = coordOf(start + i*d)
		}
		return line, nil
	}
	return [4]Coord{}, fmt.Errorf("side %v has no four-in-a-row", s)
}
