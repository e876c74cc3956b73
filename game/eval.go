package game

import "math/bits"

// Evaluate scores a non-terminal position from one side's perspective.
// Positive favors that side.
type Evaluate func(b Board, perspective Side) int

// Heuristic weights. Tunable policy; the shape (center bonus, three-threat
// bonus, defense weighted above offense) matches the tournament baselines.
const (
	centerWeight      = 3
	ownThreatWeight   = 50
	enemyThreatWeight = 60
	pairWeight        = 2
)

var centerMask = columnMask(3) | columnMask(4)

// EvaluateNothing scores every position zero, leaving the search to rely
// purely on terminal nodes within its depth budget.
func EvaluateNothing(Board, Side) int {
	return 0
}

// EvaluateThreats is the heuristic evaluator: center-column occupancy, live
// three-in-a-row threats, and a small two-in-a-row building term, all from
// popcounts and masked shifts.
func EvaluateThreats(b Board, perspective Side) int {
	own := b.Bitboard(perspective)
	enemy := b.Bitboard(perspective.Opponent())
	occ := own | enemy

	score := centerWeight * (bits.OnesCount64(own&centerMask) - bits.OnesCount64(enemy&centerMask))
	score += ownThreatWeight * bits.OnesCount64(completionCells(own, occ))
	score -= enemyThreatWeight * bits.OnesCount64(completionCells(enemy, occ))
	score += pairWeight * (countPairs(own) - countPairs(enemy))
	return score
}

// completionCells returns a mask of every empty cell that would complete a
// four-in-a-row for the given side, i.e. the open ends of its live threes.
// Floating cells count; the threat need not be immediately playable.
func completionCells(p, occ uint64) uint64 {
	// Vertical: only completes upward.
	r := (p << 1) & (p << 2) & (p << 3)

	for _, d := range [3]int{Columns, columnBits - 1, columnBits + 1} {
		m := (p << d) & (p << (2 * d))
		r |= m & (p << (3 * d)) // .XXX
		r |= m & (p >> d)       // X.XX
		m >>= 3 * d
		r |= m & (p << d)       // XX.X
		r |= m & (p >> (3 * d)) // XXX.
	}
	return r & (boardMask &^ occ)
}

func countPairs(p uint64) int {
	total := 0
	for _, d := range lineDeltas {
		total += bits.OnesCount64(p & (p >> d))
	}
	return total
}
