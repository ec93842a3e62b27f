// Package eval holds the evaluation oracles the search can be plugged with.
// Every oracle scores a position from the side to move's point of view.
package eval

import "superengine/chessmg"

// PieceValues indexed by chessmg.PieceType. Kings carry no material.
var PieceValues = [7]int{0, 100, 300, 300, 500, 900, 0}

// Material counts piece values.
type Material struct{}

func (Material) Evaluate(p *chessmg.Position) int {
	score := 0
	for pt := chessmg.Pawn; pt < chessmg.King; pt++ {
		diff := p.Pieces(chessmg.White, pt).Count() - p.Pieces(chessmg.Black, pt).Count()
		score += diff * PieceValues[pt]
	}
	if p.SideToMove() == chessmg.Black {
		return -score
	}
	return score
}
