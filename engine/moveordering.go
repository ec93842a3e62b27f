package engine

import "superengine/chessmg"

type move struct {
	move  chessmg.Move
	score int
}

type moveList struct {
	moves []move
}

// Victim/attacker values for MVV-LVA, indexed by chessmg.PieceType.
var mvv = [7]int{0, 100, 320, 330, 500, 900, 20000}

var (
	ttMoveOffset  = 30000
	killerOffsets = [2]int{9000, 8000}
)

// mvvLva scores a capture as victim*10 - attacker. Quiet moves score 0.
func mvvLva(pos *chessmg.Position, m chessmg.Move) int {
	attacker := pos.PieceAt(m.From)
	victim := pos.PieceAt(m.To)
	if victim == chessmg.NoPieceType {
		if attacker != chessmg.Pawn || m.To != pos.EnPassant() {
			return 0
		}
		victim = chessmg.Pawn
	}
	return 10*mvv[victim] - mvv[attacker]
}

// scoreMoves applies the full ordering: hash move, MVV-LVA, promotions,
// killers for this depth and history.
func (w *worker) scoreMoves(pos *chessmg.Position, moves []chessmg.Move, depth int, ttMove chessmg.Move) moveList {
	list := moveList{moves: make([]move, len(moves))}
	var killers [2]chessmg.Move
	if depth >= 0 && depth <= MaxDepth {
		killers = w.killers.KillerMoves[depth]
	}
	for i, m := range moves {
		score := mvvLva(pos, m)
		if m.Promotion != chessmg.NoPieceType {
			score += mvv[m.Promotion]
		}
		for k, killer := range killers {
			if m == killer && !killer.IsNull() {
				score += killerOffsets[k]
			}
		}
		score += w.history[m.From][m.To]
		if m == ttMove && !ttMove.IsNull() {
			score += ttMoveOffset
		}
		list.moves[i] = move{move: m, score: score}
	}
	return list
}

// scoreCaptures orders quiescence moves by MVV-LVA alone.
func scoreCaptures(pos *chessmg.Position, moves []chessmg.Move) moveList {
	list := moveList{moves: make([]move, len(moves))}
	for i, m := range moves {
		list.moves[i] = move{move: m, score: mvvLva(pos, m)}
	}
	return list
}

// Ordering the moves one at a time, at index given. Ties keep generation
// order so the sort is stable.
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	if bestIndex != currIndex {
		best := moves.moves[bestIndex]
		copy(moves.moves[currIndex+1:bestIndex+1], moves.moves[currIndex:bestIndex])
		moves.moves[currIndex] = best
	}
}
