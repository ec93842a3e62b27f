package engine

import "superengine/chessmg"

// historyMaxVal keeps history scores below the killer bonuses.
const historyMaxVal = 8000

// KillerStruct holds two killer moves per remaining depth.
type KillerStruct struct {
	KillerMoves [MaxDepth + 1][2]chessmg.Move
}

// InsertKiller records a cutoff move, pushing the older killer down.
func (k *KillerStruct) InsertKiller(move chessmg.Move, depth int) {
	if depth < 0 || depth > MaxDepth {
		return
	}
	if move != k.KillerMoves[depth][0] {
		k.KillerMoves[depth][1] = k.KillerMoves[depth][0]
		k.KillerMoves[depth][0] = move
	}
}

// HistoryTable scores (from, to) pairs that produced cutoffs or raised alpha.
type HistoryTable [64][64]int

func (h *HistoryTable) add(m chessmg.Move, bonus int) {
	h[m.From][m.To] += bonus
	if h[m.From][m.To] >= historyMaxVal {
		h.age()
	}
}

// age halves every entry.
func (h *HistoryTable) age() {
	for from := range h {
		for to := range h[from] {
			h[from][to] /= 2
		}
	}
}
