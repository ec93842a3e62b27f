package engine

import (
	"testing"

	"superengine/chessmg"
	"superengine/eval"
)

func orderedMoves(list moveList) []string {
	out := make([]string, 0, len(list.moves))
	for i := range list.moves {
		orderNextMove(i, &list)
		out = append(out, list.moves[i].move.String())
	}
	return out
}

func TestMVVLVAPrefersCheapAttackerOnValuableVictim(t *testing.T) {
	pos := parse(t, "4k3/8/8/3q4/2P1Q3/8/8/4K3 w - - 0 1")
	first := orderedMoves(scoreCaptures(pos, pos.GenerateCaptures()))
	if len(first) != 2 || first[0] != "c4d5" || first[1] != "e4d5" {
		t.Fatalf("capture order: got %v want [c4d5 e4d5]", first)
	}
	if got := mvvLva(pos, chessmg.Move{From: chessmg.NewSquare(2, 3), To: chessmg.NewSquare(3, 4)}); got != 10*900-100 {
		t.Fatalf("PxQ score: got %d", got)
	}
}

func TestMVVLVACountsEnPassant(t *testing.T) {
	pos := parse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	m := chessmg.Move{From: chessmg.NewSquare(4, 4), To: chessmg.NewSquare(3, 5)}
	if got := mvvLva(pos, m); got != 10*100-100 {
		t.Fatalf("en passant score: got %d want %d", got, 900)
	}
}

func TestKillersAndHistoryOrderQuietMoves(t *testing.T) {
	pos := parse(t, chessmg.FENStartPos)
	w := New(eval.Material{}).newWorker(canonicalOwner, budget{}, nil)
	moves := pos.GenerateLegalMoves()

	g1f3 := chessmg.Move{From: chessmg.G1, To: chessmg.NewSquare(5, 2)}
	b1c3 := chessmg.Move{From: chessmg.B1, To: chessmg.NewSquare(2, 2)}
	e2e4 := chessmg.Move{From: chessmg.NewSquare(4, 1), To: chessmg.NewSquare(4, 3)}

	w.killers.InsertKiller(b1c3, 4)
	w.killers.InsertKiller(g1f3, 4)
	w.history.add(e2e4, 16)

	got := orderedMoves(w.scoreMoves(pos, moves, 4, chessmg.NullMove))
	want := []string{"g1f3", "b1c3", "e2e4"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v, want prefix %v", got, want)
		}
	}

	// killers are per depth
	got = orderedMoves(w.scoreMoves(pos, moves, 3, e2e4))
	if got[0] != "e2e4" {
		t.Fatalf("hash move should lead, got %v", got)
	}
}

func TestInsertKillerShiftsSlots(t *testing.T) {
	var k KillerStruct
	a := chessmg.Move{From: 1, To: 2}
	b := chessmg.Move{From: 3, To: 4}
	k.InsertKiller(a, 2)
	k.InsertKiller(a, 2)
	if k.KillerMoves[2][1] == a {
		t.Fatalf("duplicate killer stored")
	}
	k.InsertKiller(b, 2)
	if k.KillerMoves[2] != [2]chessmg.Move{b, a} {
		t.Fatalf("killers: got %v", k.KillerMoves[2])
	}
	k.InsertKiller(b, MaxDepth+1)
}

func TestHistoryAges(t *testing.T) {
	var h HistoryTable
	m := chessmg.Move{From: 8, To: 16}
	other := chessmg.Move{From: 9, To: 17}
	h.add(other, 100)
	h.add(m, historyMaxVal)
	if h[m.From][m.To] != historyMaxVal/2 || h[other.From][other.To] != 50 {
		t.Fatalf("history not halved: %d %d", h[m.From][m.To], h[other.From][other.To])
	}
}

func TestOrderNextMoveIsStable(t *testing.T) {
	list := moveList{moves: []move{
		{move: chessmg.Move{From: 1, To: 2}, score: 5},
		{move: chessmg.Move{From: 3, To: 4}, score: 9},
		{move: chessmg.Move{From: 5, To: 6}, score: 5},
		{move: chessmg.Move{From: 7, To: 8}, score: 5},
	}}
	got := orderedMoves(list)
	want := []string{"d1e1", "b1c1", "f1g1", "h1a2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v want %v", got, want)
		}
	}
}
