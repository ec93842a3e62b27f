package chessmg_test

import (
	"testing"

	"superengine/chessmg"
)

func moveSet(moves []chessmg.Move) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m.String()] = true
	}
	return set
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	p := chessmg.FromFEN("rnbqkb1r/ppp1pppp/5n2/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if !moveSet(p.GenerateLegalMoves())["e5d6"] {
		t.Fatalf("e5d6 missing from legal moves")
	}
	if !moveSet(p.GenerateCaptures())["e5d6"] {
		t.Fatalf("e5d6 missing from captures")
	}
	if !p.IsCapture(mustMove(t, "e5d6")) {
		t.Fatalf("en passant should count as a capture")
	}
}

func TestPromotionPolicyEmitsAllFour(t *testing.T) {
	p := chessmg.FromFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	moves := p.GenerateLegalMoves()
	set := moveSet(moves)
	for _, m := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n", "a7b8q", "a7b8r", "a7b8b", "a7b8n"} {
		if !set[m] {
			t.Errorf("missing promotion %s", m)
		}
	}
	if set["a7a8"] {
		t.Errorf("promotion without a piece generated")
	}
	if len(moves) != 11 {
		t.Fatalf("legal moves: got %d want 11", len(moves))
	}
	// queen first, knight last
	var got []string
	for _, m := range moves {
		if m.From == chessmg.NewSquare(0, 6) && m.To == chessmg.A8 {
			got = append(got, m.String())
		}
	}
	want := []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"}
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("promotion order: got %v want %v", got, want)
		}
	}
}

func TestCastlingGeneration(t *testing.T) {
	cases := []struct {
		name    string
		fen     string
		present []string
		absent  []string
	}{
		{"both sides open", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1g1", "e1c1"}, nil},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", nil, []string{"e1g1", "e1c1"}},
		{"path blocked", "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1", nil, []string{"e1g1", "e1c1"}},
		{"b-file blocked only matters for queen side", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", []string{"e1g1"}, []string{"e1c1"}},
		{"in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", nil, []string{"e1g1", "e1c1"}},
		{"transit attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", []string{"e1c1"}, []string{"e1g1"}},
		{"queen side transit attacked", "r3k2r/8/8/8/8/8/3r4/R3K2R w KQkq - 0 1", []string{"e1g1"}, []string{"e1c1"}},
		{"landing attacked", "r3k2r/8/8/8/8/8/6r1/R3K2R w KQkq - 0 1", []string{"e1c1"}, []string{"e1g1"}},
		{"b1 attacked is fine", "r3k2r/8/8/8/8/8/1r6/R3K2R w KQkq - 0 1", []string{"e1c1", "e1g1"}, nil},
		{"black", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"e8g8", "e8c8"}, nil},
	}
	for _, c := range cases {
		p := chessmg.FromFEN(c.fen)
		set := moveSet(p.GenerateLegalMoves())
		for _, m := range c.present {
			if !set[m] {
				t.Errorf("%s: %s should be legal", c.name, m)
			}
		}
		for _, m := range c.absent {
			if set[m] {
				t.Errorf("%s: %s should not be legal", c.name, m)
			}
		}
	}
}

func TestLegalityFilter(t *testing.T) {
	// pinned knight on e2 cannot move
	p := chessmg.FromFEN("4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1")
	for _, m := range p.GenerateLegalMoves() {
		if m.From == chessmg.NewSquare(4, 1) {
			t.Fatalf("pinned knight move %s generated", m)
		}
	}
	// the king must leave check
	p = chessmg.FromFEN("7k/6Q1/8/8/8/8/8/K7 b - - 0 1")
	moves := p.GenerateLegalMoves()
	if len(moves) != 1 || moves[0].String() != "h8g7" {
		t.Fatalf("expected only h8g7, got %v", moves)
	}
	if !p.HasLegalMoves() {
		t.Fatalf("HasLegalMoves disagrees with GenerateLegalMoves")
	}
}

func TestMateAndStalemateHaveNoMoves(t *testing.T) {
	mate := chessmg.FromFEN("7k/6Q1/6K1/8/8/8/8/8 b - - 0 1")
	if mate.HasLegalMoves() || !mate.IsInCheck(chessmg.Black) {
		t.Fatalf("expected checkmate")
	}
	stale := chessmg.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if stale.HasLegalMoves() || stale.IsInCheck(chessmg.Black) {
		t.Fatalf("expected stalemate")
	}
}

func TestGenerationOrderIsStable(t *testing.T) {
	p := chessmg.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	first := p.GenerateLegalMoves()
	for i := 0; i < 3; i++ {
		again := p.GenerateLegalMoves()
		if len(again) != len(first) {
			t.Fatalf("move count changed: %d vs %d", len(again), len(first))
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("order changed at %d: %s vs %s", j, first[j], again[j])
			}
		}
	}
}

func TestCapturesAreLegalCaptures(t *testing.T) {
	p := chessmg.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	legal := moveSet(p.GenerateLegalMoves())
	caps := p.GenerateCaptures()
	if len(caps) != 8 {
		t.Fatalf("kiwipete captures: got %d want 8", len(caps))
	}
	for _, m := range caps {
		if !legal[m.String()] || !p.IsCapture(m) {
			t.Fatalf("%s is not a legal capture", m)
		}
	}
}

func TestNewPositionAppliesMoves(t *testing.T) {
	p, err := chessmg.NewPosition("startpos", []string{"e2e4", "e7e5", "g1f3"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.ToFEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if _, err := chessmg.NewPosition("startpos", []string{"e2e5"}); err == nil {
		t.Fatalf("expected illegal move error")
	}
	if _, err := chessmg.NewPosition("startpos", []string{"e2"}); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := chessmg.NewPosition("not a fen", nil); err == nil {
		t.Fatalf("expected FEN error")
	}
}
