// Package crosscheck compares chessmg against the dragontoothmg move
// generator. It backs the perft verification tool and the generator tests.
package crosscheck

import (
	"sort"

	"github.com/dylhunn/dragontoothmg"

	"superengine/chessmg"
)

// Perft counts leaf nodes with dragontoothmg.
func Perft(fen string, depth int) uint64 {
	b := dragontoothmg.ParseFen(fen)
	return perft(&b, depth)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += perft(b, depth-1)
		undo()
	}
	return nodes
}

// LegalMoves returns dragontoothmg's legal moves for fen in coordinate
// notation, sorted.
func LegalMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	moves := b.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i := range moves {
		out[i] = moves[i].String()
	}
	sort.Strings(out)
	return out
}

func chessmgMoves(pos *chessmg.Position) []string {
	moves := pos.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// Diff lists moves dragontoothmg allows that chessmg does not generate
// (missing) and moves chessmg generates that dragontoothmg rejects (extra).
func Diff(pos *chessmg.Position) (missing, extra []string) {
	want := LegalMoves(pos.ToFEN())
	got := chessmgMoves(pos)
	i, j := 0, 0
	for i < len(want) || j < len(got) {
		switch {
		case j == len(got) || (i < len(want) && want[i] < got[j]):
			missing = append(missing, want[i])
			i++
		case i == len(want) || got[j] < want[i]:
			extra = append(extra, got[j])
			j++
		default:
			i++
			j++
		}
	}
	return missing, extra
}

// Divergence is the first position where the two generators disagree.
type Divergence struct {
	FEN     string
	Missing []string
	Extra   []string
}

// FindDivergence walks the tree below pos up to depth plies and returns the
// first disagreeing position, depth-first in chessmg's move order.
func FindDivergence(pos *chessmg.Position, depth int) (Divergence, bool) {
	if depth <= 0 {
		return Divergence{}, false
	}
	if missing, extra := Diff(pos); len(missing)+len(extra) > 0 {
		return Divergence{FEN: pos.ToFEN(), Missing: missing, Extra: extra}, true
	}
	for _, m := range pos.GenerateLegalMoves() {
		child := *pos
		child.ApplyMove(m)
		if d, ok := FindDivergence(&child, depth-1); ok {
			return d, true
		}
	}
	return Divergence{}, false
}
