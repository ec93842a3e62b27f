package engine

import (
	"time"

	"superengine/chessmg"
)

// Limits bounds one search. Zero values mean "no limit" except Threads,
// where zero falls back to the Searcher's configuration.
type Limits struct {
	Depth    int
	Nodes    uint64
	MoveTime time.Duration
	Threads  int
}

// budget is polled at the top of every node.
type budget struct {
	maxNodes uint64
	start    time.Time
	deadline time.Time
}

func newBudget(l Limits) budget {
	b := budget{maxNodes: l.Nodes, start: time.Now()}
	if l.MoveTime > 0 {
		b.deadline = b.start.Add(l.MoveTime)
	}
	return b
}

// unlimited reports whether neither nodes nor time are bounded.
func (b *budget) unlimited() bool {
	return b.maxNodes == 0 && b.deadline.IsZero()
}

func (b *budget) exceeded(nodes uint64) bool {
	if b.maxNodes != 0 && nodes >= b.maxNodes {
		return true
	}
	return !b.deadline.IsZero() && !time.Now().Before(b.deadline)
}

func (b *budget) elapsed() time.Duration { return time.Since(b.start) }

// depthLimit picks the last iterative deepening depth. Without any budget
// and without an explicit depth only one pass is run.
func (b *budget) depthLimit(l Limits) int {
	switch {
	case l.Depth > 0:
		return Min(l.Depth, MaxDepth)
	case b.unlimited():
		return 1
	default:
		return MaxDepth
	}
}

// fallbackMove is what gets played when not even depth 1 finished.
func fallbackMove(pos *chessmg.Position) chessmg.Move {
	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		return chessmg.NullMove
	}
	return moves[0]
}
