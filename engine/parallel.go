package engine

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"superengine/chessmg"
)

const maxThreads = 64

// helperPool runs the non-canonical workers. They search their own copy of
// the root, odd ids one ply deeper, and only matter through the shared
// table.
type helperPool struct {
	stop    atomic.Bool
	g       errgroup.Group
	workers []*worker
}

func (s *Searcher) startHelpers(pos *chessmg.Position, depth, threads int) *helperPool {
	hp := &helperPool{}
	for id := 1; id < threads; id++ {
		w := s.newWorker(uint8(id), budget{}, &hp.stop)
		hp.workers = append(hp.workers, w)
		root := *pos
		target := Min(depth+(id&1), MaxDepth)
		hp.g.Go(func() error {
			for d := 1; d <= target && !w.out(); d++ {
				w.searchRoot(&root, d)
			}
			return nil
		})
	}
	return hp
}

// finish signals every helper, waits for them and sums their counters.
func (hp *helperPool) finish() (uint64, CutStatistics) {
	hp.stop.Store(true)
	_ = hp.g.Wait()
	var nodes uint64
	var stats CutStatistics
	for _, w := range hp.workers {
		nodes += w.nodes
		stats.add(w.stats)
	}
	return nodes, stats
}
