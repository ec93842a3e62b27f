package engine

import (
	"sync"
	"unsafe"

	"superengine/chessmg"
)

const (
	// Flags
	AlphaFlag uint8 = iota // upper bound
	BetaFlag               // lower bound
	ExactFlag

	clusterSize = 4

	// canonicalOwner marks entries written by the worker whose result is
	// reported. Helpers use their worker id.
	canonicalOwner uint8 = 0
)

type TTEntry struct {
	Hash  uint64
	Score int32
	// Gen is the search generation that wrote the entry, 0 when empty.
	Gen   uint32
	Move  chessmg.Move
	Depth int8
	Flag  uint8
	Owner uint8
}

// TransTable is a clustered hash table shared by all workers of one
// Searcher. Access is serialized by a single mutex.
//
// Entries carry the worker that wrote them and the generation of the
// top-level search. The canonical worker only ever sees its own entries from
// the current generation and helpers never evict those, so the canonical
// traversal is the same whether or not helpers run.
type TransTable struct {
	mu           sync.Mutex
	entries      []TTEntry
	clusterCount uint64
	gen          uint32
}

func NewTransTable(mb int) *TransTable {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	totalBytes := uint64(Max(mb, 1)) * 1024 * 1024
	clusterCount := Max(totalBytes/(entrySize*clusterSize), 1)
	return &TransTable{
		entries:      make([]TTEntry, clusterCount*clusterSize),
		clusterCount: clusterCount,
	}
}

// newSearch starts a generation. Older entries become free slots for the
// canonical worker.
func (tt *TransTable) newSearch() {
	tt.mu.Lock()
	tt.gen++
	if tt.gen == 0 {
		tt.gen = 1
	}
	tt.mu.Unlock()
}

func (tt *TransTable) clear() {
	tt.mu.Lock()
	clear(tt.entries)
	tt.gen = 0
	tt.mu.Unlock()
}

func (tt *TransTable) cluster(hash uint64) []TTEntry {
	base := (hash % tt.clusterCount) * clusterSize
	return tt.entries[base : base+clusterSize]
}

func (tt *TransTable) pinned(e *TTEntry) bool {
	return e.Gen == tt.gen && e.Owner == canonicalOwner
}

// probe returns a copy of the entry visible to owner for hash. The canonical
// worker sees only its own current entries; helpers take the deepest match.
func (tt *TransTable) probe(hash uint64, owner uint8) (TTEntry, bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	var best *TTEntry
	cluster := tt.cluster(hash)
	for i := range cluster {
		e := &cluster[i]
		if e.Gen == 0 || e.Hash != hash {
			continue
		}
		if owner == canonicalOwner {
			if tt.pinned(e) {
				return *e, true
			}
			continue
		}
		if best == nil || e.Depth > best.Depth {
			best = e
		}
	}
	if best == nil {
		return TTEntry{}, false
	}
	return *best, true
}

// useEntry converts a probed entry into a cutoff score when its bound and
// depth allow it.
func useEntry(e TTEntry, depth int, alpha, beta int, ply int) (int, bool) {
	if int(e.Depth) < depth {
		return 0, false
	}
	score := int(e.Score)
	if score > MateThreshold {
		score -= ply
	} else if score < -MateThreshold {
		score += ply
	}
	switch e.Flag {
	case ExactFlag:
		return score, true
	case BetaFlag:
		return score, score >= beta
	case AlphaFlag:
		return score, score <= alpha
	}
	return 0, false
}

// store keeps depth-preferred results. A same-position entry is only
// replaced by an equal or deeper one. Otherwise the first free slot is used,
// then the shallowest slot the writer may evict.
func (tt *TransTable) store(hash uint64, owner uint8, depth, ply int, move chessmg.Move, score int, flag uint8) {
	// mate scores are stored relative to this node, not the root
	if score > MateThreshold {
		score += ply
	} else if score < -MateThreshold {
		score -= ply
	}

	tt.mu.Lock()
	defer tt.mu.Unlock()
	cluster := tt.cluster(hash)

	var target *TTEntry
	for i := range cluster {
		e := &cluster[i]
		if e.Hash != hash || e.Gen != tt.gen || tt.pinned(e) != (owner == canonicalOwner) {
			continue
		}
		if int(e.Depth) > depth {
			return
		}
		target = e
		break
	}
	if target == nil {
		target = tt.victim(cluster, owner)
	}
	if target == nil {
		return
	}
	*target = TTEntry{
		Hash:  hash,
		Score: int32(score),
		Gen:   tt.gen,
		Move:  move,
		Depth: int8(depth),
		Flag:  flag,
		Owner: owner,
	}
}

// victim picks the slot to overwrite. Free means empty, stale, or (for the
// canonical worker) written by a helper. Among equally shallow candidates the
// lowest hash loses, so the choice does not depend on slot order.
func (tt *TransTable) victim(cluster []TTEntry, owner uint8) *TTEntry {
	var pick *TTEntry
	for i := range cluster {
		e := &cluster[i]
		if e.Gen != tt.gen {
			return e
		}
		if owner == canonicalOwner && !tt.pinned(e) {
			return e
		}
	}
	for i := range cluster {
		e := &cluster[i]
		if owner != canonicalOwner && tt.pinned(e) {
			continue
		}
		if pick == nil || e.Depth < pick.Depth || (e.Depth == pick.Depth && e.Hash < pick.Hash) {
			pick = e
		}
	}
	return pick
}
