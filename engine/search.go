package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"superengine/chessmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	Infinity      = 32000
	MateScore     = 31000
	MateThreshold = 30000
	DrawScore     = 0
)

// =============================================================================
// PRUNING PARAMETERS
// =============================================================================
const (
	NullMoveMinDepth  = 3
	NullMoveReduction = 3
	LMRMoveLimit      = 3
	LMRDepthLimit     = 3
	LMRReduction      = 2
)

// Evaluator is the static evaluation oracle. Scores are relative to the
// side to move, larger is better for it.
type Evaluator interface {
	Evaluate(pos *chessmg.Position) int
}

type Result struct {
	Move    chessmg.Move
	Score   int
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
}

// Searcher owns the transposition table for an engine session. Top-level
// calls are serialized; killers and history start empty on every call.
type Searcher struct {
	mu    sync.Mutex
	cfg   Config
	eval  Evaluator
	tt    *TransTable
	log   zerolog.Logger
	stats CutStatistics
}

func New(eval Evaluator, opts ...Option) *Searcher {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Threads = Clamp(cfg.Threads, 1, maxThreads)
	return &Searcher{
		cfg:  cfg,
		eval: eval,
		tt:   NewTransTable(cfg.HashMB),
		log:  cfg.Logger,
	}
}

// Reset empties the transposition table.
func (s *Searcher) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tt.clear()
	s.stats = CutStatistics{}
}

// Stats returns the cut statistics of the last search, all workers summed.
func (s *Searcher) Stats() CutStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Search runs a single fixed-depth pass with no budget.
func (s *Searcher) Search(pos *chessmg.Position, depth int) int {
	return s.SearchThreads(pos, depth, 1)
}

// SearchThreads is Search with extra helper workers warming the shared
// table. The score is always the canonical worker's, so it matches Search.
func (s *Searcher) SearchThreads(pos *chessmg.Position, depth, threads int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tt.newSearch()
	depth = Clamp(depth, 0, MaxDepth)

	root := s.newWorker(canonicalOwner, budget{}, nil)
	helpers := s.startHelpers(pos, depth, Clamp(threads, 1, maxThreads))
	score, _ := root.searchRoot(pos, depth)
	s.finish(root, helpers)
	return score
}

// SearchLimits runs iterative deepening under limits and returns the score
// of the last completed depth.
func (s *Searcher) SearchLimits(pos *chessmg.Position, limits Limits) int {
	return s.BestMove(pos, limits).Score
}

// BestMove deepens one ply at a time until the depth limit, the budget or a
// mate score. A pass cut short by the budget is thrown away.
func (s *Searcher) BestMove(pos *chessmg.Position, limits Limits) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tt.newSearch()

	b := newBudget(limits)
	maxDepth := b.depthLimit(limits)
	threads := limits.Threads
	if threads <= 0 {
		threads = s.cfg.Threads
	}

	root := s.newWorker(canonicalOwner, b, nil)
	helpers := s.startHelpers(pos, maxDepth, Clamp(threads, 1, maxThreads))

	var res Result
	for depth := 1; depth <= maxDepth; depth++ {
		score, best := root.searchRoot(pos, depth)
		if root.halted {
			break
		}
		res.Score, res.Move, res.Depth = score, best, depth

		elapsed := b.elapsed()
		s.log.Info().
			Int("depth", depth).
			Str("score", ScoreString(score)).
			Uint64("nodes", root.nodes).
			Uint64("nps", nps(root.nodes, elapsed)).
			Dur("elapsed", elapsed).
			Stringer("move", best).
			Msg("depth complete")

		if best.IsNull() || Abs(score) > MateThreshold {
			break
		}
	}

	if res.Depth == 0 {
		res.Score = root.evaluate(pos)
		res.Move = fallbackMove(pos)
	}
	res.Nodes = s.finish(root, helpers)
	res.Elapsed = b.elapsed()
	return res
}

// finish stops the helpers and folds every worker's counters into the
// Searcher. It returns the total node count.
func (s *Searcher) finish(root *worker, helpers *helperPool) uint64 {
	nodes, stats := helpers.finish()
	nodes += root.nodes
	stats.add(root.stats)
	s.stats = stats
	s.log.Debug().
		Uint64("nodes", nodes).
		Int("helpers", len(helpers.workers)).
		Object("cuts", stats).
		Msg("search finished")
	return nodes
}

func nps(nodes uint64, elapsed time.Duration) uint64 {
	ms := Max(elapsed.Milliseconds(), 1)
	return nodes * 1000 / uint64(ms)
}

// worker is one search thread's private state. Only the transposition table
// is shared.
type worker struct {
	id       uint8
	eval     Evaluator
	tt       *TransTable
	budget   budget
	stop     *atomic.Bool
	halted   bool
	nodes    uint64
	killers  KillerStruct
	history  HistoryTable
	stats    CutStatistics
	rootMove chessmg.Move
}

func (s *Searcher) newWorker(id uint8, b budget, stop *atomic.Bool) *worker {
	return &worker{id: id, eval: s.eval, tt: s.tt, budget: b, stop: stop}
}

// out polls the budget and the stop flag. Once it reports true the worker
// stays halted and every frame unwinds.
func (w *worker) out() bool {
	if w.halted {
		return true
	}
	if (w.stop != nil && w.stop.Load()) || w.budget.exceeded(w.nodes) {
		w.halted = true
	}
	return w.halted
}

// evaluate keeps oracle scores clear of the mate range.
func (w *worker) evaluate(pos *chessmg.Position) int {
	return Clamp(w.eval.Evaluate(pos), -MateThreshold+1, MateThreshold-1)
}

func (w *worker) searchRoot(pos *chessmg.Position, depth int) (int, chessmg.Move) {
	w.rootMove = chessmg.NullMove
	score := w.pvNode(pos, -Infinity, Infinity, depth, 0)
	return score, w.rootMove
}

func (w *worker) pvNode(pos *chessmg.Position, alpha, beta, depth, ply int) int {
	w.nodes++
	if w.out() || ply >= MaxPly {
		return w.evaluate(pos)
	}
	isRoot := ply == 0

	/*
		TRANSPOSITION TABLE LOOKUP
		The root always searches so it can name a move.
	*/
	posHash := pos.Hash()
	var ttMove chessmg.Move
	if entry, ok := w.tt.probe(posHash, w.id); ok {
		ttMove = entry.Move
		if score, usable := useEntry(entry, depth, alpha, beta, ply); usable && !isRoot {
			w.stats.TTCutoffs++
			return score
		}
	}

	allMoves := pos.GenerateLegalMoves()
	inCheck := pos.IsInCheck(pos.SideToMove())
	if len(allMoves) == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return DrawScore
	}

	if depth <= 0 {
		return w.quiescence(pos, alpha, beta, ply)
	}

	/*
		NULL MOVE PRUNING
		Pass the turn and search shallower with a null window around beta.
		A null search cannot prove a mate, so mate scores never prune.
	*/
	if depth >= NullMoveMinDepth && !inCheck && !isRoot {
		child := *pos
		child.PassTurn()
		score := -w.pvNode(&child, -beta, -beta+1, depth-NullMoveReduction, ply+1)
		if w.halted {
			return alpha
		}
		if score >= beta && score < MateThreshold {
			w.stats.NullMoveCutoffs++
			w.tt.store(posHash, w.id, depth, ply, chessmg.NullMove, score, BetaFlag)
			return score
		}
	}

	moveList := w.scoreMoves(pos, allMoves, depth, ttMove)
	bestMove := chessmg.NullMove
	ttFlag := AlphaFlag

	for index := range moveList.moves {
		orderNextMove(index, &moveList)
		move := moveList.moves[index].move

		child := *pos
		child.ApplyMove(move)

		/*
			LATE MOVE REDUCTIONS
			Late moves get a reduced null-window look first and only earn a
			full search if they beat alpha.
		*/
		var score int
		if index >= LMRMoveLimit && depth >= LMRDepthLimit {
			score = -w.pvNode(&child, -alpha-1, -alpha, depth-LMRReduction, ply+1)
			if score > alpha && !w.halted {
				w.stats.LMRResearches++
				score = -w.pvNode(&child, -beta, -alpha, depth-1, ply+1)
			}
		} else {
			score = -w.pvNode(&child, -beta, -alpha, depth-1, ply+1)
		}
		if w.halted {
			return alpha
		}

		// Beta cutoff
		if score >= beta {
			w.stats.BetaCutoffs++
			w.killers.InsertKiller(move, depth)
			w.history.add(move, depth*depth)
			w.tt.store(posHash, w.id, depth, ply, move, score, BetaFlag)
			if isRoot {
				w.rootMove = move
			}
			return score
		}

		// Alpha improvement
		if score > alpha {
			alpha = score
			bestMove = move
			ttFlag = ExactFlag
			w.history.add(move, depth)
			if isRoot {
				w.rootMove = move
			}
		}
	}

	w.tt.store(posHash, w.id, depth, ply, bestMove, alpha, ttFlag)
	return alpha
}

// quiescence only follows captures, standing pat on the static score.
func (w *worker) quiescence(pos *chessmg.Position, alpha, beta, ply int) int {
	w.nodes++
	standpat := w.evaluate(pos)
	if w.out() || ply >= MaxPly {
		return standpat
	}

	if standpat >= beta {
		w.stats.QStandPatCutoffs++
		return standpat
	}
	alpha = Max(alpha, standpat)

	moveList := scoreCaptures(pos, pos.GenerateCaptures())
	for index := range moveList.moves {
		orderNextMove(index, &moveList)
		child := *pos
		child.ApplyMove(moveList.moves[index].move)

		score := -w.quiescence(&child, -beta, -alpha, ply+1)
		if w.halted {
			return alpha
		}
		if score >= beta {
			w.stats.QBetaCutoffs++
			return score
		}
		alpha = Max(alpha, score)
	}
	return alpha
}
