package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"superengine/chessmg"
	"superengine/engine"
	"superengine/eval"
	"superengine/internal/logx"
)

func main() {
	fenFlag := flag.String("fen", "startpos", "FEN to search, or startpos")
	movesFlag := flag.String("moves", "", "space separated moves to play first, e.g. \"e2e4 e7e5\"")
	depthFlag := flag.Int("depth", 0, "maximum depth in plies (0 = until the budget runs out)")
	nodesFlag := flag.Uint64("nodes", 0, "node budget (0 = none)")
	moveTime := flag.Duration("movetime", 0, "time budget, e.g. 500ms (0 = none)")
	threads := flag.Int("threads", 1, "search workers sharing the hash table")
	hashMB := flag.Int("hash", engine.DefaultHashMB, "transposition table size in MiB")
	netPath := flag.String("net", "", "network weights (.bin or .bin.zst); material eval when empty")
	repeat := flag.Int("repeat", 1, "number of searches to run")
	level := flag.String("log", "info", "log level")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	log := logx.NewLogger(os.Stderr, logx.ParseLevel(*level))

	pos, err := chessmg.NewPosition(*fenFlag, strings.Fields(*movesFlag))
	if err != nil {
		log.Fatal().Err(err).Msg("set up position")
	}

	var evaluator engine.Evaluator = eval.Material{}
	if *netPath != "" {
		net, err := eval.LoadNetworkFile(*netPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load network")
		}
		evaluator = net
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	searcher := engine.New(evaluator,
		engine.WithHashMB(*hashMB),
		engine.WithThreads(*threads),
		engine.WithLogger(log),
	)
	limits := engine.Limits{Depth: *depthFlag, Nodes: *nodesFlag, MoveTime: *moveTime}
	log.Info().Str("fen", pos.ToFEN()).Interface("limits", limits).Int("repeat", *repeat).Msg("search")

	startAll := time.Now()
	for i := 0; i < *repeat; i++ {
		searcher.Reset()
		res := searcher.BestMove(&pos, limits)
		fmt.Printf("bestmove %s score %s depth %d nodes %d time %v\n",
			res.Move, engine.ScoreString(res.Score), res.Depth, res.Nodes, res.Elapsed)
	}
	log.Info().Dur("total", time.Since(startAll)).Msg("done")

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}
