// ════════════════════════════════════════════════════════════════════════════════════════════════
// Best-Offset Prefetcher Model - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Best-Offset Prefetcher Model
// Component: Trace-Driven Runner & System Orchestration
//
// Description:
//   Drives the prefetcher with a memory-access trace under a deterministic
//   event engine. Each access advances simulated time by one tick; generated
//   prefetches pass the dedupe filter, and accepted ones are modelled as
//   fills arriving MemLatencyTicks later, closing the right-table feedback
//   loop. Phase commits and final counters stream into the run store.
//
// Architecture:
//   - Phase 1: Configuration load and component construction (all fatal)
//   - Phase 2: Trace replay through the event engine
//   - Phase 3: Drain, summary persistence and report
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"bufio"
	"os"

	"main/bop"
	"main/constants"
	"main/debug"
	"main/dedupe"
	"main/parser"
	"main/timing"
	"main/tracestore"
	"main/utils"

	_ "github.com/mattn/go-sqlite3"
)

func usage() {
	utils.PrintWarning("usage: bopsim <trace-file> [config.json] [runs.db]\n")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	tracePath := os.Args[1]
	dbPath := "bop_runs.db"

	// PHASE 1: configuration and construction — every failure is fatal here,
	// nothing fails later on the event path.
	cfg := bop.Default()
	if len(os.Args) >= 3 {
		var err error
		if cfg, err = bop.LoadConfig(os.Args[2]); err != nil {
			debug.DropError("CONFIG", err)
			os.Exit(1)
		}
	}
	if len(os.Args) >= 4 {
		dbPath = os.Args[3]
	}

	eng := timing.NewEngine()
	pf, err := bop.New(cfg, eng)
	if err != nil {
		debug.DropError("CONFIG", err)
		os.Exit(1)
	}

	store, err := tracestore.Open(dbPath)
	if err != nil {
		debug.DropError("STORE", err)
		os.Exit(1)
	}
	defer store.Close()

	cfgJSON, err := cfg.Marshal()
	if err != nil {
		debug.DropError("CONFIG", err)
		os.Exit(1)
	}
	fp, err := store.BeginRun(cfgJSON, tracePath)
	if err != nil {
		debug.DropError("STORE", err)
		os.Exit(1)
	}
	debug.DropMessage("RUN", fp[:16]+" ← "+tracePath)

	trace, err := os.Open(tracePath)
	if err != nil {
		debug.DropError("TRACE", err)
		os.Exit(1)
	}
	defer trace.Close()

	pf.SetCommitHook(func(ev bop.CommitEvent) {
		if err := store.RecordCommit(int64(ev.Tick), ev.Offset, ev.Score, ev.Issuing); err != nil {
			debug.DropError("STORE", err)
		}
	})

	// PHASE 2: trace replay. One tick per access keeps the delay line and
	// fill latencies proportional to trace position.
	var sum tracestore.Summary
	var filter dedupe.Filter
	lineLog2 := utils.FloorLog2(cfg.LineBytes)
	out := make([]bop.AddrPriority, 0, cfg.Degree)

	scan := bufio.NewScanner(trace)
	scan.Buffer(make([]byte, constants.MaxTraceLine), constants.MaxTraceLine)
	tick := timing.Tick(0)

	for scan.Scan() {
		addr, ok, skip := parser.Parse(scan.Bytes())
		if !ok {
			if !skip {
				sum.Malformed++
			}
			continue
		}

		tick++
		eng.AdvanceTo(tick)
		sum.Accesses++

		out = pf.Observe(addr, out[:0])
		for _, ap := range out {
			if !filter.Check(ap.Addr >> lineLog2) {
				sum.Suppressed++
				continue
			}
			sum.Issued++
			fillAddr := ap.Addr
			eng.Schedule(tick+constants.MemLatencyTicks, func() {
				pf.NotifyFill(fillAddr, true)
				sum.Filled++
			})
		}
	}
	if err := scan.Err(); err != nil {
		debug.DropError("TRACE", err)
	}

	// PHASE 3: drain outstanding timers, persist, report.
	eng.Drain()
	sum.Dropped = pf.Dropped()
	if err := store.WriteSummary(sum); err != nil {
		debug.DropError("STORE", err)
	}

	debug.DropMessage("DONE", utils.Itoa(int(sum.Accesses))+" accesses, "+
		utils.Itoa(int(sum.Issued))+" issued, "+
		utils.Itoa(int(sum.Suppressed))+" suppressed, "+
		utils.Itoa(int(sum.Filled))+" filled, "+
		utils.Itoa(int(sum.Dropped))+" dropped, "+
		utils.Itoa(int(sum.Malformed))+" malformed")
	if pf.Issuing() {
		debug.DropMessage("OFFSET", "issuing at "+utils.Itoa(int(pf.BestOffset())))
	} else {
		debug.DropMessage("OFFSET", "issuance off, last committed "+utils.Itoa(int(pf.BestOffset())))
	}
}
