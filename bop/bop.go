// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ BEST-OFFSET PREFETCH ENGINE
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Best-Offset Prefetcher Model
// Component: Learning Engine, Request Generator & Fill Observer
//
// Description:
//   Online learning state machine over the offset catalog. Each observed
//   access tests exactly one candidate offset against the recent-requests
//   table; a phase concludes on a score or round threshold, committing the
//   winning offset and gating speculative request generation. Fill
//   notifications for this prefetcher's own requests feed the right-side
//   table, letting later phases confirm the committed offset independently
//   of raw access history.
//
// Threading model:
//   - One owner: access, fill and timer events are delivered sequentially
//     by the surrounding scheduler, never concurrently, never reentrantly.
//   - Nothing blocks; deferred work exists only as an armed timer.
//
// Failure semantics:
//   - All error conditions are configuration errors caught by New.
//     The event path has no failure modes: every index is produced by
//     mask/modulo arithmetic and in range by construction.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package bop

import (
	"main/delayline"
	"main/offsetcat"
	"main/rrtable"
	"main/timing"
	"main/utils"
)

// LowestPriority is the fixed priority attached to every generated
// address. Promotion, if any, is the consumer's call.
const LowestPriority = 0

// AddrPriority is one generated prefetch candidate.
type AddrPriority struct {
	Addr     uint64
	Priority int
}

// CommitEvent describes one concluded learning phase.
type CommitEvent struct {
	Tick    timing.Tick
	Offset  int64  // committed best offset (unchanged when issuance turned off)
	Score   uint32 // the phase-best score that decided the conclusion
	Issuing bool
}

// Prefetcher is one best-offset prefetcher instance. All tables and state
// are exclusively owned; see the threading model above.
type Prefetcher struct {
	cfg   Config
	sched timing.Scheduler

	cat *offsetcat.Catalog
	rr  *rrtable.Table
	dq  *delayline.Queue // nil when the delay queue is disabled

	tagMask  uint64
	lineLog2 uint

	// Learning state. bestOffset and issue persist across phases; the rest
	// resets every phase conclusion.
	issue           bool
	bestOffset      int64
	phaseBestOffset int64
	bestScore       uint32
	round           uint32

	dropped  uint64 // delay-line overflow count (diagnostics only)
	onCommit func(CommitEvent)
}

// New validates cfg and builds a prefetcher bound to the given scheduler.
// Every violation is fatal here; no partially constructed instance escapes.
func New(cfg Config, sched timing.Scheduler) (*Prefetcher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cat, err := offsetcat.New(cfg.OffsetListSize, cfg.NegativeOffsets)
	if err != nil {
		return nil, err
	}
	rr, err := rrtable.New(cfg.RREntries)
	if err != nil {
		return nil, err
	}

	p := &Prefetcher{
		cfg:      cfg,
		sched:    sched,
		cat:      cat,
		rr:       rr,
		tagMask:  (1 << cfg.TagBits) - 1,
		lineLog2: utils.FloorLog2(cfg.LineBytes),
		// Until the first phase commits, bestOffset holds the trivial
		// next-line offset and issuance stays off.
		bestOffset: 1,
	}
	if cfg.DelayQueueEnable {
		p.dq = delayline.New(cfg.DelayQueueSize, timing.Tick(cfg.DelayTicks), sched, p.insertLeft)
	}
	return p, nil
}

// SetCommitHook registers a callback fired at each phase conclusion.
// The trace runner uses it for persistence; the core never depends on it.
func (p *Prefetcher) SetCommitHook(fn func(CommitEvent)) { p.onCommit = fn }

// Issuing reports whether request generation is currently enabled.
func (p *Prefetcher) Issuing() bool { return p.issue }

// BestOffset returns the committed offset request generation uses.
func (p *Prefetcher) BestOffset() int64 { return p.bestOffset }

// Dropped returns how many accesses the delay line has discarded.
func (p *Prefetcher) Dropped() uint64 { return p.dropped }

// tag truncates a full address to its line tag.
//
//go:inline
func (p *Prefetcher) tag(addr uint64) uint64 {
	return (addr >> p.lineLog2) & p.tagMask
}

// insertLeft records an access in the left recency table. Either called
// synchronously from Observe or deferred through the delay line.
func (p *Prefetcher) insertLeft(addr uint64) {
	p.rr.Insert(addr>>p.lineLog2, p.tag(addr), rrtable.Left)
}

// Observe handles one access notification: table insertion (direct or via
// the delay line), one learning step, and, while issuance is enabled, a
// burst of degree prefetch candidates appended to out. The append style
// keeps the per-access path allocation-free once out has capacity.
func (p *Prefetcher) Observe(addr uint64, out []AddrPriority) []AddrPriority {
	if p.dq != nil {
		if !p.dq.Push(addr) {
			p.dropped++
		}
	} else {
		p.insertLeft(addr)
	}

	p.learn(addr)

	if p.issue {
		for i := 1; i <= p.cfg.Degree; i++ {
			delta := (int64(i) * p.bestOffset) << p.lineLog2
			out = append(out, AddrPriority{
				Addr:     addr + uint64(delta), // two's-complement wrap for negative offsets
				Priority: LowestPriority,
			})
		}
	}
	return out
}

// learn runs one offset-candidate test and the phase-conclusion check.
func (p *Prefetcher) learn(addr uint64) {
	off := p.cat.Current()

	// Tags keep only the low bits, so the offset is subtracted from the
	// full address before shifting; subtracting in tag space would
	// underflow whenever the offset exceeds the address's low bits.
	// The wraparound at tag-space boundaries is observable behavior,
	// not an incidental detail. Do not simplify algebraically.
	lookupTag := p.tag(addr - uint64(off<<p.lineLog2))

	if p.rr.Contains(lookupTag) {
		// Strict > keeps the earlier candidate on score ties.
		if s := p.cat.Bump(); s > p.bestScore {
			p.bestScore = s
			p.phaseBestOffset = off
		}
	}

	if p.cat.Advance() {
		p.round++
	}

	if p.bestScore >= p.cfg.ScoreMax || p.round >= p.cfg.RoundMax {
		p.concludePhase()
	}
}

// concludePhase commits or disables, then resets all per-phase state.
func (p *Prefetcher) concludePhase() {
	score := p.bestScore

	p.round = 0
	if score > p.cfg.BadScore {
		p.bestOffset = p.phaseBestOffset
		p.issue = true
	} else {
		// The stale committed offset stays; it is simply unused while
		// issuance is off.
		p.issue = false
	}
	p.cat.ResetScores()
	p.bestScore = 0
	p.phaseBestOffset = 0

	if p.onCommit != nil {
		p.onCommit(CommitEvent{
			Tick:    p.sched.Now(),
			Offset:  p.bestOffset,
			Score:   score,
			Issuing: p.issue,
		})
	}
}

// NotifyFill handles one fill notification. Fills that did not originate
// from this prefetcher's own hardware requests are ignored. While issuing,
// the fill's tag minus the committed offset lands in the right table, so a
// later phase can confirm that "address minus offset" was prefetched.
func (p *Prefetcher) NotifyFill(addr uint64, isHWPrefetch bool) {
	if !isHWPrefetch {
		return
	}
	if !p.issue {
		return
	}
	// Tag-space subtraction, unmasked: a wrapped result simply never
	// matches a lookup tag, same as the hardware model.
	p.rr.Insert(addr>>p.lineLog2, p.tag(addr)-uint64(p.bestOffset), rrtable.Right)
}
