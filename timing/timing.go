// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: timing.go — Simulated-time scheduler for the prefetcher model
//
// Purpose:
//   - Defines Tick (simulated time) and the one-method-pair Scheduler
//     contract the delay line arms its timer against.
//   - Provides Engine, a deterministic run-to-time event engine used by the
//     trace runner and by every test that needs timer behavior.
//
// Notes:
//   - Single-owner, no locking: all scheduling happens from the one event
//     path that owns the prefetcher (see the concurrency model in bop).
//   - Events fire in (tick, arrival) order; a callback may schedule further
//     events, including at the current tick.
//   - Time never runs backwards; a past due-time fires on the next advance.
// ─────────────────────────────────────────────────────────────────────────────

package timing

// Tick is a point in simulated time.
type Tick int64

// Scheduler is the surface the prefetcher core needs from its surrounding
// event loop: the current time and a way to arm a callback at a future time.
type Scheduler interface {
	Now() Tick
	Schedule(at Tick, fn func())
}

type event struct {
	at  Tick
	seq uint64 // arrival order, breaks ties deterministically
	fn  func()
}

// Engine is a deterministic discrete-event engine. Pending events live in a
// small unsorted slice; the population is bounded (one delay-line timer plus
// in-flight fills), so a linear min-scan beats heap bookkeeping.
type Engine struct {
	now     Tick
	seq     uint64
	pending []event
}

// NewEngine starts an engine at tick 0.
func NewEngine() *Engine { return &Engine{} }

// Now returns the current simulated time.
func (e *Engine) Now() Tick { return e.now }

// Schedule arms fn to run at the given tick. A tick in the past fires on
// the next advance, at the current time.
func (e *Engine) Schedule(at Tick, fn func()) {
	if at < e.now {
		at = e.now
	}
	e.pending = append(e.pending, event{at: at, seq: e.seq, fn: fn})
	e.seq++
}

// AdvanceTo runs every event due at or before target in (tick, arrival)
// order, then sets the clock to target. Callbacks may schedule further
// events; those also run if they fall within the window.
func (e *Engine) AdvanceTo(target Tick) {
	for {
		best := -1
		for i := range e.pending {
			if e.pending[i].at > target {
				continue
			}
			if best < 0 ||
				e.pending[i].at < e.pending[best].at ||
				(e.pending[i].at == e.pending[best].at && e.pending[i].seq < e.pending[best].seq) {
				best = i
			}
		}
		if best < 0 {
			break
		}
		ev := e.pending[best]
		e.pending[best] = e.pending[len(e.pending)-1]
		e.pending = e.pending[:len(e.pending)-1]
		if ev.at > e.now {
			e.now = ev.at
		}
		ev.fn()
	}
	if target > e.now {
		e.now = target
	}
}

// Pending returns how many events are armed. Diagnostics and tests.
func (e *Engine) Pending() int { return len(e.pending) }

// Drain runs all remaining events in order, however far in the future.
func (e *Engine) Drain() {
	for len(e.pending) > 0 {
		furthest := e.pending[0].at
		for _, ev := range e.pending[1:] {
			if ev.at > furthest {
				furthest = ev.at
			}
		}
		e.AdvanceTo(furthest)
	}
}
