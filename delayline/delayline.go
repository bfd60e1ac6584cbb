// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ RR INSERTION DELAY LINE
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Best-Offset Prefetcher Model
// Component: Bounded Access-to-Table Delay Queue
//
// Description:
//   Models the latency between observing a demand access and that access
//   becoming testable in the recent-requests table. Entries carry a due-time;
//   a single timer is armed for the earliest due entry and re-armed while
//   work remains. A full queue drops new work like a hardware buffer —
//   it never stalls the access path and never errors.
//
// Design Principles:
//   - Fixed-capacity ring, zero allocation after construction
//   - At most one outstanding timer; arming is idempotent by flag check
//   - FIFO drain: due entries deliver in arrival order
//
// ⚠️ Single-owner only: Push and the timer callback run on the same event
//    path, never concurrently.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package delayline

import "main/timing"

type entry struct {
	addr uint64
	due  timing.Tick
}

// Queue defers delivery of addresses by a fixed tick delay.
type Queue struct {
	buf     []entry // ring storage, len == capacity
	head    int     // oldest entry
	count   int
	delay   timing.Tick
	sched   timing.Scheduler
	deliver func(addr uint64) // invoked for each due entry, FIFO order
	armed   bool              // a timer callback is outstanding
}

// New builds a delay line of the given capacity. A zero capacity is legal
// and drops everything, matching a disabled buffer.
func New(capacity int, delay timing.Tick, sched timing.Scheduler, deliver func(uint64)) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue{
		buf:     make([]entry, capacity),
		delay:   delay,
		sched:   sched,
		deliver: deliver,
	}
}

// Push enqueues addr for delivery at now+delay. When the queue is full the
// address is dropped; the return value reports acceptance so callers can
// count drops, but a drop is not an error.
func (q *Queue) Push(addr uint64) bool {
	if q.count == len(q.buf) {
		return false
	}
	due := q.sched.Now() + q.delay
	q.buf[(q.head+q.count)%len(q.buf)] = entry{addr: addr, due: due}
	q.count++
	if !q.armed {
		q.armed = true
		q.sched.Schedule(due, q.onTimer)
	}
	return true
}

// Len returns the number of queued entries.
func (q *Queue) Len() int { return q.count }

// onTimer drains every entry whose due-time has arrived, in FIFO order,
// then re-arms for the new head if entries remain.
func (q *Queue) onTimer() {
	q.armed = false
	now := q.sched.Now()
	for q.count > 0 && q.buf[q.head].due <= now {
		addr := q.buf[q.head].addr
		q.head = (q.head + 1) % len(q.buf)
		q.count--
		q.deliver(addr)
	}
	if q.count > 0 {
		q.armed = true
		q.sched.Schedule(q.buf[q.head].due, q.onTimer)
	}
}
