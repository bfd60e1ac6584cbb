// Package delayline validates drop-on-full backpressure, FIFO delivery at
// the configured delay, and single-timer re-arming.
package delayline

import (
	"testing"

	"main/timing"
)

func collect(dst *[]uint64) func(uint64) {
	return func(a uint64) { *dst = append(*dst, a) }
}

// -----------------------------------------------------------------------------
// ░░ Delivery Timing ░░
// -----------------------------------------------------------------------------

func TestDeliversAfterDelay(t *testing.T) {
	eng := timing.NewEngine()
	var got []uint64
	q := New(4, 60, eng, collect(&got))

	q.Push(0x1000)
	eng.AdvanceTo(59)
	if len(got) != 0 {
		t.Fatalf("delivered %v before the delay elapsed", got)
	}
	eng.AdvanceTo(60)
	if len(got) != 1 || got[0] != 0x1000 {
		t.Fatalf("got %v, want [0x1000]", got)
	}
	if q.Len() != 0 {
		t.Fatalf("Len() = %d after drain, want 0", q.Len())
	}
}

func TestFIFOAcrossStaggeredPushes(t *testing.T) {
	eng := timing.NewEngine()
	var got []uint64
	q := New(8, 50, eng, collect(&got))

	q.Push(1) // due 50
	eng.AdvanceTo(10)
	q.Push(2) // due 60
	eng.AdvanceTo(20)
	q.Push(3) // due 70

	eng.AdvanceTo(200)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("delivery order %v, want [1 2 3]", got)
	}
}

func TestTimerReArmsForRemainder(t *testing.T) {
	eng := timing.NewEngine()
	var got []uint64
	q := New(8, 100, eng, collect(&got))

	q.Push(1) // due 100, arms timer
	eng.AdvanceTo(80)
	q.Push(2) // due 180, timer already armed — must not double-arm

	eng.AdvanceTo(100)
	if len(got) != 1 {
		t.Fatalf("after first due-time got %v, want one entry", got)
	}
	// Re-armed for entry 2.
	if eng.Pending() != 1 {
		t.Fatalf("pending timers = %d, want exactly 1", eng.Pending())
	}
	eng.AdvanceTo(180)
	if len(got) != 2 || got[1] != 2 {
		t.Fatalf("after second due-time got %v, want [1 2]", got)
	}
	if eng.Pending() != 0 {
		t.Fatal("timer left armed with an empty queue")
	}
}

// -----------------------------------------------------------------------------
// ░░ Backpressure ░░
// -----------------------------------------------------------------------------

func TestDropOnFull(t *testing.T) {
	eng := timing.NewEngine()
	var got []uint64
	q := New(1, 60, eng, collect(&got))

	if !q.Push(0xA) {
		t.Fatal("first push must be accepted")
	}
	if q.Push(0xB) {
		t.Fatal("second push must be dropped at capacity 1")
	}
	eng.AdvanceTo(1000)
	if len(got) != 1 || got[0] != 0xA {
		t.Fatalf("got %v, want only the first entry", got)
	}
}

func TestZeroCapacityDropsEverything(t *testing.T) {
	eng := timing.NewEngine()
	var got []uint64
	q := New(0, 10, eng, collect(&got))
	if q.Push(1) {
		t.Fatal("zero-capacity queue must drop")
	}
	eng.AdvanceTo(100)
	if len(got) != 0 {
		t.Fatalf("zero-capacity queue delivered %v", got)
	}
}

func TestCapacityFreesAfterDrain(t *testing.T) {
	eng := timing.NewEngine()
	var got []uint64
	q := New(1, 10, eng, collect(&got))
	q.Push(1)
	eng.AdvanceTo(10)
	if !q.Push(2) {
		t.Fatal("slot must be reusable after drain")
	}
	eng.AdvanceTo(20)
	if len(got) != 2 {
		t.Fatalf("got %v, want both entries", got)
	}
}
