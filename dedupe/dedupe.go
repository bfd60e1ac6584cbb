// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: dedupe.go — Issued-prefetch duplicate filter
//
// Purpose:
//   - Suppresses re-issuing a prefetch for a line that was recommended
//     moments ago. The core engine deliberately does no deduplication
//     (that belongs to the consumer); this ring is that consumer-side
//     filter for the trace runner.
//
// Notes:
//   - Fixed power-of-two ring indexed by a mixed hash of the line address.
//   - Collisions evict: a colliding newcomer simply overwrites the slot.
//     False "new" answers cost one redundant prefetch, never correctness.
//
// ⚠️ Not thread-safe; owned by the single trace-runner loop.
// ─────────────────────────────────────────────────────────────────────────────

package dedupe

import (
	"main/constants"
	"main/utils"
)

// Filter is a lossy ring of recently issued prefetch line addresses.
type Filter struct {
	slots [1 << constants.DedupeRingBits]uint64 // lineAddr+1; 0 = empty
}

// Check reports whether lineAddr is NEW and should be issued, recording it
// either way. Stored shifted by one so line 0 is distinguishable from an
// empty slot.
//
//go:inline
func (f *Filter) Check(lineAddr uint64) bool {
	slot := &f.slots[utils.Mix64(lineAddr)&((1<<constants.DedupeRingBits)-1)]
	if *slot == lineAddr+1 {
		return false
	}
	*slot = lineAddr + 1
	return true
}

// Reset clears the ring.
func (f *Filter) Reset() {
	for i := range f.slots {
		f.slots[i] = 0
	}
}
