// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ RECENT-REQUESTS TAG TABLES
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Best-Offset Prefetcher Model
// Component: Two-Sided Recency Table (RR Left / RR Right)
//
// Description:
//   Fixed-capacity membership tables over truncated cache-line tags. The left
//   side records recently observed base accesses, the right side records
//   prefetch-confirmed lines. Insertion is an unconditional slot overwrite at
//   a hashed index; membership is a raw linear scan of both sides.
//
// Design Principles:
//   - Power-of-2 capacity, all index math mask-based
//   - The two sides fold the line address by different shift amounts so a
//     simultaneous coincidental collision on both is unlikely
//   - Lookup scans rather than indexes: a tag hypothesised from an offset
//     need not land in the slot the insert-side hash would pick
//   - Zero allocation after construction, stale entries tolerated
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package rrtable

import (
	"errors"

	"main/utils"
)

// Way selects a table side.
type Way uint

const (
	// Left records recently observed base accesses.
	Left Way = 0
	// Right records prefetch-confirmed lines.
	Right Way = 1
)

// ErrNotPow2 rejects capacities whose log2 the fold/mask math cannot use.
var ErrNotPow2 = errors.New("rrtable: number of RR entries is not power of 2")

// Table holds both sides. One prefetcher instance owns one Table; no
// concurrent access exists on the event path.
type Table struct {
	left    []uint64 // tags, indexed by Index(·, Left)
	right   []uint64 // tags, indexed by Index(·, Right)
	lg      uint     // log2(entries)
	entries uint64
}

// New builds both sides at the given capacity. Capacity must be a non-zero
// power of two.
func New(entries uint64) (*Table, error) {
	if !utils.IsPow2(entries) {
		return nil, ErrNotPow2
	}
	return &Table{
		left:    make([]uint64, entries),
		right:   make([]uint64, entries),
		lg:      utils.FloorLog2(entries),
		entries: entries,
	}, nil
}

// Index maps a cache-line address to a slot on the chosen side.
// The line address is XOR-folded with itself shifted right by log2(entries)
// for the left side and log2(entries)·2 for the right side (the way doubles
// the shift), masked to log2(entries) bits.
//
//go:inline
func (t *Table) Index(lineAddr uint64, way Way) uint64 {
	hash := lineAddr ^ (lineAddr >> (t.lg << way))
	hash &= (1 << t.lg) - 1
	return hash % t.entries
}

// Insert overwrites the slot for lineAddr on the chosen side with tag.
// Last writer wins; there is no chaining and no eviction bookkeeping.
//
//go:inline
func (t *Table) Insert(lineAddr, tag uint64, way Way) {
	switch way {
	case Left:
		t.left[t.Index(lineAddr, Left)] = tag
	case Right:
		t.right[t.Index(lineAddr, Right)] = tag
	}
}

// Contains scans both sides (left first) for an exact tag match.
// Intentionally a table scan, not an indexed probe: see the package header.
//
//go:inline
func (t *Table) Contains(tag uint64) bool {
	for _, v := range t.left {
		if v == tag {
			return true
		}
	}
	for _, v := range t.right {
		if v == tag {
			return true
		}
	}
	return false
}
