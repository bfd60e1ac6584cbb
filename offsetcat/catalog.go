// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ BEST-OFFSET CANDIDATE CATALOG
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Best-Offset Prefetcher Model
// Component: Fixed Offset Candidate List
//
// Description:
//   Precomputed list of candidate prefetch offsets paired with running scores.
//   Candidates are the integers whose only prime factors are {2, 3, 5}, in
//   ascending generator order, optionally interleaved with their negations.
//   The list is built once, never reordered, and traversed circularly by a
//   single cursor during learning.
//
// Design Principles:
//   - Parallel-array layout: offsets fixed at construction, scores mutable
//   - Explicit cursor index with modulo wrap, no iterator invalidation
//   - Zero allocation after construction
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package offsetcat

import "errors"

// ErrOddWithNegatives rejects catalogs where each positive offset cannot be
// paired with its negation.
var ErrOddWithNegatives = errors.New("offsetcat: negative offsets enabled with odd list size")

// ErrEmptyList rejects zero-length catalogs; the learning loop needs at
// least one candidate under test.
var ErrEmptyList = errors.New("offsetcat: offset list size must be > 0")

// Catalog is the fixed candidate list plus its learning cursor.
// Offsets never change after New; only scores and the cursor mutate.
type Catalog struct {
	offsets []int64  // candidate offsets, construction order
	scores  []uint32 // parallel to offsets, reset each phase
	cursor  int      // index of the candidate currently under test
}

// New builds a catalog of exactly size candidates. Candidates are generated
// by walking positive integers and dividing out factors 2, 3 and 5; a
// generator that reduces to 1 is admissible. With negatives enabled each
// admissible offset is immediately followed by its negation.
func New(size int, negatives bool) (*Catalog, error) {
	if size <= 0 {
		return nil, ErrEmptyList
	}
	if negatives && size%2 != 0 {
		return nil, ErrOddWithNegatives
	}

	c := &Catalog{
		offsets: make([]int64, 0, size),
		scores:  make([]uint32, size),
	}

	for gen := int64(1); len(c.offsets) < size; gen++ {
		rem := gen
		for _, f := range [...]int64{2, 3, 5} {
			for rem%f == 0 {
				rem /= f
			}
		}
		if rem != 1 {
			continue
		}
		c.offsets = append(c.offsets, gen)
		if negatives {
			c.offsets = append(c.offsets, -gen)
		}
	}
	return c, nil
}

// Len returns the number of candidates.
func (c *Catalog) Len() int { return len(c.offsets) }

// Current returns the offset under test.
//
//go:inline
func (c *Catalog) Current() int64 { return c.offsets[c.cursor] }

// Bump increments the current candidate's score and returns the new value.
//
//go:inline
func (c *Catalog) Bump() uint32 {
	c.scores[c.cursor]++
	return c.scores[c.cursor]
}

// Advance moves the cursor to the next candidate, wrapping past the end.
// It reports whether the cursor wrapped, i.e. a full round completed.
//
//go:inline
func (c *Catalog) Advance() bool {
	c.cursor++
	if c.cursor == len(c.offsets) {
		c.cursor = 0
		return true
	}
	return false
}

// ResetScores zeroes every score in place. Order, membership and the cursor
// position are untouched.
func (c *Catalog) ResetScores() {
	for i := range c.scores {
		c.scores[i] = 0
	}
}

// At returns the i-th offset and score. Test and diagnostics helper; the
// learning loop only ever touches the cursor position.
func (c *Catalog) At(i int) (int64, uint32) { return c.offsets[i], c.scores[i] }
