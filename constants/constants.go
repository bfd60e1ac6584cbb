// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Global prefetcher tunables & trace-runner caps
//
// Purpose:
//   - Defines the default Best-Offset prefetcher parameters used when a
//     config file leaves a tunable zeroed.
//   - Defines trace-runner sizing caps (dedupe ring, modelled fill latency).
//
// Notes:
//   - Defaults mirror the published hardware model: 46-entry signed offset
//     list, 64-entry RR tables, 12-bit tags, 31/100/10 score thresholds.
//   - Power-of-2 sizing everywhere so index math stays mask-based.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Learning Thresholds ──────────────────────────

const (
	// DefaultScoreMax concludes a learning phase as soon as one offset's
	// score reaches it. 31 matches the saturating 5-bit counter of the
	// hardware proposal.
	DefaultScoreMax = 31

	// DefaultRoundMax bounds how many full passes over the offset list a
	// phase may take before it is forcibly concluded.
	DefaultRoundMax = 100

	// DefaultBadScore is the minimum phase-best score required to commit a
	// new offset and keep issuing. At or below it, issuance turns off.
	DefaultBadScore = 10
)

// ───────────────────────────── Table Sizing ─────────────────────────────────

const (
	// DefaultRREntries sizes each side of the recent-requests table.
	// Must stay a power of 2: the index function folds the line address by
	// log2(entries) and masks.
	DefaultRREntries = 64

	// DefaultTagBits is the width of the stored address tags. 12 bits keeps
	// each RR slot narrow while leaving collisions rare at 64 entries.
	DefaultTagBits = 12

	// DefaultOffsetListSize is the number of candidate offsets under test.
	// Even, because the default enables negated pairs.
	DefaultOffsetListSize = 46

	// DefaultLineBytes is the cache-line size the address math assumes.
	DefaultLineBytes = 64
)

// ───────────────────────────── Delay Line ───────────────────────────────────

const (
	// DefaultDelayQueueSize bounds the number of accesses waiting for
	// insertion into the left RR table. Overflow drops, never stalls.
	DefaultDelayQueueSize = 15

	// DefaultDelayTicks is the modelled latency between observing an access
	// and that access becoming testable in the RR table.
	DefaultDelayTicks = 60
)

// ───────────────────────────── Trace Runner ─────────────────────────────────

const (
	// DedupeRingBits sizes the issued-prefetch dedupe ring: 2^12 = 4096
	// line addresses, far beyond any in-flight prefetch window.
	DedupeRingBits = 12

	// MemLatencyTicks is the modelled DRAM round trip between issuing a
	// prefetch and its fill notification arriving back at the prefetcher.
	MemLatencyTicks = 200

	// MaxTraceLine caps one trace record; longer lines are malformed.
	MaxTraceLine = 128
)
