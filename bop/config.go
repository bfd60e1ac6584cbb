// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: config.go — Prefetcher configuration surface
//
// Purpose:
//   - Declares every tunable of the best-offset prefetcher with its JSON
//     field name, the defaults applied when a field is absent, and the
//     construction-time validation rules.
//
// Notes:
//   - All violations are fatal configuration errors surfaced from New;
//     nothing is validated (or can fail) on the access path.
//   - LoadConfig decodes over Default(), so absent fields keep defaults
//     while explicit zeros stick.
// ─────────────────────────────────────────────────────────────────────────────

package bop

import (
	"errors"
	"os"

	"github.com/sugawarayuuta/sonnet"

	"main/constants"
	"main/utils"
)

// Configuration errors, each naming the violated constraint.
var (
	ErrLineNotPow2 = errors.New("bop: cache line size is not power of 2")
	ErrBadDegree   = errors.New("bop: prefetch degree must be strictly greater than zero")
)

// Config carries every tunable of the prefetcher.
type Config struct {
	// ScoreMax concludes the phase once one candidate's score reaches it.
	ScoreMax uint32 `json:"score_max"`
	// RoundMax concludes the phase after this many full catalog passes.
	RoundMax uint32 `json:"round_max"`
	// BadScore is the minimum phase-best score that commits a new offset;
	// at or below it, issuance is switched off.
	BadScore uint32 `json:"bad_score"`
	// RREntries sizes each side of the recency table. Power of 2.
	RREntries uint64 `json:"rr_size"`
	// TagBits is the stored tag width.
	TagBits uint `json:"tag_bits"`
	// OffsetListSize is the candidate count. Even when negatives are on.
	OffsetListSize int `json:"offset_list_size"`
	// NegativeOffsets interleaves each offset with its negation.
	NegativeOffsets bool `json:"negative_offsets_enable"`
	// DelayQueueEnable defers left-table insertion by DelayTicks.
	DelayQueueEnable bool `json:"delay_queue_enable"`
	// DelayQueueSize bounds the deferred insertions; overflow drops.
	DelayQueueSize int `json:"delay_queue_size"`
	// DelayTicks is the insertion delay in simulated time units.
	DelayTicks int64 `json:"delay_queue_cycles"`
	// Degree is the number of prefetch addresses generated per trigger. > 0.
	Degree int `json:"degree"`
	// LineBytes is the cache-line size. Power of 2.
	LineBytes uint64 `json:"line_bytes"`
}

// Default returns the reference parameterisation of the hardware model.
func Default() Config {
	return Config{
		ScoreMax:         constants.DefaultScoreMax,
		RoundMax:         constants.DefaultRoundMax,
		BadScore:         constants.DefaultBadScore,
		RREntries:        constants.DefaultRREntries,
		TagBits:          constants.DefaultTagBits,
		OffsetListSize:   constants.DefaultOffsetListSize,
		NegativeOffsets:  true,
		DelayQueueEnable: true,
		DelayQueueSize:   constants.DefaultDelayQueueSize,
		DelayTicks:       constants.DefaultDelayTicks,
		Degree:           1,
		LineBytes:        constants.DefaultLineBytes,
	}
}

// LoadConfig reads a JSON config file and decodes it over the defaults.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := sonnet.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders the config as JSON, the byte form the trace store
// fingerprints a run by.
func (c Config) Marshal() ([]byte, error) {
	return sonnet.Marshal(c)
}

// validate applies the construction-time rules local to this package.
// Catalog and table rules live with their packages and are surfaced by New.
func (c Config) validate() error {
	if !utils.IsPow2(c.LineBytes) {
		return ErrLineNotPow2
	}
	if c.Degree <= 0 {
		return ErrBadDegree
	}
	return nil
}
