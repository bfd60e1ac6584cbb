// Configuration loading: partial JSON decodes over the defaults, explicit
// values (including zeros) stick and flow into construction validation,
// and decode/IO failures surface as errors.
package bop

import (
	"os"
	"path/filepath"
	"testing"

	"main/rrtable"
	"main/timing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bop.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// -----------------------------------------------------------------------------
// ░░ Partial Decode Over Defaults ░░
// -----------------------------------------------------------------------------

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"degree":3,"rr_size":3}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Degree != 3 || cfg.RREntries != 3 {
		t.Fatalf("explicit fields = degree %d rr_size %d, want 3/3", cfg.Degree, cfg.RREntries)
	}
	def := Default()
	if cfg.ScoreMax != def.ScoreMax || cfg.RoundMax != def.RoundMax ||
		cfg.BadScore != def.BadScore || cfg.TagBits != def.TagBits ||
		cfg.OffsetListSize != def.OffsetListSize || !cfg.NegativeOffsets ||
		!cfg.DelayQueueEnable || cfg.LineBytes != def.LineBytes {
		t.Fatalf("absent fields must keep defaults, got %+v", cfg)
	}

	// The decoded value feeds construction validation unchanged.
	if _, err := New(cfg, timing.NewEngine()); err != rrtable.ErrNotPow2 {
		t.Fatalf("New(rr_size=3) err = %v, want rrtable.ErrNotPow2", err)
	}
}

func TestLoadConfigExplicitZeroSticks(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"bad_score":0,"delay_queue_enable":false}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BadScore != 0 {
		t.Fatalf("explicit bad_score 0 overridden to %d", cfg.BadScore)
	}
	if cfg.DelayQueueEnable {
		t.Fatal("explicit delay_queue_enable false overridden to true")
	}
	// The rest still defaults.
	if cfg.ScoreMax != Default().ScoreMax {
		t.Fatalf("score_max = %d, want default %d", cfg.ScoreMax, Default().ScoreMax)
	}
}

// -----------------------------------------------------------------------------
// ░░ Failure Paths ░░
// -----------------------------------------------------------------------------

func TestLoadConfigMalformedJSON(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"degree":`)); err == nil {
		t.Fatal("malformed JSON must return an error")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing config file must return an error")
	}
}

// -----------------------------------------------------------------------------
// ░░ Round Trip ░░
// -----------------------------------------------------------------------------

func TestMarshalLoadRoundTrip(t *testing.T) {
	in := Default()
	in.Degree = 4
	in.NegativeOffsets = false
	in.OffsetListSize = 21
	blob, err := in.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	out, err := LoadConfig(writeConfig(t, string(blob)))
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("round trip diverged:\n in  %+v\n out %+v", in, out)
	}
}
