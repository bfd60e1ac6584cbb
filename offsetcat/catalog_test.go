// Package offsetcat validates catalog generation (the 2^i·3^j·5^k family),
// negation pairing, circular traversal and in-place score reset.
package offsetcat

import "testing"

// -----------------------------------------------------------------------------
// ░░ Construction & Validation ░░
// -----------------------------------------------------------------------------

func TestNewRejectsOddWithNegatives(t *testing.T) {
	if _, err := New(7, true); err != ErrOddWithNegatives {
		t.Fatalf("New(7, true) err = %v, want ErrOddWithNegatives", err)
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(0, false); err != ErrEmptyList {
		t.Fatalf("New(0, false) err = %v, want ErrEmptyList", err)
	}
	if _, err := New(-4, true); err != ErrEmptyList {
		t.Fatalf("New(-4, true) err = %v, want ErrEmptyList", err)
	}
}

func TestGenerationPositiveOnly(t *testing.T) {
	c, err := New(10, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, 2, 3, 4, 5, 6, 8, 9, 10, 12}
	for i, w := range want {
		if off, score := c.At(i); off != w || score != 0 {
			t.Fatalf("At(%d) = %d,%d ; want %d,0", i, off, score, w)
		}
	}
}

func TestGenerationInterleavesNegations(t *testing.T) {
	c, err := New(8, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, -1, 2, -2, 3, -3, 4, -4}
	for i, w := range want {
		if off, _ := c.At(i); off != w {
			t.Fatalf("At(%d) = %d, want %d", i, off, w)
		}
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	a, _ := New(20, true)
	b, _ := New(20, true)
	for i := 0; i < a.Len(); i++ {
		ao, _ := a.At(i)
		bo, _ := b.At(i)
		if ao != bo {
			t.Fatalf("run divergence at %d: %d vs %d", i, ao, bo)
		}
	}
}

func TestAllOffsetsFactorAs235(t *testing.T) {
	c, _ := New(46, true)
	for i := 0; i < c.Len(); i++ {
		off, _ := c.At(i)
		v := off
		if v < 0 {
			v = -v
		}
		for _, f := range []int64{2, 3, 5} {
			for v%f == 0 {
				v /= f
			}
		}
		if v != 1 {
			t.Fatalf("offset %d has a prime factor outside {2,3,5}", off)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Circular Traversal ░░
// -----------------------------------------------------------------------------

func TestAdvanceWraps(t *testing.T) {
	c, _ := New(3, false) // {1, 2, 3}
	if c.Current() != 1 {
		t.Fatalf("initial Current() = %d, want 1", c.Current())
	}
	if c.Advance() {
		t.Fatal("Advance after first entry should not wrap")
	}
	if c.Advance() {
		t.Fatal("Advance after second entry should not wrap")
	}
	if !c.Advance() {
		t.Fatal("Advance past last entry must report a wrap")
	}
	if c.Current() != 1 {
		t.Fatalf("post-wrap Current() = %d, want 1", c.Current())
	}
}

// -----------------------------------------------------------------------------
// ░░ Score Lifecycle ░░
// -----------------------------------------------------------------------------

func TestBumpAndResetScores(t *testing.T) {
	c, _ := New(4, false)
	if got := c.Bump(); got != 1 {
		t.Fatalf("first Bump = %d, want 1", got)
	}
	if got := c.Bump(); got != 2 {
		t.Fatalf("second Bump = %d, want 2", got)
	}
	c.Advance()
	c.Bump()

	c.ResetScores()
	for i := 0; i < c.Len(); i++ {
		if _, score := c.At(i); score != 0 {
			t.Fatalf("score %d not reset: %d", i, score)
		}
	}
	// Cursor survives the reset.
	if c.Current() != 2 {
		t.Fatalf("cursor moved by ResetScores: Current() = %d, want 2", c.Current())
	}
}
