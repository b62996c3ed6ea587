package sample

import (
	"math/rand/v2"
	"testing"

	"github.com/playerpulse/playerpulse/internal/model"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func pool(n int, priority int) []model.Candidate {
	out := make([]model.Candidate, n)
	for i := range out {
		out[i] = model.Candidate{AppID: int64(i + 1), Priority: priority}
	}
	return out
}

func TestDownsample_UnderTarget(t *testing.T) {
	cands := pool(5, 3)
	got := Downsample(cands, 10, testRNG())
	if len(got) != 5 {
		t.Errorf("len = %d, want 5 (unchanged)", len(got))
	}
}

func TestDownsample_Disabled(t *testing.T) {
	cands := pool(5, 3)
	if got := Downsample(cands, 0, testRNG()); len(got) != 5 {
		t.Errorf("target 0 must disable sampling, got %d items", len(got))
	}
}

func TestDownsample_KeptExceedsTarget(t *testing.T) {
	cands := []model.Candidate{
		{AppID: 1, Priority: 1},
		{AppID: 2, Priority: 1},
		{AppID: 3, Priority: 3},
		{AppID: 4, Priority: 3},
	}

	got := Downsample(cands, 2, testRNG())

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (kept only)", len(got))
	}
	if got[0].AppID != 1 || got[1].AppID != 2 {
		t.Errorf("got %+v, want the two priority-1 candidates", got)
	}
}

func TestDownsample_ExactSize(t *testing.T) {
	cands := append(pool(10, 1), pool(90, 3)...)

	got := Downsample(cands, 40, testRNG())

	if len(got) != 40 {
		t.Fatalf("len = %d, want exactly 40", len(got))
	}

	seen := make(map[int64]bool)
	protected := 0
	for _, c := range got {
		key := c.AppID
		if c.Priority == 1 {
			protected++
			key = -c.AppID // pools overlap on AppID, keep keys distinct
		}
		if seen[key] {
			t.Fatalf("candidate %d selected twice", c.AppID)
		}
		seen[key] = true
	}
	if protected != 10 {
		t.Errorf("protected survivors = %d, want all 10", protected)
	}
}

func TestDownsample_NeverDropsProtected(t *testing.T) {
	cands := append(pool(30, 2), pool(100, 3)...)

	for seed := uint64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed+1))
		got := Downsample(cands, 50, rng)

		protected := 0
		for _, c := range got {
			if c.Priority == 2 {
				protected++
			}
		}
		if protected != 30 {
			t.Fatalf("seed %d: protected survivors = %d, want 30", seed, protected)
		}
		if len(got) != 50 {
			t.Fatalf("seed %d: len = %d, want 50", seed, len(got))
		}
	}
}

func TestDownsample_PreservesOrder(t *testing.T) {
	cands := append(pool(5, 1), pool(50, 3)...)

	got := Downsample(cands, 20, testRNG())

	// Protected candidates come first in the input and must stay first.
	for i := 0; i < 5; i++ {
		if got[i].Priority != 1 {
			t.Fatalf("position %d has priority %d, want 1", i, got[i].Priority)
		}
	}
	// Sampled pool entries must keep their relative input order.
	for i := 6; i < len(got); i++ {
		if got[i].AppID <= got[i-1].AppID {
			t.Fatalf("pool order broken at %d: %d after %d", i, got[i].AppID, got[i-1].AppID)
		}
	}
}
