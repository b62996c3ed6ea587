package fetch

import (
	"testing"
	"time"
)

func TestPolicy_Wait(t *testing.T) {
	p := Policy{MaxRetries: 3, DelayUnit: 100 * time.Millisecond}

	if got := p.Wait(0); got != 0 {
		t.Errorf("Wait(0) = %v, want 0 (first retry is immediate)", got)
	}
	if got := p.Wait(1); got != 100*time.Millisecond {
		t.Errorf("Wait(1) = %v, want 100ms", got)
	}
	if got := p.Wait(2); got != 200*time.Millisecond {
		t.Errorf("Wait(2) = %v, want 200ms", got)
	}

	// Strictly increasing after the first retry.
	prev := p.Wait(1)
	for retry := 2; retry <= 5; retry++ {
		cur := p.Wait(retry)
		if cur <= prev {
			t.Fatalf("Wait(%d) = %v, not greater than Wait(%d) = %v", retry, cur, retry-1, prev)
		}
		prev = cur
	}
}
