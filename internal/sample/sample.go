// Package sample reduces an oversized candidate pool to a target size.
package sample

import (
	"math/rand/v2"

	"github.com/playerpulse/playerpulse/internal/model"
)

// protectedPriority is the highest priority value that is never sampled out.
const protectedPriority = 2

// Downsample returns candidates reduced toward target entries.
//
// Candidates with priority <= 2 are always kept; the remaining slots are
// filled by drawing uniformly without replacement (a partial Fisher-Yates
// shuffle) from the priority-3 pool. When the protected set alone meets or
// exceeds the target, it is returned whole and nothing is drawn. The input's
// relative order is preserved. target <= 0 disables sampling.
func Downsample(candidates []model.Candidate, target int, rng *rand.Rand) []model.Candidate {
	if target <= 0 || len(candidates) <= target {
		return candidates
	}

	var poolIdx []int
	kept := 0
	for i, c := range candidates {
		if c.Priority <= protectedPriority {
			kept++
		} else {
			poolIdx = append(poolIdx, i)
		}
	}

	need := target - kept
	if need < 0 {
		need = 0
	}
	if need > len(poolIdx) {
		need = len(poolIdx)
	}

	// Partial Fisher-Yates: only the first `need` positions are settled.
	for i := 0; i < need; i++ {
		j := i + rng.IntN(len(poolIdx)-i)
		poolIdx[i], poolIdx[j] = poolIdx[j], poolIdx[i]
	}

	selected := make(map[int]bool, need)
	for _, idx := range poolIdx[:need] {
		selected[idx] = true
	}

	out := make([]model.Candidate, 0, kept+need)
	for i, c := range candidates {
		if c.Priority <= protectedPriority || selected[i] {
			out = append(out, c)
		}
	}

	return out
}
