// Package merge reconciles candidate lists from multiple sources into one
// deduplicated set.
package merge

import (
	"cmp"
	"slices"

	"github.com/playerpulse/playerpulse/internal/model"
)

// Merge folds the given candidate lists into a single deduplicated slice.
//
// Lists are processed in ascending priority order regardless of the order
// they are passed in, so the result is a pure function of the inputs. The
// first list to mention an app id owns the record; later (lower-priority)
// mentions only backfill fields still at their zero value. Output order is
// first-seen order, which downstream ranking uses as its tie-break.
func Merge(lists ...[]model.Candidate) []model.Candidate {
	ordered := make([][]model.Candidate, 0, len(lists))
	for _, list := range lists {
		if len(list) > 0 {
			ordered = append(ordered, list)
		}
	}
	// Each list comes from one source, so its first candidate carries the
	// list's priority.
	slices.SortStableFunc(ordered, func(a, b []model.Candidate) int {
		return cmp.Compare(a[0].Priority, b[0].Priority)
	})

	var out []model.Candidate
	index := make(map[int64]int)

	for _, list := range ordered {
		for _, c := range list {
			i, seen := index[c.AppID]
			if !seen {
				index[c.AppID] = len(out)
				out = append(out, c)
				continue
			}

			// Backfill only: a populated field from a stronger source is
			// never overwritten, and the stored priority never downgrades.
			cur := &out[i]
			if cur.Name == "" {
				cur.Name = c.Name
			}
			if cur.StaticPlayers == 0 {
				cur.StaticPlayers = c.StaticPlayers
			}
			if cur.PeakPlayers == 0 {
				cur.PeakPlayers = c.PeakPlayers
			}
		}
	}

	return out
}
