package fetch

import "time"

// Policy controls the retry schedule for a single lookup.
type Policy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int

	// DelayUnit is the backoff unit. Retry n waits n delay units, so the
	// first retry fires immediately and later ones wait strictly longer.
	DelayUnit time.Duration
}

// Wait returns the backoff before the given retry. Retries are numbered
// from zero.
func (p Policy) Wait(retry int) time.Duration {
	if retry <= 0 {
		return 0
	}
	return p.DelayUnit * time.Duration(retry)
}
