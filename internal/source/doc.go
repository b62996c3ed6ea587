// Package source implements the candidate source adapters.
//
// Each adapter normalizes one upstream catalog into a list of candidates.
// Adapters are independent: a failing upstream yields whatever partial list
// was gathered plus a diagnostic error, and the pipeline carries on with the
// remaining sources.
package source
