// Package pipeline wires the reconciliation stages together.
//
// One run flows: sources -> merge -> sample -> fetch -> rank -> validate,
// each stage consuming the complete output of the previous one. Run-level
// state (run id, counters, timings) lives in the run itself rather than in
// shared globals, so every stage stays independently testable.
package pipeline
