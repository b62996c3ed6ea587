// Package model defines shared data types used across the playerpulse pipeline.
//
// Conventions:
//   - App IDs: int64, the unique key at every stage
//   - Player counts: int64, 0 means "not observed"
//   - Priorities: lower integer = more authoritative source
package model
