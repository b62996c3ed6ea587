// Package store persists finished rankings to PostgreSQL.
//
// Persistence is optional: the pipeline produces its output documents either
// way, and a store failure is reported but never fails a run. Rows are
// append-only, one batch insert per run.
package store
