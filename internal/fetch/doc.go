// Package fetch implements the concurrent player-count fetcher.
//
// The fetcher:
//   - Processes candidate ids in consecutive windows
//   - Dispatches lookups through a bounded semaphore, never more than the
//     configured concurrency in flight
//   - Waits for a whole window to settle before starting the next
//   - Retries failed lookups under a linear backoff policy
//   - Merges results into shared state only at window boundaries
//   - Reports cumulative progress to an optional handler after each window
package fetch
