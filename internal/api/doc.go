// Package api provides HTTP clients for the upstream game catalogs and the
// live player-count endpoint.
//
// Endpoints:
//   - Charts: GET /top?page=N — paginated top list with current/peak counts
//   - Catalog: GET /all?page=N — full catalog pages keyed by app id
//   - Players: GET /players?appid=N — live concurrent player count
//
// One Client is constructed per base URL; all three upstreams share the same
// request plumbing and retry behavior.
package api
