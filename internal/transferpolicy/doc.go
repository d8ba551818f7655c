// Package transferpolicy makes pure, deterministic chunk-scheduling
// decisions for file transfers.
//
// The policy has no IO, no clocks and no global state. The caller
// observes the link, passes the observations in, and applies the
// returned decision. Identical inputs always produce identical
// decisions, including chunk ordering.
package transferpolicy
