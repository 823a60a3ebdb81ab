// Package remote executes HTTP calls behind the outcome type: one request,
// one classified result. Transport errors and status codes are mapped into
// the closed remote fault set; context cancellation propagates as a cancel
// outcome instead of being swallowed as unknown.
//
// The Client adds optional cross-cutting behavior via options: a
// golang.org/x/time rate limiter, a charmbracelet/log logger, and prometheus
// counters keyed by outcome kind.
package remote
