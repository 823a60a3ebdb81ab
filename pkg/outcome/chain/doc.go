// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of outcomes.
//
// - Start/FromValue: create a Chain
// - Then/Map/To: compose or transform steps
// - Ensure: trigger side effects without altering the outcome
// - Finally: reduce to a concrete value via handlers
//
// There is deliberately no step that lifts a plain (T, error) function:
// arbitrary errors have no place in the closed fault set. Use the remote
// package to obtain classified outcomes, then chain them here.
package chain
