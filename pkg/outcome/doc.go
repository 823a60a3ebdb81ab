// Package outcome provides the typed success/failure propagation core shared
// by the wallet client: an immutable Outcome[T] with three states (success,
// classified fault, cancel) and pure combinators over it.
//
// Highlights:
// - Success/Fail/Cancel: construct Outcome[T]
// - Map/Switch: transform or compose successful values
// - Tee/TeeFault/DoubleTee: side-effect observers that never alter the outcome
// - ToUnit: collapse to a presence-only outcome
// - Finally: reduce to a concrete value via success/fault/cancel handlers
//
// Faults come exclusively from the closed enumerations in the fault
// subpackage; cancellation is kept distinct so it is never reported as a
// failure classification.
package outcome
