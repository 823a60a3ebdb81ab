package outcome

// Unit is the payload of a presence-only outcome: callers care whether the
// operation succeeded, not what it produced.
type Unit struct{}

// ToUnit discards the successful payload, keeping only the present/absent
// distinction. Fault kind and cancel cause survive unchanged.
func ToUnit[T any](input Outcome[T]) Outcome[Unit] {
	if input.IsSuccess() {
		return Success(Unit{})
	}
	return FaultFrom[T, Unit](input)
}
