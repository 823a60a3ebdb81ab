package outcome

import (
	"context"

	"github.com/veloq/walletcore/pkg/outcome/fault"
)

// Map transforms the successful value; fault and cancel outcomes pass
// through with their classification preserved.
func Map[In, Out any](ctx context.Context, input Outcome[In],
	onSuccess func(ctx context.Context, v In) Out) Outcome[Out] {

	if input.IsSuccess() {
		return Success(onSuccess(ctx, input.Value()))
	}
	return FaultFrom[In, Out](input)
}

// Switch composes with a function that already returns an Outcome.
func Switch[In, Out any](ctx context.Context, input Outcome[In],
	onSuccess func(ctx context.Context, v In) Outcome[Out]) Outcome[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return FaultFrom[In, Out](input)
}

// Tee runs a side effect on success only and returns the input unchanged.
func Tee[T any](ctx context.Context, input Outcome[T],
	onSuccess func(ctx context.Context, v T)) Outcome[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

// TeeFault runs a side effect on fault only and returns the input unchanged.
// Cancelled outcomes are not observed; cancellation is not a fault.
func TeeFault[T any](ctx context.Context, input Outcome[T],
	onFault func(ctx context.Context, f fault.Fault)) Outcome[T] {

	if input.IsFault() {
		onFault(ctx, input.Fault())
	}
	return input
}

// DoubleTee observes whichever case is active and returns the input
// unchanged. Nil observers are skipped.
func DoubleTee[T any](ctx context.Context, input Outcome[T],
	onSuccess func(ctx context.Context, v T),
	onFault func(ctx context.Context, f fault.Fault),
	onCancel func(ctx context.Context, cause error)) Outcome[T] {

	switch {
	case input.IsSuccess():
		if onSuccess != nil {
			onSuccess(ctx, input.Value())
		}
	case input.IsCancel():
		if onCancel != nil {
			onCancel(ctx, input.Cause())
		}
	default:
		if onFault != nil {
			onFault(ctx, input.Fault())
		}
	}
	return input
}

// Finally reduces the outcome to a concrete value.
func Finally[In, Out any](ctx context.Context, input Outcome[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFault func(ctx context.Context, f fault.Fault) Out,
	onCancel func(ctx context.Context, cause error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	if input.IsCancel() {
		return onCancel(ctx, input.Cause())
	}
	return onFault(ctx, input.Fault())
}
