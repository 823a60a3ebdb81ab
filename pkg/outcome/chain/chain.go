package chain

import (
	"context"

	"github.com/veloq/walletcore/pkg/outcome"
	"github.com/veloq/walletcore/pkg/outcome/fault"
)

// Chain wraps an outcome with context to enable fluent composition of
// same-typed steps. Fault and cancel short-circuit every step.
type Chain[T any] struct {
	ctx context.Context
	out outcome.Outcome[T]
}

func Start[T any](ctx context.Context, o outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, out: o}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success(v))
}

func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.out
}

// Then composes a function that already returns an outcome.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, v T) outcome.Outcome[T]) Chain[T] {
	if !c.out.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: onSuccess(c.ctx, c.out.Value())}
}

// Map transforms the successful value without changing its type.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, v T) T) Chain[T] {
	if !c.out.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: outcome.Success(onSuccess(c.ctx, c.out.Value()))}
}

// Ensure triggers side effects for the active case without changing the
// outcome. Nil observers are skipped.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T),
	onFault func(context.Context, fault.Fault),
	onCancel func(context.Context, error)) Chain[T] {

	outcome.DoubleTee(c.ctx, c.out, onSuccess, onFault, onCancel)
	return c
}

// Finally collapses the chain to a final value.
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFault func(context.Context, fault.Fault) T,
	onCancel func(context.Context, error) T,
) T {
	return outcome.Finally(c.ctx, c.out, onSuccess, onFault, onCancel)
}

// To switches to a new payload type. A method cannot introduce a type
// parameter, so this lives as a free function.
func To[In, Out any](c Chain[In],
	onSuccess func(ctx context.Context, v In) outcome.Outcome[Out]) Chain[Out] {
	return Chain[Out]{ctx: c.ctx, out: outcome.Switch(c.ctx, c.out, onSuccess)}
}
