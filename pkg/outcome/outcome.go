package outcome

import (
	"time"

	"github.com/google/uuid"

	"github.com/veloq/walletcore/pkg/outcome/fault"
)

type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	flt       fault.Fault
	cause     error
	isSuccess bool
	isCancel  bool
	hasValue  bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

func Fail[T any](f fault.Fault) Outcome[T] {
	return Outcome[T]{
		flt:       f,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Cancel marks an outcome whose operation was interrupted by the caller.
// Cancellation carries the raw cause rather than a fault so it is never
// mistaken for a classified failure.
func Cancel[T any](cause error) Outcome[T] {
	return Outcome[T]{
		cause:     cause,
		isSuccess: false,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FaultFrom converts a non-success outcome to another payload type,
// preserving identity, creation time, fault and cancel cause. Calling it on
// a success outcome returns an empty outcome; callers are expected to branch
// on IsSuccess first.
func FaultFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		flt:       from.flt,
		cause:     from.cause,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Fault() fault.Fault {
	return o.flt
}

// Cause returns the cancellation cause; nil unless IsCancel.
func (o Outcome[T]) Cause() error {
	return o.cause
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFault() bool {
	return !o.isSuccess && !o.isCancel && o.flt != nil
}

func (o Outcome[T]) IsCancel() bool {
	return o.isCancel
}

func (o Outcome[T]) HasValue() bool {
	return o.hasValue
}

func (o Outcome[T]) IsEmpty() bool {
	return o.flt == nil && !o.isCancel && !o.isSuccess
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
