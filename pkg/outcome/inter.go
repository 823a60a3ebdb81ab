package outcome

import (
	"time"

	"github.com/veloq/walletcore/pkg/outcome/fault"
)

type ValueProvider[T any] interface {
	// Value returns the successful payload
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFault defines an interface for types that can return a value or a
// classified fault
type WithFault[T any] interface {
	ValueProvider[T]
	// Fault returns the classification if the operation failed
	Fault() fault.Fault
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithFault with cancellation support
type WithCancel[T any] interface {
	WithFault[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
	// Cause returns the cancellation cause
	Cause() error
}
