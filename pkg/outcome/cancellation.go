package outcome

import (
	"context"
	"errors"
)

func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled)
}

func IsDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
