// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepFunc matches SleepWithContext so services can swap it out in tests.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for d or until ctx is done, whichever comes first,
// and returns the context's cause in the latter case. Non-positive durations
// only check the context.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-timer.C:
		return nil
	}
}
