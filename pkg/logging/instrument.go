package logging

import (
	"context"
	"fmt"
	"time"
)

// UnitOfWork is a cancellable unit of work.
type UnitOfWork func(ctx context.Context) error

// Instrument wraps a unit of work so that its start, completion with
// duration, and failure with duration are logged. The wrapped unit
// returns the original error unchanged.
func Instrument(logger *Logger, name string, fn UnitOfWork) UnitOfWork {
	return func(ctx context.Context) error {
		logger.Debug(fmt.Sprintf("Starting execution of %s", name), nil)
		start := time.Now()

		err := fn(ctx)
		elapsed := time.Since(start).Seconds()

		if err != nil {
			logger.ErrorWithException(
				fmt.Sprintf("Error in %s after %.3fs: %v", name, elapsed, err),
				err, nil)
			return err
		}

		logger.Debug(fmt.Sprintf("Completed %s in %.3fs", name, elapsed), nil)
		return nil
	}
}
