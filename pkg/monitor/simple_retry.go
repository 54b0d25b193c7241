package monitor

import (
	"context"
	"time"
)

// SimpleRetry provides basic retry logic with exponential backoff. The
// history database lives on local disk, so transient read failures (the
// browser rewriting the file mid-copy) usually clear within a retry or two.
type SimpleRetry struct {
	maxRetries        int
	retryDelay        time.Duration
	backoffMultiplier float64
}

// NewSimpleRetry creates a simple retry mechanism
func NewSimpleRetry(maxRetries int, retryDelay time.Duration) *SimpleRetry {
	return &SimpleRetry{
		maxRetries:        maxRetries,
		retryDelay:        retryDelay,
		backoffMultiplier: 2.0,
	}
}

// Execute runs fn, retrying failed attempts up to maxRetries times. The
// last error is returned once attempts are exhausted.
func (sr *SimpleRetry) Execute(ctx context.Context, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= sr.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt == sr.maxRetries {
			break
		}

		delay := time.Duration(float64(sr.retryDelay) * pow(sr.backoffMultiplier, float64(attempt)))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

// pow is a simple power function for backoff calculation
func pow(base, exp float64) float64 {
	result := 1.0
	for i := 0; i < int(exp); i++ {
		result *= base
	}
	return result
}
