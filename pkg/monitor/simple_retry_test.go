package monitor

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSimpleRetry_SucceedsAfterTransientFailures(t *testing.T) {
	retry := NewSimpleRetry(3, time.Millisecond)

	attempts := 0
	err := retry.Execute(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient failure")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Expected success after retries, got: %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
}

func TestSimpleRetry_GivesUpAfterMaxRetries(t *testing.T) {
	retry := NewSimpleRetry(2, time.Millisecond)

	attempts := 0
	wantErr := errors.New("permanent failure")
	err := retry.Execute(context.Background(), func() error {
		attempts++
		return wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Fatalf("Expected last error to surface, got: %v", err)
	}
	// Initial attempt plus 2 retries
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
}

func TestSimpleRetry_ZeroRetriesRunsOnce(t *testing.T) {
	retry := NewSimpleRetry(0, time.Millisecond)

	attempts := 0
	_ = retry.Execute(context.Background(), func() error {
		attempts++
		return errors.New("failure")
	})

	if attempts != 1 {
		t.Errorf("Expected a single attempt, got %d", attempts)
	}
}

func TestSimpleRetry_RespectsContextCancellation(t *testing.T) {
	retry := NewSimpleRetry(5, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry.Execute(ctx, func() error {
		return errors.New("should not matter")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
}
