package storage

import (
	"context"
	"sync"
	"time"

	"chainwatch-go/pkg/logger"
)

const flushHistoryKey = "flush_history"

// maxFlushRecords bounds the in-memory flush history.
const maxFlushRecords = 1000

// FlushRecord describes one completed batch flush.
type FlushRecord struct {
	Word        string    `json:"word"`
	Count       int       `json:"count"`
	Fingerprint string    `json:"fingerprint"`
	DigestHex   string    `json:"digest_hex"`
	BatchSize   int       `json:"batch_size"`
	Timestamp   time.Time `json:"timestamp"`
}

// FlushTracker records completed flushes so the history of emitted
// fingerprints stays inspectable for the lifetime of the process.
type FlushTracker struct {
	storage Storage
	log     *logger.Logger
	mu      sync.Mutex
}

// NewFlushTracker creates a tracker on top of any Storage backend.
func NewFlushTracker(storage Storage) *FlushTracker {
	return &FlushTracker{
		storage: storage,
		log:     logger.GetLogger().WithField("component", "flush_tracker"),
	}
}

// RecordFlush appends a flush record to the stored history.
func (ft *FlushTracker) RecordFlush(ctx context.Context, record FlushRecord) error {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	var history []FlushRecord
	_ = ft.storage.Load(ctx, flushHistoryKey, &history)

	history = append(history, record)
	if len(history) > maxFlushRecords {
		history = history[len(history)-maxFlushRecords:]
	}

	ft.log.WithFields(map[string]interface{}{
		"word":        record.Word,
		"count":       record.Count,
		"fingerprint": record.Fingerprint,
		"total":       len(history),
	}).Debug("Recorded batch flush")

	return ft.storage.Save(ctx, flushHistoryKey, history)
}

// GetFlushHistory returns recorded flushes, newest first. A limit of 0 or
// less returns the full history.
func (ft *FlushTracker) GetFlushHistory(ctx context.Context, limit int) ([]FlushRecord, error) {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	var history []FlushRecord
	if err := ft.storage.Load(ctx, flushHistoryKey, &history); err != nil {
		return []FlushRecord{}, nil
	}

	// Stored oldest-first; reverse for callers
	reversed := make([]FlushRecord, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		reversed = append(reversed, history[i])
	}

	if limit > 0 && len(reversed) > limit {
		reversed = reversed[:limit]
	}

	return reversed, nil
}
