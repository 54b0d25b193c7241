package storage

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStorage_RoundTrip(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := context.Background()

	type payload struct {
		Word  string `json:"word"`
		Count int    `json:"count"`
	}

	if err := storage.Save(ctx, "summary", payload{Word: "uniswap", Count: 3}); err != nil {
		t.Fatalf("Expected no error saving, got: %v", err)
	}

	exists, err := storage.Exists(ctx, "summary")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !exists {
		t.Error("Expected key to exist after save")
	}

	var loaded payload
	if err := storage.Load(ctx, "summary", &loaded); err != nil {
		t.Fatalf("Expected no error loading, got: %v", err)
	}
	if loaded.Word != "uniswap" || loaded.Count != 3 {
		t.Errorf("Expected uniswap/3, got %s/%d", loaded.Word, loaded.Count)
	}

	if err := storage.Delete(ctx, "summary"); err != nil {
		t.Fatalf("Expected no error deleting, got: %v", err)
	}
	if err := storage.Load(ctx, "summary", &loaded); err == nil {
		t.Error("Expected load of deleted key to fail")
	}
}

func TestFlushTracker_RecordsNewestFirst(t *testing.T) {
	tracker := NewFlushTracker(NewMemoryStorage())
	ctx := context.Background()

	words := []string{"uniswap", "ethereum", "scroll"}
	for i, word := range words {
		record := FlushRecord{
			Word:      word,
			Count:     i + 1,
			BatchSize: 5,
			Timestamp: time.Now(),
		}
		if err := tracker.RecordFlush(ctx, record); err != nil {
			t.Fatalf("Expected no error recording flush, got: %v", err)
		}
	}

	history, err := tracker.GetFlushHistory(ctx, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(history))
	}
	if history[0].Word != "scroll" || history[2].Word != "uniswap" {
		t.Errorf("Expected newest-first ordering, got %s..%s", history[0].Word, history[2].Word)
	}
}

func TestFlushTracker_HistoryLimit(t *testing.T) {
	tracker := NewFlushTracker(NewMemoryStorage())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := tracker.RecordFlush(ctx, FlushRecord{Word: "ethereum", Count: i}); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	}

	history, err := tracker.GetFlushHistory(ctx, 2)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 records with limit, got %d", len(history))
	}
	if history[0].Count != 4 {
		t.Errorf("Expected the newest record first, got count %d", history[0].Count)
	}
}

func TestFlushTracker_EmptyHistory(t *testing.T) {
	tracker := NewFlushTracker(NewMemoryStorage())

	history, err := tracker.GetFlushHistory(context.Background(), 10)
	if err != nil {
		t.Fatalf("Expected no error for empty history, got: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected empty history, got %d records", len(history))
	}
}
