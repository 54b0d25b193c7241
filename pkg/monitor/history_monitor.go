package monitor

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"chainwatch-go/pkg/analyzer"
	"chainwatch-go/pkg/encoder"
	"chainwatch-go/pkg/extractor"
	"chainwatch-go/pkg/history"
	"chainwatch-go/pkg/logger"
	"chainwatch-go/pkg/storage"
	"chainwatch-go/pkg/utils"
)

// Config holds the tunables of the poll loop.
type Config struct {
	PollInterval    time.Duration `json:"poll_interval"`
	BatchThreshold  int           `json:"batch_threshold"`
	FetchLimit      int           `json:"fetch_limit"`
	FetchRetries    int           `json:"fetch_retries"`
	FetchRetryDelay time.Duration `json:"fetch_retry_delay"`
}

// DefaultConfig returns the stock tunables: poll every minute, flush
// after 5 distinct links, fetch the 5 most recent history entries.
func DefaultConfig() Config {
	return Config{
		PollInterval:    60 * time.Second,
		BatchThreshold:  5,
		FetchLimit:      5,
		FetchRetries:    3,
		FetchRetryDelay: 2 * time.Second,
	}
}

// HistoryMonitor drives the analysis loop: poll the history source, feed
// unseen URLs through extraction and counting, and flush an encoded
// summary whenever the batch fills up. All mutable state (the batch and
// the frequency table) is owned here and reset in place after a flush.
type HistoryMonitor struct {
	source    history.Source
	extractor extractor.KeywordExtractor
	table     *analyzer.FrequencyTable
	batch     *Batch
	tracker   *storage.FlushTracker
	retry     *SimpleRetry
	config    Config
	out       io.Writer
	log       *logger.Logger
}

// NewHistoryMonitor creates a monitor over the given history source.
func NewHistoryMonitor(source history.Source, config Config) *HistoryMonitor {
	if config.BatchThreshold <= 0 {
		config.BatchThreshold = DefaultConfig().BatchThreshold
	}
	if config.FetchLimit <= 0 {
		config.FetchLimit = DefaultConfig().FetchLimit
	}
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultConfig().PollInterval
	}

	return &HistoryMonitor{
		source:    source,
		extractor: extractor.NewURLKeywordExtractor(),
		table:     analyzer.NewFrequencyTable(),
		batch:     NewBatch(),
		tracker:   storage.NewFlushTracker(storage.NewMemoryStorage()),
		retry:     NewSimpleRetry(config.FetchRetries, config.FetchRetryDelay),
		config:    config,
		out:       os.Stdout,
		log:       logger.GetLogger().WithField("component", "history_monitor"),
	}
}

// SetOutput redirects console output, mainly for tests.
func (m *HistoryMonitor) SetOutput(w io.Writer) {
	m.out = w
}

// Tracker exposes the flush history recorded so far.
func (m *HistoryMonitor) Tracker() *storage.FlushTracker {
	return m.tracker
}

// Run polls the history source until the context is cancelled. A history
// source that keeps failing past the retry budget ends the loop with an
// error; everything else is recoverable.
func (m *HistoryMonitor) Run(ctx context.Context) error {
	m.log.WithFields(map[string]interface{}{
		"poll_interval":   m.config.PollInterval.String(),
		"batch_threshold": m.config.BatchThreshold,
		"fetch_limit":     m.config.FetchLimit,
	}).Info("Starting history monitoring loop")

	for {
		if err := m.ProcessOnce(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			m.log.Info("History monitoring loop stopped")
			return ctx.Err()
		case <-time.After(m.config.PollInterval):
		}
	}
}

// ProcessOnce performs a single poll iteration: fetch the latest URLs,
// analyze the ones not yet in the current batch, and flush when the batch
// reaches the threshold.
func (m *HistoryMonitor) ProcessOnce(ctx context.Context) error {
	var urls []string
	err := m.retry.Execute(ctx, func() error {
		var fetchErr error
		urls, fetchErr = m.source.FetchRecentURLs(ctx, m.config.FetchLimit)
		return fetchErr
	})
	if err != nil {
		return fmt.Errorf("failed to fetch recent URLs: %w", err)
	}

	if len(urls) == 0 {
		fmt.Fprintln(m.out, "No new links found")
		return nil
	}

	for _, url := range urls {
		if m.batch.Contains(url) {
			continue
		}
		m.batch.Append(url)

		keywords, _ := m.extractor.Extract(url)
		m.table.Record(keywords)

		fmt.Fprintf(m.out, "Analyzed new link: %s\n", url)
		m.log.WithFields(map[string]interface{}{
			"url_hash":   utils.CalculateURLHashShort(url),
			"keywords":   len(keywords),
			"batch_size": m.batch.Len(),
		}).Debug("Analyzed new link")

		if m.batch.Len() >= m.config.BatchThreshold {
			m.flush(ctx)
		}
	}

	return nil
}

// flush emits the encoded summary of the current batch and resets all
// batch state.
func (m *HistoryMonitor) flush(ctx context.Context) {
	entry := m.table.MostFrequent()
	value := encoder.ResultValue(entry)

	encoded, err := encoder.Encode(value)
	if err != nil {
		// json marshal of the summary map cannot realistically fail
		m.log.WithError(err).Error("Failed to encode batch summary")
		m.resetBatch()
		return
	}

	fmt.Fprintf(m.out, "\nEncoded batch summary:\n%s\n", encoded)

	record := storage.FlushRecord{
		Fingerprint: encoded,
		BatchSize:   m.batch.Len(),
		Timestamp:   time.Now(),
	}
	if entry != nil {
		record.Word = entry.Word
		record.Count = entry.Count
	}

	decoded, err := encoder.DecodeForInspection(encoded)
	if err != nil {
		m.log.WithError(err).Error("Failed to decode summary for inspection")
	} else {
		fmt.Fprintf(m.out, "\nDecoded digest (hex):\n%s\n", decoded)
		record.DigestHex = decoded
	}

	if err := m.tracker.RecordFlush(ctx, record); err != nil {
		m.log.WithError(err).Warn("Failed to record batch flush")
	}

	m.log.WithFields(map[string]interface{}{
		"word":        record.Word,
		"count":       record.Count,
		"fingerprint": record.Fingerprint,
		"batch_size":  record.BatchSize,
	}).Info("Batch flushed")

	m.resetBatch()
}

// resetBatch clears the batch and frequency table in place.
func (m *HistoryMonitor) resetBatch() {
	m.batch.Reset()
	m.table.Reset()
}
