package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	_ "modernc.org/sqlite"

	"chainwatch-go/pkg/logger"
)

const recentURLsQuery = `SELECT url FROM urls ORDER BY last_visit_time DESC LIMIT ?`

// ChromeSource reads visited URLs out of the local Chrome history
// database. Chrome keeps the live file locked while running, so each
// fetch works on a throwaway copy.
type ChromeSource struct {
	path string
	log  *logger.Logger
}

// NewChromeSource locates the Chrome history database for the current OS.
func NewChromeSource() (*ChromeSource, error) {
	path, err := DefaultHistoryPath()
	if err != nil {
		return nil, err
	}
	return NewChromeSourceWithPath(path), nil
}

// NewChromeSourceWithPath uses an explicit history database path.
func NewChromeSourceWithPath(path string) *ChromeSource {
	return &ChromeSource{
		path: path,
		log:  logger.GetLogger().WithField("component", "chrome_source"),
	}
}

// DefaultHistoryPath returns the default Chrome history location for the
// current operating system.
func DefaultHistoryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data", "Default", "History"), nil
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default", "History"), nil
	default:
		return filepath.Join(home, ".config", "google-chrome", "Default", "History"), nil
	}
}

// Path returns the history database path this source reads from.
func (s *ChromeSource) Path() string {
	return s.path
}

// FetchRecentURLs returns up to limit URLs ordered by most recent visit.
func (s *ChromeSource) FetchRecentURLs(ctx context.Context, limit int) ([]string, error) {
	tempPath, err := s.copyDatabase()
	if err != nil {
		return nil, err
	}
	defer func() {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			s.log.WithError(removeErr).Warn("Failed to remove temporary history copy")
		}
	}()

	db, err := sql.Open("sqlite", tempPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, recentURLsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history database: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		urls = append(urls, url)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	s.log.WithField("url_count", len(urls)).Debug("Fetched recent URLs from history")
	return urls, nil
}

// copyDatabase copies the history file next to a temp location and
// returns the copy's path. The caller removes it when done.
func (s *ChromeSource) copyDatabase() (string, error) {
	src, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to open history file %s: %w", s.path, err)
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "chainwatch-history-*.db")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary history copy: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to copy history file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to finalize temporary history copy: %w", err)
	}

	return dst.Name(), nil
}
