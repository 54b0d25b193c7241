package history

import "context"

// Source supplies the most recently visited URLs, newest first. A failing
// source returns an error; retry policy is the caller's concern.
type Source interface {
	FetchRecentURLs(ctx context.Context, limit int) ([]string, error)
}
