package extractor

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ignoredWords are protocol and host-suffix noise that never counts as a
// keyword regardless of any configured filters.
var ignoredWords = map[string]bool{
	"http":  true,
	"https": true,
	"www":   true,
	"com":   true,
	"org":   true,
	"net":   true,
}

// URLKeywordExtractor splits a URL's host and path into normalized keyword
// candidates. Host segments come first, path segments after, in original
// order. Duplicates within one URL are preserved; counting happens
// downstream.
type URLKeywordExtractor struct {
	filters []Filter
}

func NewURLKeywordExtractor() *URLKeywordExtractor {
	return &URLKeywordExtractor{
		filters: make([]Filter, 0),
	}
}

// Extract parses the URL and returns its keyword candidates. A URL that
// does not parse, or that lacks a scheme entirely, yields no keywords and
// no error: unreadable input is a silent skip, not a failure. Host-less
// absolute URLs (file:// and the like show up in browser history) still
// contribute their path segments.
func (e *URLKeywordExtractor) Extract(urlStr string) ([]string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" {
		return nil, nil
	}

	segments := strings.Split(parsedURL.Hostname(), ".")
	segments = append(segments, strings.Split(parsedURL.Path, "/")...)

	keywords := make([]string, 0, len(segments))
	for _, segment := range segments {
		normalized := e.Normalize(segment)
		if normalized == "" || ignoredWords[normalized] {
			continue
		}
		keywords = append(keywords, normalized)
	}

	for _, filter := range e.filters {
		keywords = filter.Apply(keywords)
	}

	return keywords, nil
}

func (e *URLKeywordExtractor) SetFilters(filters []Filter) {
	e.filters = filters
}

// Normalize lower-cases a segment using locale-independent case mapping.
func (e *URLKeywordExtractor) Normalize(keyword string) string {
	return cases.Lower(language.Und).String(keyword)
}
