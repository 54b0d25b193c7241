package utils

import (
	"crypto/md5"
	"fmt"
)

// URLHasher produces stable identifiers for visited URLs so structured
// logs can reference a link without recording the full address.
type URLHasher struct{}

// NewURLHasher creates a new URL hasher instance
func NewURLHasher() *URLHasher {
	return &URLHasher{}
}

// CalculateURLHash generates a consistent MD5 hex digest for a URL.
// Collision resistance is irrelevant here; the hash is an identifier,
// not a security boundary.
func (h *URLHasher) CalculateURLHash(url string) string {
	if url == "" {
		return ""
	}

	hash := md5.Sum([]byte(url))
	return fmt.Sprintf("%x", hash)
}

// CalculateURLHashShort returns the first 8 characters of the URL hash,
// enough to correlate log lines about the same link.
func (h *URLHasher) CalculateURLHashShort(url string) string {
	fullHash := h.CalculateURLHash(url)
	if len(fullHash) >= 8 {
		return fullHash[:8]
	}
	return fullHash
}

var globalHasher = NewURLHasher()

// CalculateURLHash is a convenience function that uses the global hasher
func CalculateURLHash(url string) string {
	return globalHasher.CalculateURLHash(url)
}

// CalculateURLHashShort is a convenience function that uses the global hasher
func CalculateURLHashShort(url string) string {
	return globalHasher.CalculateURLHashShort(url)
}
