package utils

import "testing"

func TestCalculateURLHash(t *testing.T) {
	url := "https://app.uniswap.org/swap"

	hash := CalculateURLHash(url)
	if len(hash) != 32 {
		t.Errorf("Expected 32 hex characters, got %d", len(hash))
	}
	if hash != CalculateURLHash(url) {
		t.Error("Expected hashing to be deterministic")
	}
	if hash == CalculateURLHash("https://ethereum.org/en/") {
		t.Error("Expected different URLs to hash differently")
	}
}

func TestCalculateURLHash_Empty(t *testing.T) {
	if hash := CalculateURLHash(""); hash != "" {
		t.Errorf("Expected empty hash for empty URL, got %q", hash)
	}
}

func TestCalculateURLHashShort(t *testing.T) {
	url := "https://scroll.io/bridge"

	short := CalculateURLHashShort(url)
	if len(short) != 8 {
		t.Errorf("Expected 8 characters, got %d", len(short))
	}
	if short != CalculateURLHash(url)[:8] {
		t.Error("Expected short hash to be a prefix of the full hash")
	}
}
