// Package encoder turns a batch summary into a compact one-way
// fingerprint. The encoded form is a sha256 digest of the canonical JSON
// summary, rendered as padding-free base64. It is deliberately not
// reversible; DecodeForInspection only unwraps the base64 layer to expose
// the digest bytes as hex.
package encoder

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"chainwatch-go/pkg/analyzer"
)

// NoDataMessage is reported when a batch flushes with an empty table.
const NoDataMessage = "No words analyzed yet"

// DecodeError indicates that an encoded summary was not valid
// padding-free base64.
type DecodeError struct {
	Input string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid encoded summary %q: %v", e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ResultValue builds the structured summary for a batch: the winning
// keyword and its count, or an error marker when nothing was counted.
func ResultValue(entry *analyzer.Entry) map[string]interface{} {
	if entry == nil {
		return map[string]interface{}{"error": NoDataMessage}
	}
	return map[string]interface{}{
		"most_common_word": entry.Word,
		"count":            entry.Count,
	}
}

// Encode serializes the value to canonical JSON (Go sorts map keys, so the
// byte form is stable), hashes it with sha256 and renders the digest as
// padding-free base64. Two different values collide only with negligible
// probability; the original value cannot be recovered.
func Encode(value map[string]interface{}) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to serialize summary: %w", err)
	}

	digest := sha256.Sum256(data)
	return base64.RawStdEncoding.EncodeToString(digest[:]), nil
}

// DecodeForInspection reverses only the base64 rendering and returns the
// digest bytes as hex text. It does not (and cannot) reconstruct the
// summary the fingerprint was computed from.
func DecodeForInspection(encoded string) (string, error) {
	raw, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil {
		return "", &DecodeError{Input: encoded, Err: err}
	}
	return hex.EncodeToString(raw), nil
}
