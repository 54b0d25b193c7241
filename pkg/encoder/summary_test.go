package encoder

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"

	"chainwatch-go/pkg/analyzer"
)

func TestResultValue(t *testing.T) {
	value := ResultValue(&analyzer.Entry{Word: "uniswap", Count: 2})
	if value["most_common_word"] != "uniswap" {
		t.Errorf("Expected most_common_word uniswap, got %v", value["most_common_word"])
	}
	if value["count"] != 2 {
		t.Errorf("Expected count 2, got %v", value["count"])
	}

	empty := ResultValue(nil)
	if empty["error"] != NoDataMessage {
		t.Errorf("Expected error marker %q, got %v", NoDataMessage, empty["error"])
	}
	if _, exists := empty["most_common_word"]; exists {
		t.Error("Empty result must not carry a winning keyword")
	}
}

func TestEncode_CanonicalAndDeterministic(t *testing.T) {
	value := ResultValue(&analyzer.Entry{Word: "uniswap", Count: 2})

	encoded, err := Encode(value)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// json.Marshal sorts map keys, so the canonical serialization is fixed
	canonical := `{"count":2,"most_common_word":"uniswap"}`
	digest := sha256.Sum256([]byte(canonical))
	expected := base64.RawStdEncoding.EncodeToString(digest[:])
	if encoded != expected {
		t.Errorf("Expected %s, got %s", expected, encoded)
	}

	// sha256 rendered without padding is always 43 characters
	if len(encoded) != 43 {
		t.Errorf("Expected 43-character fingerprint, got %d", len(encoded))
	}
	for _, r := range encoded {
		if r == '=' {
			t.Error("Fingerprint must be padding-free")
		}
	}

	again, err := Encode(ResultValue(&analyzer.Entry{Word: "uniswap", Count: 2}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if again != encoded {
		t.Error("Encoding the same summary twice must produce the same fingerprint")
	}
}

func TestEncode_DistinctValuesDistinctFingerprints(t *testing.T) {
	a, err := Encode(ResultValue(&analyzer.Entry{Word: "uniswap", Count: 1}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	b, err := Encode(ResultValue(&analyzer.Entry{Word: "ethereum", Count: 1}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if a == b {
		t.Error("Different summaries must not share a fingerprint")
	}
}

func TestDecodeForInspection_RecoversDigestHex(t *testing.T) {
	value := ResultValue(nil)
	encoded, err := Encode(value)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	decoded, err := DecodeForInspection(encoded)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// The decode exposes the digest bytes, not the original summary
	if len(decoded) != 64 {
		t.Errorf("Expected 64 hex characters for a sha256 digest, got %d", len(decoded))
	}

	canonical := `{"error":"No words analyzed yet"}`
	digest := sha256.Sum256([]byte(canonical))
	if decoded != hex.EncodeToString(digest[:]) {
		t.Errorf("Decoded hex does not match the recomputed digest")
	}
}

func TestDecodeForInspection_Base64StageRoundTrip(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe, 0xef}
	encoded := base64.RawStdEncoding.EncodeToString(raw)

	decoded, err := DecodeForInspection(encoded)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if decoded != "deadbeef" {
		t.Errorf("Expected deadbeef, got %s", decoded)
	}
}

func TestDecodeForInspection_MalformedInput(t *testing.T) {
	inputs := []string{"!!!", "abc!!!def", "////ä"}

	for _, input := range inputs {
		decoded, err := DecodeForInspection(input)
		if err == nil {
			t.Errorf("DecodeForInspection(%q): expected error, got %q", input, decoded)
			continue
		}

		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Errorf("DecodeForInspection(%q): expected *DecodeError, got %T", input, err)
		}
	}
}
