package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	zlog "github.com/rs/zerolog/log"
)

func newFileLogger(t *testing.T) (*Logger, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.log")
	l := New(Config{
		Level:  "debug",
		Format: "json",
		Output: path,
	})
	return l, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log output: %v", err)
	}
	return string(data)
}

func TestLogger_WithFieldAppearsInOutput(t *testing.T) {
	l, path := newFileLogger(t)

	l.WithField("component", "logger_test").Info("hello")

	output := readLog(t, path)
	if !strings.Contains(output, `"component":"logger_test"`) {
		t.Errorf("Expected component field in output, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("Expected message in output, got: %s", output)
	}
}

func TestSetGlobalLogger_RoutesPackageLevelLogging(t *testing.T) {
	l, path := newFileLogger(t)

	SetGlobalLogger(l)
	zlog.Info().Msg("via global")

	output := readLog(t, path)
	if !strings.Contains(output, "via global") {
		t.Errorf("Expected package-level log line in output, got: %s", output)
	}
}

func TestGlobalWithField(t *testing.T) {
	if WithField("component", "anything") == nil {
		t.Error("Expected a derived logger from the global instance")
	}
}
