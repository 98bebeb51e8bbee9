package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "picker.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONOnlyWhenEnabled(t *testing.T) {
	path := useTempLog(t)

	Trace("ignored", map[string]interface{}{"a": 1})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing disabled, stat err=%v", err)
	}

	SetTraceEnabled(true)
	Trace("batch.reveal", map[string]interface{}{"visible": 10})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatal("expected one trace line")
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("decode trace line: %v", err)
	}
	if entry.Event != "batch.reveal" || entry.Payload["visible"] != float64(10) {
		t.Fatalf("unexpected trace entry %#v", entry)
	}
}

func TestErrorAndWarnAppendLines(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("fetch failed"))
	Warnf("retrying %s", "GET /people")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "ERROR fetch failed") {
		t.Fatalf("expected error line, got %q", text)
	}
	if !strings.Contains(text, "WARN retrying GET /people") {
		t.Fatalf("expected warn line, got %q", text)
	}
	if strings.Count(text, "\n") != 2 {
		t.Fatalf("expected exactly two lines, got %q", text)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	useTempLog(t)
	Configure("  ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
