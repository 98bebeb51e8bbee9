package app

import (
	"strings"
	"testing"
)

func TestRunRejectsInvalidURL(t *testing.T) {
	for _, url := range []string{"", "ftp://example.com/records"} {
		_, err := Run(Config{URL: url, BatchSize: 5})
		if err == nil {
			t.Fatalf("expected error for url %q", url)
		}
		if !strings.Contains(err.Error(), "record source") {
			t.Fatalf("expected record source error, got %v", err)
		}
	}
}
