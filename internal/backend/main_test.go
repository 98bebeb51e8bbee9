package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/record-picker/internal/logging"
)

// TestMain keeps fetch failures from writing a log file into the package directory.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "backend-test")
	if err != nil {
		panic(err)
	}
	logging.Configure(filepath.Join(dir, "record-picker.log"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}
