package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/record-picker/internal/batch"
	"github.com/atomicstack/record-picker/internal/record"
)

var phonetic = []string{
	"Alpha", "Bravo", "Charlie", "Delta", "Echo",
	"Foxtrot", "Golf", "Hotel", "India", "Juliet",
}

func phoneticRecords() []record.Record {
	out := make([]record.Record, len(phonetic))
	for i, name := range phonetic {
		out[i] = record.Record{ID: strings.ToLower(name[:1]), Name: name}
	}
	return out
}

func newLoadedHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	if opts.Controller == nil {
		opts.Controller = batch.New(5)
	}
	h := NewHarness(NewModel(opts, nil))
	h.Load(phoneticRecords())
	return h
}

func visibleNames(m *Model) []string {
	names := make([]string, len(m.level.Items))
	for i, item := range m.level.Items {
		names[i] = item.Name
	}
	return names
}
