// Package source loads the full record set the picker filters and reveals.
package source

import (
	"context"

	"github.com/atomicstack/record-picker/internal/record"
)

// Source supplies every candidate record in a single call.
type Source interface {
	FetchAll(ctx context.Context) ([]record.Record, error)
}

// Static serves a fixed list of records.
type Static []record.Record

// FetchAll returns a copy of the static records.
func (s Static) FetchAll(ctx context.Context) ([]record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return record.Clone(s), nil
}
