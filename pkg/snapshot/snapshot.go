// Package snapshot persists the current graph as a single-slot record.
// Only the latest state is kept: the record is read once at startup and
// overwritten after every mutation and on a fixed autosave interval.
package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

// CurrentKey is the id of the single persisted slot.
const CurrentKey = "current"

// ErrNotFound is returned by Load when no snapshot has been saved yet.
var ErrNotFound = errors.New("snapshot not found")

// Record is the persisted envelope around a graph. Version carries the
// seed data version the graph was hydrated from, so a seed bump forces a
// one-time re-hydration at startup.
type Record struct {
	ID      string       `json:"id"`
	Graph   common.Graph `json:"graph"`
	Version string       `json:"version"`
	SavedAt time.Time    `json:"savedAt"`
}

// Store reads and writes the single-slot snapshot record.
type Store interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, rec Record) error
	Close() error
}
