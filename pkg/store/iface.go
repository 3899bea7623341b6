package store

import (
	"context"

	"github.com/daviddao/calendrier/pkg/equinox"
)

// TableStore is the set of table persistence operations. The CLI depends
// on this rather than *Store.
type TableStore interface {
	// Close releases the underlying database.
	Close() error

	// SaveTable replaces the stored table.
	SaveTable(ctx context.Context, t *equinox.Table, source string) error

	// LoadTable returns the stored table, or ErrNoTable.
	LoadTable(ctx context.Context) (*equinox.Table, error)

	// Info describes the stored table, or returns ErrNoTable.
	Info(ctx context.Context) (TableInfo, error)
}

var _ TableStore = (*Store)(nil)
