// Package store persists year-start tables in SQLite.
//
// A stored table is a drop-in replacement for the embedded equinox data:
// it is loaded back through equinox.NewTable, so a database holding a
// malformed table is rejected on load rather than producing wrong dates.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daviddao/calendrier/pkg/equinox"
	"github.com/daviddao/calendrier/pkg/model"

	_ "modernc.org/sqlite"
)

// ErrNoTable is returned when the database holds no table.
var ErrNoTable = errors.New("no table stored")

const schema = `
CREATE TABLE IF NOT EXISTS year_starts (
	year0 INTEGER PRIMARY KEY,
	start INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS table_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Metadata keys.
const (
	metaSource  = "source"
	metaSavedAt = "saved_at"
)

// TableInfo describes the stored table.
type TableInfo struct {
	Source  string    `json:"source"`
	First   int64     `json:"first"`
	Last    int64     `json:"last"`
	Years   int       `json:"years"`
	SavedAt time.Time `json:"saved_at"`
}

// Store is a SQLite-backed table store in WAL mode.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New opens (or creates) the database at path and initializes the schema.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// SaveTable replaces the stored table with t in a single transaction.
// source is free text recorded alongside it.
func (s *Store) SaveTable(ctx context.Context, t *equinox.Table, source string) error {
	savedAt := s.now().UTC().Format(time.RFC3339)
	return retryOnContention(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if _, err := tx.ExecContext(ctx, `DELETE FROM year_starts`); err != nil {
			return fmt.Errorf("clear year starts: %w", err)
		}
		ins, err := tx.PrepareContext(ctx, `INSERT INTO year_starts (year0, start) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer ins.Close()
		for i, start := range t.All() {
			if _, err := ins.ExecContext(ctx, t.First()+int64(i), start.Seconds()); err != nil {
				return fmt.Errorf("insert year0 %d: %w", t.First()+int64(i), err)
			}
		}

		meta := map[string]string{
			metaSource:  source,
			metaSavedAt: savedAt,
		}
		for k, v := range meta {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO table_meta (key, value) VALUES (?, ?)
				 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v); err != nil {
				return fmt.Errorf("set %s: %w", k, err)
			}
		}
		return tx.Commit()
	})
}

// LoadTable reads the stored table and validates it.
func (s *Store) LoadTable(ctx context.Context) (*equinox.Table, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT year0, start FROM year_starts ORDER BY year0`)
	if err != nil {
		return nil, fmt.Errorf("query year starts: %w", err)
	}
	defer rows.Close()

	var (
		first  int64
		starts []model.Timestamp
	)
	for rows.Next() {
		var year0, start int64
		if err := rows.Scan(&year0, &start); err != nil {
			return nil, err
		}
		if len(starts) == 0 {
			first = year0
		} else if year0 != first+int64(len(starts)) {
			return nil, fmt.Errorf("%w: missing year0 %d", equinox.ErrMalformedTable, first+int64(len(starts)))
		}
		starts = append(starts, model.Timestamp(start))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(starts) == 0 {
		return nil, ErrNoTable
	}
	return equinox.NewTable(first, starts)
}

// Info returns metadata about the stored table.
func (s *Store) Info(ctx context.Context) (TableInfo, error) {
	var info TableInfo
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MIN(year0), 0), COALESCE(MAX(year0), 0) FROM year_starts`,
	).Scan(&info.Years, &info.First, &info.Last)
	if err != nil {
		return TableInfo{}, fmt.Errorf("count year starts: %w", err)
	}
	if info.Years == 0 {
		return TableInfo{}, ErrNoTable
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM table_meta WHERE key IN (?, ?)`, metaSource, metaSavedAt)
	if err != nil {
		return TableInfo{}, fmt.Errorf("query meta: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return TableInfo{}, err
		}
		switch k {
		case metaSource:
			info.Source = v
		case metaSavedAt:
			if info.SavedAt, err = time.Parse(time.RFC3339, v); err != nil {
				return TableInfo{}, fmt.Errorf("meta %s: %w", k, err)
			}
		}
	}
	return info, rows.Err()
}
