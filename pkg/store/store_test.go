package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/daviddao/calendrier/pkg/equinox"
	"github.com/daviddao/calendrier/pkg/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "table.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func smallTable(t *testing.T, first int64) *equinox.Table {
	t.Helper()
	const day = model.SecondsPerDay
	base := model.Timestamp(first * model.SecondsPerMeanYear).StartOfDay()
	tab, err := equinox.NewTable(first, []model.Timestamp{base, base + 365*day, base + 730*day, base + 1096*day})
	require.NoError(t, err)
	return tab
}

func TestLoadTable_Empty(t *testing.T) {
	s := newTestStore(t)
	_, err := s.LoadTable(context.Background())
	require.ErrorIs(t, err, ErrNoTable)

	_, err = s.Info(context.Background())
	require.ErrorIs(t, err, ErrNoTable)
}

func TestSaveLoadTable(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.now = func() time.Time { return time.Date(2024, 9, 22, 12, 0, 0, 0, time.UTC) }

	in := smallTable(t, 0)
	require.NoError(t, s.SaveTable(ctx, in, "unit test"))

	out, err := s.LoadTable(ctx)
	require.NoError(t, err)
	require.True(t, in.Equal(out))

	info, err := s.Info(ctx)
	require.NoError(t, err)
	require.Equal(t, TableInfo{
		Source:  "unit test",
		First:   0,
		Last:    3,
		Years:   4,
		SavedAt: time.Date(2024, 9, 22, 12, 0, 0, 0, time.UTC),
	}, info)
}

func TestSaveTable_Replaces(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.SaveTable(ctx, smallTable(t, 0), "first"))
	require.NoError(t, s.SaveTable(ctx, smallTable(t, -10), "second"))

	out, err := s.LoadTable(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(-10), out.First())
	require.Equal(t, int64(-7), out.Last())

	info, err := s.Info(ctx)
	require.NoError(t, err)
	require.Equal(t, "second", info.Source)
	require.Equal(t, 4, info.Years)
}

func TestSaveTable_DefaultTable(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.SaveTable(ctx, equinox.Default(), "embedded"))

	out, err := s.LoadTable(ctx)
	require.NoError(t, err)
	require.True(t, equinox.Default().Equal(out))
}

func TestLoadTable_RejectsCorruptRows(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.SaveTable(ctx, smallTable(t, 0), "test"))

	t.Run("gap", func(t *testing.T) {
		_, err := s.db.Exec(`DELETE FROM year_starts WHERE year0 = 1`)
		require.NoError(t, err)
		_, err = s.LoadTable(ctx)
		require.ErrorIs(t, err, equinox.ErrMalformedTable)
	})

	t.Run("bad length", func(t *testing.T) {
		require.NoError(t, s.SaveTable(ctx, smallTable(t, 0), "test"))
		_, err := s.db.Exec(`UPDATE year_starts SET start = start + 100000 WHERE year0 = 3`)
		require.NoError(t, err)
		_, err = s.LoadTable(ctx)
		require.ErrorIs(t, err, equinox.ErrMalformedTable)
	})

	t.Run("misplaced years", func(t *testing.T) {
		require.NoError(t, s.SaveTable(ctx, smallTable(t, 0), "test"))
		_, err := s.db.Exec(`UPDATE year_starts SET start = start + 36500000000`)
		require.NoError(t, err)
		_, err = s.LoadTable(ctx)
		require.ErrorIs(t, err, equinox.ErrMalformedTable)
	})
}

func TestInfo_CorruptSavedAt(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.SaveTable(ctx, smallTable(t, 0), "test"))

	_, err := s.db.Exec(`UPDATE table_meta SET value = 'last tuesday' WHERE key = ?`, metaSavedAt)
	require.NoError(t, err)

	_, err = s.Info(ctx)
	require.ErrorContains(t, err, "saved_at")
}

func TestReopenKeepsTable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "table.db")

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveTable(ctx, smallTable(t, 5), "persisted"))
	require.NoError(t, s.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)

	var ts TableStore
	ts, err = New(path)
	require.NoError(t, err)
	defer ts.Close()

	out, err := ts.LoadTable(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(5), out.First())
}
