package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/daviddao/calendrier/pkg/calendar"
	"github.com/daviddao/calendrier/pkg/clock"
	"github.com/daviddao/calendrier/pkg/config"
	"github.com/daviddao/calendrier/pkg/equinox"
	"github.com/daviddao/calendrier/pkg/model"
	"github.com/daviddao/calendrier/pkg/store"
	"github.com/daviddao/calendrier/pkg/years"
)

const embeddedSource = "embedded"

// app holds shared state for all subcommands. It is filled in by setup
// once flags and config have been resolved.
type app struct {
	out    io.Writer
	errOut io.Writer
	now    func() time.Time

	cfg    config.Config
	log    *slog.Logger
	conv   clock.Converter
	table  *equinox.Table
	source string
	cal    *calendar.Calendar
}

// openStore is swapped out in tests.
var openStore = func(path string) (store.TableStore, error) {
	return store.New(path)
}

func (a *app) setup(ctx context.Context, cfg config.Config) error {
	a.cfg = cfg
	a.conv = cfg.Converter()
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.Level()}))

	if err := a.loadTable(ctx); err != nil {
		return err
	}
	a.cal = calendar.New(years.New(a.table))
	a.log.Debug("calendar ready",
		"source", a.source,
		"first_year0", a.table.First(),
		"last_year0", a.table.Last(),
		"offset", a.conv.Offset)
	return nil
}

// loadTable selects the embedded table, or the one stored at table_db.
func (a *app) loadTable(ctx context.Context) error {
	path := a.cfg.TableDB
	if path == "" {
		a.table, a.source = equinox.Default(), embeddedSource
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("table db: %w", err)
	}
	s, err := openStore(path)
	if err != nil {
		return fmt.Errorf("cannot open table db %q: %w", path, err)
	}
	defer s.Close()

	t, err := s.LoadTable(ctx)
	if err != nil {
		return fmt.Errorf("load table from %q: %w", path, err)
	}
	a.log.Info("loaded year-start table", "path", path, "years", t.Len())
	a.table, a.source = t, path
	return nil
}

// ensureDBDir creates the parent directory of a database path.
func ensureDBDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (a *app) wallClock() *clock.Clock { return clock.New(a.now, a.conv) }

// dateView is the JSON form of a DateTime.
type dateView struct {
	Timestamp   int64  `json:"timestamp"`
	Gregorian   string `json:"gregorian"`
	Year        int64  `json:"year"`
	Month       int64  `json:"month"`
	MonthName   string `json:"month_name"`
	Day         int64  `json:"day"`
	Decade      int64  `json:"decade"`
	DecadeDay   string `json:"decade_day"`
	Time        string `json:"time"`
	Franciade   int64  `json:"franciade"`
	Sextile     bool   `json:"sextile"`
	Text        string `json:"text"`
	Traditional string `json:"traditional"`
}

// gregorian formats ts as an RFC 3339 UTC instant.
func (a *app) gregorian(ts model.Timestamp) (string, error) {
	t, err := a.conv.ToTime(ts)
	if err != nil {
		return "", err
	}
	return t.Format(time.RFC3339), nil
}

func (a *app) view(d calendar.DateTime) (dateView, error) {
	greg, err := a.gregorian(d.Timestamp())
	if err != nil {
		return dateView{}, err
	}
	return dateView{
		Timestamp:   d.Timestamp().Seconds(),
		Gregorian:   greg,
		Year:        d.Year(),
		Month:       d.MonthNum(),
		MonthName:   d.Month().Name(),
		Day:         d.Day(),
		Decade:      d.Decade(),
		DecadeDay:   d.DecadeDay().Name(),
		Time:        d.TimeOfDay(),
		Franciade:   d.Franciade(),
		Sextile:     d.Sextile(),
		Text:        d.String(),
		Traditional: d.Traditional(),
	}, nil
}

// printDate writes d as JSON or as "<date> <time>".
func (a *app) printDate(d calendar.DateTime, traditional bool) error {
	if a.cfg.JSON {
		v, err := a.view(d)
		if err != nil {
			return err
		}
		return printJSON(a.out, v)
	}
	text := d.String()
	if traditional {
		text = d.Traditional()
	}
	_, err := fmt.Fprintf(a.out, "%s %s\n", text, d.TimeOfDay())
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
