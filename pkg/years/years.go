// Package years resolves year boundaries: the start and length of any
// zero-based year, and the year containing a timestamp.
//
// Inside the equinox table the answer is read directly. Outside it the
// calendar is extended with a fixed 4-year rhythm (three standard years
// then one sextile year), counted away from the nearest table edge.
package years

import (
	"fmt"

	"github.com/daviddao/calendrier/pkg/equinox"
	"github.com/daviddao/calendrier/pkg/model"
)

const (
	standardDays = 365
	sextileDays  = 366

	// searchFallback bounds the estimate beyond which YearContaining
	// returns the estimate without correction.
	searchFallback = 100000

	// maxSearchSteps caps the correction walk. equinox.NewTable keeps
	// every start within 100 days of its mean position and the rhythm
	// beyond the table drifts less than a day, so a few steps suffice.
	maxSearchSteps = 64
)

// Resolver answers year-boundary questions against one table. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	table *equinox.Table
}

// New returns a resolver over t.
func New(t *equinox.Table) *Resolver {
	return &Resolver{table: t}
}

// Default returns a resolver over the embedded equinox table.
func Default() *Resolver { return New(equinox.Default()) }

// Table returns the underlying table.
func (r *Resolver) Table() *equinox.Table { return r.table }

// YearStart returns the timestamp of the first second of year0, which
// must lie within ±model.MaxYear0.
func (r *Resolver) YearStart(year0 int64) model.Timestamp {
	if s, ok := r.table.Lookup(year0); ok {
		return s
	}
	if last := r.table.Last(); year0 > last {
		lastStart, _ := r.table.Lookup(last)
		return lastStart.AddDays(extrapolatedDays(year0 - last))
	}
	first := r.table.First()
	firstStart, _ := r.table.Lookup(first)
	// The year just below the table edge is always a sextile year.
	return firstStart.AddDays(-(extrapolatedDays(first-1-year0) + sextileDays))
}

// extrapolatedDays counts the days in delta years of the 4-year rhythm,
// where every fourth year is a sextile year.
func extrapolatedDays(delta int64) int64 {
	sextiles := model.FloorDiv(delta, 4)
	standard := delta - sextiles
	return sextiles*sextileDays + standard*standardDays
}

// YearLength returns the number of days in year0 (365 or 366).
func (r *Resolver) YearLength(year0 int64) int64 {
	return r.YearStart(year0+1).Sub(r.YearStart(year0)) / model.SecondsPerDay
}

// IsSextile reports whether year0 has 366 days.
func (r *Resolver) IsSextile(year0 int64) bool {
	return r.YearLength(year0) == sextileDays
}

// Extrapolated reports whether the start of year0 lies outside the table.
func (r *Resolver) Extrapolated(year0 int64) bool {
	return year0 < r.table.First() || year0 > r.table.Last()
}

// Franciade0 returns the zero-based franciade containing year0. Franciade 0
// spans year0 -1 through 2, so year 3 (displayed) closes it.
func Franciade0(year0 int64) int64 {
	return model.FloorDiv(year0+1, 4)
}

// Boundary describes one year.
type Boundary struct {
	Year0        int64           `json:"year0"`
	Start        model.Timestamp `json:"start"`
	Days         int64           `json:"days"`
	Sextile      bool            `json:"sextile"`
	Extrapolated bool            `json:"extrapolated"`
}

// Year returns the displayed year number.
func (b Boundary) Year() int64 { return model.DisplayYear(b.Year0) }

// End returns the first second of the following year.
func (b Boundary) End() model.Timestamp { return b.Start.AddDays(b.Days) }

// Contains reports whether ts falls inside the year.
func (b Boundary) Contains(ts model.Timestamp) bool {
	return !ts.Before(b.Start) && ts.Before(b.End())
}

// Boundary returns the full description of year0.
func (r *Resolver) Boundary(year0 int64) Boundary {
	start := r.YearStart(year0)
	days := r.YearStart(year0+1).Sub(start) / model.SecondsPerDay
	return Boundary{
		Year0:        year0,
		Start:        start,
		Days:         days,
		Sextile:      days == sextileDays,
		Extrapolated: r.Extrapolated(year0),
	}
}

// YearContaining returns the year0 whose span includes ts.
//
// The search starts from the 4-year average and walks one year at a time.
// When the estimate is more than 100000 years from the epoch it is
// returned as is; such results may be off by a year or more. ts must
// belong to a year within ±model.MaxYear0.
func (r *Resolver) YearContaining(ts model.Timestamp) int64 {
	est := model.FloorDiv(ts.Seconds(), model.SecondsPerMeanYear)
	if est > searchFallback || est < -searchFallback {
		return est
	}
	y := est
	for step := 0; step < maxSearchSteps; step++ {
		b := r.Boundary(y)
		switch {
		case ts.Before(b.Start):
			y--
		case !ts.Before(b.End()):
			y++
		default:
			return y
		}
	}
	panic(fmt.Sprintf("years: no year found for timestamp %d after %d steps from %d", ts, maxSearchSteps, est))
}

// BoundaryContaining returns the boundary of the year containing ts.
func (r *Resolver) BoundaryContaining(ts model.Timestamp) Boundary {
	return r.Boundary(r.YearContaining(ts))
}
