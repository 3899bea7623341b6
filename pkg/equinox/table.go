// Package equinox holds the precomputed table of year starts anchored to
// the autumn equinox, and the embedded data it is built from.
//
// A Table maps a contiguous range of zero-based years to the timestamp of
// the first second of each year. It performs no computation beyond
// indexing; extrapolation outside the covered range lives in package years.
package equinox

import (
	"errors"
	"fmt"

	"github.com/daviddao/calendrier/pkg/model"
)

// ErrMalformedTable is returned when a year-start sequence violates the
// table invariants.
var ErrMalformedTable = errors.New("malformed equinox table")

// maxDriftDays bounds how far a year start may sit from year0 mean years
// after the epoch. It must stay well under half a year.
const maxDriftDays = 100

// maxStart bounds the magnitude of any start so drift arithmetic cannot
// overflow.
const maxStart = (model.MaxYear0 + 1) * model.SecondsPerMeanYear

// Table is an immutable, contiguous run of year starts. Safe for
// concurrent use.
type Table struct {
	first  int64
	starts []model.Timestamp
}

// NewTable builds a table whose first entry is the start of year0 first.
// starts is copied. Every start must sit on a day boundary and consecutive
// starts must be 365 or 366 days apart. Each start must also lie within
// maxDriftDays of year0 * model.SecondsPerMeanYear, which keeps year
// lookups by estimate a step or two from the answer.
func NewTable(first int64, starts []model.Timestamp) (*Table, error) {
	if len(starts) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrMalformedTable)
	}
	if model.CheckYear0(first) != nil || model.CheckYear0(first+int64(len(starts))-1) != nil {
		return nil, fmt.Errorf("%w: years [%d, %d] beyond ±%d",
			ErrMalformedTable, first, first+int64(len(starts))-1, int64(model.MaxYear0))
	}
	for i, s := range starts {
		year0 := first + int64(i)
		if s.StartOfDay() != s {
			return nil, fmt.Errorf("%w: year0 %d start %d not on a day boundary",
				ErrMalformedTable, year0, s)
		}
		if s < -maxStart || s > maxStart {
			return nil, fmt.Errorf("%w: year0 %d start %d out of range", ErrMalformedTable, year0, s)
		}
		drift := s.Sub(model.Timestamp(year0*model.SecondsPerMeanYear)) / model.SecondsPerDay
		if drift < -maxDriftDays || drift > maxDriftDays {
			return nil, fmt.Errorf("%w: year0 %d starts %d days from its mean position",
				ErrMalformedTable, year0, drift)
		}
		if i == 0 {
			continue
		}
		days := starts[i].Sub(starts[i-1]) / model.SecondsPerDay
		if days != 365 && days != 366 {
			return nil, fmt.Errorf("%w: year0 %d has %d days",
				ErrMalformedTable, first+int64(i-1), days)
		}
	}
	cp := make([]model.Timestamp, len(starts))
	copy(cp, starts)
	return &Table{first: first, starts: cp}, nil
}

// Lookup returns the start of year0, or false when year0 is outside
// [First, Last].
func (t *Table) Lookup(year0 int64) (model.Timestamp, bool) {
	if year0 < t.first || year0 > t.Last() {
		return 0, false
	}
	return t.starts[year0-t.first], true
}

// First returns the lowest covered year0.
func (t *Table) First() int64 { return t.first }

// Last returns the highest covered year0.
func (t *Table) Last() int64 { return t.first + int64(len(t.starts)) - 1 }

// Len returns the number of covered years.
func (t *Table) Len() int { return len(t.starts) }

// All returns a copy of the year starts, beginning with First.
func (t *Table) All() []model.Timestamp {
	cp := make([]model.Timestamp, len(t.starts))
	copy(cp, t.starts)
	return cp
}

// Equal reports whether both tables cover the same years with the same
// starts.
func (t *Table) Equal(o *Table) bool {
	if t.first != o.first || len(t.starts) != len(o.starts) {
		return false
	}
	for i := range t.starts {
		if t.starts[i] != o.starts[i] {
			return false
		}
	}
	return true
}
