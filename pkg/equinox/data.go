package equinox

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/daviddao/calendrier/pkg/clock"
	"github.com/daviddao/calendrier/pkg/model"
)

// Covered range of the embedded table, as year0 values. Gregorian year g
// holds the start of year0 g-1792.
const (
	MinCovered int64 = -209
	MaxCovered int64 = 1207
)

// epochGregorianYear is the Gregorian year in which year0 0 begins.
const epochGregorianYear = 1792

//go:embed equinoxes.csv
var embedded []byte

// Equinox is one September equinox instant.
type Equinox struct {
	GregorianYear int
	Instant       time.Time
}

// Year0 returns the zero-based Republican year this equinox opens.
func (e Equinox) Year0() int64 { return int64(e.GregorianYear - epochGregorianYear) }

// Parse reads "gregorian_year,RFC3339 instant" rows. Lines starting with
// '#' are comments.
func Parse(r io.Reader) ([]Equinox, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var out []Equinox
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse equinoxes: %w", err)
		}
		line, _ := cr.FieldPos(0)
		year, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("parse equinoxes: line %d: year %q: %w", line, rec[0], err)
		}
		inst, err := time.Parse(time.RFC3339, rec[1])
		if err != nil {
			return nil, fmt.Errorf("parse equinoxes: line %d: instant: %w", line, err)
		}
		out = append(out, Equinox{GregorianYear: year, Instant: inst.UTC()})
	}
	return out, nil
}

// FromEquinoxes builds a table from consecutive equinoxes. Each instant
// must fall in September of its Gregorian year; it is converted with the
// decree offset and truncated to the start of its day.
func FromEquinoxes(eqs []Equinox) (*Table, error) {
	if len(eqs) == 0 {
		return nil, fmt.Errorf("%w: no equinoxes", ErrMalformedTable)
	}
	starts := make([]model.Timestamp, len(eqs))
	for i, e := range eqs {
		if i > 0 && e.GregorianYear != eqs[i-1].GregorianYear+1 {
			return nil, fmt.Errorf("%w: gap between %d and %d",
				ErrMalformedTable, eqs[i-1].GregorianYear, e.GregorianYear)
		}
		if in := e.Instant.UTC(); in.Year() != e.GregorianYear || in.Month() != time.September {
			return nil, fmt.Errorf("%w: equinox for %d dated %s",
				ErrMalformedTable, e.GregorianYear, in.Format(time.RFC3339))
		}
		ts, err := clock.Decree.FromTime(e.Instant)
		if err != nil {
			return nil, fmt.Errorf("equinox for %d: %w", e.GregorianYear, err)
		}
		starts[i] = ts.StartOfDay()
	}
	return NewTable(eqs[0].Year0(), starts)
}

var defaultTable = sync.OnceValue(func() *Table {
	eqs, err := Parse(bytes.NewReader(embedded))
	if err != nil {
		panic(err)
	}
	t, err := FromEquinoxes(eqs)
	if err != nil {
		panic(err)
	}
	if t.First() != MinCovered || t.Last() != MaxCovered {
		panic(fmt.Sprintf("equinox: embedded table covers [%d, %d], want [%d, %d]",
			t.First(), t.Last(), MinCovered, MaxCovered))
	}
	return t
})

// Default returns the table built from the embedded equinox data.
func Default() *Table { return defaultTable() }
