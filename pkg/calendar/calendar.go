// Package calendar splits timestamps into Republican calendar fields and
// assembles fields back into timestamps.
//
// A year is 12 months of 30 days followed by the complementary period,
// numbered as month 12, which holds 5 days or 6 in a sextile year. Days
// are 10 hours of 100 minutes of 100 seconds.
package calendar

import (
	"github.com/daviddao/calendrier/pkg/model"
	"github.com/daviddao/calendrier/pkg/years"
)

// Calendar converts between timestamps and DateTimes using one resolver.
// It is read-only and safe for concurrent use.
type Calendar struct {
	years *years.Resolver
}

// New returns a calendar over r.
func New(r *years.Resolver) *Calendar {
	return &Calendar{years: r}
}

// Default returns a calendar over the embedded equinox table.
func Default() *Calendar { return New(years.Default()) }

// Years returns the resolver the calendar uses.
func (c *Calendar) Years() *years.Resolver { return c.years }

// Decompose returns the fields of ts.
//
// More than 100000 years from the epoch the year is estimated rather than
// searched, so precision drops: the year may be off by one or more, month0
// may pass 12 and the complementary period may hold more days than the
// year has. Such a DateTime need not be accepted by Compose.
func (c *Calendar) Decompose(ts model.Timestamp) DateTime {
	b := c.years.BoundaryContaining(ts)
	inYear := ts.Sub(b.Start)

	month0 := model.FloorDiv(inYear, model.SecondsPerMonth)
	inMonth := model.FloorMod(inYear, model.SecondsPerMonth)
	day0 := model.FloorDiv(inMonth, model.SecondsPerDay)
	inDay := model.FloorMod(inMonth, model.SecondsPerDay)

	return DateTime{
		year0:   b.Year0,
		month0:  month0,
		day0:    day0,
		hour:    inDay / model.SecondsPerHour,
		minute:  inDay % model.SecondsPerHour / model.SecondsPerMinute,
		second:  inDay % model.SecondsPerMinute,
		ts:      ts,
		sextile: b.Sextile,
	}
}

// Compose builds a DateTime from zero-based fields. Every field is checked
// against its range; in the complementary period day0 must also fall
// within the year's 5 or 6 days, and year0 within ±model.MaxYear0.
// Out-of-range input returns an error wrapping model.ErrOutOfRange.
func (c *Calendar) Compose(year0, month0, day0, hour, minute, second int64) (DateTime, error) {
	if err := model.CheckYear0(year0); err != nil {
		return DateTime{}, err
	}
	checks := []struct {
		field string
		v, hi int64
	}{
		{"month0", month0, model.MonthsPerYear - 1},
		{"day0", day0, model.DaysPerMonth - 1},
		{"hour", hour, model.SecondsPerDay/model.SecondsPerHour - 1},
		{"minute", minute, model.SecondsPerHour/model.SecondsPerMinute - 1},
		{"second", second, model.SecondsPerMinute - 1},
	}
	for _, ck := range checks {
		if err := model.CheckRange(ck.field, ck.v, 0, ck.hi); err != nil {
			return DateTime{}, err
		}
	}

	b := c.years.Boundary(year0)
	if month0 == int64(model.Sansculottides) {
		if err := model.CheckRange("complementary day0", day0, 0, b.Days-model.RegularMonthDays-1); err != nil {
			return DateTime{}, err
		}
	}

	ts := b.Start.
		Add(month0*model.SecondsPerMonth + day0*model.SecondsPerDay).
		Add(hour*model.SecondsPerHour + minute*model.SecondsPerMinute + second)
	return DateTime{
		year0:   year0,
		month0:  month0,
		day0:    day0,
		hour:    hour,
		minute:  minute,
		second:  second,
		ts:      ts,
		sextile: b.Sextile,
	}, nil
}

// FromYMDHMS builds a DateTime from displayed fields: year has no 0, month
// and day start at 1.
func (c *Calendar) FromYMDHMS(year, month, day, hour, minute, second int64) (DateTime, error) {
	year0, err := model.Year0(year)
	if err != nil {
		return DateTime{}, err
	}
	return c.Compose(year0, month-1, day-1, hour, minute, second)
}

// FromYMD is FromYMDHMS at midnight.
func (c *Calendar) FromYMD(year, month, day int64) (DateTime, error) {
	return c.FromYMDHMS(year, month, day, 0, 0, 0)
}

// Add returns the DateTime seconds native seconds after dt.
func (c *Calendar) Add(dt DateTime, seconds int64) DateTime {
	return c.Decompose(dt.ts.Add(seconds))
}

// AddDays returns the DateTime days native days after dt.
func (c *Calendar) AddDays(dt DateTime, days int64) DateTime {
	return c.Decompose(dt.ts.AddDays(days))
}

// FromTimestamp decomposes ts with the default calendar.
func FromTimestamp(ts model.Timestamp) DateTime { return Default().Decompose(ts) }

// Compose composes zero-based fields with the default calendar.
func Compose(year0, month0, day0, hour, minute, second int64) (DateTime, error) {
	return Default().Compose(year0, month0, day0, hour, minute, second)
}

// FromYMDHMS composes displayed fields with the default calendar.
func FromYMDHMS(year, month, day, hour, minute, second int64) (DateTime, error) {
	return Default().FromYMDHMS(year, month, day, hour, minute, second)
}

// FromYMD composes a displayed date with the default calendar.
func FromYMD(year, month, day int64) (DateTime, error) {
	return Default().FromYMD(year, month, day)
}
