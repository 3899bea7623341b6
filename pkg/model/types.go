// Package model defines the core value types for calendrier.
//
// The French Republican calendar counts time from the autumn equinox of
// 1792 (1 Vendémiaire an I, 00:00:00 Paris time). A day is divided into
// 10 hours of 100 minutes of 100 seconds, so a native day lasts 100 000
// native seconds. A year is 12 months of 30 days followed by a short
// complementary period of 5 or 6 days.
//
// Two numbering views coexist for years (and franciades):
//
//   - the zero-based index used for arithmetic ("year0"): 0, 1, 2, ... and
//     -1, -2, ... going backwards;
//   - the displayed number: 1, 2, 3, ... and -1, -2, ... There is no year 0.
//
// Index >= 0 displays as index+1; a negative index displays unchanged.
// Everything in this package is an immutable value.
package model

import (
	"errors"
	"fmt"
)

const (
	SecondsPerMinute = 100
	SecondsPerHour   = 100 * SecondsPerMinute
	SecondsPerDay    = 10 * SecondsPerHour

	DaysPerDecade = 10
	DaysPerMonth  = 3 * DaysPerDecade

	SecondsPerMonth = DaysPerMonth * SecondsPerDay

	// MonthsPerYear counts the complementary period as a 13th month.
	MonthsPerYear = 13

	// RegularMonthDays is the number of days in the 12 regular months.
	RegularMonthDays = 12 * DaysPerMonth

	// SecondsPerMeanYear is the average year over a 4-year cycle.
	SecondsPerMeanYear = (4*365 + 1) * SecondsPerDay / 4

	// MaxYear0 bounds zero-based years in both directions so that every
	// year start fits in a Timestamp.
	MaxYear0 = 100_000_000_000
)

var (
	// ErrYearZero is returned when a displayed year of 0 is supplied.
	ErrYearZero = errors.New("year 0 does not exist")

	// ErrOutOfRange is returned when a calendar field is outside its domain.
	ErrOutOfRange = errors.New("field out of range")

	// ErrUnknownName is returned when a month or day name cannot be parsed.
	ErrUnknownName = errors.New("unknown name")
)

// Timestamp counts native seconds since 1 Vendémiaire an I, 00:00:00.
// Negative values lie before the epoch.
type Timestamp int64

// Seconds returns the raw second count.
func (t Timestamp) Seconds() int64 { return int64(t) }

// Add returns t shifted by the given number of native seconds.
func (t Timestamp) Add(seconds int64) Timestamp { return t + Timestamp(seconds) }

// AddDays returns t shifted by whole native days.
func (t Timestamp) AddDays(days int64) Timestamp { return t + Timestamp(days*SecondsPerDay) }

// Sub returns t-u in native seconds.
func (t Timestamp) Sub(u Timestamp) int64 { return int64(t - u) }

// Before reports whether t is earlier than u.
func (t Timestamp) Before(u Timestamp) bool { return t < u }

// After reports whether t is later than u.
func (t Timestamp) After(u Timestamp) bool { return t > u }

// Compare returns -1, 0 or +1 depending on whether t is before, equal to,
// or after u.
func (t Timestamp) Compare(u Timestamp) int {
	switch {
	case t < u:
		return -1
	case t > u:
		return 1
	default:
		return 0
	}
}

// StartOfDay truncates t down to the first second of its native day.
func (t Timestamp) StartOfDay() Timestamp {
	return t - Timestamp(FloorMod(int64(t), SecondsPerDay))
}

// Year0 converts a displayed year to its zero-based index.
func Year0(year int64) (int64, error) {
	switch {
	case year > 0:
		return year - 1, nil
	case year < 0:
		return year, nil
	default:
		return 0, ErrYearZero
	}
}

// DisplayYear converts a zero-based year index to the displayed number.
func DisplayYear(year0 int64) int64 {
	if year0 >= 0 {
		return year0 + 1
	}
	return year0
}

// DisplayFranciade applies the year display convention to a franciade index.
func DisplayFranciade(franciade0 int64) int64 {
	return DisplayYear(franciade0)
}

// FloorDiv divides rounding toward negative infinity. b must be positive.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// FloorMod returns the non-negative remainder matching FloorDiv.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// CheckYear0 returns ErrOutOfRange unless -MaxYear0 <= year0 <= MaxYear0.
func CheckYear0(year0 int64) error {
	return CheckRange("year0", year0, -MaxYear0, MaxYear0)
}

// CheckRange returns ErrOutOfRange wrapped with the field name unless
// lo <= v <= hi.
func CheckRange(field string, v, lo, hi int64) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrOutOfRange, field, v, lo, hi)
	}
	return nil
}
