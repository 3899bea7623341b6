package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daviddao/calendrier/pkg/model"
	"github.com/daviddao/calendrier/pkg/years"
)

// DateTime is an immutable set of calendar fields together with the
// timestamp they resolve to. The zero value is 1 Vendémiaire an I,
// 0:00:00.
type DateTime struct {
	year0   int64
	month0  int64
	day0    int64
	hour    int64
	minute  int64
	second  int64
	ts      model.Timestamp
	sextile bool
}

// Year0 returns the zero-based year.
func (d DateTime) Year0() int64 { return d.year0 }

// Year returns the displayed year; there is no year 0.
func (d DateTime) Year() int64 { return model.DisplayYear(d.year0) }

// Month returns the month, Sansculottides for the complementary period.
func (d DateTime) Month() model.Month { return model.Month(d.month0) }

// MonthNum0 returns the zero-based month number (0..12).
func (d DateTime) MonthNum0() int64 { return d.month0 }

// MonthNum returns the month number starting from 1.
func (d DateTime) MonthNum() int64 { return d.month0 + 1 }

// Day0 returns the zero-based day of the month.
func (d DateTime) Day0() int64 { return d.day0 }

// Day returns the day of the month starting from 1.
func (d DateTime) Day() int64 { return d.day0 + 1 }

// Decade0 returns the zero-based decade of the month.
func (d DateTime) Decade0() int64 { return d.day0 / model.DaysPerDecade }

// Decade returns the decade of the month starting from 1.
func (d DateTime) Decade() int64 { return d.Decade0() + 1 }

// DecadeDayNum0 returns the zero-based day within the decade.
func (d DateTime) DecadeDayNum0() int64 { return d.day0 % model.DaysPerDecade }

// DecadeDayNum returns the day within the decade starting from 1.
func (d DateTime) DecadeDayNum() int64 { return d.DecadeDayNum0() + 1 }

// DecadeDay names the day. In the complementary period it is one of the
// six festival days, otherwise one of Primidi..Décadi.
func (d DateTime) DecadeDay() model.DecadeDay {
	if d.Month() == model.Sansculottides {
		return model.DecadeDay(model.DaysPerDecade + d.day0)
	}
	return model.DecadeDay(d.DecadeDayNum0())
}

// Hour returns the hour of the day, 0 to 9.
func (d DateTime) Hour() int64 { return d.hour }

// Minute returns the minute of the hour, 0 to 99.
func (d DateTime) Minute() int64 { return d.minute }

// Second returns the second of the minute, 0 to 99.
func (d DateTime) Second() int64 { return d.second }

// HMS returns hour, minute and second.
func (d DateTime) HMS() (hour, minute, second int64) { return d.hour, d.minute, d.second }

// Franciade0 returns the zero-based franciade.
func (d DateTime) Franciade0() int64 { return years.Franciade0(d.year0) }

// Franciade returns the displayed franciade.
func (d DateTime) Franciade() int64 { return model.DisplayFranciade(d.Franciade0()) }

// Timestamp returns the instant the fields resolve to.
func (d DateTime) Timestamp() model.Timestamp { return d.ts }

// Sextile reports whether the year has 366 days.
func (d DateTime) Sextile() bool { return d.sextile }

// Equal reports whether both values denote the same instant.
func (d DateTime) Equal(o DateTime) bool { return d.ts == o.ts }

// TimeOfDay formats the decimal time as "h:mm:ss".
func (d DateTime) TimeOfDay() string {
	return fmt.Sprintf("%d:%02d:%02d", d.hour, d.minute, d.second)
}

// String formats the date as "Primidi 1 Vendémiaire 1".
func (d DateTime) String() string {
	return fmt.Sprintf("%s %d %s %d", d.DecadeDay(), d.Day(), d.Month(), d.Year())
}

// Traditional formats the date as "Primidi 1 Vendémiaire an I".
func (d DateTime) Traditional() string {
	return fmt.Sprintf("%s %d %s an %s", d.DecadeDay(), d.Day(), d.Month(), Roman(d.Year()))
}

var romanDigits = []struct {
	value  int64
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman writes n in Roman numerals. Thousands repeat M without limit.
// Numbers below 1 have no Roman form and are written in Arabic digits.
func Roman(n int64) string {
	if n < 1 {
		return strconv.FormatInt(n, 10)
	}
	var b strings.Builder
	for _, d := range romanDigits {
		for n >= d.value {
			b.WriteString(d.symbol)
			n -= d.value
		}
	}
	return b.String()
}
