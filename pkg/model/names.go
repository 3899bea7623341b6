package model

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Month is a zero-based month number. Sansculottides is the 5 or 6 day
// complementary period that closes every year.
type Month int64

const (
	Vendemiaire Month = iota
	Brumaire
	Frimaire
	Nivose
	Pluviose
	Ventose
	Germinal
	Floreal
	Prairial
	Messidor
	Thermidor
	Fructidor
	Sansculottides
)

var monthNames = [MonthsPerYear]string{
	"Vendémiaire",
	"Brumaire",
	"Frimaire",
	"Nivôse",
	"Pluviôse",
	"Ventôse",
	"Germinal",
	"Floréal",
	"Prairial",
	"Messidor",
	"Thermidor",
	"Fructidor",
	"Sansculottides",
}

// MonthFromNum0 returns the month with the given zero-based number.
func MonthFromNum0(num0 int64) (Month, error) {
	if err := CheckRange("month0", num0, 0, MonthsPerYear-1); err != nil {
		return 0, err
	}
	return Month(num0), nil
}

// Valid reports whether m is one of the 13 months.
func (m Month) Valid() bool { return m >= Vendemiaire && m <= Sansculottides }

// Num0 returns the zero-based month number.
func (m Month) Num0() int64 { return int64(m) }

// Num returns the month number starting from 1.
func (m Month) Num() int64 { return int64(m) + 1 }

// Name returns the capitalised French name.
func (m Month) Name() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int64(m))
	}
	return monthNames[m]
}

// NameLower returns the name as it appears inside a sentence.
func (m Month) NameLower() string { return lowerFirst(m.Name()) }

func (m Month) String() string { return m.Name() }

// DecadeDay names a day within its decade. The first ten values are the
// regular decade days; the last six name the complementary days, which
// only occur in Sansculottides.
type DecadeDay int64

const (
	Primidi DecadeDay = iota
	Duodi
	Tridi
	Quartidi
	Quintidi
	Sextidi
	Septidi
	Octidi
	Nonidi
	Decadi

	JourDeLaVertu
	JourDuGenie
	JourDuTravail
	JourDeLOpinion
	JourDesRecompenses
	JourDeLaRevolution
)

// ComplementaryDays is the maximum length of the complementary period.
const ComplementaryDays = 6

var decadeDayNames = [DaysPerDecade + ComplementaryDays]string{
	"Primidi",
	"Duodi",
	"Tridi",
	"Quartidi",
	"Quintidi",
	"Sextidi",
	"Septidi",
	"Octidi",
	"Nonidi",
	"Décadi",
	"Jour de la vertu",
	"Jour du génie",
	"Jour du travail",
	"Jour de l'opinion",
	"Jour des récompenses",
	"Jour de la Révolution",
}

// RegularDay returns the regular decade day with zero-based number num0.
func RegularDay(num0 int64) (DecadeDay, error) {
	if err := CheckRange("decade day", num0, 0, DaysPerDecade-1); err != nil {
		return 0, err
	}
	return DecadeDay(num0), nil
}

// ComplementaryDay returns the complementary day with zero-based number num0.
func ComplementaryDay(num0 int64) (DecadeDay, error) {
	if err := CheckRange("complementary day", num0, 0, ComplementaryDays-1); err != nil {
		return 0, err
	}
	return DecadeDay(DaysPerDecade + num0), nil
}

// Valid reports whether d is a known decade or complementary day.
func (d DecadeDay) Valid() bool { return d >= Primidi && d <= JourDeLaRevolution }

// Complementary reports whether d is one of the Sansculottides days.
func (d DecadeDay) Complementary() bool { return d >= JourDeLaVertu }

// Num0 returns the zero-based position of d in its decade (0..9) or in the
// complementary period (0..5).
func (d DecadeDay) Num0() int64 {
	if d.Complementary() {
		return int64(d) - DaysPerDecade
	}
	return int64(d)
}

// Num returns Num0()+1.
func (d DecadeDay) Num() int64 { return d.Num0() + 1 }

// Name returns the French name of the day.
func (d DecadeDay) Name() string {
	if !d.Valid() {
		return fmt.Sprintf("DecadeDay(%d)", int64(d))
	}
	return decadeDayNames[d]
}

// NameLower returns the name as it appears inside a sentence. Only the
// first letter changes, so "Jour de la Révolution" keeps its capital R.
func (d DecadeDay) NameLower() string { return lowerFirst(d.Name()) }

func (d DecadeDay) String() string { return d.Name() }

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// monthAliases holds spellings accepted by ParseMonth besides the
// canonical names, already folded.
var monthAliases = map[string]Month{
	"sansculotides":        Sansculottides,
	"complementaires":      Sansculottides,
	"jourscomplementaires": Sansculottides,
}

// ParseMonth parses a month name. Case, accents, spaces, hyphens and
// apostrophes are ignored, so "vendemiaire", "VENDÉMIAIRE" and
// "Sans-culottides" are all accepted.
func ParseMonth(s string) (Month, error) {
	key := foldName(s)
	for i, name := range monthNames {
		if foldName(name) == key {
			return Month(i), nil
		}
	}
	if m, ok := monthAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: month %q", ErrUnknownName, s)
}

// ParseDecadeDay parses a regular or complementary day name with the same
// leniency as ParseMonth.
func ParseDecadeDay(s string) (DecadeDay, error) {
	key := foldName(s)
	for i, name := range decadeDayNames {
		if foldName(name) == key {
			return DecadeDay(i), nil
		}
	}
	// Older tables spell the first day "Primedi".
	if key == "primedi" {
		return Primidi, nil
	}
	return 0, fmt.Errorf("%w: day %q", ErrUnknownName, s)
}

// foldName strips diacritics and separators and case-folds s. Transformers
// carry state, so a fresh chain is built per call.
func foldName(s string) string {
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(strip, strings.TrimSpace(s))
	if err != nil {
		out = s
	}
	out = cases.Fold().String(out)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '\'' || r == '’' {
			return -1
		}
		return r
	}, out)
}
