package years

import (
	"testing"

	"github.com/daviddao/calendrier/pkg/equinox"
	"github.com/daviddao/calendrier/pkg/model"
)

const day = model.SecondsPerDay

func year0(t *testing.T, year int64) int64 {
	t.Helper()
	y, err := model.Year0(year)
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestYearStart_FirstYearIsEpoch(t *testing.T) {
	if got := Default().YearStart(0); got != 0 {
		t.Fatalf("YearStart(0): got %d, want 0", got)
	}
}

func TestYearLength_EarlyYears(t *testing.T) {
	r := Default()
	want := map[int64]int64{
		1: 365, 2: 365, 3: 366, 4: 365, 5: 365, 6: 365,
		7: 366, 8: 365, 9: 365, 10: 365, 11: 366, 12: 365,
	}
	for year, days := range want {
		if got := r.YearLength(year0(t, year)); got != days {
			t.Errorf("YearLength(year %d): got %d, want %d", year, got, days)
		}
	}
}

func TestYearLength_AcrossTableEdges(t *testing.T) {
	r := Default()
	cases := []struct {
		year int64
		days int64
	}{
		{1208, 365},
		{1209, 365},
		{1210, 365},
		{1211, 366},
		{1212, 365},
		{-209, 366},
		{-210, 366},
		{-211, 365},
		{-212, 365},
		{-213, 365},
		{-214, 366},
	}
	for _, tc := range cases {
		if got := r.YearLength(year0(t, tc.year)); got != tc.days {
			t.Errorf("YearLength(year %d): got %d, want %d", tc.year, got, tc.days)
		}
	}
}

func TestIsSextile(t *testing.T) {
	r := Default()
	var got []int64
	for y := int64(1); y <= 36; y++ {
		if r.IsSextile(y - 1) {
			got = append(got, y)
		}
	}
	want := []int64{3, 7, 11, 15, 20, 24, 28, 32, 36}
	if len(got) != len(want) {
		t.Fatalf("sextile years: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sextile years: got %v, want %v", got, want)
		}
	}
}

func TestChainedCoherence(t *testing.T) {
	r := Default()
	prev := r.YearStart(-10000)
	for y := int64(-10000); y < 10000; y++ {
		if r.YearStart(y) != prev {
			t.Fatalf("YearStart(%d) = %d, want chained %d", y, r.YearStart(y), prev)
		}
		n := r.YearLength(y)
		if n != 365 && n != 366 {
			t.Fatalf("YearLength(%d) = %d", y, n)
		}
		next := r.YearStart(y + 1)
		if next.Sub(prev) != n*day {
			t.Fatalf("year %d: start delta %d, want %d", y, next.Sub(prev), n*day)
		}
		prev = next
	}
}

func TestExtrapolatedRhythm(t *testing.T) {
	r := Default()
	for _, base := range []int64{equinox.MaxCovered + 1, equinox.MinCovered - 400} {
		var sextiles int
		for y := base; y < base+400; y++ {
			if r.IsSextile(y) {
				sextiles++
			}
		}
		if sextiles != 100 {
			t.Fatalf("400 years from %d: %d sextiles, want 100", base, sextiles)
		}
	}
}

func TestYearContaining(t *testing.T) {
	r := Default()
	for y := int64(-10000); y <= 10000; y++ {
		start := r.YearStart(y)
		if got := r.YearContaining(start); got != y {
			t.Fatalf("YearContaining(start of %d): got %d", y, got)
		}
		if got := r.YearContaining(start - 1); got != y-1 {
			t.Fatalf("YearContaining(start of %d - 1): got %d, want %d", y, got, y-1)
		}
	}
}

func TestYearContaining_NegativeOne(t *testing.T) {
	if got := Default().YearContaining(-1); got != -1 {
		t.Fatalf("YearContaining(-1): got %d, want -1", got)
	}
}

func TestYearContaining_Fallback(t *testing.T) {
	ts := model.Timestamp(200000 * model.SecondsPerMeanYear)
	if got := Default().YearContaining(ts); got != 200000 {
		t.Fatalf("fallback: got %d, want 200000", got)
	}
	if got := Default().YearContaining(-ts); got != -200000 {
		t.Fatalf("fallback: got %d, want -200000", got)
	}
}

func TestBoundary(t *testing.T) {
	r := Default()
	b := r.Boundary(2)
	if b.Year() != 3 || b.Start != 730*day || b.Days != 366 || !b.Sextile || b.Extrapolated {
		t.Fatalf("Boundary(2): %+v", b)
	}
	if b.End() != 1096*day {
		t.Fatalf("End: got %d, want %d", b.End(), 1096*day)
	}
	if !b.Contains(b.Start) || b.Contains(b.End()) || !b.Contains(b.End()-1) {
		t.Fatal("Contains is not half-open")
	}
	if !r.Boundary(equinox.MaxCovered + 1).Extrapolated {
		t.Fatal("year past the table not flagged extrapolated")
	}
	if !r.Boundary(equinox.MinCovered - 1).Extrapolated {
		t.Fatal("year before the table not flagged extrapolated")
	}
	if got := r.BoundaryContaining(109600000 - 1); got.Year0 != 2 {
		t.Fatalf("BoundaryContaining: got year0 %d, want 2", got.Year0)
	}
}

func TestFranciade0(t *testing.T) {
	cases := []struct {
		year0, want int64
	}{
		{-2, -1},
		{-1, 0},
		{0, 0},
		{2, 0},
		{3, 1},
		{6, 1},
		{7, 2},
		{-5, -1},
		{-6, -2},
	}
	for _, tc := range cases {
		if got := Franciade0(tc.year0); got != tc.want {
			t.Errorf("Franciade0(%d): got %d, want %d", tc.year0, got, tc.want)
		}
	}
}

func TestCustomTable(t *testing.T) {
	tab, err := equinox.NewTable(0, []model.Timestamp{0, 366 * day})
	if err != nil {
		t.Fatal(err)
	}
	r := New(tab)
	if r.Table() != tab {
		t.Fatal("Table() mismatch")
	}
	if got := r.YearLength(0); got != 366 {
		t.Fatalf("YearLength(0): got %d, want 366", got)
	}
	// Year 1 is the last covered year; three standard years follow.
	for y := int64(1); y <= 3; y++ {
		if got := r.YearLength(y); got != 365 {
			t.Fatalf("YearLength(%d): got %d, want 365", y, got)
		}
	}
	if got := r.YearLength(4); got != 366 {
		t.Fatalf("YearLength(4): got %d, want 366", got)
	}
	if got := r.YearLength(-1); got != 366 {
		t.Fatalf("YearLength(-1): got %d, want 366", got)
	}
}

func TestYearContaining_DriftedTables(t *testing.T) {
	for _, shift := range []int64{-100, -99, 99, 100} {
		base := model.Timestamp(shift * day)
		tab, err := equinox.NewTable(0, []model.Timestamp{base, base + 365*day})
		if err != nil {
			t.Fatalf("shift %d: %v", shift, err)
		}
		r := New(tab)
		for y := int64(-3000); y <= 3000; y++ {
			start := r.YearStart(y)
			if got := r.YearContaining(start); got != y {
				t.Fatalf("shift %d: YearContaining(start of %d) = %d", shift, y, got)
			}
			if got := r.YearContaining(start - 1); got != y-1 {
				t.Fatalf("shift %d: YearContaining(start of %d - 1) = %d", shift, y, got)
			}
		}
	}
}
