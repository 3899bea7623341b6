package calendar

import (
	"testing"

	"github.com/daviddao/calendrier/pkg/clock"
)

func TestRoman(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "I"},
		{2, "II"},
		{4, "IV"},
		{8, "VIII"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{233, "CCXXXIII"},
		{1999, "MCMXCIX"},
		{4000, "MMMM"},
		{0, "0"},
		{-5, "-5"},
	}
	for _, tc := range cases {
		if got := Roman(tc.n); got != tc.want {
			t.Errorf("Roman(%d): got %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	d := FromTimestamp(0)
	if got := d.String(); got != "Primidi 1 Vendémiaire 1" {
		t.Fatalf("String: got %q", got)
	}
	if got := d.Traditional(); got != "Primidi 1 Vendémiaire an I" {
		t.Fatalf("Traditional: got %q", got)
	}
	if got := d.TimeOfDay(); got != "0:00:00" {
		t.Fatalf("TimeOfDay: got %q", got)
	}
}

func TestFormat_Traditional(t *testing.T) {
	ts, err := clock.Decree.FromUnix(1727006400)
	if err != nil {
		t.Fatal(err)
	}
	d := FromTimestamp(ts)
	if got := d.Traditional(); got != "Primidi 1 Vendémiaire an CCXXXIII" {
		t.Fatalf("Traditional: got %q", got)
	}
	if got := d.TimeOfDay(); got != "5:12:50" {
		t.Fatalf("TimeOfDay: got %q", got)
	}
	neg := FromTimestamp(-1)
	if got := neg.Traditional(); got != "Jour des récompenses 5 Sansculottides an -1" {
		t.Fatalf("Traditional: got %q", got)
	}
}
