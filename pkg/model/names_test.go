package model

import (
	"errors"
	"testing"
)

func TestMonth_Names(t *testing.T) {
	cases := []struct {
		m     Month
		name  string
		lower string
		num   int64
	}{
		{Vendemiaire, "Vendémiaire", "vendémiaire", 1},
		{Nivose, "Nivôse", "nivôse", 4},
		{Thermidor, "Thermidor", "thermidor", 11},
		{Sansculottides, "Sansculottides", "sansculottides", 13},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.m.Name() != tc.name || tc.m.String() != tc.name {
				t.Fatalf("Name() = %q, want %q", tc.m.Name(), tc.name)
			}
			if tc.m.NameLower() != tc.lower {
				t.Fatalf("NameLower() = %q, want %q", tc.m.NameLower(), tc.lower)
			}
			if tc.m.Num() != tc.num {
				t.Fatalf("Num() = %d, want %d", tc.m.Num(), tc.num)
			}
		})
	}
}

func TestMonthFromNum0(t *testing.T) {
	for i := int64(0); i < MonthsPerYear; i++ {
		m, err := MonthFromNum0(i)
		if err != nil {
			t.Fatalf("MonthFromNum0(%d): %v", i, err)
		}
		if m.Num0() != i {
			t.Fatalf("Num0() = %d, want %d", m.Num0(), i)
		}
	}
	for _, bad := range []int64{-1, 13} {
		if _, err := MonthFromNum0(bad); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("MonthFromNum0(%d): got %v, want ErrOutOfRange", bad, err)
		}
	}
	if got := Month(42).Name(); got != "Month(42)" {
		t.Fatalf("invalid month name = %q", got)
	}
}

func TestDecadeDay_Regular(t *testing.T) {
	d, err := RegularDay(0)
	if err != nil {
		t.Fatal(err)
	}
	if d != Primidi || d.Name() != "Primidi" || d.Num() != 1 || d.Complementary() {
		t.Fatalf("RegularDay(0) = %v (num %d)", d, d.Num())
	}
	d, _ = RegularDay(9)
	if d.Name() != "Décadi" || d.NameLower() != "décadi" {
		t.Fatalf("RegularDay(9) = %q / %q", d.Name(), d.NameLower())
	}
	if _, err := RegularDay(10); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("RegularDay(10): got %v, want ErrOutOfRange", err)
	}
}

func TestDecadeDay_Complementary(t *testing.T) {
	d, err := ComplementaryDay(5)
	if err != nil {
		t.Fatal(err)
	}
	if d != JourDeLaRevolution || !d.Complementary() {
		t.Fatalf("ComplementaryDay(5) = %v", d)
	}
	if d.Num0() != 5 || d.Num() != 6 {
		t.Fatalf("Num0/Num = %d/%d, want 5/6", d.Num0(), d.Num())
	}
	if d.Name() != "Jour de la Révolution" {
		t.Fatalf("Name() = %q", d.Name())
	}
	if d.NameLower() != "jour de la Révolution" {
		t.Fatalf("NameLower() = %q", d.NameLower())
	}
	if _, err := ComplementaryDay(6); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ComplementaryDay(6): got %v, want ErrOutOfRange", err)
	}
}

func TestParseMonth(t *testing.T) {
	cases := []struct {
		in   string
		want Month
	}{
		{"Vendémiaire", Vendemiaire},
		{"vendemiaire", Vendemiaire},
		{"VENDÉMIAIRE", Vendemiaire},
		{"  nivose ", Nivose},
		{"Pluviôse", Pluviose},
		{"floreal", Floreal},
		{"Sans-culottides", Sansculottides},
		{"sansculotides", Sansculottides},
		{"jours complémentaires", Sansculottides},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMonth(tc.in)
			if err != nil {
				t.Fatalf("ParseMonth(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseMonth(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseMonth_Unknown(t *testing.T) {
	for _, in := range []string{"", "January", "brum"} {
		if _, err := ParseMonth(in); !errors.Is(err, ErrUnknownName) {
			t.Fatalf("ParseMonth(%q): got %v, want ErrUnknownName", in, err)
		}
	}
}

func TestParseDecadeDay(t *testing.T) {
	cases := []struct {
		in   string
		want DecadeDay
	}{
		{"Primidi", Primidi},
		{"primedi", Primidi},
		{"decadi", Decadi},
		{"Jour de l'opinion", JourDeLOpinion},
		{"jour de l’opinion", JourDeLOpinion},
		{"JOUR DES RECOMPENSES", JourDesRecompenses},
		{"jour de la revolution", JourDeLaRevolution},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDecadeDay(tc.in)
			if err != nil {
				t.Fatalf("ParseDecadeDay(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseDecadeDay(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
	if _, err := ParseDecadeDay("Monday"); !errors.Is(err, ErrUnknownName) {
		t.Fatalf("ParseDecadeDay(Monday): got %v, want ErrUnknownName", err)
	}
}
