package utils

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp0"},
		{950, "Rp950"},
		{1500000, "Rp1.500.000"},
		{-250000, "-Rp250.000"},
	}
	for _, c := range cases {
		if got := FormatRupiah(c.in); got != c.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseRupiahToInt(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"Rp 1.000", 1000},
		{"1,000", 1000},
		{"Rp6.950.000", 6950000},
		{"  150000 ", 150000},
	}
	for _, c := range cases {
		got, err := ParseRupiahToInt(c.in)
		if err != nil {
			t.Fatalf("ParseRupiahToInt(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseRupiahToInt(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	if _, err := ParseRupiahToInt("Rp "); err == nil {
		t.Error("expected error for empty amount")
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, amount := range []int64{1, 999, 1000, 6950000, 400000} {
		got, err := ParseRupiahToInt(FormatRupiah(amount))
		if err != nil {
			t.Fatalf("round trip %d: %v", amount, err)
		}
		if got != amount {
			t.Errorf("round trip %d = %d", amount, got)
		}
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  Budi   Santoso "); got != "Budi Santoso" {
		t.Errorf("NormalizeSpace = %q", got)
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode(" cgk "); got != "CGK" {
		t.Errorf("NormalizeCode = %q", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(d); got != "2026-01-15" {
		t.Errorf("FormatDate = %q", got)
	}
	if _, err := ParseDate("15/01/2026"); err == nil {
		t.Error("expected error for non ISO date")
	}
}
