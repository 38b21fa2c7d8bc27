package pricing

import "testing"

func TestParseCatalogAmountPlainInteger(t *testing.T) {
	v, err := ParseCatalogAmount("150000")
	if err != nil || v != 150_000 {
		t.Fatalf("got %d, %v", v, err)
	}
}

func TestParseCatalogAmountDecimalString(t *testing.T) {
	v, err := ParseCatalogAmount("1500000.00")
	if err != nil || v != 1_500_000 {
		t.Fatalf("got %d, %v", v, err)
	}
}

func TestParseCatalogAmountThousandSeparated(t *testing.T) {
	// Format Indonesia: titik sebagai pemisah ribuan, bukan desimal.
	v, err := ParseCatalogAmount("1.500.000")
	if err != nil || v != 1_500_000 {
		t.Fatalf("got %d, %v", v, err)
	}
}

func TestParseCatalogAmountSingleDottedGroup(t *testing.T) {
	v, err := ParseCatalogAmount("150.000")
	if err != nil || v != 150_000 {
		t.Fatalf("got %d, %v", v, err)
	}
}

func TestParseCatalogAmountRupiahPrefixAndCommas(t *testing.T) {
	v, err := ParseCatalogAmount("Rp 1,500,000")
	if err != nil || v != 1_500_000 {
		t.Fatalf("got %d, %v", v, err)
	}
}

func TestParseCatalogAmountFractionRounds(t *testing.T) {
	v, err := ParseCatalogAmount("150000.49")
	if err != nil || v != 150_000 {
		t.Fatalf("got %d, %v", v, err)
	}
	v, err = ParseCatalogAmount("150000.5")
	if err != nil || v != 150_001 {
		t.Fatalf("got %d, %v", v, err)
	}
}

func TestParseCatalogAmountEmptyErrors(t *testing.T) {
	if _, err := ParseCatalogAmount("  "); err == nil {
		t.Fatalf("expected error for empty amount")
	}
}

func TestParseCatalogAmountOrZeroDegrades(t *testing.T) {
	if v := ParseCatalogAmountOrZero("abc"); v != 0 {
		t.Fatalf("got %d", v)
	}
	if v := ParseCatalogAmountOrZero("-500"); v != 0 {
		t.Fatalf("negative must clamp to zero, got %d", v)
	}
}

func TestFromThousands(t *testing.T) {
	if v := FromThousands(150); v != 150_000 {
		t.Fatalf("got %d", v)
	}
}

func TestPassengerCountInvariants(t *testing.T) {
	if _, err := NewPassengerCount(0, 1, 0); err == nil {
		t.Fatalf("adults < 1 must fail")
	}
	if _, err := NewPassengerCount(1, 0, 2); err == nil {
		t.Fatalf("infants > adults must fail")
	}
	if _, err := NewPassengerCount(4, 4, 0); err == nil {
		t.Fatalf("total > 7 must fail")
	}

	c, err := NewPassengerCount(2, 1, 1)
	if err != nil {
		t.Fatalf("valid count rejected: %v", err)
	}
	if _, err := c.WithInfants(3); err == nil {
		t.Fatalf("mutation boundary must reject infants > adults")
	}
	if _, err := c.WithAdults(3); err != nil {
		t.Fatalf("valid mutation rejected: %v", err)
	}
}
