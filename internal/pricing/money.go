package pricing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Catalog prices arrive as strings in more than one historical format:
// plain integers ("150000"), decimal strings ("150000.00"), Indonesian
// thousand-separated values ("1.500.000") and legacy columns stored in
// thousands of Rupiah. Everything is normalized here, once, into whole
// Rupiah (int64) before any arithmetic happens.

var thousandSeparated = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// ParseCatalogAmount converts one raw catalog price string to whole Rupiah.
func ParseCatalogAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(strings.ToLower(s), "rp")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("harga katalog kosong")
	}

	if thousandSeparated.MatchString(s) {
		return strconv.ParseInt(strings.ReplaceAll(s, ".", ""), 10, 64)
	}

	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("harga katalog tidak valid: %q", raw)
		}
		return int64(math.Round(f)), nil
	}

	return strconv.ParseInt(s, 10, 64)
}

// ParseCatalogAmountOrZero is the degrading variant used while a quote is
// being rendered mid-selection: a bad price never breaks the breakdown.
func ParseCatalogAmountOrZero(raw string) int64 {
	v, err := ParseCatalogAmount(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// FromThousands lifts a legacy amount stored in thousands of Rupiah.
func FromThousands(v int64) int64 {
	return v * 1000
}
