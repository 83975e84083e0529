package utils

import "testing"

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{500, "", "RM500"},
		{1200, "", "RM1,200"},
		{1400000, "", "RM1,400,000"},
		{700, "MYR ", "MYR 700"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.amount, tc.currency); got != tc.want {
			t.Errorf("FormatPrice(%v, %q) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestFormatPriceRangeCollapsesEqualBounds(t *testing.T) {
	if got, want := FormatPriceRange(500, 500, ""), FormatPrice(500, ""); got != want {
		t.Errorf("equal bounds: got %q, want %q", got, want)
	}
	if got, want := FormatPriceRange(500, 700, ""), "RM500 – RM700"; got != want {
		t.Errorf("range: got %q, want %q", got, want)
	}
}
