package utils

import (
	"fmt"
	"strings"
)

// FormatPrice formats an amount with thousand separators and the currency
// symbol, e.g. "RM1,200". Fractions are dropped; catalog prices are integral.
func FormatPrice(amount float64, currency string) string {
	if currency == "" {
		currency = "RM"
	}
	intAmount := int64(amount)
	str := fmt.Sprintf("%d", intAmount)

	var result strings.Builder
	length := len(str)
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(digit)
	}

	return currency + result.String()
}

// FormatPriceRange renders "min – max", collapsing to a single amount when the
// bounds are equal.
func FormatPriceRange(minPrice, maxPrice float64, currency string) string {
	if minPrice == maxPrice {
		return FormatPrice(minPrice, currency)
	}
	return FormatPrice(minPrice, currency) + " – " + FormatPrice(maxPrice, currency)
}