package util

import (
	"fmt"
	"strings"
)

// FormatAmount renders a currency amount with comma group separators and
// exactly two decimal places, without a currency symbol: 27000 -> "27,000.00".
func FormatAmount(amount float64) string {
	str := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(str, ".")
	if len(parts) < 2 {
		// Non-finite amounts render without a decimal part ("NaN", "+Inf").
		return str
	}
	intPart := parts[0]
	decPart := parts[1]

	negative := false
	if strings.HasPrefix(intPart, "-") {
		negative = true
		intPart = intPart[1:]
	}

	intPart = groupThousands(intPart)
	if negative {
		intPart = "-" + intPart
	}
	return intPart + "." + decPart
}

// FormatCurrency renders an amount as USD: 1234.5 -> "$1,234.50".
func FormatCurrency(amount float64) string {
	return "$" + FormatAmount(amount)
}

// groupThousands inserts a comma every three digits, right to left.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var result []byte
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, digits[i])
	}
	return string(result)
}
