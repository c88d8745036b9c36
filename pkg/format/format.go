// Package format holds the storefront display formats. The output strings are
// user-facing and feed the order hand-off message, so they stay byte-stable.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const defaultCurrency = "Bs."

// Currency formats an amount with the store currency prefix: "Bs. 55.00".
func Currency(amount float64) string {
	return CurrencyWith(defaultCurrency, amount)
}

func CurrencyWith(prefix string, amount float64) string {
	return fmt.Sprintf("%s %.2f", prefix, amount)
}

// Date formats a date as DD/MM/YYYY.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// Number renders an integer with thousands separators: 1234567 -> "1,234,567".
func Number(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Percentage formats a ratio as a percentage: 0.08333 -> "8.33%".
func Percentage(value float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, value*100)
}

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}

func Truncate(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLength]) + "..."
}
