package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Pounds formats a monetary value as whole pounds with thousands
// separators, e.g. "£9,960".
func Pounds(v float64) string {
	return "£" + groupDigits(decimal.NewFromFloat(v).Round(0).String())
}

// Price formats a per-share price, e.g. "£7.20".
func Price(v float64) string {
	return "£" + decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// Thousands formats a value in £ thousands, rounded to the nearest whole
// thousand, for the sensitivity pivots.
func Thousands(v float64) string {
	scaled := decimal.NewFromFloat(v).Div(decimal.NewFromInt(1000)).Round(0)
	return groupDigits(scaled.String())
}

// Shares formats a share count with thousands separators.
func Shares(v float64) string {
	return groupDigits(decimal.NewFromFloat(v).Round(0).String())
}

// Percent formats a fractional rate as a whole percentage, e.g. "5%".
func Percent(rate float64) string {
	return fmt.Sprintf("%d%%", int(rate*100+0.5))
}

// groupDigits inserts comma separators into a plain integer string.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
