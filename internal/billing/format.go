package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatLKR formats an amount as a Sri Lankan rupee display string,
// e.g. "LKR 12,500.00". Exactly two fraction digits, en-LK thousand
// grouping, sign kept in front of the digits. Display-only — the
// decimal value itself is never rounded in storage.
func FormatLKR(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:] // includes the dot

	var b strings.Builder
	b.WriteString("LKR ")
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatDate renders a date the way the invoice template shows it:
// long month, day, year ("January 2, 2026").
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
