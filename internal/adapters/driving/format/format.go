// Package format renders domain values for the driving adapters. Every
// surface prints prices and dates the same way.
package format

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// printer formats numbers the way the storefront's en-US locale does.
var printer = message.NewPrinter(language.AmericanEnglish)

// Price renders an amount in US dollars with two decimals and digit
// grouping, e.g. "$1,234.50". NaN and infinities render as "".
func Price(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + printer.Sprintf("%.2f", amount)
}

// Date renders t as "Jan 2, 2006". The zero time renders as "".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// OrderDate renders t as a date plus a relative age, e.g.
// "Mar 1, 2025 (3 days ago)".
func OrderDate(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return Date(t) + " (" + humanize.RelTime(t, now, "ago", "from now") + ")"
}

// Count renders n with digit grouping.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Items renders an item count, e.g. "1 item" or "3 items".
func Items(n int) string {
	if n == 1 {
		return "1 item"
	}
	return Count(n) + " items"
}

// Roles joins roles for display.
func Roles(roles []domain.Role) string {
	if len(roles) == 0 {
		return "-"
	}
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}

// Truncate shortens s to at most width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// MaskToken shows the first and last four characters of a credential.
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
