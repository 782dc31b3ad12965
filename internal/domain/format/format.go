// Package format renders pipeline values for display.
//
// Conventions are fixed rather than inferred: Percent always treats
// its input as a fraction and scales by 100 exactly once, and Currency
// never guesses a scale from the value's magnitude. Dollar-index
// display is its own function instead of a magnitude special case.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Currency renders a dollar value with thousands separators and no
// decimal places: 1234567 -> "$1,234,567".
func Currency(v float64) string {
	neg := v < 0
	s := groupThousands(strconv.FormatFloat(math.Abs(math.Round(v)), 'f', 0, 64))
	if neg {
		return "-$" + s
	}
	return "$" + s
}

// CurrencyWithDecimals renders a dollar value with separators and two
// decimal places.
func CurrencyWithDecimals(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	s = groupThousands(s[:dot]) + s[dot:]
	if neg {
		return "-$" + s
	}
	return "$" + s
}

// DollarIndex renders a dollar-index score: 1.234 -> "$1.23".
func DollarIndex(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Percent renders a fraction as a percentage with one decimal place:
// 0.553 -> "55.3%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// CaptureValue renders a season value-capture percentage. A nil value
// (zero contribution season) renders as "N/A".
func CaptureValue(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d%%", *v)
}

// Signed renders a delivery dollar value with an explicit sign:
// positive values gain a "+" prefix.
func Signed(v float64) string {
	if v >= 0 {
		return "+" + Currency(v)
	}
	return Currency(v)
}

// Rank renders "#r/total". Non-positive ranks render as "N/A".
func Rank(r, total int) string {
	if r <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("#%d/%d", r, total)
}

// groupThousands inserts commas into a plain digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
