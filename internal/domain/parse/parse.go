// Package parse cleans raw cell text from the spreadsheet exports into
// numeric values. All functions are pure and never fail: malformed or
// sentinel input resolves to zero rather than an error, which is the
// contract every downstream mapper relies on.
package parse

import (
	"strconv"
	"strings"
)

// Sentinel cell values emitted by the pivot-table exports. Rows keyed
// by a sentinel are excluded everywhere; numeric cells holding one
// parse to zero.
const (
	SentinelBlank      = "(blank)"
	SentinelGrandTotal = "Grand Total"
)

const percentScale = 100

// Numeric converts currency/plain numeric text to a float64.
// It strips dollar signs, thousands separators and whitespace, and
// reads a parenthesized value as negative: "($1,234)" -> -1234.
// Empty input, sentinels and anything still unparseable yield 0.
func Numeric(raw string) float64 {
	if raw == "" || raw == SentinelBlank || raw == SentinelGrandTotal {
		return 0
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', ' ', '\t', ' ':
			return -1
		}
		return r
	}, raw)

	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// Percentage converts percentage text to a fraction: "55.0%" -> 0.55.
// Empty or unparseable input yields 0. The result is not clamped;
// out-of-range text produces an out-of-range fraction and callers must
// tolerate it.
func Percentage(raw string) float64 {
	if raw == "" {
		return 0
	}

	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "%", ""))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v / percentScale
}

// ValidKey reports whether a key cell (agent name, agency name,
// combined player names) identifies a real row. Pivot exports append
// "(blank)" and "Grand Total" rows that must never reach any view.
func ValidKey(raw string) bool {
	return raw != "" && raw != SentinelBlank && raw != SentinelGrandTotal
}
