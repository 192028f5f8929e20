package ranking

import (
	"strconv"
	"strings"
)

// NormalizeExp converts an experience delta cell such as "+1,234,567" or "-12.345"
// into a signed integer. Both ',' and '.' are thousands separators. Placeholders
// and anything that does not reduce to digits yield 0.
func NormalizeExp(raw string) int64 {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "", "-", "*-*", "0":
		return 0
	}

	clean := strings.NewReplacer(",", "", ".", "").Replace(trimmed)
	clean = strings.TrimPrefix(clean, "+")
	clean = strings.ReplaceAll(clean, " ", "")

	negative := strings.HasPrefix(clean, "-")
	clean = strings.ReplaceAll(clean, "-", "")

	if !isDigits(clean) {
		return 0
	}

	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0
	}
	if negative {
		return -n
	}
	return n
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseLevel returns the level held by a cell, or 0 unless the cell is purely numeric.
func ParseLevel(text string) int {
	text = strings.TrimSpace(text)
	if !isDigits(text) {
		return 0
	}
	level, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return level
}
