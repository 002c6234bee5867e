// Package report renders a comparison report as text or as the HTML
// dashboard.
package report

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatHMS renders a second count as h:mm:ss, sign-aware.
func FormatHMS(totalSeconds int) string {
	sign := ""
	if totalSeconds < 0 {
		sign = "-"
		totalSeconds = -totalSeconds
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
}

// FormatK renders counts of 1000 or more as "1.2k".
func FormatK(v int) string {
	if v >= 1000 {
		return fmt.Sprintf("%.1fk", float64(v)/1000)
	}
	return strconv.Itoa(v)
}

// FormatChars renders large character counts: millions with up to two
// trimmed decimals ("1M", "1.85M"), otherwise k-format.
func FormatChars(v int) string {
	if v >= 1_000_000 {
		text := strconv.FormatFloat(float64(v)/1_000_000, 'f', 2, 64)
		text = strings.TrimRight(strings.TrimRight(text, "0"), ".")
		return text + "M"
	}
	return FormatK(v)
}

// FormatCount renders an optional statistic; nil means the source was
// unavailable and displays as "?".
func FormatCount(v *int) string {
	if v == nil {
		return "?"
	}
	return strconv.Itoa(*v)
}

// asInt coerces a decoded JSON value to an int.
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}
