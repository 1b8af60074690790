// Package display turns snapshots and analyses into display-ready values.
// Everything here is pure: no I/O, no clocks, no globals beyond constants.
package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NA is rendered for absent or undefined values.
const NA = "N/A"

// FormatCompactCurrency renders a USD amount with B/M/K suffixes.
// nil and NaN render as N/A; zero renders as "$0".
func FormatCompactCurrency(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return NA
	}
	val := *v
	switch {
	case val == 0:
		return "$0"
	case val >= 1e9:
		return fmt.Sprintf("$%.2fB", val/1e9)
	case val >= 1e6:
		return fmt.Sprintf("$%.2fM", val/1e6)
	case val >= 1e3:
		return fmt.Sprintf("$%.2fK", val/1e3)
	}
	return "$" + groupFixed(val, 2)
}

// FormatCompactNumber renders a count such as an estimated holder total.
func FormatCompactNumber(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return NA
	}
	val := *v
	switch {
	case val >= 1e6:
		return fmt.Sprintf("%.1fM", val/1e6)
	case val >= 1e3:
		return fmt.Sprintf("%.1fK", val/1e3)
	}
	return groupFixed(val, 3)
}

// FormatSignedPercent renders a price change such as "+12.5%" or "-3%".
func FormatSignedPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NA
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v > 0 {
		s = "+" + s
	}
	return s + "%"
}

// FormatPercent renders a 0-100 value with one decimal, e.g. "12.3%".
func FormatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NA
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// groupFixed formats v with at most maxFrac fraction digits (trailing zeros
// trimmed) and a comma every three integer digits.
func groupFixed(v float64, maxFrac int) string {
	s := strconv.FormatFloat(v, 'f', maxFrac, 64)
	return groupDecimalString(trimFraction(s))
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// groupDecimalString inserts thousands separators into a plain decimal string.
func groupDecimalString(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String()
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
