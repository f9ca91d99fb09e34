package view

import (
	"fmt"
	"strings"
	"time"
)

// FormatINR renders an amount with Indian digit grouping, e.g. 12,34,567.89.
func FormatINR(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	whole, frac, _ := strings.Cut(s, ".")

	if len(whole) > 3 {
		head := whole[:len(whole)-3]
		tail := whole[len(whole)-3:]

		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}

		whole = strings.Join(append(groups, tail), ",")
	}

	out := "₹" + whole + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatPercent renders a signed percentage with two decimals.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
