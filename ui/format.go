package ui

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Display formatters for the detail grid and list tiles.  Missing values
// always render as "N/A".

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// FormatInt renders a numeric value as a thousands-grouped integer.
func FormatInt(v sql.NullFloat64) string {
	if !v.Valid || math.IsNaN(v.Float64) {
		return "N/A"
	}
	return groupThousands(int64(math.Round(v.Float64)))
}

// FormatHeight renders a building height in feet.
func FormatHeight(v sql.NullFloat64) string {
	if !v.Valid || math.IsNaN(v.Float64) {
		return "N/A"
	}
	return fmt.Sprintf("%d ft", int64(math.Round(v.Float64)))
}

// FormatAreaSqFt renders a floor area in square feet.
func FormatAreaSqFt(v sql.NullFloat64) string {
	if !v.Valid || math.IsNaN(v.Float64) {
		return "N/A"
	}
	return fmt.Sprintf("%s sq ft", groupThousands(int64(math.Round(v.Float64))))
}

// FormatPercentFromRatio renders a stored ratio as a whole percent:
// 0.92 -> "92%".
func FormatPercentFromRatio(v sql.NullFloat64) string {
	if !v.Valid || math.IsNaN(v.Float64) {
		return "N/A"
	}
	return fmt.Sprintf("%d%%", int64(math.Round(v.Float64*100)))
}

// FormatFloat renders a number with up to two decimals, trailing zeros
// trimmed.
func FormatFloat(v sql.NullFloat64) string {
	if !v.Valid || math.IsNaN(v.Float64) {
		return "N/A"
	}
	s := fmt.Sprintf("%.2f", v.Float64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// FormatText renders a nullable string.
func FormatText(v sql.NullString) string {
	if !v.Valid || v.String == "" {
		return "N/A"
	}
	return v.String
}
