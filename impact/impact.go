// Package impact buckets the "% of new units impact" ratio into the
// discrete color categories used by the map layer.
package impact

import (
	"database/sql"
	"math"
)

// DisplayFloor is the percent below which a parcel is considered to have
// no signal and is drawn gray.
const DisplayFloor = 1.0

// Category is a discrete color bucket for a parcel's impact percent.
type Category int

const (
	None Category = iota
	Low
	Medium
	High
	VeryHigh
	Extreme

	// Selected overrides whatever bucket the parcel falls in while it is
	// the selected parcel.
	Selected
)

func (c Category) String() string {
	switch c {
	case None:
		return "none"
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case VeryHigh:
		return "very_high"
	case Extreme:
		return "extreme"
	case Selected:
		return "selected"
	}
	return "none"
}

// RGB returns the fill color for a category.  Values match the original
// map styling: gray, green, yellow, orange, light red, deep red, and a
// bright green for the selected parcel.
func (c Category) RGB() [3]int {
	switch c {
	case Low:
		return [3]int{34, 197, 94}
	case Medium:
		return [3]int{250, 204, 21}
	case High:
		return [3]int{249, 115, 22}
	case VeryHigh:
		return [3]int{248, 113, 113}
	case Extreme:
		return [3]int{220, 38, 38}
	case Selected:
		return [3]int{0, 200, 0}
	}
	return [3]int{200, 200, 200}
}

// ForRatio buckets an impact ratio (0.92 means 92%).  Missing, NaN and
// infinite ratios map to None.  Buckets are half-open [low, high): a value
// exactly on a boundary belongs to the higher bucket.
func ForRatio(ratio sql.NullFloat64) Category {
	if !ratio.Valid {
		return None
	}
	pct := ratio.Float64 * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return None
	}

	switch {
	case pct < DisplayFloor:
		return None
	case pct < 30:
		return Low
	case pct < 60:
		return Medium
	case pct < 100:
		return High
	case pct < 150:
		return VeryHigh
	default:
		return Extreme
	}
}

// Colored reports whether a ratio is at or above the display floor, i.e.
// the parcel gets a non-gray color on the map.
func Colored(ratio sql.NullFloat64) bool {
	return ForRatio(ratio) != None
}
