package browse

import (
	"sort"

	"github.com/air-rights/explorer/config"
	"github.com/air-rights/explorer/parcel"
)

// moreImpact orders parcels by impact ratio descending.  A missing ratio
// ranks below every present value, including zero.
func moreImpact(a, b parcel.Parcel) bool {
	if a.ImpactRatio.Valid != b.ImpactRatio.Valid {
		return a.ImpactRatio.Valid
	}
	if !a.ImpactRatio.Valid {
		return false
	}
	return a.ImpactRatio.Float64 > b.ImpactRatio.Float64
}

// TopByImpact returns the n highest-impact parcels.  The sort is stable,
// so equal-impact parcels keep their input order and re-ranking an already
// ranked slice returns the same sequence.  The input is never mutated.
func TopByImpact(parcels []parcel.Parcel, n int) []parcel.Parcel {
	ranked := make([]parcel.Parcel, len(parcels))
	copy(ranked, parcels)

	sort.SliceStable(ranked, func(i, j int) bool {
		return moreImpact(ranked[i], ranked[j])
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// WindowByCenter keeps parcels whose anchor falls within a box of
// half-width delta degrees around (lat, lon).  Parcels without geometry
// are excluded: they cannot be placed.
func WindowByCenter(parcels []parcel.Parcel, lat, lon, delta float64) []parcel.Parcel {
	var out []parcel.Parcel
	for _, p := range parcels {
		plat, plon, ok := p.Anchor()
		if !ok {
			continue
		}
		if plat >= lat-delta && plat <= lat+delta && plon >= lon-delta && plon <= lon+delta {
			out = append(out, p)
		}
	}
	return out
}

// ActiveList produces the parcels the list panel shows for the current
// state.  In single view it is exactly the selected parcel looked up in
// the full set (empty when the id is gone — reportable, not fatal).  In
// list view it is the filtered subset, optionally windowed to the current
// viewport, ranked and truncated to the top 10.
func ActiveList(all, filtered []parcel.Parcel, sel Selection, vp Viewport) []parcel.Parcel {
	if sel.Single && sel.BBL != "" {
		if p, ok := parcel.ByBBL(all, sel.BBL); ok {
			return []parcel.Parcel{p}
		}
		return nil
	}

	base := filtered
	if sel.MapWindow {
		base = WindowByCenter(base, vp.Lat, vp.Lon, config.MapWindowDelta)
	}
	return TopByImpact(base, config.TopListSize)
}
