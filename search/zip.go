package search

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/air-rights/explorer/impact"
	"github.com/air-rights/explorer/parcel"
)

// ResolveZips maps requested ZIPs onto ZIPs that actually have data worth
// showing.  Two stages per ZIP:
//
//  1. If no parcel has the ZIP, substitute the numerically nearest ZIP
//     present in the dataset.
//  2. If the ZIP (original or substituted) has no parcel at or above the
//     color display floor, substitute the nearest ZIP that does.
//
// Each substitution emits a human-readable notice.  A ZIP that is already
// present and colored passes through untouched, so resolution is
// idempotent.  When a stage's candidate pool is empty the ZIP is kept
// as-is.  Duplicate final ZIPs collapse, keeping first-seen order.
func ResolveZips(requested []string, parcels []parcel.Parcel) (resolved []string, notices []string) {
	availableSet := map[string]bool{}
	coloredSet := map[string]bool{}
	for _, p := range parcels {
		if p.Zip == "" {
			continue
		}
		availableSet[p.Zip] = true
		if impact.Colored(p.ImpactRatio) {
			coloredSet[p.Zip] = true
		}
	}
	available := sortedZips(availableSet)
	colored := sortedZips(coloredSet)

	seen := map[string]bool{}
	for _, z := range requested {
		r := z

		if !availableSet[r] {
			if n, ok := nearestZip(r, available); ok {
				notices = append(notices, fmt.Sprintf("%s not found, using %s", r, n))
				r = n
			}
		}

		if !coloredSet[r] {
			if n, ok := nearestZip(r, colored); ok {
				notices = append(notices, fmt.Sprintf("%s has no colored properties, using %s", r, n))
				r = n
			}
		}

		if !seen[r] {
			seen[r] = true
			resolved = append(resolved, r)
		}
	}
	return resolved, notices
}

// nearestZip picks the pool ZIP with the smallest absolute numeric
// distance to z.  The pool is sorted ascending, so a strict comparison
// breaks distance ties toward the smaller ZIP.
func nearestZip(z string, pool []string) (string, bool) {
	if len(pool) == 0 {
		return "", false
	}
	target, err := strconv.Atoi(z)
	if err != nil {
		return "", false
	}

	best := ""
	bestDist := 0
	for _, candidate := range pool {
		v, err := strconv.Atoi(candidate)
		if err != nil {
			continue
		}
		dist := v - target
		if dist < 0 {
			dist = -dist
		}
		if best == "" || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func sortedZips(set map[string]bool) []string {
	zips := make([]string, 0, len(set))
	for z := range set {
		zips = append(zips, z)
	}
	// Numeric order; ZIPs are fixed-width digits so string order matches.
	sort.Strings(zips)
	return zips
}
