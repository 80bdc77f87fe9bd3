// Package search interprets the search box: address substring, ZIP set
// with nearest-ZIP fallback, and borough code queries over the loaded
// parcel set.
package search

import (
	"strings"

	"github.com/air-rights/explorer/parcel"
)

// Mode selects how the raw query text is interpreted.
type Mode int

const (
	ModeAddress Mode = iota
	ModeZip
	ModeBorough
)

// ParseMode maps the search widget's mode parameter to a Mode.  Unknown
// values fall back to address search.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zip":
		return ModeZip
	case "borough":
		return ModeBorough
	default:
		return ModeAddress
	}
}

func (m Mode) String() string {
	switch m {
	case ModeZip:
		return "zip"
	case ModeBorough:
		return "borough"
	default:
		return "address"
	}
}

// boroughCodes are the recognized two-letter borough abbreviations.
var boroughCodes = map[string]bool{
	"MN": true, // Manhattan
	"BX": true, // Bronx
	"BK": true, // Brooklyn
	"QN": true, // Queens
	"SI": true, // Staten Island
}

// Resolve filters the parcel set by the query.  It never fails: an empty
// or unusable query passes the set through unchanged, and a ZIP query
// returns the union of parcels in the resolved ZIPs.  Notices describe any
// ZIP fallback substitutions, in request order.
func Resolve(mode Mode, query string, parcels []parcel.Parcel) (filtered []parcel.Parcel, notices []string) {
	q := strings.TrimSpace(query)
	if q == "" {
		return parcels, nil
	}

	switch mode {
	case ModeZip:
		return byZip(q, parcels)
	case ModeBorough:
		return byBorough(q, parcels), nil
	default:
		return byAddress(q, parcels), nil
	}
}

func byAddress(q string, parcels []parcel.Parcel) []parcel.Parcel {
	q = strings.ToLower(q)
	var out []parcel.Parcel
	for _, p := range parcels {
		if strings.Contains(strings.ToLower(p.Address), q) {
			out = append(out, p)
		}
	}
	return out
}

func byBorough(q string, parcels []parcel.Parcel) []parcel.Parcel {
	tokens := splitTokens(q)
	if len(tokens) == 0 {
		return parcels
	}

	var out []parcel.Parcel
	for _, p := range parcels {
		code := strings.ToUpper(p.Borough)
		for _, tok := range tokens {
			tok = strings.ToUpper(tok)
			if boroughCodes[tok] {
				if code == tok {
					out = append(out, p)
					break
				}
				continue
			}
			// Unrecognized token: substring match against the code.
			if strings.Contains(code, tok) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func byZip(q string, parcels []parcel.Parcel) ([]parcel.Parcel, []string) {
	var zips []string
	seen := map[string]bool{}
	for _, tok := range splitTokens(q) {
		z := parcel.NormalizeZip(tok)
		if z == "" || seen[z] {
			continue
		}
		seen[z] = true
		zips = append(zips, z)
	}
	if len(zips) == 0 {
		// Nothing usable typed yet; behave like an empty query.
		return parcels, nil
	}

	resolved, notices := ResolveZips(zips, parcels)

	want := map[string]bool{}
	for _, z := range resolved {
		want[z] = true
	}

	var out []parcel.Parcel
	for _, p := range parcels {
		if want[p.Zip] {
			out = append(out, p)
		}
	}
	return out, notices
}

// splitTokens splits a query on commas, semicolons and whitespace.
func splitTokens(q string) []string {
	return strings.FieldsFunc(q, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
}
