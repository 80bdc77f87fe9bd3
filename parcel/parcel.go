// Package parcel loads and holds the immutable parcel record set backing
// the map and list views.
package parcel

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/paulmach/orb"

	"github.com/air-rights/explorer/db"
	"github.com/air-rights/explorer/geo"
)

// Parcel is one tax lot with its air-rights figures and footprint.  BBL is
// the stable record key.  Numeric fields are nullable: the source data has
// plenty of gaps and a missing value must stay distinct from zero.
type Parcel struct {
	BBL     string `db:"bbl"`
	Borough string `db:"borough"`
	Address string `db:"address"`
	Zip     string `db:"zipcode"`

	NewUnits          sql.NullFloat64 `db:"new_units"`
	ImpactRatio       sql.NullFloat64 `db:"impact_ratio"`
	NewFloors         sql.NullFloat64 `db:"new_floors"`
	NewBuildingHeight sql.NullFloat64 `db:"new_building_height"`
	AirRights         sql.NullString  `db:"air_rights"`
	ExistingFloors    sql.NullFloat64 `db:"existing_floors"`

	ResidentialArea  sql.NullFloat64 `db:"residential_area"`
	CommercialArea   sql.NullFloat64 `db:"commercial_area"`
	UnitsResidential sql.NullFloat64 `db:"units_residential"`
	UnitsCommercial  sql.NullFloat64 `db:"units_commercial"`
	UnitsTotal       sql.NullFloat64 `db:"units_total"`

	YearBuilt      sql.NullFloat64 `db:"year_built"`
	FARBuilt       sql.NullFloat64 `db:"far_built"`
	FARResidential sql.NullFloat64 `db:"far_residential"`
	FARCommercial  sql.NullFloat64 `db:"far_commercial"`
	ZoningDistrict sql.NullString  `db:"zoning_district"`
	BuildingClass  sql.NullString  `db:"building_class"`
	Owner          sql.NullString  `db:"owner"`

	// Geometry is the decoded footprint, nil when the row had no usable
	// geometry.  Such parcels still appear in the list and color passes
	// but are skipped by anchor/bounds math.
	Geometry orb.Geometry
}

// Anchor returns the parcel's representative map point.
func (p Parcel) Anchor() (lat, lon float64, ok bool) {
	if p.Geometry == nil {
		return 0, 0, false
	}
	return geo.Anchor(p.Geometry)
}

// NormalizeZip zero-pads a digit-only ZIP of up to 5 digits to the
// canonical 5-character form.  Anything else is treated as absent.
func NormalizeZip(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 5 {
		return ""
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return strings.Repeat("0", 5-len(s)) + s
}

const loadQuery = `
	SELECT bbl, borough, address, zipcode,
	       new_units, impact_ratio, new_floors, new_building_height,
	       air_rights, existing_floors,
	       residential_area, commercial_area,
	       units_residential, units_commercial, units_total,
	       year_built, far_built, far_residential, far_commercial,
	       zoning_district, building_class, owner,
	       geometry
	FROM Parcel
	ORDER BY bbl`

// LoadAll reads the full parcel set from the database, normalizing ZIPs and
// decoding geometry.  Rows with malformed geometry are kept (geometry-less)
// and counted in rejected so callers can surface the condition.  A database
// failure is returned as-is; the app must not run on a partial set.
func LoadAll() (parcels []Parcel, rejected int, err error) {
	rows, err := db.Query(loadQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("loading parcels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p Parcel
		var zip sql.NullString
		var rawGeom sql.NullString

		err := rows.Scan(
			&p.BBL, &p.Borough, &p.Address, &zip,
			&p.NewUnits, &p.ImpactRatio, &p.NewFloors, &p.NewBuildingHeight,
			&p.AirRights, &p.ExistingFloors,
			&p.ResidentialArea, &p.CommercialArea,
			&p.UnitsResidential, &p.UnitsCommercial, &p.UnitsTotal,
			&p.YearBuilt, &p.FARBuilt, &p.FARResidential, &p.FARCommercial,
			&p.ZoningDistrict, &p.BuildingClass, &p.Owner,
			&rawGeom,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning parcel: %w", err)
		}

		p.Zip = NormalizeZip(zip.String)

		if rawGeom.Valid && rawGeom.String != "" {
			geom, err := geo.Decode(rawGeom.String)
			if err != nil {
				log.Printf("[parcel] BBL %s: dropping geometry: %v", p.BBL, err)
				rejected++
			} else {
				p.Geometry = geom
			}
		}

		parcels = append(parcels, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("loading parcels: %w", err)
	}

	return parcels, rejected, nil
}

// ByBBL finds a parcel by id in a set.
func ByBBL(parcels []Parcel, bbl string) (Parcel, bool) {
	for _, p := range parcels {
		if p.BBL == bbl {
			return p, true
		}
	}
	return Parcel{}, false
}
