package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/air-rights/explorer/parcel"
)

// DetailGrid renders the full attribute sheet for one parcel in two
// columns, mirroring the map tooltip's field order.
func DetailGrid(p parcel.Parcel) g.Node {
	text := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	rows := []struct {
		label string
		value string
	}{
		{"BBL", text(p.BBL)},
		{"Borough", text(p.Borough)},
		{"ZIP Code", text(p.Zip)},
		{"Address", text(p.Address)},

		{"New Units", FormatInt(p.NewUnits)},
		{"% Impact", FormatPercentFromRatio(p.ImpactRatio)},
		{"New Floors", FormatInt(p.NewFloors)},
		{"New Building Height", FormatHeight(p.NewBuildingHeight)},
		{"Air Rights", FormatText(p.AirRights)},

		{"Number of Existing Floors", FormatInt(p.ExistingFloors)},

		{"Residential Area", FormatAreaSqFt(p.ResidentialArea)},
		{"Commercial Area", FormatAreaSqFt(p.CommercialArea)},
		{"Units Residential", FormatInt(p.UnitsResidential)},
		{"Units Commercial", FormatInt(p.UnitsCommercial)},
		{"Units Total", FormatInt(p.UnitsTotal)},

		{"Year Built", FormatInt(p.YearBuilt)},
		{"Zoning District 1", FormatText(p.ZoningDistrict)},
		{"Building Class", FormatText(p.BuildingClass)},
		{"Owner", FormatText(p.Owner)},

		{"FAR Built", FormatFloat(p.FARBuilt)},
		{"FAR Residential", FormatFloat(p.FARResidential)},
		{"FAR Commercial", FormatFloat(p.FARCommercial)},
	}

	var left, right []g.Node
	for i, row := range rows {
		node := infoRow(row.label, row.value)
		if i%2 == 0 {
			left = append(left, node)
		} else {
			right = append(right, node)
		}
	}

	return Div(
		Class("grid grid-cols-2 gap-x-4 mt-2"),
		Div(g.Group(left)),
		Div(g.Group(right)),
	)
}
