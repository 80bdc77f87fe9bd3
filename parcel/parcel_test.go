package parcel

import (
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/air-rights/explorer/db"
)

var loadColumns = []string{
	"bbl", "borough", "address", "zipcode",
	"new_units", "impact_ratio", "new_floors", "new_building_height",
	"air_rights", "existing_floors",
	"residential_area", "commercial_area",
	"units_residential", "units_commercial", "units_total",
	"year_built", "far_built", "far_residential", "far_commercial",
	"zoning_district", "building_class", "owner",
	"geometry",
}

const polygonJSON = `{"type":"Polygon","coordinates":[[[-73.985,40.748],[-73.984,40.748],[-73.984,40.749],[-73.985,40.748]]]}`

func fullRow(bbl, zip, geometry string) []driver.Value {
	return []driver.Value{
		bbl, "MN", "350 5TH AVENUE", zip,
		120.0, 0.92, 15.0, 180.0,
		"UNUSED", 10.0,
		85000.0, 12000.0,
		100.0, 5.0, 105.0,
		1931.0, 12.5, 10.0, 2.5,
		"C5-3", "O4", "EMPIRE STATE REALTY",
		geometry,
	}
}

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db.SetForTesting(mockDB)
	t.Cleanup(func() { mockDB.Close() })
	return mock
}

func TestLoadAll(t *testing.T) {
	mock := newMockDB(t)

	rows := sqlmock.NewRows(loadColumns).
		AddRow(fullRow("1000470001", "10001", polygonJSON)...).
		AddRow(fullRow("1000470002", "10002", polygonJSON)...)
	mock.ExpectQuery("SELECT bbl, borough, address, zipcode").WillReturnRows(rows)

	parcels, rejected, err := LoadAll()
	require.NoError(t, err)
	assert.Zero(t, rejected)
	require.Len(t, parcels, 2)

	p := parcels[0]
	assert.Equal(t, "1000470001", p.BBL)
	assert.Equal(t, "MN", p.Borough)
	assert.Equal(t, "350 5TH AVENUE", p.Address)
	assert.Equal(t, "10001", p.Zip)
	require.True(t, p.ImpactRatio.Valid)
	assert.Equal(t, 0.92, p.ImpactRatio.Float64)
	assert.Equal(t, "EMPIRE STATE REALTY", p.Owner.String)
	require.NotNil(t, p.Geometry)

	lat, lon, ok := p.Anchor()
	require.True(t, ok)
	assert.Equal(t, 40.748, lat)
	assert.Equal(t, -73.985, lon)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadAllNullFields(t *testing.T) {
	mock := newMockDB(t)

	rows := sqlmock.NewRows(loadColumns).
		AddRow("1000470001", "MN", "350 5TH AVENUE", nil,
			nil, nil, nil, nil,
			nil, nil,
			nil, nil,
			nil, nil, nil,
			nil, nil, nil, nil,
			nil, nil, nil,
			nil)
	mock.ExpectQuery("SELECT bbl, borough, address, zipcode").WillReturnRows(rows)

	parcels, rejected, err := LoadAll()
	require.NoError(t, err)
	assert.Zero(t, rejected)
	require.Len(t, parcels, 1)

	p := parcels[0]
	assert.Empty(t, p.Zip)
	assert.False(t, p.ImpactRatio.Valid)
	assert.False(t, p.Owner.Valid)
	assert.Nil(t, p.Geometry)

	_, _, ok := p.Anchor()
	assert.False(t, ok)
}

func TestLoadAllMalformedGeometryCounted(t *testing.T) {
	mock := newMockDB(t)

	rows := sqlmock.NewRows(loadColumns).
		AddRow(fullRow("1000470001", "10001", polygonJSON)...).
		AddRow(fullRow("1000470002", "10002", "{not geojson")...).
		AddRow(fullRow("1000470003", "10003", `{"type":"Point","coordinates":[-73.98,40.75]}`)...)
	mock.ExpectQuery("SELECT bbl, borough, address, zipcode").WillReturnRows(rows)

	parcels, rejected, err := LoadAll()
	require.NoError(t, err)
	assert.Equal(t, 2, rejected)

	// The malformed rows are kept, geometry-less.
	require.Len(t, parcels, 3)
	assert.NotNil(t, parcels[0].Geometry)
	assert.Nil(t, parcels[1].Geometry)
	assert.Nil(t, parcels[2].Geometry)
}

func TestLoadAllZipNormalization(t *testing.T) {
	mock := newMockDB(t)

	rows := sqlmock.NewRows(loadColumns).
		AddRow(fullRow("A", "501", polygonJSON)...).
		AddRow(fullRow("B", "10001-1234", polygonJSON)...)
	mock.ExpectQuery("SELECT bbl, borough, address, zipcode").WillReturnRows(rows)

	parcels, _, err := LoadAll()
	require.NoError(t, err)
	require.Len(t, parcels, 2)
	assert.Equal(t, "00501", parcels[0].Zip)
	assert.Empty(t, parcels[1].Zip)
}

func TestLoadAllQueryError(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("SELECT bbl, borough, address, zipcode").
		WillReturnError(errors.New("disk I/O error"))

	parcels, _, err := LoadAll()
	assert.Error(t, err)
	assert.Nil(t, parcels)
}

func TestNormalizeZip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10001", "10001"},
		{"501", "00501"},
		{" 10001 ", "10001"},
		{"", ""},
		{"100011", ""},
		{"10001-1234", ""},
		{"1000a", ""},
		{"N/A", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeZip(tt.in), "input %q", tt.in)
	}
}

func TestByBBL(t *testing.T) {
	parcels := []Parcel{{BBL: "A"}, {BBL: "B"}}

	p, ok := ByBBL(parcels, "B")
	assert.True(t, ok)
	assert.Equal(t, "B", p.BBL)

	_, ok = ByBBL(parcels, "gone")
	assert.False(t, ok)

	_, ok = ByBBL(nil, "A")
	assert.False(t, ok)
}
