package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/air-rights/explorer/config"
	"github.com/air-rights/explorer/parcel"
)

func bbls(parcels []parcel.Parcel) []string {
	out := make([]string, len(parcels))
	for i, p := range parcels {
		out[i] = p.BBL
	}
	return out
}

func TestTopByImpact(t *testing.T) {
	parcels := []parcel.Parcel{
		anchored("low", 40.70, -74.00, 0.30, true),
		anchored("high", 40.71, -74.00, 0.92, true),
		anchored("mid", 40.72, -74.00, 0.45, true),
	}

	ranked := TopByImpact(parcels, 10)
	assert.Equal(t, []string{"high", "mid", "low"}, bbls(ranked))
}

func TestTopByImpactTruncates(t *testing.T) {
	var parcels []parcel.Parcel
	for i := 0; i < 15; i++ {
		parcels = append(parcels, anchored(string(rune('A'+i)), 40.70, -74.00, float64(i)/10, true))
	}

	ranked := TopByImpact(parcels, 10)
	assert.Len(t, ranked, 10)
	assert.Equal(t, "O", ranked[0].BBL)
}

func TestTopByImpactMissingRanksLast(t *testing.T) {
	parcels := []parcel.Parcel{
		anchored("nometric", 40.70, -74.00, 0, false),
		anchored("zero", 40.71, -74.00, 0, true),
		anchored("high", 40.72, -74.00, 0.92, true),
	}

	ranked := TopByImpact(parcels, 10)
	// A missing ratio sorts below a present zero.
	assert.Equal(t, []string{"high", "zero", "nometric"}, bbls(ranked))
}

func TestTopByImpactStable(t *testing.T) {
	parcels := []parcel.Parcel{
		anchored("first", 40.70, -74.00, 0.5, true),
		anchored("second", 40.71, -74.00, 0.5, true),
		anchored("third", 40.72, -74.00, 0.5, true),
	}

	ranked := TopByImpact(parcels, 10)
	require.Equal(t, []string{"first", "second", "third"}, bbls(ranked))

	// Re-ranking an already ranked list is a fixed point.
	again := TopByImpact(ranked, 10)
	assert.Equal(t, bbls(ranked), bbls(again))
}

func TestTopByImpactDoesNotMutateInput(t *testing.T) {
	parcels := []parcel.Parcel{
		anchored("low", 40.70, -74.00, 0.1, true),
		anchored("high", 40.71, -74.00, 0.9, true),
	}

	_ = TopByImpact(parcels, 10)
	assert.Equal(t, []string{"low", "high"}, bbls(parcels))
}

func TestTopByImpactEmpty(t *testing.T) {
	assert.Empty(t, TopByImpact(nil, 10))
}

func TestWindowByCenter(t *testing.T) {
	parcels := []parcel.Parcel{
		anchored("inside", 40.750, -73.980, 0.5, true),
		anchored("edge", 40.755, -73.985, 0.5, true),
		anchored("outside", 40.850, -73.900, 0.5, true),
	}

	got := WindowByCenter(parcels, 40.754, -73.984, config.MapWindowDelta)
	assert.Equal(t, []string{"inside", "edge"}, bbls(got))
}

func TestWindowByCenterExcludesGeometryless(t *testing.T) {
	parcels := []parcel.Parcel{
		{BBL: "nogeo"},
		anchored("inside", 40.750, -73.980, 0.5, true),
	}

	got := WindowByCenter(parcels, 40.750, -73.980, config.MapWindowDelta)
	assert.Equal(t, []string{"inside"}, bbls(got))
}

func TestActiveListSingle(t *testing.T) {
	all := []parcel.Parcel{
		anchored("A", 40.70, -74.00, 0.3, true),
		anchored("B", 40.71, -74.00, 0.9, true),
	}

	sel := Selection{BBL: "A", Single: true}
	got := ActiveList(all, all, sel, DefaultViewport())

	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].BBL)
}

func TestActiveListSingleMissingID(t *testing.T) {
	all := []parcel.Parcel{anchored("A", 40.70, -74.00, 0.3, true)}

	sel := Selection{BBL: "gone", Single: true}
	assert.Empty(t, ActiveList(all, all, sel, DefaultViewport()))
}

func TestActiveListRanked(t *testing.T) {
	all := []parcel.Parcel{
		anchored("low", 40.70, -74.00, 0.1, true),
		anchored("high", 40.71, -74.00, 0.9, true),
	}

	got := ActiveList(all, all, Selection{}, DefaultViewport())
	assert.Equal(t, []string{"high", "low"}, bbls(got))
}

func TestActiveListWindowed(t *testing.T) {
	all := []parcel.Parcel{
		anchored("near", 40.750, -73.980, 0.1, true),
		anchored("far", 40.850, -73.900, 0.9, true),
	}

	sel := Selection{MapWindow: true}
	vp := Viewport{Lat: 40.750, Lon: -73.980, Zoom: 14}

	got := ActiveList(all, all, sel, vp)
	assert.Equal(t, []string{"near"}, bbls(got))
}

func TestActiveListCapsAtListSize(t *testing.T) {
	var all []parcel.Parcel
	for i := 0; i < 25; i++ {
		all = append(all, anchored(string(rune('A'+i)), 40.70, -74.00, float64(i)/25, true))
	}

	got := ActiveList(all, all, Selection{}, DefaultViewport())
	assert.Len(t, got, config.TopListSize)
}
