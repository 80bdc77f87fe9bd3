package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/air-rights/explorer/parcel"
)

// coloredSetWithZips builds one colored parcel per ZIP.
func coloredSetWithZips(zips ...string) []parcel.Parcel {
	var out []parcel.Parcel
	for i, z := range zips {
		out = append(out, testParcel(string(rune('A'+i)), "ADDR", "MN", z, 0.5, true))
	}
	return out
}

func TestResolveZipsValidColoredUnchanged(t *testing.T) {
	resolved, notices := ResolveZips([]string{"10001"}, testSet())
	assert.Equal(t, []string{"10001"}, resolved)
	assert.Empty(t, notices)
}

func TestResolveZipsAvailabilityFallback(t *testing.T) {
	resolved, notices := ResolveZips([]string{"10099"}, testSet())
	assert.Equal(t, []string{"10027"}, resolved)
	require.Len(t, notices, 1)
	assert.Equal(t, "10099 not found, using 10027", notices[0])
}

func TestResolveZipsIdempotent(t *testing.T) {
	parcels := testSet()

	first, _ := ResolveZips([]string{"10099"}, parcels)
	require.Equal(t, []string{"10027"}, first)

	// Resolving the already-resolved ZIP changes nothing and says nothing.
	second, notices := ResolveZips(first, parcels)
	assert.Equal(t, first, second)
	assert.Empty(t, notices)
}

func TestResolveZipsTieBreaksToSmallerZip(t *testing.T) {
	parcels := coloredSetWithZips("10001", "10003")

	// 10002 is equidistant from both; the smaller ZIP wins.
	resolved, notices := ResolveZips([]string{"10002"}, parcels)
	assert.Equal(t, []string{"10001"}, resolved)
	require.Len(t, notices, 1)
	assert.Equal(t, "10002 not found, using 10001", notices[0])
}

func TestResolveZipsSignalFallback(t *testing.T) {
	// 10002 exists but all its parcels are below the display floor;
	// 10001 is the nearest colored ZIP.
	resolved, notices := ResolveZips([]string{"10002"}, testSet())
	assert.Equal(t, []string{"10001"}, resolved)
	require.Len(t, notices, 1)
	assert.Equal(t, "10002 has no colored properties, using 10001", notices[0])
}

func TestResolveZipsBothStages(t *testing.T) {
	// 11299 is not in the dataset; the nearest available ZIP is 11217,
	// which has no colored parcels, so a second hop lands on a colored
	// ZIP.  Both substitutions are reported.
	resolved, notices := ResolveZips([]string{"11299"}, testSet())
	assert.Equal(t, []string{"10451"}, resolved)
	require.Len(t, notices, 2)
	assert.Equal(t, "11299 not found, using 11217", notices[0])
	assert.Equal(t, "11217 has no colored properties, using 10451", notices[1])
}

func TestResolveZipsDeduplicatesFinalZips(t *testing.T) {
	// Both requests resolve to 10027; it appears once, first-seen order.
	resolved, notices := ResolveZips([]string{"10027", "10099"}, testSet())
	assert.Equal(t, []string{"10027"}, resolved)
	require.Len(t, notices, 1)
	assert.Equal(t, "10099 not found, using 10027", notices[0])
}

func TestResolveZipsEmptyDatasetKeepsOriginal(t *testing.T) {
	// Nothing to fall back to: the ZIP is kept, no notice emitted.
	resolved, notices := ResolveZips([]string{"10001"}, nil)
	assert.Equal(t, []string{"10001"}, resolved)
	assert.Empty(t, notices)
}

func TestResolveZipsOneNoticePerDistinctToken(t *testing.T) {
	_, notices := ResolveZips([]string{"10098", "10099"}, testSet())
	assert.Len(t, notices, 2)
}

func TestResolveZipsParcelsWithoutZipIgnored(t *testing.T) {
	parcels := append(testSet(), testParcel("Z", "NO ZIP", "MN", "", 0.9, true))

	resolved, notices := ResolveZips([]string{"10001"}, parcels)
	assert.Equal(t, []string{"10001"}, resolved)
	assert.Empty(t, notices)
}
