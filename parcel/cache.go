package parcel

import (
	"log"

	"github.com/air-rights/explorer/cache"
)

var parcelCache *cache.Cache[[]Parcel]

const cacheKey = "parcels:all"

// InitParcelCache sets up the process-wide parcel cache.  The record set is
// loaded once and reused until an explicit Refresh.
func InitParcelCache() error {
	var err error
	parcelCache, err = cache.New[[]Parcel](func(value []Parcel) int64 {
		return int64(len(value)) * 512
	}, "Parcel Data Cache")
	if err != nil {
		return err
	}

	log.Printf("[parcel-cache] Cache initialized successfully")
	return nil
}

// All returns the full parcel set, loading it from the database on first
// use.  A load failure propagates; the caller must not fall back to an
// empty set.
func All() ([]Parcel, error) {
	if cached, found := parcelCache.Get(cacheKey); found {
		return cached, nil
	}

	parcels, rejected, err := LoadAll()
	if err != nil {
		return nil, err
	}
	if rejected > 0 {
		log.Printf("[parcel-cache] %d parcels loaded with unusable geometry", rejected)
	}

	parcelCache.Set(cacheKey, parcels, int64(len(parcels))*512)
	parcelCache.Wait()
	return parcels, nil
}

// Refresh drops the cached set and reloads it from the database.
func Refresh() ([]Parcel, error) {
	parcelCache.Clear()
	return All()
}
