package geo

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/openaquifer/groundwater-api/schema"
)

var (
	ErrNoGeoInfoFound         = fmt.Errorf("no geo information found")
	ErrResolverNotInitialized = fmt.Errorf("location resolver is not initialized")
)

// AdministrativeArea - state/district pair resolved from a coordinate.
type AdministrativeArea struct {
	State    string
	District string
}

// LocationResolver resolves the administrative area a coordinate belongs to.
// The dataset importer uses it to backfill rows whose state or district
// column is missing or corrupted.
type LocationResolver interface {
	GetAdministrativeArea(loc schema.Location) (AdministrativeArea, error)
}

type GeocodingLocationResolver struct {
	client *maps.Client
}

func NewGeocodingLocationResolver(client *maps.Client) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
	}
}

func (g *GeocodingLocationResolver) GetAdministrativeArea(loc schema.Location) (AdministrativeArea, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		ResultType: []string{"administrative_area_level_2|administrative_area_level_1"},
		Language:   "en",
	})
	if nil != err {
		return AdministrativeArea{}, err
	}

	if len(geos) == 0 {
		return AdministrativeArea{}, ErrNoGeoInfoFound
	}

	var area AdministrativeArea
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) == 0 {
			continue
		}
		switch a.Types[0] {
		case "administrative_area_level_1":
			area.State = a.LongName
		case "administrative_area_level_2":
			area.District = a.LongName
		}
	}

	if area.State == "" && area.District == "" {
		return AdministrativeArea{}, ErrNoGeoInfoFound
	}

	return area, nil
}
