// Package stations finds historical weather stations near a coordinate by
// querying the climate portal's station-search page and scraping the result
// listing. The portal offers no JSON endpoint for this search; the HTML
// form listing is the only machine-consumable source of station IDs and
// data-availability ranges.
package stations

import (
	"github.com/chinookdata/ecclimate/pkg/ec"
)

// Station is one candidate row from the search results. Keyed by display
// name in the search result map; a later row with the same name overwrites
// an earlier one.
type Station struct {
	Name     string `json:"name"`
	Province string `json:"province"`

	// ProximityKm is the distance from the queried coordinate.
	ProximityKm float64 `json:"proximity_km"`

	// StationID is the portal-assigned numeric identifier, as rendered.
	// It is what the historical bulk-data endpoint expects.
	StationID string `json:"station_id"`

	// Availability ranges per interval, e.g. "2018-01-01|2026-08-24".
	// Empty when the station records no data at that interval.
	HourlyRange  string `json:"hourly_range,omitempty"`
	DailyRange   string `json:"daily_range,omitempty"`
	MonthlyRange string `json:"monthly_range,omitempty"`
}

// SearchRequest configures a proximity search. Zero values take the
// portal's defaults where one exists.
type SearchRequest struct {
	Coordinates ec.Coordinates

	// RadiusKm is the search radius. Default 25.
	RadiusKm int

	// StartYear and EndYear bound the stations' data availability.
	// Defaults: 1840 and the current year. EndYear is not checked against
	// StartYear; the portal accepts an inverted window and returns nothing.
	StartYear int
	EndYear   int

	// Limit is the page size. Default 25.
	Limit int

	Language ec.Language
}
