// Package ec holds the pieces shared by the Environment and Climate Change
// Canada (ECCC) climate-portal clients: the field-extraction registry types,
// a generic XML node with path lookup, the portal language selector, and the
// package clock used for year-bound validation.
//
// The portal has no machine-readable API contract; both endpoints serve
// documents meant for the historical-data web UI. The sub-packages
// (stations, historical) own the endpoint-specific request building and
// document schemas, while this package owns the value coercion rules they
// share.
package ec

import "time"

// UserAgent is sent on every portal request. The portal rejects some
// default library agents, so all clients identify themselves explicitly.
const UserAgent = "ecclimate/1.0 (+https://github.com/chinookdata/ecclimate)"

// RequestTimeout bounds every portal round trip. No retries are performed
// at this layer; a slow or failed call surfaces to the caller.
const RequestTimeout = 10 * time.Second

// Language selects which localized rendering of the portal to query.
// It affects the endpoint URL and the labels attached to measurements.
type Language string

const (
	English Language = "english"
	French  Language = "french"
)

// Valid reports whether l is one of the portal's supported languages.
func (l Language) Valid() bool {
	return l == English || l == French
}

// URLCode returns the one-letter code the portal embeds in endpoint URLs
// ("e" or "f").
func (l Language) URLCode() string {
	if l == French {
		return "f"
	}
	return "e"
}

// Coordinates is a WGS-84 latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}
