// Package historical downloads one station-year of daily climate records
// from the portal's bulk-data endpoint and normalizes it into typed,
// labeled measurements. The endpoint serves either XML (fully decomposed
// here) or CSV (metadata plus raw payload; see Client.RawData).
package historical

// Metadata describes the station a document was recorded at. All fields
// are the portal's strings, uncoerced; nil means the document did not
// carry the field. The CSV format only yields Longitude, Latitude, Name,
// and ClimateIdentifier.
type Metadata struct {
	Name              *string `json:"name"`
	Province          *string `json:"province"`
	StationOperator   *string `json:"station_operator"`
	Latitude          *string `json:"latitude"`
	Longitude         *string `json:"longitude"`
	Elevation         *string `json:"elevation"`
	ClimateIdentifier *string `json:"climate_identifier"`
	WMOIdentifier     *string `json:"wmo_identifier"`
	TCIdentifier      *string `json:"tc_identifier"`
}

// Measurement is one recorded quantity for one day. The shape is fixed:
// Value is nil when the station did not report the quantity, and Unit is
// set only when the source element carried an explicit units attribute.
type Measurement struct {
	// Value holds int, float64, or string per the registry's declared
	// type; nil when missing.
	Value any `json:"value"`

	Unit  string `json:"unit,omitempty"`
	Label string `json:"label"`
}

// DailyRecord maps measurement kind (e.g. "maxtemp") to its Measurement.
// Every registered kind is present in every record, possibly with a nil
// value; kinds the document carries but the registry does not know are
// ignored.
type DailyRecord map[string]Measurement
