package historical

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Column positions of the station metadata in the delimited format. The
// remaining columns are per-day values, which this format does not
// decompose (see Client.RawData).
const (
	csvColLongitude = iota
	csvColLatitude
	csvColName
	csvColClimateID
)

// parseCSVMetadata reads the header and first data row of a delimited
// document and lifts out the reduced metadata set the format carries.
func parseCSVMetadata(body []byte) (Metadata, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		return Metadata{}, fmt.Errorf("bulk data csv: missing header row: %w", err)
	}

	first, err := r.Read()
	if err != nil {
		return Metadata{}, fmt.Errorf("bulk data csv: missing data row: %w", err)
	}
	if len(first) <= csvColClimateID {
		return Metadata{}, fmt.Errorf("bulk data csv: first data row has %d columns, want at least %d", len(first), csvColClimateID+1)
	}

	return Metadata{
		Longitude:         strPtr(first[csvColLongitude]),
		Latitude:          strPtr(first[csvColLatitude]),
		Name:              strPtr(first[csvColName]),
		ClimateIdentifier: strPtr(first[csvColClimateID]),
	}, nil
}

func strPtr(s string) *string { return &s }
