package historical

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/chinookdata/ecclimate/pkg/ec"
)

// parseXMLDocument decomposes a bulk-data XML document into station
// metadata and the date-keyed measurement table.
func parseXMLDocument(body []byte, lang ec.Language) (Metadata, map[string]DailyRecord, error) {
	root, err := ec.ParseXML(bytes.NewReader(body))
	if err != nil {
		return Metadata{}, nil, err
	}

	meta := Metadata{
		Name:              metaValue(root, "name"),
		Province:          metaValue(root, "province"),
		StationOperator:   metaValue(root, "stationoperator"),
		Latitude:          metaValue(root, "latitude"),
		Longitude:         metaValue(root, "longitude"),
		Elevation:         metaValue(root, "elevation"),
		ClimateIdentifier: metaValue(root, "climate_identifier"),
		WMOIdentifier:     metaValue(root, "wmo_identifier"),
		TCIdentifier:      metaValue(root, "tc_identifier"),
	}

	data := map[string]DailyRecord{}
	for _, day := range root.FindAll("stationdata") {
		key, err := dateKey(day)
		if err != nil {
			return Metadata{}, nil, err
		}
		rec, err := parseDayElement(day, lang)
		if err != nil {
			return Metadata{}, nil, fmt.Errorf("day %s: %w", key, err)
		}
		// The portal does not deduplicate same-date elements; last wins.
		data[key] = rec
	}

	return meta, data, nil
}

// metaValue looks up one metadata path and returns its text, nil when the
// element is absent or empty. Metadata is never coerced.
func metaValue(root *ec.Node, key string) *string {
	el := root.Find(metadataFields[key].Path)
	if el == nil {
		return nil
	}
	text := el.TrimmedText()
	if text == "" {
		return nil
	}
	return &text
}

// dateKey builds the UTC calendar-date key from a stationdata element's
// day/month/year attributes. The portal emits the components without zero
// padding.
func dateKey(day *ec.Node) (string, error) {
	d, err := intAttr(day, "day")
	if err != nil {
		return "", err
	}
	m, err := intAttr(day, "month")
	if err != nil {
		return "", err
	}
	y, err := intAttr(day, "year")
	if err != nil {
		return "", err
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), nil
}

func intAttr(n *ec.Node, name string) (int, error) {
	raw, ok := n.Attr(name)
	if !ok {
		return 0, fmt.Errorf("stationdata element missing %s attribute", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("stationdata %s attribute %q: %w", name, raw, err)
	}
	return v, nil
}

// parseDayElement resolves every registered measurement kind against one
// stationdata element. The resulting record always carries the full key
// set; kinds the element does not report get a nil value. Elements the
// registry does not know are ignored.
func parseDayElement(day *ec.Node, lang ec.Language) (DailyRecord, error) {
	rec := make(DailyRecord, len(measurementKinds))
	for _, kind := range measurementKinds {
		spec := measurementFields[kind]
		value, unit, err := spec.Extract(day)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		rec[kind] = Measurement{
			Value: value,
			Unit:  unit,
			Label: spec.Label(lang),
		}
	}
	return rec, nil
}
