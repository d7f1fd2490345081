package stations

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The portal renders every search result twice: once in a full-width block
// and once in a small-viewport block. Both are forms whose id starts with
// "stnRequest"; only the small-viewport rendering carries the "-sm" suffix.
// Selecting on both ends of the id picks exactly one rendering per station.
const resultFormSelector = `form[id^="stnRequest"][id$="-sm"]`

// labelValueSelector matches the value cell of each labeled row inside a
// result form. The three cells appear positionally: name, province,
// proximity.
const labelValueSelector = `div[class="col-md-10 col-sm-8 col-xs-8"]`

// ParseStations extracts the station listing from a search results page.
// It is the single place that knows the portal's result markup, so a markup
// change is a localized fix. A document with no matching forms parses to an
// empty map; rows missing the expected cells are skipped.
func ParseStations(r io.Reader) (map[string]Station, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse station search page: %w", err)
	}

	found := map[string]Station{}
	doc.Find(resultFormSelector).Each(func(_ int, form *goquery.Selection) {
		st, ok := parseResultForm(form)
		if !ok {
			return
		}
		found[st.Name] = st
	})
	return found, nil
}

func parseResultForm(form *goquery.Selection) (Station, bool) {
	cells := form.Find(labelValueSelector)
	if cells.Length() < 3 {
		return Station{}, false
	}

	proximity, err := strconv.ParseFloat(strings.TrimSpace(cells.Eq(2).Text()), 64)
	if err != nil {
		return Station{}, false
	}

	name := strings.TrimSpace(cells.Eq(0).Text())
	if name == "" {
		return Station{}, false
	}

	return Station{
		Name:         name,
		Province:     strings.TrimSpace(cells.Eq(1).Text()),
		ProximityKm:  proximity,
		StationID:    hiddenInput(form, "StationID"),
		HourlyRange:  hiddenInput(form, "hlyRange"),
		DailyRange:   hiddenInput(form, "dlyRange"),
		MonthlyRange: hiddenInput(form, "mlyRange"),
	}, true
}

func hiddenInput(form *goquery.Selection, name string) string {
	return form.Find(fmt.Sprintf(`input[name=%q]`, name)).AttrOr("value", "")
}
