package stations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chinookdata/ecclimate/pkg/ec"
)

const defaultBaseURL = "https://climate.weather.gc.ca"

// searchPath is templated by the portal's one-letter language code.
const searchPath = "/historical_data/search_historic_data_stations_%s.html"

// Client queries the station-search endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a station-search client with the portal's default
// endpoint and the standard per-request timeout.
func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: ec.RequestTimeout},
	}
}

// NewClientWithHTTP creates a client against a custom base URL with a
// caller-supplied HTTP client. Used by tests and by callers that need
// their own transport.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Search fetches one page of stations near req.Coordinates and returns them
// keyed by display name. A page with no result forms yields an empty map;
// a non-2xx response or transport failure yields an error.
func (c *Client) Search(ctx context.Context, req SearchRequest) (map[string]Station, error) {
	req = withDefaults(req)
	if err := validate(req); err != nil {
		return nil, err
	}

	u := fmt.Sprintf(c.baseURL+searchPath, req.Language.URLCode()) + "?" + queryParams(req).Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create station search request: %w", err)
	}
	httpReq.Header.Set("User-Agent", ec.UserAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("station search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("station search: status %d: %s", resp.StatusCode, body)
	}

	return ParseStations(resp.Body)
}

func withDefaults(req SearchRequest) SearchRequest {
	if req.RadiusKm == 0 {
		req.RadiusKm = 25
	}
	if req.StartYear == 0 {
		req.StartYear = 1840
	}
	if req.EndYear == 0 {
		req.EndYear = ec.CurrentYear()
	}
	if req.Limit == 0 {
		req.Limit = 25
	}
	if req.Language == "" {
		req.Language = ec.English
	}
	return req
}

func validate(req SearchRequest) error {
	if req.RadiusKm < 0 {
		return fmt.Errorf("stations: radius must be positive, got %d", req.RadiusKm)
	}
	if req.Limit < 0 {
		return fmt.Errorf("stations: limit must be positive, got %d", req.Limit)
	}
	if req.StartYear < 1840 {
		return fmt.Errorf("stations: start year must be 1840 or later, got %d", req.StartYear)
	}
	if y := ec.CurrentYear(); req.EndYear > y {
		return fmt.Errorf("stations: end year must not be after %d, got %d", y, req.EndYear)
	}
	if !req.Language.Valid() {
		return fmt.Errorf("stations: unsupported language %q", req.Language)
	}
	return nil
}

// queryParams builds the full parameter set the search form submits. The
// empty parameters are part of the endpoint's form contract: omitting them
// makes the portal fall back to its default search mode.
func queryParams(req SearchRequest) url.Values {
	return url.Values{
		"searchType":        {"stnProx"},
		"timeframe":         {"2"},
		"txtRadius":         {strconv.Itoa(req.RadiusKm)},
		"optProxType":       {"decimal"},
		"txtLatDecDeg":      {strconv.FormatFloat(req.Coordinates.Lat, 'f', -1, 64)},
		"txtLongDecDeg":     {strconv.FormatFloat(req.Coordinates.Lon, 'f', -1, 64)},
		"optLimit":          {"yearRange"},
		"StartYear":         {strconv.Itoa(req.StartYear)},
		"EndYear":           {strconv.Itoa(req.EndYear)},
		"Year":              {strconv.Itoa(req.StartYear)},
		"Month":             {"1"},
		"Day":               {"1"},
		"selRowPerPage":     {strconv.Itoa(req.Limit)},
		"selCity":           {""},
		"selPark":           {""},
		"txtCentralLatDeg":  {""},
		"txtCentralLatMin":  {""},
		"txtCentralLatSec":  {""},
		"txtCentralLongDeg": {""},
		"txtCentralLongMin": {""},
		"txtCentralLongSec": {""},
	}
}
