package historical

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chinookdata/ecclimate/pkg/ec"
)

// Format selects the bulk-data document shape.
type Format string

const (
	FormatXML Format = "xml"
	FormatCSV Format = "csv"
)

const defaultBaseURL = "https://climate.weather.gc.ca"

// bulkPath is templated by the portal's one-letter language code.
const bulkPath = "/climate_data/bulk_data_%s.html"

// timeframe 2 is the portal's code for daily data.
const timeframeDaily = "2"

// submitToken is the form submit trigger the endpoint requires.
const submitToken = "Download Data"

// Config binds a fetcher to one station and year.
type Config struct {
	StationID int

	// Year of the records, 1840 up to the current year.
	Year int

	// Language defaults to English. It selects the endpoint URL and the
	// measurement labels.
	Language ec.Language

	// Format defaults to FormatXML. Only the XML format is decomposed
	// into per-day measurements; see Client.RawData for CSV.
	Format Format
}

// Client fetches and holds one station-year of historical data. Construct
// with New, refresh with Update. A Client is cheap; distinct Clients are
// independent, but a single Client's Update must not be called
// concurrently with itself since it rewrites the result fields.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client

	// Metadata and Data are fully overwritten by each successful Update.
	Metadata Metadata
	Data     map[string]DailyRecord

	// RawData holds the undecoded CSV payload after a FormatCSV Update.
	// The CSV format's per-day values are not decomposed into Data; the
	// portal documents no per-day CSV schema, so the payload is handed to
	// the caller as-is.
	RawData string
}

// New validates cfg and returns a fetcher. No network I/O happens until
// Update.
func New(cfg Config) (*Client, error) {
	return NewWithHTTP(cfg, defaultBaseURL, &http.Client{Timeout: ec.RequestTimeout})
}

// NewWithHTTP is New against a custom base URL with a caller-supplied HTTP
// client. Used by tests and by callers that need their own transport.
func NewWithHTTP(cfg Config, baseURL string, httpClient *http.Client) (*Client, error) {
	if cfg.Language == "" {
		cfg.Language = ec.English
	}
	if cfg.Format == "" {
		cfg.Format = FormatXML
	}

	if cfg.StationID <= 0 {
		return nil, fmt.Errorf("historical: station id must be positive, got %d", cfg.StationID)
	}
	if y := ec.CurrentYear(); cfg.Year < 1840 || cfg.Year > y {
		return nil, fmt.Errorf("historical: year must be within 1840..%d, got %d", y, cfg.Year)
	}
	if !cfg.Language.Valid() {
		return nil, fmt.Errorf("historical: unsupported language %q", cfg.Language)
	}
	if cfg.Format != FormatXML && cfg.Format != FormatCSV {
		return nil, fmt.Errorf("historical: unsupported format %q", cfg.Format)
	}

	return &Client{cfg: cfg, baseURL: baseURL, httpClient: httpClient}, nil
}

// StationID returns the station this fetcher is bound to.
func (c *Client) StationID() int { return c.cfg.StationID }

// Year returns the year this fetcher is bound to.
func (c *Client) Year() int { return c.cfg.Year }

// Update performs one fetch-and-parse round trip and replaces Metadata,
// Data, and RawData with the fresh results. Nothing is retained from a
// prior call; on error the previous results are left untouched.
func (c *Client) Update(ctx context.Context) error {
	body, err := c.fetch(ctx)
	if err != nil {
		return err
	}

	if c.cfg.Format == FormatCSV {
		meta, err := parseCSVMetadata(body)
		if err != nil {
			return err
		}
		c.Metadata = meta
		c.Data = nil
		c.RawData = string(body)
		return nil
	}

	meta, data, err := parseXMLDocument(body, c.cfg.Language)
	if err != nil {
		return err
	}
	c.Metadata = meta
	c.Data = data
	c.RawData = ""
	return nil
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	params := url.Values{
		"stationID": {strconv.Itoa(c.cfg.StationID)},
		"Year":      {strconv.Itoa(c.cfg.Year)},
		"format":    {string(c.cfg.Format)},
		"timeframe": {timeframeDaily},
		"submit":    {submitToken},
	}
	u := fmt.Sprintf(c.baseURL+bulkPath, c.cfg.Language.URLCode()) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create bulk data request: %w", err)
	}
	req.Header.Set("User-Agent", ec.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bulk data request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("bulk data: status %d: %s", resp.StatusCode, snippet)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read bulk data response: %w", err)
	}
	return body, nil
}
