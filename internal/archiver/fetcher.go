package archiver

import (
	"context"
	"net/http"

	"github.com/chinookdata/ecclimate/pkg/ec"
	"github.com/chinookdata/ecclimate/pkg/ec/historical"
)

// PortalFetcher implements Fetcher against the climate portal. Each
// station-year gets its own short-lived historical client, since a client
// is bound to one station and year at construction.
type PortalFetcher struct {
	language ec.Language

	// baseURL and httpClient override the portal defaults when set.
	// Integration tests point them at a stub portal.
	baseURL    string
	httpClient *http.Client
}

// NewPortalFetcher creates a fetcher for the real portal.
func NewPortalFetcher(language ec.Language) *PortalFetcher {
	return &PortalFetcher{language: language}
}

// NewPortalFetcherWithHTTP creates a fetcher against a custom endpoint.
func NewPortalFetcherWithHTTP(language ec.Language, baseURL string, httpClient *http.Client) *PortalFetcher {
	return &PortalFetcher{language: language, baseURL: baseURL, httpClient: httpClient}
}

func (f *PortalFetcher) FetchYear(ctx context.Context, stationID, year int) (historical.Metadata, map[string]historical.DailyRecord, error) {
	cfg := historical.Config{
		StationID: stationID,
		Year:      year,
		Language:  f.language,
	}

	var client *historical.Client
	var err error
	if f.baseURL != "" {
		client, err = historical.NewWithHTTP(cfg, f.baseURL, f.httpClient)
	} else {
		client, err = historical.New(cfg)
	}
	if err != nil {
		return historical.Metadata{}, nil, err
	}

	if err := client.Update(ctx); err != nil {
		return historical.Metadata{}, nil, err
	}
	return client.Metadata, client.Data, nil
}
