// Package archiver runs the caller-side loop the library deliberately
// leaves out: walk the configured stations and years, fetch each
// station-year from the climate portal, and hand the flattened daily
// records to a loader. All retry/skip resilience lives here; the fetch
// layer itself never retries.
package archiver

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/chinookdata/ecclimate/internal/config"
	"github.com/chinookdata/ecclimate/internal/observability"
	"github.com/chinookdata/ecclimate/pkg/ec/historical"
)

// Record is one archived station-day, the unit published to the sink.
type Record struct {
	StationID    int                    `json:"station_id"`
	Date         string                 `json:"date"`
	Metadata     historical.Metadata    `json:"metadata"`
	Measurements historical.DailyRecord `json:"measurements"`
	ArchivedAt   time.Time              `json:"archived_at"`
}

// Fetcher retrieves one station-year from the portal.
type Fetcher interface {
	FetchYear(ctx context.Context, stationID, year int) (historical.Metadata, map[string]historical.DailyRecord, error)
}

// Loader writes a batch of records to the destination.
type Loader interface {
	LoadBatch(ctx context.Context, records []Record) error
}

// Archiver orchestrates the fetch-flatten-load loop.
type Archiver struct {
	fetcher Fetcher
	loader  Loader
	logger  *slog.Logger
	metrics *observability.Metrics

	stations  []int
	startYear int
	endYear   int
	interval  time.Duration

	ready atomic.Bool
}

// New creates an Archiver for the configured station and year window.
func New(cfg *config.Config, f Fetcher, l Loader, logger *slog.Logger, metrics *observability.Metrics) *Archiver {
	return &Archiver{
		fetcher:   f,
		loader:    l,
		logger:    logger,
		metrics:   metrics,
		stations:  cfg.StationIDs,
		startYear: cfg.StartYear,
		endYear:   cfg.EndYear,
		interval:  cfg.ArchiveInterval,
	}
}

// CheckReadiness returns nil once at least one archive cycle has published
// records, or an error describing why the service is not yet ready.
func (a *Archiver) CheckReadiness(_ context.Context) error {
	if !a.ready.Load() {
		return errors.New("no archive cycle has completed yet")
	}
	return nil
}

// Run executes archive cycles until the context is cancelled. The first
// cycle starts immediately; later cycles follow the configured interval.
func (a *Archiver) Run(ctx context.Context) error {
	a.logger.Info("archiver started",
		"stations", len(a.stations),
		"start_year", a.startYear,
		"end_year", a.endYear,
		"interval", a.interval,
	)
	a.metrics.ArchiverRunning.Set(1)
	defer a.metrics.ArchiverRunning.Set(0)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		a.RunCycle(ctx)

		select {
		case <-ctx.Done():
			a.logger.Info("archiver stopping", "reason", ctx.Err())
			return nil
		case <-ticker.C:
		}
	}
}

// RunCycle fetches and publishes every configured station-year once.
// Failed station-years are logged and skipped; the cycle keeps going.
func (a *Archiver) RunCycle(ctx context.Context) {
	for _, stationID := range a.stations {
		for year := a.startYear; year <= a.endYear; year++ {
			if ctx.Err() != nil {
				return
			}
			a.archiveStationYear(ctx, stationID, year)
		}
	}
}

func (a *Archiver) archiveStationYear(ctx context.Context, stationID, year int) {
	start := time.Now()
	meta, data, err := a.fetcher.FetchYear(ctx, stationID, year)
	a.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		a.metrics.FetchesTotal.WithLabelValues("error").Inc()
		a.logger.Error("fetch failed", "station_id", stationID, "year", year, "error", err)
		return
	}
	a.metrics.FetchesTotal.WithLabelValues("success").Inc()

	records := flatten(stationID, meta, data)
	if len(records) == 0 {
		a.logger.Warn("no daily records in document", "station_id", stationID, "year", year)
		return
	}

	if err := a.loader.LoadBatch(ctx, records); err != nil {
		a.metrics.PublishErrors.Inc()
		a.logger.Error("publish failed", "station_id", stationID, "year", year, "error", err)
		return
	}

	a.metrics.RecordsPublished.Add(float64(len(records)))
	a.ready.Store(true)
	a.logger.Info("archived station-year",
		"station_id", stationID,
		"year", year,
		"records", len(records),
		"duration", time.Since(start),
	)
}

// flatten turns a date-keyed result map into records in ascending date
// order, so replays publish deterministically.
func flatten(stationID int, meta historical.Metadata, data map[string]historical.DailyRecord) []Record {
	dates := make([]string, 0, len(data))
	for date := range data {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	now := time.Now().UTC()
	records := make([]Record, 0, len(dates))
	for _, date := range dates {
		records = append(records, Record{
			StationID:    stationID,
			Date:         date,
			Metadata:     meta,
			Measurements: data[date],
			ArchivedAt:   now,
		})
	}
	return records
}
