package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chinookdata/ecclimate/pkg/ec"
)

// Config holds all archiver settings, populated from environment variables.
type Config struct {
	KafkaBrokers []string
	KafkaTopic   string
	HTTPAddr     string
	LogLevel     string
	LogFormat    string

	ShutdownTimeout time.Duration

	// StationIDs are the portal station identifiers to archive.
	StationIDs []int

	// StartYear..EndYear is the inclusive year window fetched each cycle.
	StartYear int
	EndYear   int

	Language ec.Language

	// ArchiveInterval is the pause between archive cycles.
	ArchiveInterval time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	interval, err := parseDuration("ARCHIVE_INTERVAL", "24h")
	if err != nil {
		return nil, err
	}

	stationIDs, err := parseStationIDs(os.Getenv("STATION_IDS"))
	if err != nil {
		return nil, err
	}

	// Default to the most recent completed year: the portal backfills the
	// current year continuously, so archiving it on a daily interval would
	// republish partial months.
	lastYear := time.Now().UTC().Year() - 1
	startYear, err := parseInt("START_YEAR", lastYear)
	if err != nil {
		return nil, err
	}
	endYear, err := parseInt("END_YEAR", lastYear)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		KafkaBrokers:    parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:      envOrDefault("KAFKA_TOPIC", "climate-daily-records"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		StationIDs:      stationIDs,
		StartYear:       startYear,
		EndYear:         endYear,
		Language:        ec.Language(envOrDefault("LANGUAGE", string(ec.English))),
		ArchiveInterval: interval,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required")
	}
	if len(cfg.StationIDs) == 0 {
		return nil, errors.New("STATION_IDS is required")
	}
	if cfg.StartYear < 1840 {
		return nil, fmt.Errorf("START_YEAR must be 1840 or later, got %d", cfg.StartYear)
	}
	if cfg.EndYear < cfg.StartYear {
		return nil, fmt.Errorf("END_YEAR %d is before START_YEAR %d", cfg.EndYear, cfg.StartYear)
	}
	if !cfg.Language.Valid() {
		return nil, fmt.Errorf("invalid LANGUAGE %q", cfg.Language)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func parseStationIDs(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid STATION_IDS entry %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return v, nil
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}
