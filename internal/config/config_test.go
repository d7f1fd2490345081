package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinookdata/ecclimate/pkg/ec"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STATION_IDS", "4333")

	cfg, err := Load()
	require.NoError(t, err)

	lastYear := time.Now().UTC().Year() - 1
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "climate-daily-records", cfg.KafkaTopic)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []int{4333}, cfg.StationIDs)
	assert.Equal(t, lastYear, cfg.StartYear)
	assert.Equal(t, lastYear, cfg.EndYear)
	assert.Equal(t, ec.English, cfg.Language)
	assert.Equal(t, 24*time.Hour, cfg.ArchiveInterval)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_TOPIC", "custom-topic")
	t.Setenv("STATION_IDS", "4333, 49568")
	t.Setenv("START_YEAR", "2018")
	t.Setenv("END_YEAR", "2020")
	t.Setenv("LANGUAGE", "french")
	t.Setenv("ARCHIVE_INTERVAL", "1h")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-topic", cfg.KafkaTopic)
	assert.Equal(t, []int{4333, 49568}, cfg.StationIDs)
	assert.Equal(t, 2018, cfg.StartYear)
	assert.Equal(t, 2020, cfg.EndYear)
	assert.Equal(t, ec.French, cfg.Language)
	assert.Equal(t, time.Hour, cfg.ArchiveInterval)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing station ids",
			env:     map[string]string{},
			wantErr: "STATION_IDS is required",
		},
		{
			name:    "non-numeric station id",
			env:     map[string]string{"STATION_IDS": "4333,abc"},
			wantErr: "STATION_IDS entry",
		},
		{
			name:    "negative station id",
			env:     map[string]string{"STATION_IDS": "-5"},
			wantErr: "STATION_IDS entry",
		},
		{
			name:    "start year too early",
			env:     map[string]string{"STATION_IDS": "4333", "START_YEAR": "1700", "END_YEAR": "1900"},
			wantErr: "START_YEAR",
		},
		{
			name:    "inverted year window",
			env:     map[string]string{"STATION_IDS": "4333", "START_YEAR": "2020", "END_YEAR": "2018"},
			wantErr: "before START_YEAR",
		},
		{
			name:    "bad language",
			env:     map[string]string{"STATION_IDS": "4333", "LANGUAGE": "german"},
			wantErr: "LANGUAGE",
		},
		{
			name:    "bad interval",
			env:     map[string]string{"STATION_IDS": "4333", "ARCHIVE_INTERVAL": "soon"},
			wantErr: "ARCHIVE_INTERVAL",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
