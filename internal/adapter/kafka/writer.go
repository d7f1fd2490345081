package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/chinookdata/ecclimate/internal/archiver"
	"github.com/chinookdata/ecclimate/internal/config"
)

// Writer produces archived daily records to the sink Kafka topic.
// It implements archiver.Loader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes one station-year of daily records in
// a single WriteMessages call.
func (w *Writer) LoadBatch(ctx context.Context, records []archiver.Record) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(records))
	for i := range records {
		msg, err := serializeToMessage(records[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Record into a Kafka message. The key is
// station:date so a replayed station-year compacts onto the same keys.
func serializeToMessage(rec archiver.Record) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize daily record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(strconv.Itoa(rec.StationID) + ":" + rec.Date),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "station_id", Value: []byte(strconv.Itoa(rec.StationID))},
			{Key: "date", Value: []byte(rec.Date)},
			{Key: "archived_at", Value: []byte(rec.ArchivedAt.Format(time.RFC3339))},
		},
	}, nil
}
