// Package output exports engine results to files, object storage or Kafka.
package output

import (
	"context"
	"fmt"
	"log"

	"github.com/chrisdamba/foodroadtrip/internal/cloudwriter"
	"github.com/chrisdamba/foodroadtrip/internal/models"
)

const (
	TopicStops   = models.TopicItineraryStops
	TopicSummary = models.TopicTripSummary
	TopicPoints  = models.TopicVisualizationPoint
)

// Destination receives serialized events, one topic per event kind.
type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// NewDestination builds the destination named by cfg.Output.Destination.
func NewDestination(ctx context.Context, cfg *models.Config) (Destination, error) {
	switch cfg.Output.Destination {
	case "", "console":
		return &ConsoleOutput{}, nil
	case "json":
		return NewJSONOutput(cfg.Output.Path, cfg.Output.Folder), nil
	case "csv":
		return NewCSVOutput(cfg.Output.Path, cfg.Output.Folder), nil
	case "parquet":
		var factory cloudwriter.CloudWriterFactory
		switch cfg.Output.CloudStorage.Provider {
		case "", "local":
		case "s3":
			f, err := cloudwriter.NewS3WriterFactory(ctx, cfg.Output.CloudStorage.Region)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
			factory = f
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.Output.CloudStorage.Provider)
		}
		return NewParquetOutput(cfg.Output.Path, cfg.Output.Folder, factory, cfg.Output.CloudStorage.BucketName), nil
	case "kafka":
		out, err := NewKafkaOutput(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		log.Printf("Kafka output created with brokers %s", cfg.Kafka.BrokerList)
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported output destination: %s", cfg.Output.Destination)
	}
}
