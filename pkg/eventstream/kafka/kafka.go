// Package kafka publishes ingestion events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/neviswealth/search-service/pkg/eventstream"
)

// Config holds the Kafka connection settings.
type Config struct {
	Brokers []string
	Topic   string
}

// Publisher writes events as JSON messages keyed by document ID, so all
// events for one document land on the same partition.
type Publisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewPublisher(config Config, logger *zap.Logger) *Publisher {
	writer := &kafkago.Writer{
		Addr:     kafkago.TCP(config.Brokers...),
		Topic:    config.Topic,
		Balancer: &kafkago.LeastBytes{},
	}
	return &Publisher{writer: writer, logger: logger}
}

func (p *Publisher) PublishDocumentIngested(ctx context.Context, event *eventstream.DocumentIngestedEvent) error {
	if event == nil {
		return eventstream.ErrNilEvent
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	message := kafkago.Message{
		Key:   []byte(event.DocumentID.String()),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("writing event to kafka: %w", err)
	}

	p.logger.Debug("published ingestion event",
		zap.String("event_id", event.EventID.String()),
		zap.String("document_id", event.DocumentID.String()))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

var _ eventstream.Publisher = (*Publisher)(nil)
