package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	"github.com/SscSPs/customer_ledger_app/internal/core/ports"
	"github.com/segmentio/kafka-go"
)

// Publisher writes ledger entry events to a single Kafka topic.
// Messages are keyed by customer so a customer's events stay ordered within a partition.
type Publisher struct {
	writer *kafka.Writer
}

var _ ports.EventPublisher = (*Publisher)(nil)

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			WriteTimeout:           5 * time.Second,
			AllowAutoTopicCreation: true,
		},
	}
}

func buildMessage(event domain.EntryEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode %s event: %w", event.Event, err)
	}
	return kafka.Message{
		Key:   []byte(event.CustomerID),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.Event)},
		},
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, event domain.EntryEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event for entry %s: %w", event.Event, event.EntryID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
