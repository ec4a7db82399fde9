package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaSink mirrors bus events to a Kafka topic so other sessions and
// services can follow storefront changes as a feed.
type KafkaSink struct {
	writer *kafka.Writer
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (s *KafkaSink) Publish(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		return fmt.Errorf("kafka sink: marshal %s: %w", ev.Topic, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Topic),
		Value: data,
	}); err != nil {
		return fmt.Errorf("kafka sink: write %s: %w", ev.Topic, err)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
