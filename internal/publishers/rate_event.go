package publishers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

// KafkaRatePublisher publishes rate update events to a Kafka topic, keyed
// by pair so consumers see per-pair ordering.
type KafkaRatePublisher struct {
	writer *kafka.Writer
}

func NewKafkaRatePublisher(brokers []string, topic string) *KafkaRatePublisher {
	return &KafkaRatePublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaRatePublisher) Publish(ctx context.Context, event models.RateEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Pair),
		Value: value,
		Time:  time.Now(),
	})
}

func (p *KafkaRatePublisher) Close() error {
	return p.writer.Close()
}
