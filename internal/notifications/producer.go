package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"haven/internal/shared/config"

	"github.com/IBM/sarama"
)

// Producer interface defines the contract for publishing reservation events
type Producer interface {
	PublishReservationConfirmed(ctx context.Context, event *ReservationEvent) error
	Close() error
}

// KafkaProducer publishes reservation events to Kafka
type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaProducer creates a new Kafka reservation event producer
func NewKafkaProducer(cfg config.KafkaConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keeps one reservation's events ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("📤 Kafka reservation event producer created successfully")
	return &KafkaProducer{
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

// PublishReservationConfirmed publishes a confirmed-reservation event
func (p *KafkaProducer) PublishReservationConfirmed(ctx context.Context, event *ReservationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	event.Type = EventTypeReservationConfirmed
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal reservation event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.PartitionKey()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish reservation event: %w", err)
	}

	log.Printf("📨 Reservation event published: ref=%s partition=%d offset=%d",
		event.ReservationRef, partition, offset)
	return nil
}

// Close shuts down the producer
func (p *KafkaProducer) Close() error {
	return p.producer.Close()
}

// noopProducer drops events; used when Kafka is not configured.
type noopProducer struct{}

// NewNoopProducer creates a producer that discards every event.
func NewNoopProducer() Producer {
	return noopProducer{}
}

func (noopProducer) PublishReservationConfirmed(context.Context, *ReservationEvent) error {
	return nil
}

func (noopProducer) Close() error {
	return nil
}
