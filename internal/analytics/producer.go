package analytics

import (
	"context"
	"fmt"
	"time"

	"courtly/pkg/logger"

	"github.com/IBM/sarama"
)

// Publisher is the contract for emitting snapshot analytics events
type Publisher interface {
	PublishSnapshotComputed(ctx context.Context, event *SnapshotEvent) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka snapshot producer
type KafkaProducerConfig struct {
	Brokers          []string
	SnapshotsTopic   string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		SnapshotsTopic:   "availability-snapshots",
		RetryMax:         3,
		TimeoutMs:        10000,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000,
	}
}

// KafkaSnapshotProducer publishes snapshot events to Kafka
type KafkaSnapshotProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
	log      *logger.Logger
}

// NewKafkaSnapshotProducer creates a Kafka-backed snapshot event publisher
func NewKafkaSnapshotProducer(config *KafkaProducerConfig) (Publisher, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps a club's events ordered within one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaSnapshotProducer{
		producer: producer,
		config:   config,
		log:      logger.GetDefault(),
	}, nil
}

// PublishSnapshotComputed publishes one snapshot event
func (p *KafkaSnapshotProducer) PublishSnapshotComputed(ctx context.Context, event *SnapshotEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.config.SnapshotsTopic,
		Key:   sarama.StringEncoder(event.GetPartitionKey()),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(event.EventID)},
			{Key: []byte("club_id"), Value: []byte(event.ClubID)},
			{Key: []byte("date"), Value: []byte(event.Date)},
			{Key: []byte("computed_at"), Value: []byte(event.ComputedAt.Format(time.RFC3339))},
		},
		Timestamp: event.ComputedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send snapshot event to Kafka: %w", err)
	}

	p.log.Debug("snapshot event published",
		"topic", p.config.SnapshotsTopic,
		"partition", partition,
		"offset", offset,
		"club_id", event.ClubID,
		"date", event.Date)

	return nil
}

// Close closes the Kafka producer
func (p *KafkaSnapshotProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}
