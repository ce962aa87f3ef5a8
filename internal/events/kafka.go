package events

import (
	"context"
	"encoding/json"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"

	kafkautils "github.com/AnasIqbal56/Banking-App/pkg/kafka"
)

type KafkaConfig struct {
	Brokers    string
	Topic      string
	Partitions uint32
}

type KafkaPublisher struct {
	logger   *zap.Logger
	producer *kafka.Producer
	cnf      KafkaConfig
}

// NewKafkaPublisher creates the transaction events topic and a producer.
func NewKafkaPublisher(logger *zap.Logger, ctx context.Context, cnf KafkaConfig) (Publisher, error) {
	topicConfig := kafkautils.KafkaConfig{
		BootstrapServers: cnf.Brokers,
		Topics: []kafkautils.TopicConfig{
			{
				Topic:             cnf.Topic,
				NumPartitions:     int(cnf.Partitions),
				ReplicationFactor: 1,
				Config: map[string]string{
					"cleanup.policy": "delete",
				},
			},
		},
	}
	if err := kafkautils.InitKafkaTopics(logger, ctx, topicConfig); err != nil {
		return nil, err
	}

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  cnf.Brokers, // Kafka broker(s)
		"acks":               "all",       // Wait for all replicas
		"enable.idempotence": "true",      // Ensure messages are not sent twice
		"retries":            "1",         // Built-in retry mechanism
	})
	if err != nil {
		return nil, err
	}
	logger.Info("kafka producer created successfully", zap.String("brokers", cnf.Brokers))
	go handleDeliveryReports(logger, p) // Async error handling
	return &KafkaPublisher{
		logger:   logger,
		producer: p,
		cnf:      cnf,
	}, nil
}

func (k *KafkaPublisher) PublishTransaction(event TransactionCompleted) error {
	// Serialize the event payload to JSON for Kafka transport
	msgBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Deterministic partitioning by account ID keeps per-account ordering
	partition := int32(event.AccountID.ID() % k.cnf.Partitions)

	// Produce asynchronously; delivery results are handled by handleDeliveryReports
	return k.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &k.cnf.Topic,
			Partition: partition,
		},
		Key:   event.AccountID[:],
		Value: msgBytes,
	}, nil)
}

func (k *KafkaPublisher) Close() {
	k.producer.Close()
}

func handleDeliveryReports(logger *zap.Logger, p *kafka.Producer) {
	for e := range p.Events() {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				logger.Error("failed to publish message", zap.Error(ev.TopicPartition.Error))
			}
		}
	}
}
