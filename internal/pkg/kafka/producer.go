package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
	"marketplace/internal/pkg/config"
)

// NewSyncProducer — sarama sync producer для fan-out. Идём синхронно:
// producer живёт в фоновом консьюмере очереди, латентность там не критична,
// а подтверждение от брокера упрощает учёт ошибок.
func NewSyncProducer(cfg *config.Kafka, brokers []string) (sarama.SyncProducer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create sync producer: %w", err)
	}
	return producer, nil
}
