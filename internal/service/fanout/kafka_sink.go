package fanout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
)

// KafkaSink публикует переходы в топик order.status.changed; его читает
// воркер нотификаций и автодиспатча. Ключ — order id, чтобы события одного
// заказа попадали в одну партицию и сохраняли порядок.
type KafkaSink struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaSink(producer sarama.SyncProducer, topic string) *KafkaSink {
	return &KafkaSink{
		producer: producer,
		topic:    topic,
	}
}

func (s *KafkaSink) Name() string {
	return "kafka"
}

func (s *KafkaSink) Deliver(_ context.Context, event entities.StatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send to %s: %w", s.topic, err)
	}
	return nil
}
