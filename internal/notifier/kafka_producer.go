package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Kumarsatwik/evaluv/internal/util"
	"github.com/segmentio/kafka-go"
)

// KafkaNotifier публикует события о вакансиях для внешнего сервиса
// эмбеддингов. События fire-and-forget: доставка не подтверждается
// бизнес-логике, неудача не откатывает мутацию вакансии.
type KafkaNotifier struct {
	writer *kafka.Writer
}

type embeddingEvent struct {
	Type       string `json:"type"` // job_upserted, job_deleted
	JobUUID    string `json:"job_uuid"`
	OccurredAt int64  `json:"occurred_at"`
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		Async:        true,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaNotifier{writer: writer}
}

func (n *KafkaNotifier) JobUpserted(ctx context.Context, jobUUID string) error {
	return n.send(ctx, "job_upserted", jobUUID)
}

func (n *KafkaNotifier) JobDeleted(ctx context.Context, jobUUID string) error {
	return n.send(ctx, "job_deleted", jobUUID)
}

func (n *KafkaNotifier) send(ctx context.Context, eventType string, jobUUID string) error {
	event := embeddingEvent{
		Type:       eventType,
		JobUUID:    jobUUID,
		OccurredAt: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return util.LogError("ошибка сериализации события", err)
	}

	msg := kafka.Message{
		Key:   []byte(jobUUID),
		Value: data,
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return util.LogError("не удалось отправить событие в Kafka", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
