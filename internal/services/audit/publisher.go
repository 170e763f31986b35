// Package audit содержит публикацию событий аудита в RabbitMQ и запись
// потреблённых событий в журнал аудита.
package audit

import (
	"time"

	"github.com/streadway/amqp"

	"github.com/memora/intake/internal/models"
	"github.com/memora/intake/internal/rabbitmq"
)

// Publisher публикует события аудита в обменник audit.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher создаёт Publisher поверх открытого канала.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// Publish отправляет событие аудита. Время события проставляется,
// если оно не задано.
func (p *Publisher) Publish(event models.AuditEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	return rabbitmq.PublishMessage(p.ch, rabbitmq.Exchange, rabbitmq.AuditRoutingKey, event)
}
