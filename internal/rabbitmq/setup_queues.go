package rabbitmq

// QueueConfig связывает очередь с ключом маршрутизации обменника аудита.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// AuditQueueName — очередь, которую читает audit-logger.
const AuditQueueName = "audit.events"

// AuditRoutingKey — ключ маршрутизации событий аудита.
const AuditRoutingKey = "events"

// GetAuditQueues возвращает очереди журнала аудита.
func GetAuditQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: AuditQueueName, RoutingKey: AuditRoutingKey},
	}
}
