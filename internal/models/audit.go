package models

import "time"

// AuditEvent описывает событие аудита, публикуемое в очередь
// при административных операциях и приёме анкет.
type AuditEvent struct {
	ActorUID   string    `json:"actor_uid"`
	ActorName  string    `json:"actor_name"`
	Action     string    `json:"action"`      // created, updated, deleted, toggled, submitted
	EntityType string    `json:"entity_type"` // user, dictionary, wired_form, wireless_form
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AuditRecord представляет сохранённую строку журнала аудита.
type AuditRecord struct {
	ID         int
	ActorUID   string
	ActorName  string
	Action     string
	EntityType string
	EntityID   string
	OccurredAt time.Time
}
