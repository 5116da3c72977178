package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventGoodsCreated EventType = "goods_created"
	EventGoodsUpdated EventType = "goods_updated"
	EventGoodsDeleted EventType = "goods_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	GoodsID   string      `json:"goods_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// GoodsCreatedPayload payload.
type GoodsCreatedPayload struct {
	Name string `json:"name"`
}

// GoodsUpdatedPayload payload.
type GoodsUpdatedPayload struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// GoodsDeletedPayload payload.
type GoodsDeletedPayload struct {
	Name string `json:"name"`
}
