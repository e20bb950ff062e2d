package telemetry

import "time"

type EventType string

const (
	EventDayTick     EventType = "day_tick"
	EventItemExpired EventType = "item_expired"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
