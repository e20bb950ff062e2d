package telemetry

import (
	"encoding/json"
	"slices"
	"sync"
	"time"
)

// Repository stores shop events.
type Repository interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
}

// MemoryRepository keeps events for one process run.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []Event
	now    func() time.Time
}

// NewMemoryRepository stamps events with now; nil means wall time.
func NewMemoryRepository(now func() time.Time) *MemoryRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryRepository{now: now}
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Event{
		ID:        len(r.events) + 1,
		Type:      eventType,
		Timestamp: r.now(),
		Metadata:  string(raw),
	})
	return nil
}

// GetEvents returns events stamped at or after since. An empty type list
// matches every type.
func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Event, 0, len(r.events))
	for _, ev := range r.events {
		if ev.Timestamp.Before(since) {
			continue
		}
		if len(eventTypes) > 0 && !slices.Contains(eventTypes, ev.Type) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}
