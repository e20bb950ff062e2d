package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"
)

type Stats struct {
	Period        string            `json:"period"`
	EventCounts   map[EventType]int `json:"event_counts"`
	DayTicks      int               `json:"day_ticks"`
	Expirations   int               `json:"expirations"`
	ExpiredByName map[string]int    `json:"expired_by_name"`
}

// CalculateStats summarises shop events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:        since.Format("2006-01-02"),
		EventCounts:   make(map[EventType]int),
		ExpiredByName: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventDayTick:
			stats.DayTicks++
		case EventItemExpired:
			stats.Expirations++
			if name, ok := metadata["name"].(string); ok {
				stats.ExpiredByName[name]++
			}
		}
	}

	return stats, nil
}

// Write prints the stats block shown after a simulation. Names are sorted.
func (s Stats) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "-------- stats --------\nday ticks: %d\nexpirations: %d\n", s.DayTicks, s.Expirations); err != nil {
		return err
	}

	names := make([]string, 0, len(s.ExpiredByName))
	for name := range s.ExpiredByName {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "expired: %s x%d\n", name, s.ExpiredByName[name]); err != nil {
			return err
		}
	}
	return nil
}
