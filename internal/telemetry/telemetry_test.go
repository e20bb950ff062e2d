package telemetry

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_RecordAndFilter(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewMemoryRepository(func() time.Time { return start })

	require.NoError(t, r.RecordEvent(EventDayTick, EventMetadata{"day": 1}))
	require.NoError(t, r.RecordEvent(EventItemExpired, EventMetadata{"name": "Aged Brie"}))

	all, err := r.GetEvents(start, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 2, all[1].ID)
	assert.Equal(t, start, all[0].Timestamp)

	ticks, err := r.GetEvents(start, []EventType{EventDayTick})
	require.NoError(t, err)
	require.Len(t, ticks, 1)
	assert.JSONEq(t, `{"day":1}`, ticks[0].Metadata)

	later, err := r.GetEvents(start.Add(time.Hour), nil)
	require.NoError(t, err)
	assert.Empty(t, later)
}

func TestMemoryRepository_DefaultsToWallClock(t *testing.T) {
	before := time.Now()
	r := NewMemoryRepository(nil)
	require.NoError(t, r.RecordEvent(EventDayTick, nil))

	evs, err := r.GetEvents(before, nil)
	require.NoError(t, err)
	assert.Len(t, evs, 1)
}

func TestMemoryRepository_RejectsUnencodableMetadata(t *testing.T) {
	r := NewMemoryRepository(nil)
	assert.Error(t, r.RecordEvent(EventDayTick, EventMetadata{"bad": func() {}}))

	evs, _ := r.GetEvents(time.Time{}, nil)
	assert.Empty(t, evs)
}

func TestCalculateStats(t *testing.T) {
	events := []Event{
		{Type: EventDayTick, Metadata: `{"day":1}`},
		{Type: EventItemExpired, Metadata: `{"name":"Elixir of the Mongoose"}`},
		{Type: EventItemExpired, Metadata: `{"name":"Elixir of the Mongoose"}`},
		{Type: EventDayTick, Metadata: `{"day":2}`},
		{Type: EventItemExpired, Metadata: `not json`},
	}

	stats, err := CalculateStats(events, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2026-01-01", stats.Period)
	assert.Equal(t, 2, stats.DayTicks)
	assert.Equal(t, 2, stats.Expirations)
	assert.Equal(t, 3, stats.EventCounts[EventItemExpired])
	assert.Equal(t, map[string]int{"Elixir of the Mongoose": 2}, stats.ExpiredByName)
}

func TestStatsWrite(t *testing.T) {
	s := Stats{
		DayTicks:      3,
		Expirations:   2,
		ExpiredByName: map[string]int{"Elixir of the Mongoose": 1, "Aged Brie": 1},
	}

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))
	assert.Equal(t, "-------- stats --------\n"+
		"day ticks: 3\n"+
		"expirations: 2\n"+
		"expired: Aged Brie x1\n"+
		"expired: Elixir of the Mongoose x1\n", buf.String())
}
