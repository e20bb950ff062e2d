package shop

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/inventory"
	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/item"
	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/telemetry"
)

type Shop struct {
	Items   inventory.Repository
	Catalog item.Catalog
	Events  telemetry.Repository
	Clock   Clock
	Logger  *log.Logger

	day int
}

type DayTickResult struct {
	Day       int       `json:"day"`
	At        time.Time `json:"at"`
	Items     int       `json:"items"`
	Expired   []string  `json:"expired"`
	Worthless int       `json:"worthless"`
}

// Day is the number of ticks run so far.
func (s *Shop) Day() int { return s.day }

// DayTick ages the whole stock by one day.
func (s *Shop) DayTick(ctx context.Context) (DayTickResult, error) {
	if s.Items == nil {
		return DayTickResult{}, fmt.Errorf("inventory repository not initialized")
	}

	entries, err := s.Items.List(ctx)
	if err != nil {
		return DayTickResult{}, fmt.Errorf("failed to list items: %w", err)
	}

	cat := s.Catalog
	if cat == nil {
		cat = item.DefaultCatalog()
	}

	items := inventory.Items(entries)
	before := make([]item.Item, len(items))
	copy(before, items)

	cat.AdvanceOneDay(items)

	expired := make([]string, 0)
	worthless := 0
	for i := range entries {
		entries[i].Item = items[i]
		if cat.Classify(items[i].Name) == item.Legendary {
			continue
		}
		if before[i].SellIn >= 0 && items[i].SellIn < 0 {
			expired = append(expired, items[i].Name)
		}
		if items[i].Quality == item.MinQuality {
			worthless++
		}
	}

	if err := s.Items.ReplaceAll(ctx, entries); err != nil {
		return DayTickResult{}, fmt.Errorf("failed to store items after day tick: %w", err)
	}

	s.day++
	res := DayTickResult{
		Day:       s.day,
		At:        s.now(),
		Items:     len(entries),
		Expired:   expired,
		Worthless: worthless,
	}

	s.record(res)
	s.logger().Printf("day %d: %d items, %d expired, %d worthless", res.Day, res.Items, len(res.Expired), res.Worthless)

	return res, nil
}

// record is best effort; a telemetry failure never fails the tick.
func (s *Shop) record(res DayTickResult) {
	if s.Events == nil {
		return
	}
	if err := s.Events.RecordEvent(telemetry.EventDayTick, telemetry.EventMetadata{
		"day":       res.Day,
		"items":     res.Items,
		"expired":   len(res.Expired),
		"worthless": res.Worthless,
	}); err != nil {
		s.logger().Printf("record day tick: %v", err)
	}
	for _, name := range res.Expired {
		if err := s.Events.RecordEvent(telemetry.EventItemExpired, telemetry.EventMetadata{
			"day":  res.Day,
			"name": name,
		}); err != nil {
			s.logger().Printf("record expiry of %q: %v", name, err)
		}
	}
}

func (s *Shop) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

func (s *Shop) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return s.Logger
}
