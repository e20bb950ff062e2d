package shop

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/inventory"
	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/item"
	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/telemetry"
)

type failingRepo struct {
	inventory.Repository
}

func (failingRepo) List(context.Context) ([]inventory.Entry, error) {
	return nil, errors.New("boom")
}

func TestDayTick(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	clock := &stepClock{t: start}

	repo := inventory.NewMemoryRepo()
	events := telemetry.NewMemoryRepository(clock.Now)
	var logs bytes.Buffer

	_, err := repo.Add(ctx,
		item.Item{Name: "Elixir of the Mongoose", SellIn: 0, Quality: 10},
		item.Item{Name: item.NameAgedBrie, SellIn: 2, Quality: 0},
		item.Item{Name: item.NameSulfuras, SellIn: 0, Quality: 80},
		item.Item{Name: item.NameBackstage, SellIn: 0, Quality: 40},
	)
	require.NoError(t, err)

	s := &Shop{
		Items:  repo,
		Events: events,
		Clock:  clock,
		Logger: log.New(&logs, "", 0),
	}

	t.Run("first tick ages every item", func(t *testing.T) {
		res, err := s.DayTick(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, res.Day)
		assert.Equal(t, start, res.At)
		assert.Equal(t, 4, res.Items)
		assert.Equal(t, []string{"Elixir of the Mongoose", item.NameBackstage}, res.Expired)
		assert.Equal(t, 1, res.Worthless)

		list, _ := repo.List(ctx)
		assert.Equal(t, []item.Item{
			{Name: "Elixir of the Mongoose", SellIn: -1, Quality: 8},
			{Name: item.NameAgedBrie, SellIn: 1, Quality: 1},
			{Name: item.NameSulfuras, SellIn: 0, Quality: 80},
			{Name: item.NameBackstage, SellIn: -1, Quality: 0},
		}, inventory.Items(list))
		assert.Contains(t, logs.String(), "day 1: 4 items, 2 expired, 1 worthless")
	})

	t.Run("expiry is reported once", func(t *testing.T) {
		clock.nextDay()

		res, err := s.DayTick(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, res.Day)
		assert.Equal(t, start.AddDate(0, 0, 1), res.At)
		assert.Empty(t, res.Expired)
		assert.Equal(t, 2, s.Day())
	})

	t.Run("events feed stats", func(t *testing.T) {
		evs, err := events.GetEvents(start, nil)
		require.NoError(t, err)

		stats, err := telemetry.CalculateStats(evs, start)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.DayTicks)
		assert.Equal(t, 2, stats.Expirations)
		assert.Equal(t, 1, stats.ExpiredByName[item.NameBackstage])
	})
}

func TestDayTick_CustomCatalog(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewMemoryRepo()
	_, _ = repo.Add(ctx, item.Item{Name: "Vintage Port", SellIn: 3, Quality: 10})

	s := &Shop{Items: repo, Catalog: item.DefaultCatalog().With("Vintage Port", item.Appreciating)}
	_, err := s.DayTick(ctx)
	require.NoError(t, err)

	list, _ := repo.List(ctx)
	assert.Equal(t, 11, list[0].Item.Quality)
}

func TestDayTick_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := (&Shop{}).DayTick(ctx)
	assert.Error(t, err)

	s := &Shop{Items: failingRepo{}}
	_, err = s.DayTick(ctx)
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, 0, s.Day())
}
