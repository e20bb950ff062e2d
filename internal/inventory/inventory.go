package inventory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/item"
)

var ErrNotFound = errors.New("inventory entry not found")

// Entry is one stocked item.
type Entry struct {
	ID   string    `json:"id"`
	Item item.Item `json:"item"`
}

// Repository for stocked items
type Repository interface {
	Add(ctx context.Context, items ...item.Item) ([]Entry, error)
	Get(ctx context.Context, id string) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	ReplaceAll(ctx context.Context, entries []Entry) error
}

// MemoryRepo keeps entries in insertion order.
type MemoryRepo struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Entry
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		entries: make(map[string]Entry),
	}
}

func (r *MemoryRepo) Add(ctx context.Context, items ...item.Item) ([]Entry, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, 0, len(items))
	for _, it := range items {
		e := Entry{ID: uuid.NewString(), Item: it}
		r.entries[e.ID] = e
		r.order = append(r.order, e.ID)
		out = append(out, e)
	}
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Entry, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Entry, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out, nil
}

// ReplaceAll stores new state for existing entries. Nothing is written
// if any ID is unknown.
func (r *MemoryRepo) ReplaceAll(ctx context.Context, entries []Entry) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range entries {
		if _, ok := r.entries[e.ID]; !ok {
			return ErrNotFound
		}
	}
	for _, e := range entries {
		r.entries[e.ID] = e
	}
	return nil
}

// Items splits entries into their bare items, same order.
func Items(entries []Entry) []item.Item {
	out := make([]item.Item, len(entries))
	for i, e := range entries {
		out[i] = e.Item
	}
	return out
}
