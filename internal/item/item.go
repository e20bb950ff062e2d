package item

import (
	"fmt"
	"math"
)

const (
	MinQuality = 0
	MaxQuality = 50
)

type Item struct {
	Name    string `json:"name" yaml:"name"`
	SellIn  int    `json:"sell_in" yaml:"sell_in"`
	Quality int    `json:"quality" yaml:"quality"`
}

func (it Item) String() string {
	return fmt.Sprintf("%s, %d, %d", it.Name, it.SellIn, it.Quality)
}

// AdvanceOneDay ages every item by one day using the default catalog.
func AdvanceOneDay(items []Item) {
	DefaultCatalog().AdvanceOneDay(items)
}

// AdvanceOneDay ages every item in place by exactly one day.
// Items are independent; names are never touched.
func (c Catalog) AdvanceOneDay(items []Item) {
	for i := range items {
		it := &items[i]
		it.SellIn, it.Quality = Step(c.Classify(it.Name), it.SellIn, it.Quality)
	}
}

// Step returns the next-day sellIn and quality for an item of kind k.
//
// The base delta is picked from sellIn before it is decremented. Once the
// decremented sellIn is negative the item is past its date on this very tick:
// standard and appreciating items move at double rate and event tickets are
// worth nothing. Legendary items never change.
func Step(k Kind, sellIn, quality int) (int, int) {
	if k == Legendary {
		return sellIn, quality
	}

	var delta int
	switch k {
	case Appreciating:
		delta = 1
	case EventTicket:
		switch {
		case sellIn > 10:
			delta = 1
		case sellIn > 5:
			delta = 2
		default:
			delta = 3
		}
	default:
		delta = -1
	}

	if sellIn > math.MinInt {
		sellIn--
	}

	if sellIn < 0 {
		if k == EventTicket {
			return sellIn, MinQuality
		}
		delta *= 2
	}

	return sellIn, clamp(addSat(quality, delta))
}

func clamp(q int) int {
	if q < MinQuality {
		return MinQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}

// addSat adds a small delta without wrapping at the int limits.
func addSat(q, delta int) int {
	if delta > 0 && q > math.MaxInt-delta {
		return math.MaxInt
	}
	if delta < 0 && q < math.MinInt-delta {
		return math.MinInt
	}
	return q + delta
}
