package item

// Kind selects which aging rule applies to an item.
type Kind string

const (
	Standard     Kind = "standard"
	Legendary    Kind = "legendary"
	Appreciating Kind = "appreciating"
	EventTicket  Kind = "event_ticket"
)

// Names the shop has always stocked with special rules.
const (
	NameSulfuras  = "Sulfuras, Hand of Ragnaros"
	NameAgedBrie  = "Aged Brie"
	NameBackstage = "Backstage passes to a TAFKAL80ETC concert"
)

// ParseKind accepts the lower-case kind names used in catalog files.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case Standard, Legendary, Appreciating, EventTicket:
		return Kind(s), true
	}
	return "", false
}

// Catalog maps item names to their kind. Unknown names are Standard.
type Catalog map[string]Kind

func DefaultCatalog() Catalog {
	return Catalog{
		NameSulfuras:  Legendary,
		NameAgedBrie:  Appreciating,
		NameBackstage: EventTicket,
	}
}

// With returns a copy of c with name mapped to k.
func (c Catalog) With(name string, k Kind) Catalog {
	out := make(Catalog, len(c)+1)
	for n, kind := range c {
		out[n] = kind
	}
	out[name] = k
	return out
}

func (c Catalog) Classify(name string) Kind {
	if k, ok := c[name]; ok {
		return k
	}
	return Standard
}
