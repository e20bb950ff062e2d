package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/item"
)

const DefaultDays = 2

var (
	ErrUnknownKind = errors.New("unknown item kind")
	ErrInvalidDays = errors.New("days must not be negative")
)

type Config struct {
	Version    string         `yaml:"version" json:"version"`
	Simulation Simulation     `yaml:"simulation" json:"simulation"`
	Catalog    []CatalogEntry `yaml:"catalog" json:"catalog"`
	Items      []item.Item    `yaml:"items" json:"items"`
}

type Simulation struct {
	Days int `yaml:"days" json:"days"`
}

// CatalogEntry gives a special rule to an item name beyond the built-in ones.
type CatalogEntry struct {
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind" json:"kind"`
}

// FixtureItems is the stock the shop opens with when no items are configured.
func FixtureItems() []item.Item {
	return []item.Item{
		{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
		{Name: item.NameAgedBrie, SellIn: 2, Quality: 0},
		{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
		{Name: item.NameSulfuras, SellIn: 0, Quality: 80},
		{Name: item.NameSulfuras, SellIn: -1, Quality: 80},
		{Name: item.NameBackstage, SellIn: 15, Quality: 20},
		{Name: item.NameBackstage, SellIn: 10, Quality: 49},
		{Name: item.NameBackstage, SellIn: 5, Quality: 49},
		{Name: "Conjured Mana Cake", SellIn: 3, Quality: 6},
	}
}

// ApplyDefaults fills in the fixture stock. Days are defaulted by Load and
// Default, since zero days is a valid request.
func (c *Config) ApplyDefaults() {
	if len(c.Items) == 0 {
		c.Items = FixtureItems()
	}
}

func (c *Config) Validate() error {
	if c.Simulation.Days < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDays, c.Simulation.Days)
	}
	return nil
}

// Default is the configuration used when no file is given.
func Default() *Config {
	c := &Config{Version: "1", Simulation: Simulation{Days: DefaultDays}}
	c.ApplyDefaults()
	return c
}

// BuildCatalog extends the built-in catalog with the configured entries.
func (c *Config) BuildCatalog() (item.Catalog, error) {
	cat := item.DefaultCatalog()
	for _, e := range c.Catalog {
		k, ok := item.ParseKind(e.Kind)
		if !ok {
			return nil, fmt.Errorf("catalog entry %q: %w: %q", e.Name, ErrUnknownKind, e.Kind)
		}
		cat = cat.With(e.Name, k)
	}
	return cat, nil
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Keys left out of the file keep these values.
	r := Config{Simulation: Simulation{Days: DefaultDays}}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.ApplyDefaults()
	return &r, nil
}
