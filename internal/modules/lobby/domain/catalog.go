package domain

import "sort"

// DefaultPoolKey is the reference-table set every new lobby starts with.
const DefaultPoolKey = "spyfall1"

// LocationCard is one entry of the external reference table: a location and
// its fixed, ordered role list.
type LocationCard struct {
	Location string   `json:"location"`
	Roles    []string `json:"roles"`
}

// Catalog is the immutable reference table, keyed by set. Loaded once at
// startup and never mutated by the core.
type Catalog map[string][]LocationCard

// Resolve unions the sets named by pool into a candidate list. Cards without
// roles are excluded so role cycling always has a non-empty list to walk.
// An empty union falls back to the full catalog, which is non-empty by
// construction.
func (c Catalog) Resolve(pool []string) []LocationCard {
	var cards []LocationCard
	for _, key := range pool {
		for _, card := range c[key] {
			if len(card.Roles) > 0 {
				cards = append(cards, card)
			}
		}
	}

	if len(cards) > 0 {
		return cards
	}

	// Deterministic order so a seeded draw stays reproducible.
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, card := range c[key] {
			if len(card.Roles) > 0 {
				cards = append(cards, card)
			}
		}
	}
	return cards
}
