// Package storage persists game state as TOML save files, one per slot,
// and maps saved item names back onto live catalog values.
package storage

import (
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ayabdnabi/virtual-pet/internal/catalog"
	"github.com/ayabdnabi/virtual-pet/internal/inventory"
	"github.com/ayabdnabi/virtual-pet/internal/pet"
	"github.com/ayabdnabi/virtual-pet/internal/platform/logger"
)

// GameState is the triple one save slot holds.
type GameState struct {
	Pet           *pet.Pet
	Inventory     *inventory.Inventory
	TotalPlayTime time.Duration
}

// record is the wire shape of a save file. The play-time scalar sits ahead
// of the sub-tables so the marshaled document stays valid TOML.
type record struct {
	TotalPlayTimeMs int64     `toml:"totalPlayTimeMs"`
	Pet             *pet.Pet  `toml:"pet"`
	Inventory       invRecord `toml:"inventory"`
}

// invRecord flattens the inventory's item-keyed maps to name-keyed tables.
// Items are identified by name alone, so the name round-trips and the rest
// of the item value is re-resolved from the catalog on load.
type invRecord struct {
	Coins   int             `toml:"coins"`
	Food    map[string]int  `toml:"food"`
	Toys    map[string]int  `toml:"toys"`
	Gifts   map[string]int  `toml:"gifts"`
	Outfits map[string]bool `toml:"outfits"`
}

// Encode renders a game state as a TOML document.
func Encode(gs GameState) ([]byte, error) {
	if gs.Pet == nil || gs.Inventory == nil {
		return nil, fmt.Errorf("save requires a pet and an inventory")
	}
	rec := record{
		TotalPlayTimeMs: gs.TotalPlayTime.Milliseconds(),
		Pet:             gs.Pet,
		Inventory: invRecord{
			Coins:   gs.Inventory.Coins(),
			Food:    make(map[string]int),
			Toys:    make(map[string]int),
			Gifts:   make(map[string]int),
			Outfits: gs.Inventory.Outfits(),
		},
	}
	for f, n := range gs.Inventory.Foods() {
		rec.Inventory.Food[f.Name] = n
	}
	for t, n := range gs.Inventory.Toys() {
		rec.Inventory.Toys[t.Name] = n
	}
	for g, n := range gs.Inventory.Gifts() {
		rec.Inventory.Gifts[g.Name] = n
	}

	data, err := toml.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal save: %w", err)
	}
	return data, nil
}

// Decode parses a save document, resolving saved item names against cat.
// An entry whose name the catalog no longer knows is dropped with a
// warning so one stale item cannot sink the whole save.
func Decode(data []byte, cat *catalog.Catalog, log logger.Logger) (GameState, error) {
	if log == nil {
		log = logger.Discard()
	}
	var rec record
	if err := toml.Unmarshal(data, &rec); err != nil {
		return GameState{}, fmt.Errorf("failed to parse save: %w", err)
	}
	if rec.Pet == nil {
		return GameState{}, fmt.Errorf("save has no pet table")
	}

	foods := make(map[catalog.Food]int, len(rec.Inventory.Food))
	for name, n := range rec.Inventory.Food {
		f, ok := cat.Food(name)
		if !ok {
			log.Warn("dropping unknown food from save", map[string]any{"item": name})
			continue
		}
		foods[f] = n
	}
	toys := make(map[catalog.Toy]int, len(rec.Inventory.Toys))
	for name, n := range rec.Inventory.Toys {
		t, ok := cat.Toy(name)
		if !ok {
			log.Warn("dropping unknown toy from save", map[string]any{"item": name})
			continue
		}
		toys[t] = n
	}
	gifts := make(map[catalog.Gift]int, len(rec.Inventory.Gifts))
	for name, n := range rec.Inventory.Gifts {
		g, ok := cat.Gift(name)
		if !ok {
			log.Warn("dropping unknown gift from save", map[string]any{"item": name})
			continue
		}
		gifts[g] = n
	}

	return GameState{
		Pet:           rec.Pet,
		Inventory:     inventory.Restore(rec.Inventory.Coins, foods, toys, gifts, rec.Inventory.Outfits, log),
		TotalPlayTime: time.Duration(rec.TotalPlayTimeMs) * time.Millisecond,
	}, nil
}
