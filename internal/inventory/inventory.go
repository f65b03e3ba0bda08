// Package inventory tracks the player's coins and owned items, and carries
// the care actions that spend or earn them.
package inventory

import (
	"github.com/ayabdnabi/virtual-pet/internal/catalog"
	"github.com/ayabdnabi/virtual-pet/internal/pet"
	"github.com/ayabdnabi/virtual-pet/internal/platform/logger"
)

// Inventory is the player's holdings. Food, toy, and gift counts key off
// catalog item values, so two entries collide exactly when their names do.
// Outfits are binary-owned: present in the map means owned, and the value
// flips to false while the outfit is worn.
//
// Coins move only through the action methods here and the catalog purchase
// path; the balance never goes negative.
type Inventory struct {
	coins   int
	foods   map[catalog.Food]int
	toys    map[catalog.Toy]int
	gifts   map[catalog.Gift]int
	outfits map[string]bool

	log logger.Logger
}

// New builds the starting inventory for a fresh game: StartingCoins plus
// the seed food and toy drawn from the catalog. A catalog missing a seed
// item is logged and skipped, not fatal.
func New(cat *catalog.Catalog, log logger.Logger) *Inventory {
	if log == nil {
		log = logger.Discard()
	}
	v := &Inventory{
		coins:   StartingCoins,
		foods:   make(map[catalog.Food]int),
		toys:    make(map[catalog.Toy]int),
		gifts:   make(map[catalog.Gift]int),
		outfits: make(map[string]bool),
		log:     log,
	}

	if f, ok := cat.Food(seedFoodName); ok {
		v.AddFood(f, seedFoodQty)
	} else {
		log.Error("seed food missing from catalog", map[string]any{"item": seedFoodName})
	}
	if t, ok := cat.Toy(seedToyName); ok {
		v.AddToy(t, seedToyQty)
	} else {
		log.Error("seed toy missing from catalog", map[string]any{"item": seedToyName})
	}
	return v
}

// Restore rebuilds an inventory from persisted state. Maps are copied; nil
// maps are treated as empty.
func Restore(coins int, foods map[catalog.Food]int, toys map[catalog.Toy]int, gifts map[catalog.Gift]int, outfits map[string]bool, log logger.Logger) *Inventory {
	if log == nil {
		log = logger.Discard()
	}
	v := &Inventory{
		coins:   coins,
		foods:   make(map[catalog.Food]int, len(foods)),
		toys:    make(map[catalog.Toy]int, len(toys)),
		gifts:   make(map[catalog.Gift]int, len(gifts)),
		outfits: make(map[string]bool, len(outfits)),
		log:     log,
	}
	for f, n := range foods {
		v.foods[f] = n
	}
	for t, n := range toys {
		v.toys[t] = n
	}
	for g, n := range gifts {
		v.gifts[g] = n
	}
	for name, avail := range outfits {
		v.outfits[name] = avail
	}
	return v
}

func (v *Inventory) Coins() int {
	return v.coins
}

// Debit removes amount from the balance, refusing any debit that would
// drive it negative.
func (v *Inventory) Debit(amount int) bool {
	if amount > v.coins {
		return false
	}
	v.coins -= amount
	return true
}

func (v *Inventory) credit(amount int) {
	v.coins += amount
}

// Additive item receipt. Non-positive quantities are ignored so counts can
// never be driven below zero through delivery.

func (v *Inventory) AddFood(f catalog.Food, qty int) {
	if qty <= 0 {
		return
	}
	v.foods[f] += qty
}

func (v *Inventory) AddToy(t catalog.Toy, qty int) {
	if qty <= 0 {
		return
	}
	v.toys[t] += qty
}

func (v *Inventory) AddGift(g catalog.Gift, qty int) {
	if qty <= 0 {
		return
	}
	v.gifts[g] += qty
}

// AddOutfit marks an outfit owned and available. Re-adding an owned outfit
// is a logged no-op, whatever its availability; outfits are not counted.
func (v *Inventory) AddOutfit(name string) {
	if _, owned := v.outfits[name]; owned {
		v.log.Info("outfit already owned", map[string]any{"outfit": name})
		return
	}
	v.outfits[name] = true
}

// Counts default to zero for items never held.

func (v *Inventory) FoodCount(f catalog.Food) int {
	return v.foods[f]
}

func (v *Inventory) ToyCount(t catalog.Toy) int {
	return v.toys[t]
}

func (v *Inventory) GiftCount(g catalog.Gift) int {
	return v.gifts[g]
}

func (v *Inventory) HasToy(t catalog.Toy) bool {
	return v.toys[t] > 0
}

// OwnsOutfit reports whether the outfit is owned and currently available
// (not worn).
func (v *Inventory) OwnsOutfit(name string) bool {
	return v.outfits[name]
}

// ConsumeFood removes one unit of the food, failing when none are held.
func (v *Inventory) ConsumeFood(f catalog.Food) bool {
	if v.foods[f] <= 0 {
		return false
	}
	v.foods[f]--
	return true
}

// Feed consumes one unit of the food, raises the pet's fullness by the
// food's value, and refunds a quarter of the food's price, rounded down.
func (v *Inventory) Feed(p *pet.Pet, f catalog.Food) bool {
	if !v.ConsumeFood(f) {
		return false
	}
	p.IncreaseFullness(f.Fullness)
	v.credit(f.Price * feedRefundPercent / 100)
	return true
}

// Play entertains the pet with a toy the player owns. Toys are reusable;
// the action is gated by the pet's play cooldown. now is in the same unit
// as the pet's timers (seconds).
func (v *Inventory) Play(p *pet.Pet, t catalog.Toy, now int) bool {
	if !v.HasToy(t) {
		return false
	}
	if now-p.LastPlay < p.PlayCooldown {
		return false
	}
	p.IncreaseHappiness(playHappiness)
	p.LastPlay = now
	v.credit(playReward)
	return true
}

// VisitVet heals the pet if the vet cooldown has elapsed, updating the
// visit timestamp and paying the care reward.
func (v *Inventory) VisitVet(p *pet.Pet, now int) bool {
	if now-p.LastVetVisit < p.VetCooldown {
		return false
	}
	p.IncreaseHealth(vetHealthBoost)
	p.LastVetVisit = now
	v.credit(vetReward)
	return true
}

// Exercise never fails: it tires and hungers the pet a little in exchange
// for health and coins.
func (v *Inventory) Exercise(p *pet.Pet) {
	p.DecreaseSleep(exerciseDrain)
	p.DecreaseFullness(exerciseDrain)
	p.IncreaseHealth(exerciseHealthBoost)
	v.credit(exerciseReward)
}

// WearBonus pays out the dress-up bonus: the pet's happiness jumps to max
// and the player earns coins for styling it.
func (v *Inventory) WearBonus(p *pet.Pet) {
	p.IncreaseHappiness(p.MaxHappiness)
	v.credit(wearReward)
}

// EquipOutfit dresses the pet in an owned outfit. The pet's own outfit
// rule decides compatibility before any state moves, so a mismatch leaves
// the previous outfit equipped and every availability flag untouched. Any
// outfit previously worn returns to the available pool.
func (v *Inventory) EquipOutfit(name string, p *pet.Pet) bool {
	if !v.OwnsOutfit(name) {
		v.log.Warn("outfit not owned", map[string]any{"outfit": name})
		return false
	}
	prev := p.Outfit
	if !p.SetOutfit(name) {
		v.log.Warn("outfit not permitted for this pet", map[string]any{
			"outfit": name,
			"kind":   string(p.Kind),
		})
		return false
	}
	if prev != "" {
		v.outfits[prev] = true
	}
	v.outfits[name] = false
	return true
}

// UnequipOutfit undresses the pet and returns the outfit to the available
// pool. Nothing worn is a logged no-op.
func (v *Inventory) UnequipOutfit(p *pet.Pet) {
	cur := p.Outfit
	if cur == "" {
		v.log.Debug("no outfit to unequip", nil)
		return
	}
	p.RemoveOutfit()
	v.outfits[cur] = true
}

// Snapshots for the save codec and shop display. Callers get copies.

func (v *Inventory) Foods() map[catalog.Food]int {
	out := make(map[catalog.Food]int, len(v.foods))
	for f, n := range v.foods {
		out[f] = n
	}
	return out
}

func (v *Inventory) Toys() map[catalog.Toy]int {
	out := make(map[catalog.Toy]int, len(v.toys))
	for t, n := range v.toys {
		out[t] = n
	}
	return out
}

func (v *Inventory) Gifts() map[catalog.Gift]int {
	out := make(map[catalog.Gift]int, len(v.gifts))
	for g, n := range v.gifts {
		out[g] = n
	}
	return out
}

func (v *Inventory) Outfits() map[string]bool {
	out := make(map[string]bool, len(v.outfits))
	for name, avail := range v.outfits {
		out[name] = avail
	}
	return out
}
