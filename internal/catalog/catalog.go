// Package catalog holds the shop's item definitions and purchase rules.
// A Catalog is immutable after construction and shared by the whole game:
// inventory maps key off the exact item values issued here, and the save
// codec resolves persisted item names back to these values on load.
package catalog

import "sort"

// Food restores fullness when fed. Name is the item's identity; two foods
// are the same item iff their names match.
type Food struct {
	Name        string
	Price       int
	Fullness    int
	Description string
}

// Toy is reusable play equipment. Name is the item's identity.
type Toy struct {
	Name        string
	Price       int
	Description string
}

// Gift is a purchasable outfit. The gift name doubles as the outfit
// identifier worn by a pet.
type Gift struct {
	Name  string
	Price int
}

// Catalog maps item names to definitions, partitioned by kind. Within a
// kind, names are unique; later duplicates in the input replace earlier
// ones.
type Catalog struct {
	foods map[string]Food
	toys  map[string]Toy
	gifts map[string]Gift
}

func New(foods []Food, toys []Toy, gifts []Gift) *Catalog {
	c := &Catalog{
		foods: make(map[string]Food, len(foods)),
		toys:  make(map[string]Toy, len(toys)),
		gifts: make(map[string]Gift, len(gifts)),
	}
	for _, f := range foods {
		c.foods[f.Name] = f
	}
	for _, t := range toys {
		c.toys[t.Name] = t
	}
	for _, g := range gifts {
		c.gifts[g.Name] = g
	}
	return c
}

func (c *Catalog) Food(name string) (Food, bool) {
	f, ok := c.foods[name]
	return f, ok
}

func (c *Catalog) Toy(name string) (Toy, bool) {
	t, ok := c.toys[name]
	return t, ok
}

func (c *Catalog) Gift(name string) (Gift, bool) {
	g, ok := c.gifts[name]
	return g, ok
}

// Foods returns the food definitions sorted by price, then name, for stable
// shop listings.
func (c *Catalog) Foods() []Food {
	out := make([]Food, 0, len(c.foods))
	for _, f := range c.foods {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (c *Catalog) Toys() []Toy {
	out := make([]Toy, 0, len(c.toys))
	for _, t := range c.toys {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (c *Catalog) Gifts() []Gift {
	out := make([]Gift, 0, len(c.gifts))
	for _, g := range c.gifts {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Buyer is the slice of the player inventory a purchase needs: a coin
// balance that refuses to go negative, and delivery slots for each item
// kind.
type Buyer interface {
	// Debit removes amount from the balance, failing without mutation if
	// the balance would go negative.
	Debit(amount int) bool
	AddFood(f Food, qty int)
	AddToy(t Toy, qty int)
	AddGift(g Gift, qty int)
}

// BuyFood purchases qty units of the named food. Cost scales with qty.
// Unknown name, qty < 1, or insufficient coins fail with no mutation.
func (c *Catalog) BuyFood(name string, inv Buyer, qty int) bool {
	f, ok := c.foods[name]
	if !ok || qty <= 0 {
		return false
	}
	if !inv.Debit(f.Price * qty) {
		return false
	}
	inv.AddFood(f, qty)
	return true
}

// BuyToy purchases the named toy. The price is flat: qty only sets how many
// copies are delivered, it does not scale the cost.
func (c *Catalog) BuyToy(name string, inv Buyer, qty int) bool {
	t, ok := c.toys[name]
	if !ok {
		return false
	}
	if !inv.Debit(t.Price) {
		return false
	}
	inv.AddToy(t, qty)
	return true
}

// BuyGift purchases the named gift. Like BuyToy, the price is flat
// regardless of qty.
func (c *Catalog) BuyGift(name string, inv Buyer, qty int) bool {
	g, ok := c.gifts[name]
	if !ok {
		return false
	}
	if !inv.Debit(g.Price) {
		return false
	}
	inv.AddGift(g, qty)
	return true
}
