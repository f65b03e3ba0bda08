package catalog

import "testing"

// fakeBuyer tracks a coin balance and records deliveries so purchase tests
// can assert who got mutated and when.
type fakeBuyer struct {
	coins  int
	foods  map[string]int
	toys   map[string]int
	gifts  map[string]int
	debits int
}

func newFakeBuyer(coins int) *fakeBuyer {
	return &fakeBuyer{
		coins: coins,
		foods: make(map[string]int),
		toys:  make(map[string]int),
		gifts: make(map[string]int),
	}
}

func (b *fakeBuyer) Debit(amount int) bool {
	b.debits++
	if amount > b.coins {
		return false
	}
	b.coins -= amount
	return true
}

func (b *fakeBuyer) AddFood(f Food, qty int) { b.foods[f.Name] += qty }
func (b *fakeBuyer) AddToy(t Toy, qty int)   { b.toys[t.Name] += qty }
func (b *fakeBuyer) AddGift(g Gift, qty int) { b.gifts[g.Name] += qty }

func TestDefaultLookups(t *testing.T) {
	c := Default()

	f, ok := c.Food("Orange")
	if !ok {
		t.Fatal("expected Orange in default catalog")
	}
	if f.Price != 50 || f.Fullness != 5 {
		t.Errorf("Orange = %+v, want price 50 fullness 5", f)
	}

	toy, ok := c.Toy("Wand")
	if !ok {
		t.Fatal("expected Wand in default catalog")
	}
	if toy.Price != 199 {
		t.Errorf("Wand price = %d, want 199", toy.Price)
	}

	g, ok := c.Gift("silk cape")
	if !ok {
		t.Fatal("expected silk cape in default catalog")
	}
	if g.Price != 3000 {
		t.Errorf("silk cape price = %d, want 3000", g.Price)
	}

	if _, ok := c.Food("Wand"); ok {
		t.Error("toy name should not resolve as food")
	}
	if _, ok := c.Toy("nope"); ok {
		t.Error("unknown toy name should not resolve")
	}
}

func TestDefaultListingsSorted(t *testing.T) {
	c := Default()

	foods := c.Foods()
	if len(foods) != 6 {
		t.Fatalf("len(Foods()) = %d, want 6", len(foods))
	}
	for i := 1; i < len(foods); i++ {
		if foods[i-1].Price > foods[i].Price {
			t.Errorf("Foods() not sorted by price: %q (%d) before %q (%d)",
				foods[i-1].Name, foods[i-1].Price, foods[i].Name, foods[i].Price)
		}
	}

	toys := c.Toys()
	if len(toys) != 6 {
		t.Fatalf("len(Toys()) = %d, want 6", len(toys))
	}
	if toys[0].Name != "Basketball" || toys[1].Name != "Wand" {
		t.Errorf("equal-price toys not sorted by name: got %q, %q", toys[0].Name, toys[1].Name)
	}

	if len(c.Gifts()) != 3 {
		t.Fatalf("len(Gifts()) = %d, want 3", len(c.Gifts()))
	}
}

func TestBuyFood(t *testing.T) {
	tests := []struct {
		name      string
		item      string
		coins     int
		qty       int
		wantOK    bool
		wantCoins int
		wantCount int
	}{
		{name: "single unit", item: "Orange", coins: 100, qty: 1, wantOK: true, wantCoins: 50, wantCount: 1},
		{name: "cost scales with qty", item: "Orange", coins: 200, qty: 3, wantOK: true, wantCoins: 50, wantCount: 3},
		{name: "exact balance", item: "Swiss Roll", coins: 400, qty: 2, wantOK: true, wantCoins: 0, wantCount: 2},
		{name: "insufficient coins", item: "Lamb Chop", coins: 1000, qty: 1, wantOK: false, wantCoins: 1000, wantCount: 0},
		{name: "insufficient for total", item: "Orange", coins: 120, qty: 3, wantOK: false, wantCoins: 120, wantCount: 0},
		{name: "zero qty rejected", item: "Orange", coins: 100, qty: 0, wantOK: false, wantCoins: 100, wantCount: 0},
		{name: "negative qty rejected", item: "Orange", coins: 100, qty: -2, wantOK: false, wantCoins: 100, wantCount: 0},
		{name: "unknown item", item: "Pizza", coins: 5000, qty: 1, wantOK: false, wantCoins: 5000, wantCount: 0},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFakeBuyer(tt.coins)
			ok := c.BuyFood(tt.item, b, tt.qty)
			if ok != tt.wantOK {
				t.Fatalf("BuyFood(%q, qty=%d) = %v, want %v", tt.item, tt.qty, ok, tt.wantOK)
			}
			if b.coins != tt.wantCoins {
				t.Errorf("coins = %d, want %d", b.coins, tt.wantCoins)
			}
			if got := b.foods[tt.item]; got != tt.wantCount {
				t.Errorf("delivered count = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestBuyToyFlatPrice(t *testing.T) {
	c := Default()

	b := newFakeBuyer(500)
	if !c.BuyToy("Wand", b, 3) {
		t.Fatal("BuyToy should succeed with sufficient coins")
	}
	if b.coins != 301 {
		t.Errorf("coins = %d, want 301 (flat 199 regardless of qty)", b.coins)
	}
	if b.toys["Wand"] != 3 {
		t.Errorf("delivered %d wands, want 3", b.toys["Wand"])
	}

	b = newFakeBuyer(100)
	if c.BuyToy("Wand", b, 1) {
		t.Fatal("BuyToy should fail on insufficient coins")
	}
	if b.coins != 100 || len(b.toys) != 0 {
		t.Errorf("failed purchase mutated buyer: coins=%d toys=%v", b.coins, b.toys)
	}

	if c.BuyToy("Broomstick", newFakeBuyer(5000), 1) {
		t.Error("unknown toy should not be purchasable")
	}
}

func TestBuyGiftFlatPrice(t *testing.T) {
	c := Default()

	b := newFakeBuyer(3500)
	if !c.BuyGift("bamboo hat", b, 2) {
		t.Fatal("BuyGift should succeed with sufficient coins")
	}
	if b.coins != 500 {
		t.Errorf("coins = %d, want 500 (flat 3000 regardless of qty)", b.coins)
	}
	if b.gifts["bamboo hat"] != 2 {
		t.Errorf("delivered %d, want 2", b.gifts["bamboo hat"])
	}

	b = newFakeBuyer(2999)
	if c.BuyGift("bamboo hat", b, 1) {
		t.Fatal("BuyGift should fail one coin short")
	}
	if b.coins != 2999 || len(b.gifts) != 0 {
		t.Errorf("failed purchase mutated buyer: coins=%d gifts=%v", b.coins, b.gifts)
	}
}

func TestBuyUnknownItemSkipsDebit(t *testing.T) {
	c := Default()
	b := newFakeBuyer(5000)

	c.BuyFood("Pizza", b, 1)
	c.BuyToy("Broomstick", b, 1)
	c.BuyGift("crown", b, 1)

	if b.debits != 0 {
		t.Errorf("unknown-item purchases hit the balance %d times, want 0", b.debits)
	}
}

func TestNewLastDuplicateWins(t *testing.T) {
	c := New(
		[]Food{{Name: "Orange", Price: 10, Fullness: 1}, {Name: "Orange", Price: 99, Fullness: 9}},
		nil, nil,
	)
	f, ok := c.Food("Orange")
	if !ok {
		t.Fatal("expected Orange")
	}
	if f.Price != 99 || f.Fullness != 9 {
		t.Errorf("duplicate entry did not replace: %+v", f)
	}
}
