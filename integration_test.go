package main

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ayabdnabi/virtual-pet/internal/art"
	"github.com/ayabdnabi/virtual-pet/internal/catalog"
	"github.com/ayabdnabi/virtual-pet/internal/game"
	"github.com/ayabdnabi/virtual-pet/internal/guardian"
	"github.com/ayabdnabi/virtual-pet/internal/inventory"
	"github.com/ayabdnabi/virtual-pet/internal/pet"
	"github.com/ayabdnabi/virtual-pet/internal/platform/logger"
	"github.com/ayabdnabi/virtual-pet/internal/storage"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time {
	return c.t
}

func (c *testClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newConfig(t *testing.T) (game.Config, *testClock) {
	t.Helper()
	c := &testClock{t: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	return game.Config{
		DataDir:  t.TempDir(),
		Interval: time.Hour,
		Log:      logger.Discard(),
		Now:      c.now,
	}, c
}

func TestFullCareJourney(t *testing.T) {
	cfg, c := newConfig(t)

	// Adopt a pet and check the starting package.
	s, err := game.NewGame(cfg, "Juniper", pet.ArchetypePanda)
	if err != nil {
		t.Fatalf("Failed to start a new game: %v", err)
	}
	st := s.Status()
	if st.Pet.Health != 100 || st.Pet.Sleep != 100 || st.Pet.Fullness != 100 || st.Pet.Happiness != 100 {
		t.Fatalf("Expected a fresh pet at full stats, got %d/%d/%d/%d",
			st.Pet.Health, st.Pet.Sleep, st.Pet.Fullness, st.Pet.Happiness)
	}
	if st.Coins != 6000 {
		t.Fatalf("Expected 6000 starting coins, got %d", st.Coins)
	}

	// A morning of care before the first save.
	for i := 0; i < 3; i++ {
		if err := s.Exercise(); err != nil {
			t.Fatalf("Failed to exercise: %v", err)
		}
	}
	c.advance(30 * time.Second)
	if err := s.Feed("Orange"); err != nil {
		t.Fatalf("Failed to feed: %v", err)
	}
	if err := s.Play("Wand"); err != nil {
		t.Fatalf("Failed to play: %v", err)
	}
	if err := s.VisitVet(); err != nil {
		t.Fatalf("Failed to visit the vet: %v", err)
	}
	if err := s.VisitVet(); err == nil {
		t.Error("Expected the vet cooldown to refuse a second visit")
	}

	st = s.Status()
	if st.Pet.Sleep != 70 {
		t.Errorf("Expected sleep 70 after three workouts, got %d", st.Pet.Sleep)
	}
	if st.Pet.Fullness != 75 {
		t.Errorf("Expected fullness 75 after the snack, got %d", st.Pet.Fullness)
	}
	if st.Coins != 7212 {
		t.Errorf("Expected 7212 coins after the care rewards, got %d", st.Coins)
	}

	// Save, then resume from disk and verify everything survived.
	c.advance(90 * time.Second)
	if err := s.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if _, err := os.Stat(storage.SavePath(cfg.DataDir, "Juniper")); err != nil {
		t.Fatalf("Expected a save file on disk: %v", err)
	}

	loaded, err := game.Load(cfg, "Juniper")
	if err != nil {
		t.Fatalf("Failed to reload the game: %v", err)
	}
	st = loaded.Status()
	if st.Pet.Sleep != 70 || st.Pet.Fullness != 75 {
		t.Errorf("Expected sleep/fullness 70/75 after reload, got %d/%d", st.Pet.Sleep, st.Pet.Fullness)
	}
	if st.Coins != 7212 {
		t.Errorf("Expected 7212 coins after reload, got %d", st.Coins)
	}
	if st.PlayTime != 2*time.Minute {
		t.Errorf("Expected 2m of recorded play time, got %v", st.PlayTime)
	}
	pantry := 0
	for _, n := range st.Foods {
		pantry += n
	}
	if pantry != 4 {
		t.Errorf("Expected 4 foods left in the pantry, got %d", pantry)
	}
}

func TestOutfitJourneyAcrossRestarts(t *testing.T) {
	cfg, _ := newConfig(t)

	s, err := game.NewGame(cfg, "Nova", pet.ArchetypeFerret)
	if err != nil {
		t.Fatalf("Failed to start a new game: %v", err)
	}
	if err := s.BuyGift("aviator goggles"); err != nil {
		t.Fatalf("Failed to buy the outfit: %v", err)
	}
	if err := s.GiveGift(); err != nil {
		t.Fatalf("Failed to dress the pet: %v", err)
	}
	st := s.Status()
	if st.Pet.Outfit != "aviator goggles" {
		t.Fatalf("Expected the pet to wear aviator goggles, got %q", st.Pet.Outfit)
	}
	if st.Coins != 3100 {
		t.Errorf("Expected 3100 coins after the purchase and wear bonus, got %d", st.Coins)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Failed to close the session: %v", err)
	}

	// Resume: the outfit is still on and still checked out of the wardrobe.
	s2, err := game.Load(cfg, "Nova")
	if err != nil {
		t.Fatalf("Failed to reload the game: %v", err)
	}
	st = s2.Status()
	if st.Pet.Outfit != "aviator goggles" {
		t.Errorf("Expected the outfit to survive the reload, got %q", st.Pet.Outfit)
	}
	if st.Outfits["aviator goggles"] {
		t.Error("Expected the worn outfit to stay checked out after reload")
	}

	// Undress, save, and confirm the wardrobe has it back.
	if err := s2.GiveGift(); err != nil {
		t.Fatalf("Failed to undress the pet: %v", err)
	}
	if err := s2.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	s3, err := game.Load(cfg, "Nova")
	if err != nil {
		t.Fatalf("Failed to reload the game: %v", err)
	}
	st = s3.Status()
	if st.Pet.WearingOutfit() {
		t.Errorf("Expected the pet undressed after reload, got %q", st.Pet.Outfit)
	}
	if !st.Outfits["aviator goggles"] {
		t.Error("Expected the outfit back in the wardrobe")
	}
}

func TestGuardianOversight(t *testing.T) {
	cfg, c := newConfig(t)
	led, err := guardian.NewLedger()
	if err != nil {
		t.Fatalf("Failed to build a ledger: %v", err)
	}
	led.SetEnabled(true)
	if err := led.SetWindow(8, 22); err != nil {
		t.Fatalf("Failed to set the window: %v", err)
	}
	cfg.Guardian = led

	s, err := game.NewGame(cfg, "Willow", pet.ArchetypePeacock)
	if err != nil {
		t.Fatalf("Failed to start a new game: %v", err)
	}

	// Late night: the window vetoes the session before it starts.
	c.t = time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	if err := s.Start(); !errors.Is(err, game.ErrOutsideWindow) {
		t.Fatalf("Expected the window to veto play at 23:00, got %v", err)
	}
	if s.Running() {
		t.Fatal("Expected the scheduler to stay stopped after a veto")
	}

	// Mid-morning passes, and closing the session reports it to the ledger.
	c.t = time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	if err := s.Start(); err != nil {
		t.Fatalf("Failed to start inside the window: %v", err)
	}
	c.advance(5 * time.Minute)
	if err := s.Close(); err != nil {
		t.Fatalf("Failed to close the session: %v", err)
	}

	reloaded, err := guardian.LoadLedger(cfg.DataDir)
	if err != nil {
		t.Fatalf("Failed to reload the ledger: %v", err)
	}
	if reloaded.SessionCount != 1 {
		t.Errorf("Expected 1 recorded session, got %d", reloaded.SessionCount)
	}
	if reloaded.TotalPlay() != 5*time.Minute {
		t.Errorf("Expected 5m total play, got %v", reloaded.TotalPlay())
	}
	if len(reloaded.Sessions) != 1 || reloaded.Sessions[0].ID == "" {
		t.Errorf("Expected one session record with an id, got %+v", reloaded.Sessions)
	}
	if !reloaded.Enabled || reloaded.StartHour != 8 || reloaded.EndHour != 22 {
		t.Errorf("Expected the 8..22 window to survive the reload, got %d..%d enabled=%v",
			reloaded.StartHour, reloaded.EndHour, reloaded.Enabled)
	}
	if !reloaded.Authenticate(guardian.DefaultSecret) {
		t.Error("Expected the default secret to authenticate after reload")
	}
	if reloaded.Authenticate("0000") {
		t.Error("Expected a wrong secret to be rejected")
	}

	// Rotating the secret sticks across another round trip.
	if err := reloaded.SetSecret("willow-keeper"); err != nil {
		t.Fatalf("Failed to rotate the secret: %v", err)
	}
	if err := guardian.SaveLedger(cfg.DataDir, reloaded); err != nil {
		t.Fatalf("Failed to save the rotated ledger: %v", err)
	}
	again, err := guardian.LoadLedger(cfg.DataDir)
	if err != nil {
		t.Fatalf("Failed to reload the rotated ledger: %v", err)
	}
	if !again.Authenticate("willow-keeper") {
		t.Error("Expected the rotated secret to authenticate")
	}
	if again.Authenticate(guardian.DefaultSecret) {
		t.Error("Expected the default secret to stop working after rotation")
	}
}

func TestGuardianRevival(t *testing.T) {
	cfg, _ := newConfig(t)

	// Seed a save slot holding a pet that did not make it.
	p, err := pet.New("Ghost", pet.ArchetypeFerret)
	if err != nil {
		t.Fatalf("Failed to create a pet: %v", err)
	}
	p.DecreaseHealth(p.MaxHealth)
	inv := inventory.New(catalog.Default(), logger.Discard())
	err = storage.SaveGame(cfg.DataDir, storage.GameState{Pet: p, Inventory: inv, TotalPlayTime: time.Hour})
	if err != nil {
		t.Fatalf("Failed to write the seed save: %v", err)
	}

	s, err := game.Load(cfg, "Ghost")
	if err != nil {
		t.Fatalf("Failed to load the game: %v", err)
	}
	if st := s.Status(); st.State != pet.StateDead {
		t.Fatalf("Expected a dead pet, got %s", st.State)
	}
	if err := s.Feed("Orange"); !errors.Is(err, game.ErrPetDead) {
		t.Fatalf("Expected ErrPetDead when feeding, got %v", err)
	}

	// The guardian override brings it back at full stats.
	if err := s.Revive(); err != nil {
		t.Fatalf("Failed to revive: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	s2, err := game.Load(cfg, "Ghost")
	if err != nil {
		t.Fatalf("Failed to reload the game: %v", err)
	}
	st := s2.Status()
	if st.State != pet.StateIdle || st.Pet.Health != st.Pet.MaxHealth {
		t.Errorf("Expected a healthy idle pet after revival, got state %s health %d", st.State, st.Pet.Health)
	}
	if st.PlayTime != time.Hour {
		t.Errorf("Expected the play clock to keep its history, got %v", st.PlayTime)
	}
}

func TestStatusCardReflectsTheSession(t *testing.T) {
	cfg, _ := newConfig(t)
	s, err := game.NewGame(cfg, "Pixel", pet.ArchetypePeacock)
	if err != nil {
		t.Fatalf("Failed to start a new game: %v", err)
	}

	card := art.RenderStatus(s.Status())
	for _, want := range []string{"Pixel the peacock", "[idle]", "health", "coins: 6000"} {
		if !strings.Contains(card, want) {
			t.Errorf("Expected the status card to contain %q, got:\n%s", want, card)
		}
	}

	// Bedtime changes the portrait.
	if err := s.Sleep(); err != nil {
		t.Fatalf("Failed to put the pet to bed: %v", err)
	}
	card = art.RenderStatus(s.Status())
	if !strings.Contains(card, "[sleeping]") {
		t.Errorf("Expected a sleeping header, got:\n%s", card)
	}
	if !strings.Contains(card, "zzZ") {
		t.Errorf("Expected a snoozing critter, got:\n%s", card)
	}
}

func TestSaveSlotLifecycle(t *testing.T) {
	cfg, _ := newConfig(t)

	for _, name := range []string{"Ada", "Brio", "Cleo"} {
		s, err := game.NewGame(cfg, name, pet.ArchetypePanda)
		if err != nil {
			t.Fatalf("Failed to adopt %s: %v", name, err)
		}
		if err := s.Save(); err != nil {
			t.Fatalf("Failed to save %s: %v", name, err)
		}
	}

	names, err := storage.ListSaves(cfg.DataDir)
	if err != nil {
		t.Fatalf("Failed to list saves: %v", err)
	}
	if len(names) != 3 || names[0] != "Ada" || names[2] != "Cleo" {
		t.Fatalf("Expected three sorted slots, got %v", names)
	}

	// The house is full until somebody moves out.
	if _, err := game.NewGame(cfg, "Dot", pet.ArchetypeFerret); !errors.Is(err, game.ErrSlotsFull) {
		t.Fatalf("Expected ErrSlotsFull for a fourth pet, got %v", err)
	}
	if err := storage.DeleteSave(cfg.DataDir, "Brio"); err != nil {
		t.Fatalf("Failed to delete a slot: %v", err)
	}
	if _, err := game.NewGame(cfg, "Dot", pet.ArchetypeFerret); err != nil {
		t.Fatalf("Expected a freed slot to accept a new pet, got %v", err)
	}
}
