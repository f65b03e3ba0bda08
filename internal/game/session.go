// Package game wires the pet, inventory, catalog, guardian ledger, and
// decline scheduler into one play session and serializes every mutation
// behind a single lock.
package game

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ayabdnabi/virtual-pet/internal/catalog"
	"github.com/ayabdnabi/virtual-pet/internal/guardian"
	"github.com/ayabdnabi/virtual-pet/internal/inventory"
	"github.com/ayabdnabi/virtual-pet/internal/pet"
	"github.com/ayabdnabi/virtual-pet/internal/platform/logger"
	"github.com/ayabdnabi/virtual-pet/internal/sim"
	"github.com/ayabdnabi/virtual-pet/internal/storage"
)

// DefaultMaxSlots caps how many pets can have save files at once.
const DefaultMaxSlots = 3

var (
	ErrPetDead        = errors.New("the pet is dead")
	ErrPetAsleep      = errors.New("the pet is asleep")
	ErrPetAngry       = errors.New("the pet is too angry for that")
	ErrOutsideWindow  = errors.New("play is not allowed at this hour")
	ErrSlotsFull      = errors.New("all save slots are taken")
	ErrNotEnoughCoins = errors.New("not enough coins")
)

// Config carries the collaborators a session needs. Zero fields fall back
// to sensible defaults so tests can construct sessions with a short form.
type Config struct {
	DataDir  string
	Catalog  *catalog.Catalog
	Guardian *guardian.Ledger
	Interval time.Duration
	MaxSlots int
	Log      logger.Logger

	// Now is the session clock; nil means time.Now.
	Now func() time.Time
}

func (c Config) withDefaults() (Config, error) {
	if c.Catalog == nil {
		c.Catalog = catalog.Default()
	}
	if c.Guardian == nil {
		l, err := guardian.NewLedger()
		if err != nil {
			return c, err
		}
		c.Guardian = l
	}
	if c.Interval <= 0 {
		c.Interval = sim.DefaultInterval
	}
	if c.MaxSlots <= 0 {
		c.MaxSlots = DefaultMaxSlots
	}
	if c.Log == nil {
		c.Log = logger.Discard()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c, nil
}

// Session owns one pet and its inventory for the lifetime of a play
// session. All player actions and every scheduler tick run under mu, so
// decline steps never race a feed or a purchase.
type Session struct {
	mu sync.Mutex

	pet   *pet.Pet
	inv   *inventory.Inventory
	cat   *catalog.Catalog
	guard *guardian.Ledger

	dataDir string
	played  time.Duration

	// segmentStart anchors play-time accrual and resets on every save;
	// sessionStart marks Start() for the guardian ledger and stays put.
	segmentStart time.Time
	sessionStart time.Time

	sched *sim.Scheduler
	log   logger.Logger
	now   func() time.Time
}

// NewGame creates a fresh pet with a seeded inventory. The name must be
// usable as a save file name, and a brand-new pet is refused when every
// save slot is taken by someone else.
func NewGame(cfg Config, name string, kind pet.Archetype) (*Session, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if !storage.ValidSaveName(name) {
		return nil, fmt.Errorf("%q cannot be used as a pet name", name)
	}

	names, err := storage.ListSaves(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(names, name) && len(names) >= cfg.MaxSlots {
		return nil, ErrSlotsFull
	}

	p, err := pet.New(name, kind)
	if err != nil {
		return nil, err
	}
	inv := inventory.New(cfg.Catalog, cfg.Log)

	cfg.Log.Info("new game started", map[string]any{"pet": name, "kind": string(kind)})
	return newSession(cfg, p, inv, 0), nil
}

// Load resumes a session from the named save slot.
func Load(cfg Config, name string) (*Session, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	state, err := storage.LoadGame(cfg.DataDir, name, cfg.Catalog, cfg.Log)
	if err != nil {
		return nil, err
	}

	cfg.Log.Info("game loaded", map[string]any{"pet": name, "playTime": state.TotalPlayTime.String()})
	return newSession(cfg, state.Pet, state.Inventory, state.TotalPlayTime), nil
}

func newSession(cfg Config, p *pet.Pet, inv *inventory.Inventory, played time.Duration) *Session {
	s := &Session{
		pet:          p,
		inv:          inv,
		cat:          cfg.Catalog,
		guard:        cfg.Guardian,
		dataDir:      cfg.DataDir,
		played:       played,
		segmentStart: cfg.Now(),
		log:          cfg.Log,
		now:          cfg.Now,
	}
	s.sched = sim.New(cfg.Interval, s.tick)
	return s
}

func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pet.ApplyDecline()
}

// Start begins live simulation. The guardian's allowed-hours window is
// checked first; outside it the session stays stopped.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.guard.PlayAllowed(s.now()) {
		return ErrOutsideWindow
	}
	if s.sessionStart.IsZero() {
		s.sessionStart = s.now()
	}
	s.sched.Start()
	return nil
}

// Running reports whether the decline scheduler is live.
func (s *Session) Running() bool {
	return s.sched.Running()
}

// Close stops the simulation, saves the game, and reports the session to
// the guardian ledger. The scheduler is stopped before the lock is taken
// so an in-flight tick can finish.
func (s *Session) Close() error {
	s.sched.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	saveErr := s.saveLocked()

	if !s.sessionStart.IsZero() {
		s.guard.RecordSession(s.sessionStart, s.now().Sub(s.sessionStart))
		s.sessionStart = time.Time{}
		if err := guardian.SaveLedger(s.dataDir, s.guard); err != nil {
			s.log.Error("failed to save guardian ledger", map[string]any{"error": err.Error()})
			if saveErr == nil {
				saveErr = err
			}
		}
	}

	s.log.Info("session closed", map[string]any{"pet": s.pet.Name})
	return saveErr
}

// Save writes the current state to the pet's save slot. Elapsed time
// since the last save rolls into the stored play time.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Session) saveLocked() error {
	now := s.now()
	s.played += now.Sub(s.segmentStart)
	s.segmentStart = now

	return storage.SaveGame(s.dataDir, storage.GameState{
		Pet:           s.pet,
		Inventory:     s.inv,
		TotalPlayTime: s.played,
	})
}

// actionable refuses pet-directed commands while the pet cannot respond.
func (s *Session) actionable() error {
	if s.pet.Dead() {
		return ErrPetDead
	}
	if s.pet.IsSleeping {
		return ErrPetAsleep
	}
	return nil
}

// Feed gives the pet one unit of a named food. An angry pet refuses to
// eat; cheering it up comes first.
func (s *Session) Feed(foodName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.actionable(); err != nil {
		return err
	}
	if s.pet.Angry() {
		return ErrPetAngry
	}
	f, ok := s.cat.Food(foodName)
	if !ok {
		return fmt.Errorf("unknown food %q", foodName)
	}
	if !s.inv.Feed(s.pet, f) {
		return fmt.Errorf("no %s left in the pantry", f.Name)
	}
	return nil
}

// Play runs a play session with a named toy, subject to the play cooldown.
func (s *Session) Play(toyName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.actionable(); err != nil {
		return err
	}
	t, ok := s.cat.Toy(toyName)
	if !ok {
		return fmt.Errorf("unknown toy %q", toyName)
	}
	if !s.inv.HasToy(t) {
		return fmt.Errorf("%s is not in the toy box", t.Name)
	}
	now := int(s.now().Unix())
	if !s.inv.Play(s.pet, t, now) {
		return fmt.Errorf("%s is tired of playing, wait %ds", s.pet.Name, s.pet.PlayWait(now))
	}
	return nil
}

// VisitVet heals the pet, subject to the vet cooldown. Like feeding, an
// angry pet will not cooperate.
func (s *Session) VisitVet() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.actionable(); err != nil {
		return err
	}
	if s.pet.Angry() {
		return ErrPetAngry
	}
	now := int(s.now().Unix())
	if !s.inv.VisitVet(s.pet, now) {
		return fmt.Errorf("the vet can see %s again in %ds", s.pet.Name, s.pet.VetWait(now))
	}
	return nil
}

// Exercise works the pet out. Always succeeds on a responsive pet.
func (s *Session) Exercise() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.actionable(); err != nil {
		return err
	}
	s.inv.Exercise(s.pet)
	return nil
}

// Sleep puts the pet to bed. Decline steps then regenerate sleep until it
// wakes on its own, or Wake is called.
func (s *Session) Sleep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pet.Dead() {
		return ErrPetDead
	}
	s.pet.IsSleeping = true
	return nil
}

// Wake gets the pet up before sleep is full.
func (s *Session) Wake() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pet.Dead() {
		return ErrPetDead
	}
	s.pet.IsSleeping = false
	return nil
}

// GiveGift toggles the pet's outfit. Dressing up requires owning the one
// outfit the pet's kind permits, and pays out the wear bonus; a dressed
// pet is undressed instead, with no bonus.
func (s *Session) GiveGift() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.actionable(); err != nil {
		return err
	}
	if s.pet.WearingOutfit() {
		s.inv.UnequipOutfit(s.pet)
		return nil
	}

	name, ok := pet.AllowedOutfit(s.pet.Kind)
	if !ok {
		return fmt.Errorf("no outfit suits a %s", s.pet.Kind)
	}
	if !s.inv.OwnsOutfit(name) {
		return fmt.Errorf("%s is not in the wardrobe yet", name)
	}
	if !s.inv.EquipOutfit(name, s.pet) {
		return fmt.Errorf("failed to dress %s", s.pet.Name)
	}
	s.inv.WearBonus(s.pet)
	return nil
}

// shoppable refuses purchases while the pet cannot be minded.
func (s *Session) shoppable() error {
	if s.pet.Dead() {
		return ErrPetDead
	}
	if s.pet.IsSleeping {
		return ErrPetAsleep
	}
	return nil
}

// BuyFood purchases qty units of a named food at price times quantity.
func (s *Session) BuyFood(name string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.shoppable(); err != nil {
		return err
	}
	if _, ok := s.cat.Food(name); !ok {
		return fmt.Errorf("unknown food %q", name)
	}
	if qty < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", qty)
	}
	if !s.cat.BuyFood(name, s.inv, qty) {
		return ErrNotEnoughCoins
	}
	return nil
}

// BuyToy purchases a named toy. Toys are reusable, so owning a second
// copy is pointless and the purchase is refused.
func (s *Session) BuyToy(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.shoppable(); err != nil {
		return err
	}
	t, ok := s.cat.Toy(name)
	if !ok {
		return fmt.Errorf("unknown toy %q", name)
	}
	if s.inv.HasToy(t) {
		return fmt.Errorf("%s is already in the toy box", t.Name)
	}
	if !s.cat.BuyToy(name, s.inv, 1) {
		return ErrNotEnoughCoins
	}
	return nil
}

// BuyGift purchases the outfit gift for this pet. Only the outfit the
// pet's kind permits can be bought, and a successful purchase lands in
// the wardrobe ready to wear.
func (s *Session) BuyGift(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.shoppable(); err != nil {
		return err
	}
	g, ok := s.cat.Gift(name)
	if !ok {
		return fmt.Errorf("unknown gift %q", name)
	}
	allowed, ok := pet.AllowedOutfit(s.pet.Kind)
	if !ok || !strings.EqualFold(g.Name, allowed) {
		return fmt.Errorf("%s does not suit a %s", g.Name, s.pet.Kind)
	}
	if !s.cat.BuyGift(name, s.inv, 1) {
		return ErrNotEnoughCoins
	}
	s.inv.AddOutfit(g.Name)
	return nil
}

// Revive asks the guardian to bring a dead pet back to full health. The
// caller authenticates against the ledger before getting here.
func (s *Session) Revive() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.guard.Revive(s.pet) {
		return fmt.Errorf("%s does not need reviving", s.pet.Name)
	}
	s.log.Info("pet revived", map[string]any{"pet": s.pet.Name})
	return nil
}
