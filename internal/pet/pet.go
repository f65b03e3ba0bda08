// Package pet implements the stat engine at the center of the game: four
// bounded stats per pet, archetype-driven decline, and the derived
// sleeping/hungry/happy/dead state machine.
package pet

import (
	"fmt"
	"strings"
)

const (
	// DefaultMaxStat is the ceiling every stat starts with on a new pet.
	DefaultMaxStat = 100

	// Cooldown windows in seconds for the timed care actions.
	DefaultVetCooldown  = 30
	DefaultPlayCooldown = 20

	// A decay step fires every declineDivisor ApplyDecline calls.
	declineDivisor = 15
)

// Pet is the mutable simulation entity. Fields are exported for the save
// codec; code outside the package mutates stats through the clamped
// Increase/Decrease methods and the action layer, never directly.
type Pet struct {
	Name string    `toml:"name"`
	Kind Archetype `toml:"kind"`

	Health    int `toml:"health"`
	Sleep     int `toml:"sleep"`
	Fullness  int `toml:"fullness"`
	Happiness int `toml:"happiness"`

	MaxHealth    int `toml:"maxHealth"`
	MaxSleep     int `toml:"maxSleep"`
	MaxFullness  int `toml:"maxFullness"`
	MaxHappiness int `toml:"maxHappiness"`

	HealthRate    int `toml:"healthRate"`
	FullnessRate  int `toml:"fullnessRate"`
	SleepRate     int `toml:"sleepRate"`
	HappinessRate int `toml:"happinessRate"`

	IsSleeping bool `toml:"isSleeping"`
	IsHungry   bool `toml:"isHungry"`
	IsHappy    bool `toml:"isHappy"`
	IsDead     bool `toml:"isDead"`

	LastVetVisit int `toml:"lastVetVisit"`
	VetCooldown  int `toml:"vetCooldown"`
	LastPlay     int `toml:"lastPlay"`
	PlayCooldown int `toml:"playCooldown"`

	Outfit string `toml:"outfit"`

	// Decline call counter. Per pet so independent simulations never share
	// cadence; deliberately not persisted.
	tick int
}

// New creates a pet of the given kind with every stat at its max and both
// cooldown timers at their defaults. Unknown kinds are rejected.
func New(name string, kind Archetype) (*Pet, error) {
	p := &Pet{
		Name:         name,
		MaxHealth:    DefaultMaxStat,
		MaxSleep:     DefaultMaxStat,
		MaxFullness:  DefaultMaxStat,
		MaxHappiness: DefaultMaxStat,
		IsHappy:      true,
		VetCooldown:  DefaultVetCooldown,
		PlayCooldown: DefaultPlayCooldown,
	}
	if err := p.SetKind(kind); err != nil {
		return nil, err
	}
	p.Health = p.MaxHealth
	p.Sleep = p.MaxSleep
	p.Fullness = p.MaxFullness
	p.Happiness = p.MaxHappiness
	return p, nil
}

// SetKind assigns the archetype and derives the four decline rates from its
// profile. An unknown kind is rejected and leaves kind and rates unchanged.
func (p *Pet) SetKind(kind Archetype) error {
	prof, ok := profiles[kind]
	if !ok {
		return fmt.Errorf("unknown pet kind %q", kind)
	}
	p.Kind = kind
	p.HealthRate = rate(prof.health)
	p.FullnessRate = rate(prof.fullness)
	p.SleepRate = rate(prof.sleep)
	p.HappinessRate = rate(prof.happiness)
	return nil
}

// Stat mutators clamp to [0, max] and return the updated value. They touch
// nothing but the one stat.

func (p *Pet) IncreaseHealth(amount int) int {
	p.Health = min(p.Health+amount, p.MaxHealth)
	return p.Health
}

func (p *Pet) DecreaseHealth(amount int) int {
	p.Health = max(p.Health-amount, 0)
	return p.Health
}

func (p *Pet) IncreaseSleep(amount int) int {
	p.Sleep = min(p.Sleep+amount, p.MaxSleep)
	return p.Sleep
}

func (p *Pet) DecreaseSleep(amount int) int {
	p.Sleep = max(p.Sleep-amount, 0)
	return p.Sleep
}

func (p *Pet) IncreaseFullness(amount int) int {
	p.Fullness = min(p.Fullness+amount, p.MaxFullness)
	return p.Fullness
}

func (p *Pet) DecreaseFullness(amount int) int {
	p.Fullness = max(p.Fullness-amount, 0)
	return p.Fullness
}

func (p *Pet) IncreaseHappiness(amount int) int {
	p.Happiness = min(p.Happiness+amount, p.MaxHappiness)
	return p.Happiness
}

func (p *Pet) DecreaseHappiness(amount int) int {
	p.Happiness = max(p.Happiness-amount, 0)
	return p.Happiness
}

// Dead reports whether health has reached zero, resyncing the stored flag
// either direction. It never changes health itself.
func (p *Pet) Dead() bool {
	p.IsDead = p.Health <= 0
	return p.IsDead
}

// Angry reports whether happiness has bottomed out.
func (p *Pet) Angry() bool {
	return p.Happiness == 0
}

// VetWait reports the time remaining before the vet will see the pet
// again, floored at zero. now is in the pet's timer unit (seconds).
func (p *Pet) VetWait(now int) int {
	return max(p.VetCooldown-(now-p.LastVetVisit), 0)
}

// PlayWait is VetWait's analog for the play cooldown.
func (p *Pet) PlayWait(now int) int {
	return max(p.PlayCooldown-(now-p.LastPlay), 0)
}

// SetOutfit dresses the pet. An empty name undresses and always succeeds.
// Otherwise the name must match the archetype's one permitted outfit,
// compared case-insensitively; the caller's spelling is what gets stored.
func (p *Pet) SetOutfit(name string) bool {
	if name == "" {
		p.Outfit = ""
		return true
	}
	prof, ok := profiles[p.Kind]
	if !ok {
		return false
	}
	if !strings.EqualFold(name, prof.outfit) {
		return false
	}
	p.Outfit = name
	return true
}

// RemoveOutfit clears the outfit slot.
func (p *Pet) RemoveOutfit() {
	p.Outfit = ""
}

// WearingOutfit reports whether the outfit slot is occupied.
func (p *Pet) WearingOutfit() bool {
	return p.Outfit != ""
}

// ResetState is the revival primitive: all four stats back to max, death
// and sleep flags cleared. Cooldown timers and the outfit are untouched.
func (p *Pet) ResetState() {
	p.IsDead = false
	p.IsSleeping = false
	p.IsHungry = false
	p.IsHappy = true
	p.Health = p.MaxHealth
	p.Sleep = p.MaxSleep
	p.Fullness = p.MaxFullness
	p.Happiness = p.MaxHappiness
}
