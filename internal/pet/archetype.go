package pet

import "math"

// Archetype selects one of the three fixed decline profiles.
type Archetype string

const (
	ArchetypePanda   Archetype = "panda"
	ArchetypePeacock Archetype = "peacock"
	ArchetypeFerret  Archetype = "ferret"
)

// Base decline applied per decay step before archetype multipliers.
const baseDeclineRate = 5

// profile is an archetype's tuning: per-stat decline multipliers over the
// base rate, plus the one outfit the archetype may wear.
type profile struct {
	health    float64
	fullness  float64
	sleep     float64
	happiness float64
	outfit    string
}

var profiles = map[Archetype]profile{
	ArchetypePanda:   {health: 0.5, fullness: 0.9, sleep: 0.5, happiness: 0.5, outfit: "bamboo hat"},
	ArchetypePeacock: {health: 0.6, fullness: 0.4, sleep: 0.6, happiness: 0.9, outfit: "silk cape"},
	ArchetypeFerret:  {health: 0.5, fullness: 0.5, sleep: 0.9, happiness: 0.6, outfit: "aviator goggles"},
}

// Archetypes returns the valid archetypes in display order.
func Archetypes() []Archetype {
	return []Archetype{ArchetypePanda, ArchetypePeacock, ArchetypeFerret}
}

// AllowedOutfit returns the outfit name an archetype may wear, or false for
// an unknown archetype.
func AllowedOutfit(a Archetype) (string, bool) {
	p, ok := profiles[a]
	if !ok {
		return "", false
	}
	return p.outfit, true
}

// rate derives a decline rate from a multiplier, rounding half away from
// zero so a .5 multiplier lands on 3, not 2.
func rate(mult float64) int {
	return int(math.Round(baseDeclineRate * mult))
}
