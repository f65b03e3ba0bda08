package pet

// State is the display condition shown to the player. It is derived from
// stats on demand and never stored.
type State int

const (
	StateIdle State = iota
	StateHungry
	StateAngry
	StateSleeping
	StateDead
)

func (s State) String() string {
	switch s {
	case StateDead:
		return "dead"
	case StateSleeping:
		return "sleeping"
	case StateAngry:
		return "angry"
	case StateHungry:
		return "hungry"
	default:
		return "idle"
	}
}

// CurrentState ranks the pet's condition: death beats sleep beats anger
// beats hunger beats idle.
func (p *Pet) CurrentState() State {
	switch {
	case p.Dead():
		return StateDead
	case p.IsSleeping:
		return StateSleeping
	case p.Angry():
		return StateAngry
	case p.Fullness <= 0:
		return StateHungry
	default:
		return StateIdle
	}
}

// Stat warnings trip when a stat falls to a quarter of its max or below.
// The display layer uses them to flag bars that need attention.

func (p *Pet) WarningHealth() bool {
	return p.Health <= p.MaxHealth/4
}

func (p *Pet) WarningSleep() bool {
	return p.Sleep <= p.MaxSleep/4
}

func (p *Pet) WarningFullness() bool {
	return p.Fullness <= p.MaxFullness/4
}

func (p *Pet) WarningHappiness() bool {
	return p.Happiness <= p.MaxHappiness/4
}

// Warnings lists the names of stats currently in the warning zone, in
// display order.
func (p *Pet) Warnings() []string {
	var out []string
	if p.WarningHealth() {
		out = append(out, "health")
	}
	if p.WarningSleep() {
		out = append(out, "sleep")
	}
	if p.WarningFullness() {
		out = append(out, "fullness")
	}
	if p.WarningHappiness() {
		out = append(out, "happiness")
	}
	return out
}
