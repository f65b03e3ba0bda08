package pet

// ApplyDecline advances the simulation by one scheduler tick. Only every
// 15th call performs a decay step, so the driver's interval sets wall-clock
// pace while the divisor sets game pace. Death is terminal: a dead pet's
// stats never move again.
func (p *Pet) ApplyDecline() {
	p.tick++
	if p.tick%declineDivisor != 0 {
		return
	}
	if p.IsDead {
		return
	}

	// Passive stat movement depends on the sleep state. Awake pets burn
	// fullness and sleep; starvation doubles the happiness loss. Sleeping
	// pets regenerate sleep instead.
	if !p.IsSleeping {
		p.DecreaseFullness(p.FullnessRate)
		p.DecreaseSleep(p.SleepRate)
		loss := p.HappinessRate
		if p.Fullness <= 0 {
			loss *= 2
		}
		p.DecreaseHappiness(loss)
	} else {
		p.IncreaseSleep(p.SleepRate)
	}

	// Hunger check: starving pets lose health.
	if p.Fullness <= 0 {
		p.IsHungry = true
		p.DecreaseHealth(p.HealthRate)
	} else {
		p.IsHungry = false
	}

	p.IsHappy = p.Happiness > 0

	// Sleep boundaries: exhaustion costs health and forces rest; a full
	// sleep bar wakes the pet.
	if p.Sleep <= 0 {
		p.DecreaseHealth(p.HealthRate)
		p.Sleep = 0
		p.IsSleeping = true
	} else if p.Sleep >= p.MaxSleep {
		p.IsSleeping = false
	}

	if p.Health <= 0 {
		p.Health = 0
		p.IsDead = true
	}
}
