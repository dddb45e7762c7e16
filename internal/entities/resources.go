package entities

// Pool tracks a depletable resource such as health or aura
type Pool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Damage removes amount from the pool, never going below zero. It returns how
// much was actually removed.
func (p *Pool) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}

	before := p.Current
	p.Current -= amount
	if p.Current < 0 {
		p.Current = 0
	}

	return before - p.Current
}

// Heal restores the pool up to max
func (p *Pool) Heal(amount int) int {
	if amount <= 0 || p.Current >= p.Max {
		return 0
	}

	before := p.Current
	p.Current += amount
	if p.Current > p.Max {
		p.Current = p.Max
	}

	return p.Current - before
}

// SetMax changes the maximum and clamps the current value to it
func (p *Pool) SetMax(limit int) {
	p.Max = limit
	if p.Current > limit {
		p.Current = limit
	}
}
