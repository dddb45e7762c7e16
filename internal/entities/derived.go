package entities

import (
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
)

// DerivedStats are the pool maxima computed from the formula settings
type DerivedStats struct {
	FullHealth int `json:"full_health"`
	VitalAura  int `json:"vital_aura"`
	DailyAura  int `json:"daily_aura"`
}

// CalculateDerivedStats evaluates the health and aura formulas for the actor
func (a *Actor) CalculateDerivedStats(set formula.Set, evaluator formula.Evaluator) (*DerivedStats, error) {
	health, err := set.Eval(evaluator, formula.RoleFullHealth, map[string]float64{
		formula.VarResistance: float64(a.FullStat(StatResistance)),
		formula.VarForce:      float64(a.FullStat(StatForce)),
	})
	if err != nil {
		return nil, err
	}

	auraBindings := map[string]float64{
		formula.VarNaturalEnergy: float64(a.FullStat(StatNaturalEnergy)),
		formula.VarControl:       float64(a.FullStat(StatControl)),
	}
	vital, err := set.Eval(evaluator, formula.RoleVitalAura, auraBindings)
	if err != nil {
		return nil, err
	}
	daily, err := set.Eval(evaluator, formula.RoleDailyAura, auraBindings)
	if err != nil {
		return nil, err
	}

	return &DerivedStats{
		FullHealth: formula.ToInt(health),
		VitalAura:  formula.ToInt(vital),
		DailyAura:  formula.ToInt(daily),
	}, nil
}

// ApplyDerivedStats sets the pool maxima, clamping current values. A pool
// that had no maximum yet starts full.
func (a *Actor) ApplyDerivedStats(stats *DerivedStats) {
	applyMax(&a.Health, stats.FullHealth)
	applyMax(&a.VitalAura, stats.VitalAura)
	applyMax(&a.DailyAura, stats.DailyAura)
}

// RefreshDerivedStats recomputes and applies the pool maxima
func (a *Actor) RefreshDerivedStats(set formula.Set, evaluator formula.Evaluator) error {
	stats, err := a.CalculateDerivedStats(set, evaluator)
	if err != nil {
		return err
	}
	a.ApplyDerivedStats(stats)
	return nil
}

func applyMax(pool *Pool, limit int) {
	fresh := pool.Max == 0
	pool.SetMax(limit)
	if fresh {
		pool.Heal(limit)
	}
}
