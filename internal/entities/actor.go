package entities

import "slices"

// StatName identifies a character stat
type StatName string

const (
	StatForce         StatName = "force"
	StatResistance    StatName = "resistance"
	StatDexterity     StatName = "dexterity"
	StatIntuition     StatName = "intuition"
	StatNaturalEnergy StatName = "naturalEnergy"
	StatControl       StatName = "control"
	StatBlock         StatName = "block"
	StatLowerRange    StatName = "lowerRange"
	StatUpperRange    StatName = "upperRange"
)

// Stat is a base value plus a flat sheet modifier
type Stat struct {
	Base     int `json:"base"`
	Modifier int `json:"modifier"`
}

// Value returns base plus modifier
func (s Stat) Value() int {
	return s.Base + s.Modifier
}

// AuraShield is the defensive aura stance set by the authority
type AuraShield struct {
	Active   bool `json:"active"`
	FullBody bool `json:"full_body"`
	Orange   bool `json:"orange"`
}

// Actor is a character or creature on the table
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// ControllerIDs are the players allowed to act as this actor
	ControllerIDs []string `json:"controller_ids"`

	Experience int               `json:"experience"`
	Stats      map[StatName]Stat `json:"stats"`
	Health     Pool              `json:"health"`
	VitalAura  Pool              `json:"vital_aura"`
	DailyAura  Pool              `json:"daily_aura"`
	Weapon     *Weapon           `json:"weapon,omitempty"`
	Armor      *Armor            `json:"armor,omitempty"`
	Masteries  []Mastery         `json:"masteries,omitempty"`
	Modifiers  []StatusModifier  `json:"modifiers,omitempty"`

	// Resistances lists damage types whose per-success damage is reduced
	Resistances []string `json:"resistances,omitempty"`

	WeaponBlockActive bool       `json:"weapon_block_active"`
	AuraShield        AuraShield `json:"aura_shield"`

	// PendingEffects counts attacks applied with effects that still need GM review
	PendingEffects int `json:"pending_effects"`
}

// IsControlledBy reports whether userID may act as this actor
func (a *Actor) IsControlledBy(userID string) bool {
	return slices.Contains(a.ControllerIDs, userID)
}

// Resists reports whether the actor resists damageType
func (a *Actor) Resists(damageType string) bool {
	return damageType != "" && slices.Contains(a.Resistances, damageType)
}

// Stat returns the raw stat, zero when unset
func (a *Actor) Stat(name StatName) Stat {
	if a.Stats == nil {
		return Stat{}
	}
	return a.Stats[name]
}

// FullStat returns the stat with masteries for the equipped weapon and
// while-active modifiers applied
func (a *Actor) FullStat(name StatName) int {
	total := a.Stat(name).Value()

	for _, m := range a.ApplicableMasteries() {
		if m.Stat == name {
			total += m.Modifier
		}
	}

	for _, mod := range a.Modifiers {
		if mod.Type == ModifierWhileActive && mod.Stat == name {
			total += mod.Modifier
		}
	}

	return total
}

// ApplicableMasteries returns masteries matching the equipped weapon type
func (a *Actor) ApplicableMasteries() []Mastery {
	if a.Weapon == nil {
		return nil
	}

	var out []Mastery
	for _, m := range a.Masteries {
		if m.WeaponType == a.Weapon.Type {
			out = append(out, m)
		}
	}
	return out
}

// TickStatusModifiers folds permanent modifiers into their stat's base value
func (a *Actor) TickStatusModifiers() {
	for _, mod := range a.Modifiers {
		if mod.Type != ModifierPermanent {
			continue
		}
		if a.Stats == nil {
			a.Stats = make(map[StatName]Stat)
		}
		stat := a.Stats[mod.Stat]
		stat.Base += mod.Modifier
		a.Stats[mod.Stat] = stat
	}
}

// Guards returns the lower and upper guard thresholds an attacker has to beat
func (a *Actor) Guards() (lower, upper int) {
	resistance := a.Stat(StatResistance).Value()
	dexterity := a.Stat(StatDexterity).Value()

	lower = resistance + a.Experience
	upper = resistance + dexterity + a.Experience
	return lower, upper
}

// Ranges returns the lower and upper attack ranges including the weapon
func (a *Actor) Ranges() (lower, upper int) {
	lower = a.FullStat(StatLowerRange)
	upper = a.FullStat(StatUpperRange)
	if a.Weapon != nil {
		lower += a.Weapon.LowerRange
		upper += a.Weapon.UpperRange
	}
	return lower, upper
}
