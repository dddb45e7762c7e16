package entities

// Weapon is an equipped weapon's sheet data
type Weapon struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Block      int    `json:"block"`
	LowerRange int    `json:"lower_range"`
	UpperRange int    `json:"upper_range"`
}

// Armor is an equipped armor's sheet data
type Armor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Block int    `json:"block"`
}

// Mastery boosts a stat while a weapon of the matching type is equipped
type Mastery struct {
	WeaponType string   `json:"weapon_type"`
	Stat       StatName `json:"stat"`
	Modifier   int      `json:"modifier"`
}

// ModifierType says when a status modifier applies
type ModifierType string

const (
	// ModifierWhileActive applies on top of the stat while it lasts
	ModifierWhileActive ModifierType = "whileActive"
	// ModifierPermanent is folded into the stat's base on every tick
	ModifierPermanent ModifierType = "permanent"
)

// StatusModifier is a temporary or ticking change to one stat
type StatusModifier struct {
	Stat     StatName     `json:"stat"`
	Modifier int          `json:"modifier"`
	Type     ModifierType `json:"type"`
}
