// Package authority carries state-changing commands from players to the one
// process allowed to mutate game state, and applies them there.
package authority

import (
	"github.com/KirkDiggler/togarashi-bot/internal/damage"
	"github.com/KirkDiggler/togarashi-bot/internal/dice"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
)

// Kind names a remote procedure on the authority
type Kind string

const (
	KindExecuteDamageFromAttack Kind = "execute_damage_from_attack"
	KindSetWeaponBlock          Kind = "set_weapon_block"
	KindSetAuraShield           Kind = "set_aura_shield"
	// KindTickStatusModifiers folds the caster's permanent modifiers into
	// their stats and recomputes the pool maxima
	KindTickStatusModifiers Kind = "tick_status_modifiers"
)

// Command is the envelope sent to the authority
type Command struct {
	ID       string `json:"id"`
	Kind     Kind   `json:"kind"`
	IssuedBy string `json:"issued_by"`
	CasterID string `json:"caster_id"`
	TargetID string `json:"target_id,omitempty"`

	// Attack payload
	Outcome      *dice.AttackOutcome `json:"outcome,omitempty"`
	Damage       *damage.Result      `json:"damage,omitempty"`
	DamageTypes  damage.TypePair     `json:"damage_types"`
	ApplyEffects bool                `json:"apply_effects"`

	// Stance payload
	Active   bool `json:"active"`
	FullBody bool `json:"full_body"`
	Orange   bool `json:"orange"`

	// Trace holds the propagated trace context of the sender
	Trace map[string]string `json:"trace,omitempty"`
}

// Validate checks the command carries what its kind needs
func (c *Command) Validate() error {
	if c == nil {
		return tgerr.InvalidArgument("command cannot be nil")
	}
	if c.CasterID == "" {
		return tgerr.InvalidArgument("command needs a caster")
	}

	switch c.Kind {
	case KindExecuteDamageFromAttack:
		if c.TargetID == "" {
			return tgerr.InvalidArgument("attack command needs a target")
		}
		if c.Damage == nil {
			return tgerr.InvalidArgument("attack command needs a damage result")
		}
	case KindSetWeaponBlock, KindSetAuraShield, KindTickStatusModifiers:
	default:
		return tgerr.InvalidArgumentf("unknown command kind %q", c.Kind)
	}

	return nil
}
