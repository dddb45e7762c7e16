package prompt

import (
	"context"
	"strconv"
	"strings"

	"github.com/KirkDiggler/togarashi-bot/internal/dice"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
)

// Field names carried in a response
const (
	FieldDamageType          = "damage_type"
	FieldSecondaryDamageType = "secondary_damage_type"
	FieldAccuracy            = "accuracy"
	FieldCritical            = "critical"
	FieldDamage              = "damage"
	FieldApplyEffects        = "apply_effects"

	FieldAura = "aura"
	FieldType = "type"

	FieldNumberDice = "number_dice"
	FieldDifficulty = "difficulty"
	FieldModifier   = "modifier"
)

// DefaultCritical is the face that counts double unless the player says otherwise
const DefaultCritical = 10

// AttackOptions are the player's choices for one attack
type AttackOptions struct {
	DamageType          string
	SecondaryDamageType string
	Accuracy            int
	Critical            int
	// Damage is the damage per success
	Damage       int
	ApplyEffects bool
	Cancelled    bool
}

// Aura colours and shield shapes
const (
	AuraNormal = "normal"
	AuraOrange = "orange"

	ShieldLocalized = "localized"
	ShieldFullBody  = "fullBody"
)

// AuraShieldOptions are the player's choices for raising an aura shield
type AuraShieldOptions struct {
	Aura      string
	Type      string
	Cancelled bool
}

// FullBody reports whether the shield covers the whole body
func (o *AuraShieldOptions) FullBody() bool {
	return o.Type == ShieldFullBody
}

// Orange reports whether the shield uses orange aura
func (o *AuraShieldOptions) Orange() bool {
	return o.Aura == AuraOrange
}

// RollOptions are the inputs of a free roll
type RollOptions struct {
	NumberDice int
	Difficulty int
	Modifier   int
	Cancelled  bool
}

// AttackOptions asks the player how to attack
func (b *Broker) AttackOptions(ctx context.Context, req *Request) (*AttackOptions, error) {
	req.Kind = KindAttackOptions
	resp, err := b.Ask(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Cancelled {
		return &AttackOptions{Cancelled: true}, nil
	}
	return ParseAttackOptions(resp.Values)
}

// AuraShieldOptions asks the player how to shape their aura shield
func (b *Broker) AuraShieldOptions(ctx context.Context, req *Request) (*AuraShieldOptions, error) {
	req.Kind = KindAuraShieldOptions
	resp, err := b.Ask(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Cancelled {
		return &AuraShieldOptions{Cancelled: true}, nil
	}
	return ParseAuraShieldOptions(resp.Values)
}

// RollOptions asks the player what to roll
func (b *Broker) RollOptions(ctx context.Context, req *Request) (*RollOptions, error) {
	req.Kind = KindRollOptions
	resp, err := b.Ask(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Cancelled {
		return &RollOptions{Cancelled: true}, nil
	}
	return ParseRollOptions(resp.Values)
}

// ParseAttackOptions reads attack choices. The damage type is required; the
// secondary type falls back to it.
func ParseAttackOptions(values map[string]string) (*AttackOptions, error) {
	opts := &AttackOptions{
		DamageType:          strings.TrimSpace(values[FieldDamageType]),
		SecondaryDamageType: strings.TrimSpace(values[FieldSecondaryDamageType]),
	}
	if opts.DamageType == "" {
		return nil, tgerr.InvalidArgument("damage type is required")
	}
	if opts.SecondaryDamageType == "" {
		opts.SecondaryDamageType = opts.DamageType
	}

	var err error
	if opts.Accuracy, err = intField(values, FieldAccuracy, 0); err != nil {
		return nil, err
	}
	if opts.Critical, err = intField(values, FieldCritical, DefaultCritical); err != nil {
		return nil, err
	}
	if opts.Critical < 1 {
		return nil, tgerr.InvalidArgument("critical must be at least 1")
	}
	if opts.Damage, err = intField(values, FieldDamage, 0); err != nil {
		return nil, err
	}
	if opts.Damage < 0 {
		return nil, tgerr.InvalidArgument("damage per success cannot be negative")
	}
	if opts.ApplyEffects, err = boolField(values, FieldApplyEffects); err != nil {
		return nil, err
	}

	return opts, nil
}

// ParseAuraShieldOptions reads aura shield choices, defaulting to a normal
// localized shield
func ParseAuraShieldOptions(values map[string]string) (*AuraShieldOptions, error) {
	opts := &AuraShieldOptions{
		Aura: strings.TrimSpace(values[FieldAura]),
		Type: strings.TrimSpace(values[FieldType]),
	}
	if opts.Aura == "" {
		opts.Aura = AuraNormal
	}
	if opts.Type == "" {
		opts.Type = ShieldLocalized
	}

	if opts.Aura != AuraNormal && opts.Aura != AuraOrange {
		return nil, tgerr.InvalidArgumentf("unknown aura %q", opts.Aura)
	}
	if opts.Type != ShieldLocalized && opts.Type != ShieldFullBody {
		return nil, tgerr.InvalidArgumentf("unknown shield type %q", opts.Type)
	}

	return opts, nil
}

// ParseRollOptions reads free roll inputs
func ParseRollOptions(values map[string]string) (*RollOptions, error) {
	opts := &RollOptions{}

	var err error
	if opts.NumberDice, err = intField(values, FieldNumberDice, 0); err != nil {
		return nil, err
	}
	if opts.Difficulty, err = intField(values, FieldDifficulty, 0); err != nil {
		return nil, err
	}
	if opts.Modifier, err = intField(values, FieldModifier, 0); err != nil {
		return nil, err
	}

	if opts.NumberDice < 0 {
		return nil, tgerr.InvalidArgument("number of dice cannot be negative")
	}
	if opts.NumberDice > dice.MaxDice {
		return nil, tgerr.InvalidArgumentf("number of dice cannot exceed %d", dice.MaxDice)
	}
	if opts.Difficulty < 1 {
		return nil, tgerr.InvalidArgument("difficulty must be at least 1")
	}

	return opts, nil
}

func intField(values map[string]string, field string, fallback int) (int, error) {
	raw := strings.TrimSpace(values[field])
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, tgerr.InvalidArgumentf("%s must be a whole number", field).WithMeta("value", raw)
	}
	return n, nil
}

func boolField(values map[string]string, field string) (bool, error) {
	raw := strings.TrimSpace(values[field])
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, tgerr.InvalidArgumentf("%s must be true or false", field).WithMeta("value", raw)
	}
	return v, nil
}
