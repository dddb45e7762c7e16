package formula

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"gopkg.in/yaml.v3"
)

// Role names a formula slot in the settings
type Role string

const (
	RoleUpperGuardDamage    Role = "upperGuardDamageCalc"
	RoleLowerGuardDamage    Role = "lowerGuardDamageCalc"
	RoleTotalDamage         Role = "totalDamageCalc"
	RoleDefenseWeaponResist Role = "defenseWeaponResistDamageCalc"
	RoleAttackWeaponResist  Role = "attackWeaponResistDamageCalc"
	RoleDefenseArmorResist  Role = "defenseArmorResistDamageCalc"
	RoleFullHealth          Role = "fullHealthCalc"
	RoleVitalAura           Role = "vitalAuraCalc"
	RoleDailyAura           Role = "dailyAuraCalc"
)

// Roles lists every formula slot in settings order
func Roles() []Role {
	return []Role{
		RoleUpperGuardDamage,
		RoleLowerGuardDamage,
		RoleTotalDamage,
		RoleDefenseWeaponResist,
		RoleAttackWeaponResist,
		RoleDefenseArmorResist,
		RoleFullHealth,
		RoleVitalAura,
		RoleDailyAura,
	}
}

// Binding names used by the default formulas
const (
	VarDamagePerSuccess  = "dano-suc"
	VarOrigDamagePerSucc = "orig-dano-suc"
	VarUpperSuccesses    = "suc-cima"
	VarLowerSuccesses    = "suc-baixo"
	VarUpperDamage       = "dano-cima"
	VarLowerDamage       = "dano-baixo"
	VarWeaponBlocked     = "dano-bloqueado-arma"
	VarArmorBlocked      = "dano-bloqueado-armadura"
	VarResistance        = "resistencia"
	VarForce             = "forca"
	VarNaturalEnergy     = "energia-natural"
	VarControl           = "controle"
)

// Set maps formula roles to expressions. It is configuration: load it once per
// resolution and treat it as read-only.
type Set map[Role]string

// DefaultSet returns the formulas a fresh world starts with
func DefaultSet() Set {
	return Set{
		RoleUpperGuardDamage:    "@{dano-suc} * @{suc-cima}",
		RoleLowerGuardDamage:    "floor(@{dano-suc} * @{suc-baixo} * 0.5)",
		RoleTotalDamage:         "@{dano-cima} + @{dano-baixo}",
		RoleDefenseWeaponResist: "floor(@{dano-bloqueado-arma} * @{suc-cima} + @{dano-bloqueado-arma} * @{suc-baixo} * 0.5)",
		RoleAttackWeaponResist:  "floor(@{orig-dano-suc} * 0.5)",
		RoleDefenseArmorResist:  "floor(@{dano-bloqueado-armadura} * @{suc-cima} + @{dano-bloqueado-armadura} * @{suc-baixo} * 0.5)",
		RoleFullHealth:          "(@{resistencia} + @{forca}) * 20",
		RoleVitalAura:           "(@{energia-natural} + @{controle}) * 20",
		RoleDailyAura:           "(@{energia-natural} + @{controle}) * 20",
	}
}

// Get returns the expression for role. A missing role means the stored
// settings are incomplete, so it is reported as a malformed formula rather
// than silently falling back to the default.
func (s Set) Get(role Role) (string, error) {
	expr, ok := s[role]
	if !ok {
		return "", tgerr.MalformedExpressionf("formula %s is not configured", role).
			WithMeta("role", string(role))
	}
	return expr, nil
}

// Eval evaluates the formula stored under role
func (s Set) Eval(evaluator Evaluator, role Role, bindings map[string]float64) (float64, error) {
	expr, err := s.Get(role)
	if err != nil {
		return 0, err
	}

	value, err := evaluator.Evaluate(expr, bindings)
	if err != nil {
		return 0, tgerr.Wrapf(err, "evaluate %s", role).
			WithMeta("role", string(role)).
			WithMeta("expression", expr)
	}
	return value, nil
}

// Merge returns a copy of s with overrides applied on top
func (s Set) Merge(overrides Set) Set {
	out := make(Set, len(s)+len(overrides))
	for role, expr := range s {
		out[role] = expr
	}
	for role, expr := range overrides {
		out[role] = expr
	}
	return out
}

// Validate checks that every formula parses. The first failing role, in name
// order, is reported.
func (s Set) Validate() error {
	roles := make([]string, 0, len(s))
	for role := range s {
		roles = append(roles, string(role))
	}
	sort.Strings(roles)

	for _, role := range roles {
		if err := Validate(s[Role(role)]); err != nil {
			return tgerr.Wrapf(err, "formula %s", role).WithMeta("role", role)
		}
	}
	return nil
}

// Encode renders the set as the opaque settings blob (base64 of JSON)
func (s Set) Encode() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal formulas: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode parses a settings blob produced by Encode
func Decode(blob string) (Set, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}

	var s Set
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal formulas: %w", err)
	}
	return s, nil
}

// fileFormat is the YAML override file layout
type fileFormat struct {
	Formulas map[string]string `yaml:"formulas"`
}

// LoadFile reads a YAML file of role overrides and merges them over the
// defaults. Every resulting formula must parse.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read formula file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML parses the override file contents, see LoadFile
func ParseYAML(data []byte) (Set, error) {
	var file fileFormat
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse formula file: %w", err)
	}

	overrides := make(Set, len(file.Formulas))
	for role, expr := range file.Formulas {
		overrides[Role(role)] = expr
	}

	merged := DefaultSet().Merge(overrides)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
