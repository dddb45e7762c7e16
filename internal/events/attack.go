package events

import (
	"github.com/KirkDiggler/togarashi-bot/internal/damage"
	"github.com/KirkDiggler/togarashi-bot/internal/dice"
	"github.com/KirkDiggler/togarashi-bot/internal/entities"
)

// AttackStartedEvent fires when a player starts an attack attempt
type AttackStartedEvent struct {
	BaseEvent
	AttemptID string
	UserID    string
}

// AttackResolvedEvent fires once dice and damage are known, before dispatch
type AttackResolvedEvent struct {
	BaseEvent
	AttemptID string
	Caster    *entities.Actor
	Target    *entities.Actor
	Outcome   *dice.AttackOutcome
	Result    *damage.Result
}

// AttackAbortedEvent fires when an attempt ends without dispatching
type AttackAbortedEvent struct {
	BaseEvent
	AttemptID string
	UserID    string
	// State is the state the attempt was in when it stopped
	State string
	Err   error
}

// AttackDispatchedEvent fires after the authority accepted the command
type AttackDispatchedEvent struct {
	BaseEvent
	AttemptID string
	CommandID string
}

// DamageAppliedEvent fires on the authority after a target lost health
type DamageAppliedEvent struct {
	BaseEvent
	CommandID    string
	CasterID     string
	TargetID     string
	TargetName   string
	Damage       int
	HealthBefore int
	HealthAfter  int
	ApplyEffects bool
}

// StanceChangedEvent fires on the authority when a defensive stance changes
type StanceChangedEvent struct {
	BaseEvent
	ActorID     string
	ActorName   string
	WeaponBlock bool
	AuraShield  entities.AuraShield
}

// StatsTickedEvent fires on the authority after permanent modifiers were
// folded into an actor's stats and the pool maxima recomputed
type StatsTickedEvent struct {
	BaseEvent
	ActorID   string
	ActorName string
	Health    entities.Pool
	VitalAura entities.Pool
	DailyAura entities.Pool
}

// FreeRollEvent fires after a free roll
type FreeRollEvent struct {
	BaseEvent
	UserID  string
	ActorID string
	Outcome *dice.GuardOutcome
}
