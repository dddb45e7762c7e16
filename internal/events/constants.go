package events

// Event type constants
const (
	// Attack attempt lifecycle
	EventTypeAttackStarted    EventType = "attack_started"
	EventTypeAttackResolved   EventType = "attack_resolved"
	EventTypeAttackAborted    EventType = "attack_aborted"
	EventTypeAttackDispatched EventType = "attack_dispatched"

	// Authority side
	EventTypeDamageApplied EventType = "damage_applied"
	EventTypeStanceChanged EventType = "stance_changed"
	EventTypeStatsTicked   EventType = "stats_ticked"

	// Plain rolls
	EventTypeFreeRoll EventType = "free_roll"
)

// Priority levels for listener order
const (
	PriorityAudit   = 0   // Logging, tracing
	PriorityState   = 100 // Listeners that update state
	PriorityNotify  = 300 // Messages to players
	PriorityCleanup = 500
)
