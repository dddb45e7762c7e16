package discord

import (
	"strings"

	"github.com/KirkDiggler/togarashi-bot/internal/prompt"
)

// Custom ID format: "context:action:data..."
const (
	contextPrompt = "prompt"
	contextAttack = "attack"

	actionOpen          = "open"
	actionOpenEffects   = "open_effects"
	actionSubmit        = "submit"
	actionSubmitEffects = "submit_effects"
	actionCancel        = "cancel"
)

// customID is a parsed component or modal ID
type customID struct {
	Context string
	Action  string
	Data    []string
}

func parseCustomID(raw string) (*customID, bool) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, false
	}
	return &customID{Context: parts[0], Action: parts[1], Data: parts[2:]}, true
}

// arg returns the n-th data part, empty when missing
func (c *customID) arg(n int) string {
	if n < len(c.Data) {
		return c.Data[n]
	}
	return ""
}

func promptID(action string, kind prompt.Kind, token string) string {
	return strings.Join([]string{contextPrompt, action, string(kind), token}, ":")
}

func cancelAttackID(attemptID string) string {
	return strings.Join([]string{contextAttack, actionCancel, attemptID}, ":")
}
