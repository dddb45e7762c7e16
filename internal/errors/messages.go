package errors

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage renders err as the notification shown to the player who
// triggered the action.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch GetCode(err) {
	case CodeNoActorAvailable:
		return "You don't control any character in this scene."
	case CodeAmbiguousActor:
		return "You control several characters. Select one with /select before acting."
	case CodeInvalidTarget:
		return "You can't attack yourself."
	case CodeUndefinedVariable:
		if name, ok := GetMeta(err)["variable"]; ok {
			return fmt.Sprintf("A damage formula uses the unknown variable @{%v}. Ask the GM to fix the formula settings.", name)
		}
		return "A damage formula uses an unknown variable. Ask the GM to fix the formula settings."
	case CodeMalformedExpression:
		return "A damage formula is malformed. Ask the GM to fix the formula settings."
	case CodeDivisionByZero:
		return "A damage formula divided by zero. Ask the GM to fix the formula settings."
	case CodeNoAuthorityAvailable:
		return "Could not apply the damage because no GM is online. Try the attack again later."
	case CodeCancelled:
		return "Action cancelled."
	case CodeInvalidArgument, CodeNotFound:
		var e *Error
		if errors.As(err, &e) {
			return capitalize(e.Message) + "."
		}
		return err.Error()
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
