package errors_test

import (
	"fmt"
	"testing"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := tgerr.UndefinedVariable("suc-cima")
	wrapped := tgerr.Wrap(base, "evaluate upperGuardDamageCalc").WithMeta("role", "upperGuardDamageCalc")

	assert.Equal(t, tgerr.CodeUndefinedVariable, tgerr.GetCode(wrapped))
	assert.Equal(t, "suc-cima", tgerr.GetMeta(wrapped)["variable"])
	assert.Equal(t, "upperGuardDamageCalc", tgerr.GetMeta(wrapped)["role"])
	assert.Nil(t, base.Meta["role"], "wrapping must not leak meta into the cause")
	assert.True(t, tgerr.IsFormulaError(wrapped))
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := tgerr.Wrap(fmt.Errorf("boom"), "context")

	assert.Equal(t, tgerr.CodeUnknown, tgerr.GetCode(wrapped))
	assert.Equal(t, "context: boom", wrapped.Error())
	assert.Nil(t, tgerr.Wrap(nil, "nothing"))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "self target",
			err:  tgerr.New(tgerr.CodeInvalidTarget, "caster targeted itself"),
			want: "You can't attack yourself.",
		},
		{
			name: "undefined variable names the key",
			err:  tgerr.Wrap(tgerr.UndefinedVariable("x"), "evaluate"),
			want: "A damage formula uses the unknown variable @{x}. Ask the GM to fix the formula settings.",
		},
		{
			name: "invalid argument shows its message",
			err:  tgerr.InvalidArgumentf("%s has no weapon equipped", "Kenji"),
			want: "Kenji has no weapon equipped.",
		},
		{
			name: "no authority",
			err:  tgerr.NoAuthorityAvailable("no subscribers"),
			want: "Could not apply the damage because no GM is online. Try the attack again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tgerr.UserMessage(tt.err))
		})
	}
}
