package authority

//go:generate mockgen -destination=mock/mock_dispatcher.go -package=mockauthority -source=dispatcher.go

import (
	"context"
	"log"
	"sync"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
)

// Dispatcher delivers a command to the authority and never retries.
// Transport failures and a missing authority are reported as
// NoAuthorityAvailable. A dispatcher that runs the command in-process returns
// the handler's own error unchanged.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd *Command) error
}

// Classify keeps the code of a dispatch failure that already carries one and
// reports anything else as NoAuthorityAvailable
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if tgerr.GetCode(err) != tgerr.CodeUnknown {
		return err
	}
	return tgerr.WrapWithCode(err, tgerr.CodeNoAuthorityAvailable, "authority unreachable")
}

// Handler applies commands on the authority side
type Handler interface {
	Execute(ctx context.Context, cmd *Command) error
}

// LocalDispatcher calls an in-process handler. It serves single-process
// deployments where the bot itself is the authority.
type LocalDispatcher struct {
	mu      sync.RWMutex
	handler Handler
}

// NewLocalDispatcher creates a dispatcher bound to handler, which may be nil
// until Attach is called
func NewLocalDispatcher(handler Handler) *LocalDispatcher {
	return &LocalDispatcher{handler: handler}
}

// Attach sets or replaces the handler. Nil detaches it.
func (d *LocalDispatcher) Attach(handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handler = handler
}

// Dispatch runs the command on the attached handler
func (d *LocalDispatcher) Dispatch(ctx context.Context, cmd *Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d.mu.RLock()
	handler := d.handler
	d.mu.RUnlock()

	if handler == nil {
		return tgerr.NoAuthorityAvailable("no authority is attached")
	}

	log.Printf("Authority: Dispatching %s %s locally", cmd.Kind, cmd.ID)
	return handler.Execute(ctx, cmd)
}
