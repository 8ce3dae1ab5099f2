package service

import (
	"context"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

// CommandDispatcherService implements ports.CommandDispatcher over an
// explicit handler registry.
type CommandDispatcherService struct {
	handlers map[domain.CommandName]ports.CommandHandler
	log      zerolog.Logger
}

// NewCommandDispatcher creates a dispatcher with no handlers registered.
func NewCommandDispatcher(log zerolog.Logger) *CommandDispatcherService {
	return &CommandDispatcherService{
		handlers: make(map[domain.CommandName]ports.CommandHandler),
		log:      log,
	}
}

// Register binds handler to the command name, replacing any previous one.
// Registration happens during wiring only.
func (d *CommandDispatcherService) Register(name domain.CommandName, handler ports.CommandHandler) {
	d.handlers[name] = handler
}

func (d *CommandDispatcherService) Dispatch(ctx context.Context, cmd domain.Command) error {
	h, ok := d.handlers[cmd.Name()]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNoHandler, cmd.Name())
	}

	d.log.Debug().Str("command", string(cmd.Name())).Msg("dispatching command")
	if err := h.Handle(ctx, cmd); err != nil {
		return fmt.Errorf("handle %s: %w", cmd.Name(), err)
	}
	return nil
}
