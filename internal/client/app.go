package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/privyhq/privy/internal/adapter"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/tui"
)

type App struct {
	adapter adapter.ServerAdapter
	tui     *tui.TUI
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || ui == nil {
		return nil, errors.New("adapter and tui are required")
	}
	return &App{adapter: serverAdapter, tui: ui, logger: logger}, nil
}

// Run drives the whole client session: the token flow resolves an identity,
// the main loop works with it, and a burned identity loops back to the token
// flow so the person can mint a fresh one.
func (a *App) Run() error {
	ctx := context.Background()

	// Connectivity probe. A dead server is friendlier to report here than
	// from inside the token screen.
	if version, err := a.adapter.GetVersion(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server not reachable yet")
	} else {
		a.logger.Debug().Str("server_version", version).Msg("connected")
	}

	user, err := a.tui.TokenFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("token flow: %w", err)
	}

	burned, err := a.tui.MainLoop(ctx, user)
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	if burned {
		return a.Run()
	}

	return nil
}
