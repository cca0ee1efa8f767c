package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/privyhq/privy/internal/adapter"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{adapter: serverAdapter, buildInfo: buildInfo}, nil
}

// TokenFlow runs the welcome flow: generate a fresh bearer token or paste an
// existing one, then verify it against the server. It blocks until the flow
// finishes and returns the resolved identity.
func (t *TUI) TokenFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"welcome": NewWelcomeModel(),
		"new":     NewTokenNewModel(ctx, t.adapter),
		"enter":   NewTokenEnterModel(ctx, t.adapter),
	}

	root := NewRootModel(pages, "welcome", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the chats/memory screen until the user quits or burns the
// account. Returns burned=true when the identity was destroyed so the caller
// can restart the token flow.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (burned bool, err error) {
	model := newMainLoopModel(ctx, t.adapter, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.burned, nil
}
