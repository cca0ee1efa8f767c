// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/privyhq/privy/internal/adapter"
	"github.com/privyhq/privy/internal/token"
)

// TokenEnterModel is the Bubble Tea model for the paste-token screen. The
// input is masked so the token never sits readable on screen; pasted
// whitespace and display-chunk spacing are normalised away before
// validation.
type TokenEnterModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	input      textinput.Model
	submitting bool
	errMsg     string
}

func NewTokenEnterModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *TokenEnterModel {
	input := textinput.New()
	input.Placeholder = "64 hex characters"
	input.CharLimit = 128
	input.Width = 66
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &TokenEnterModel{ctx: ctx, adapter: serverAdapter, input: input}
}

func (m *TokenEnterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [AuthResult] — clears submitting state; on error, populates errMsg.
//   - esc          — cancels and navigates back to the welcome screen.
//   - enter        — validates the token format and dispatches verification.
//
// All other key events are forwarded to the input widget.
func (m *TokenEnterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeAuthError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.input.SetValue("")
			return m, func() tea.Msg { return NavigateTo{Page: "welcome"} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			secret := token.Normalize(m.input.Value())
			if !token.IsValidFormat(secret) {
				m.errMsg = "A token is exactly 64 hex characters"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, cmdVerifyToken(m.ctx, m.adapter, secret)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *TokenEnterModel) View() string {
	var b strings.Builder

	b.WriteString("Paste your token:\n\n")
	b.WriteString("[")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\nVerifying...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("ERROR: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ENTER TOKEN", strings.TrimRight(b.String(), "\n"), "enter: verify │ esc: back")
}
