// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/privyhq/privy/internal/adapter"
	"github.com/privyhq/privy/internal/token"
)

// TokenNewModel is the Bubble Tea model for the new-identity screen. It
// generates a fresh bearer token locally, shows it once in display chunks,
// and registers the identity by making the first authenticated request. The
// server never learns the token itself, only its digest.
type TokenNewModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	secret     string
	genErr     string
	copied     bool
	submitting bool
	errMsg     string
}

// NewTokenNewModel creates a [TokenNewModel]. Token generation happens in
// Init so that re-entering the screen yields a new token.
func NewTokenNewModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *TokenNewModel {
	return &TokenNewModel{ctx: ctx, adapter: serverAdapter}
}

func (m *TokenNewModel) Init() tea.Cmd {
	secret, err := token.GenerateSecret()
	if err != nil {
		m.secret = ""
		m.genErr = "Could not gather enough randomness to mint a token"
		return nil
	}

	m.secret = secret
	m.genErr = ""
	m.copied = false
	m.submitting = false
	m.errMsg = ""
	return nil
}

// Update implements [tea.Model]. Handled messages:
//   - [AuthResult] — clears submitting state; on error, populates errMsg
//     (success is consumed by [RootModel] before it reaches this page).
//   - esc          — cancels and navigates back to the welcome screen.
//   - c            — copies the token to the system clipboard.
//   - enter        — registers the identity with the server.
func (m *TokenNewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeAuthError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.submitting = false
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: "welcome"} }
	case "c":
		if m.secret == "" {
			return m, nil
		}
		if err := clipboard.WriteAll(m.secret); err != nil {
			m.errMsg = "Copy failed: " + err.Error()
			return m, nil
		}
		m.copied = true
		m.errMsg = ""
	case "enter":
		if m.submitting || m.secret == "" {
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, cmdVerifyToken(m.ctx, m.adapter, m.secret)
	}

	return m, nil
}

func (m *TokenNewModel) View() string {
	var b strings.Builder

	if m.genErr != "" {
		b.WriteString(errorStyle.Render("ERROR: " + m.genErr))
		return renderPage("NEW IDENTITY", b.String(), "esc: back")
	}

	b.WriteString("This is your token. It is the ONLY way back into\n")
	b.WriteString("this identity. Save it before continuing.\n\n")

	for _, chunk := range token.FormatForDisplay(m.secret) {
		b.WriteString("  ")
		b.WriteString(tokenStyle.Render(chunk))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.copied {
		b.WriteString("Copied to clipboard\n")
	}
	if m.submitting {
		b.WriteString("Registering...\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("ERROR: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW IDENTITY", strings.TrimRight(b.String(), "\n"), "c: copy │ enter: continue │ esc: back")
}

// cmdVerifyToken stores the secret in the adapter and makes the first
// authenticated request. For a fresh secret the server provisions the
// identity; for a known one it simply resolves it.
func cmdVerifyToken(ctx context.Context, serverAdapter adapter.ServerAdapter, secret string) tea.Cmd {
	return func() tea.Msg {
		serverAdapter.SetSecret(secret)
		user, err := serverAdapter.GetMe(ctx)
		if err != nil {
			serverAdapter.SetSecret("")
			return AuthResult{Err: err}
		}
		return AuthResult{User: user}
	}
}
