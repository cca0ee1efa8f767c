// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privyhq/privy/internal/config"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/models"
)

const testSecret = "abababababababababababababababababababababababababababababababab"

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.NewClientLogger("test")
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}

	a, err := NewHTTPServerAdapter(adapterCfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.NewClientLogger("test"))
	require.Error(t, err)
}

func TestSetSecret_Normalizes(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")

	a.SetSecret("  " + strings.ToUpper(testSecret) + "  ")

	assert.Equal(t, testSecret, a.Secret())
}

// ── GetVersion ───────────────────────────────────────────────────────────────

func TestGetVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("x-privy-token"))

		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

// ── GetMe ────────────────────────────────────────────────────────────────────

func TestGetMe_Success(t *testing.T) {
	want := models.User{UserID: "u-1", Plan: "free"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/me", r.URL.Path)
		assert.Equal(t, testSecret, r.Header.Get("x-privy-token"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)
	got, err := a.GetMe(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Plan, got.Plan)
}

func TestGetMe_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)
	_, err := a.GetMe(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetMe_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(models.RateLimitedResponse{
			Error: "too many new identities",
			Count: 6,
			Limit: 5,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)
	_, err := a.GetMe(context.Background())

	require.Error(t, err)

	var rl *RateLimitedError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, 6, rl.Count)
	assert.Equal(t, 5, rl.Limit)
}

func TestGetMe_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)
	_, err := a.GetMe(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

// ── BurnAccount ──────────────────────────────────────────────────────────────

func TestBurnAccount_ClearsSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/account", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)

	require.NoError(t, a.BurnAccount(context.Background()))
	assert.Empty(t, a.Secret())
}

func TestBurnAccount_ServerError_KeepsSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)

	err := a.BurnAccount(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, testSecret, a.Secret())
}

// ── Chats ────────────────────────────────────────────────────────────────────

func TestCreateChat_Success(t *testing.T) {
	want := models.Chat{ChatID: "c-1", Title: "evening check-in"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chats", r.URL.Path)

		var req models.CreateChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, want.Title, req.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)
	got, err := a.CreateChat(context.Background(), models.CreateChatRequest{Title: want.Title})

	require.NoError(t, err)
	assert.Equal(t, want.ChatID, got.ChatID)
}

func TestListChats_Success(t *testing.T) {
	want := []models.Chat{{ChatID: "c-2", Title: "new"}, {ChatID: "c-1", Title: "old"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)
	got, err := a.ListChats(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c-2", got[0].ChatID)
}

func TestAppendMessage_ChatNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chats/c-404/messages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "chat not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)
	_, err := a.AppendMessage(context.Background(), "c-404", models.AppendMessageRequest{
		Role:  "user",
		Parts: []models.MessagePart{{Type: "text", Text: "hello"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMessages_Success(t *testing.T) {
	want := []models.MessageView{
		{MessageID: "m-1", Role: "user", Parts: []models.MessagePart{{Type: "text", Text: "hi"}}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chats/c-1/messages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)
	got, err := a.ListMessages(context.Background(), "c-1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hi", got[0].Parts[0].Text)
}

// ── Memory ───────────────────────────────────────────────────────────────────

func TestSaveMemory_Success(t *testing.T) {
	want := models.MemoryView{MemoryID: "mem-1", Content: "prefers mornings", ContentType: "insight"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/memory", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)
	got, err := a.SaveMemory(context.Background(), models.SaveMemoryRequest{Content: want.Content})

	require.NoError(t, err)
	assert.Equal(t, want.MemoryID, got.MemoryID)
}

func TestListMemories_LimitParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/memory", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.MemoryView{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)
	_, err := a.ListMemories(context.Background(), 10)

	require.NoError(t, err)
}

func TestListMemories_NoLimitParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("limit"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.MemoryView{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)
	_, err := a.ListMemories(context.Background(), 0)

	require.NoError(t, err)
}

func TestDeleteMemories_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/memory", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetSecret(testSecret)

	require.NoError(t, a.DeleteMemories(context.Background()))
}
