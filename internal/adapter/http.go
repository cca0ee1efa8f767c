package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/privyhq/privy/internal/config"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/token"
	"github.com/privyhq/privy/internal/utils"
	"github.com/privyhq/privy/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	secret string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSecret implements [ServerAdapter]. The secret is normalised the same
// way the server normalises it, so the client-side copy always matches what
// travels on the wire.
func (h *httpServerAdapter) SetSecret(secret string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.secret = token.Normalize(secret)
}

// Secret implements [ServerAdapter]. It returns the bearer secret currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Secret() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.secret
}

// GetVersion implements [ServerAdapter]. It GETs the public
// GET /api/version endpoint and returns the plain-text build version.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// GetMe implements [ServerAdapter]. It GETs GET /api/me with the stored
// secret attached. For a secret the server has never seen this is the
// registration call: the identity is provisioned before the response is
// built. Returns [*RateLimitedError] on HTTP 429 and [ErrUnauthorized] on
// HTTP 401.
func (h *httpServerAdapter) GetMe(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/me")
	if err != nil {
		return models.User{}, fmt.Errorf("get me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// BurnAccount implements [ServerAdapter]. It sends DELETE /api/account.
// On success the server has already destroyed every record reachable from
// the identity; the stored secret is cleared so no further request can
// accidentally re-register it.
func (h *httpServerAdapter) BurnAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/account")
	if err != nil {
		return fmt.Errorf("burn account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetSecret("")
	return nil
}

// CreateChat implements [ServerAdapter]. It POSTs the new chat title to
// POST /api/chats and returns the created chat.
func (h *httpServerAdapter) CreateChat(ctx context.Context, req models.CreateChatRequest) (models.Chat, error) {
	var chat models.Chat

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&chat).
		Post("/api/chats")
	if err != nil {
		return models.Chat{}, fmt.Errorf("create chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Chat{}, err
	}

	return chat, nil
}

// ListChats implements [ServerAdapter]. It GETs GET /api/chats and decodes
// the response into a slice of [models.Chat], newest first.
func (h *httpServerAdapter) ListChats(ctx context.Context) ([]models.Chat, error) {
	resp, err := h.authedRequest(ctx).Get("/api/chats")
	if err != nil {
		return nil, fmt.Errorf("list chats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var chats []models.Chat
	if err = json.Unmarshal(resp.Body(), &chats); err != nil {
		return nil, fmt.Errorf("decode chats response: %w", err)
	}

	return chats, nil
}

// AppendMessage implements [ServerAdapter]. It POSTs the plaintext message
// to POST /api/chats/{chatID}/messages. Encryption happens server-side;
// the returned view echoes the plaintext parts.
func (h *httpServerAdapter) AppendMessage(ctx context.Context, chatID string, req models.AppendMessageRequest) (models.MessageView, error) {
	var view models.MessageView

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&view).
		Post("/api/chats/" + url.PathEscape(chatID) + "/messages")
	if err != nil {
		return models.MessageView{}, fmt.Errorf("append message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageView{}, err
	}

	return view, nil
}

// ListMessages implements [ServerAdapter]. It GETs
// GET /api/chats/{chatID}/messages and decodes the decrypted transcript,
// oldest first.
func (h *httpServerAdapter) ListMessages(ctx context.Context, chatID string) ([]models.MessageView, error) {
	resp, err := h.authedRequest(ctx).Get("/api/chats/" + url.PathEscape(chatID) + "/messages")
	if err != nil {
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var views []models.MessageView
	if err = json.Unmarshal(resp.Body(), &views); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}

	return views, nil
}

// SaveMemory implements [ServerAdapter]. It POSTs the plaintext memory
// entry to POST /api/memory.
func (h *httpServerAdapter) SaveMemory(ctx context.Context, req models.SaveMemoryRequest) (models.MemoryView, error) {
	var view models.MemoryView

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&view).
		Post("/api/memory")
	if err != nil {
		return models.MemoryView{}, fmt.Errorf("save memory request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MemoryView{}, err
	}

	return view, nil
}

// ListMemories implements [ServerAdapter]. It GETs GET /api/memory with an
// optional limit query parameter; limit <= 0 leaves the server default in
// place.
func (h *httpServerAdapter) ListMemories(ctx context.Context, limit int) ([]models.MemoryView, error) {
	req := h.authedRequest(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/memory")
	if err != nil {
		return nil, fmt.Errorf("list memories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var views []models.MemoryView
	if err = json.Unmarshal(resp.Body(), &views); err != nil {
		return nil, fmt.Errorf("decode memories response: %w", err)
	}

	return views, nil
}

// DeleteMemories implements [ServerAdapter]. It sends DELETE /api/memory,
// wiping every memory entry owned by the caller.
func (h *httpServerAdapter) DeleteMemories(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/memory")
	if err != nil {
		return fmt.Errorf("delete memories request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if secret := h.Secret(); secret != "" {
		req.SetHeader("x-privy-token", secret)
	}
	return req
}
