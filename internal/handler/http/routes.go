package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authentication
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// everything below resolves the caller's identity first
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/me", h.getMe)
		r.Delete("/api/account", h.burnAccount)

		r.Post("/api/chats", h.createChat)
		r.Get("/api/chats", h.listChats)
		r.Get("/api/chats/{chatID}/messages", h.listMessages)
		r.Post("/api/chats/{chatID}/messages", h.appendMessage)

		r.Get("/api/memory", h.listMemories)
		r.Post("/api/memory", h.saveMemory)
		r.Delete("/api/memory", h.deleteMemories)
	})

	return router
}
