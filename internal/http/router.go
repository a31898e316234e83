package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stuartcarroll/chatextract/internal/http/handlers"
	"github.com/stuartcarroll/chatextract/internal/http/middleware"
)

// NewRouter wires the API surface. Auth endpoints are public; everything
// under /api passes the bearer-token resolver and the chat user gate.
func NewRouter(
	log *slog.Logger,
	h *handlers.Handler,
	auth middleware.Authenticator,
	gate middleware.Gate,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Metrics)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimw.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", h.Health)

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticate(auth))
		r.Use(middleware.RequireChatUser(gate))

		r.Route("/chats", func(r chi.Router) {
			r.Get("/", h.ListChats)
			r.Get("/{uuid}", h.GetChat)
			r.Get("/{uuid}/messages", h.ChatMessages)
			r.Patch("/{uuid}", h.RenameChat)
			r.Delete("/{uuid}", h.DeleteChat)
			r.Post("/{uuid}/restore", h.RestoreChat)
			r.Delete("/{uuid}/purge", h.PurgeChat)
			r.Put("/{uuid}/tags", h.SetChatTags)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", h.ListTags)
			r.Post("/", h.CreateTag)
			r.Patch("/{id}", h.UpdateTag)
			r.Delete("/{id}", h.DeleteTag)
		})

		r.Route("/imports", func(r chi.Router) {
			r.Get("/", h.ListImports)
			r.Post("/", h.UploadImport)
			r.Get("/{uuid}", h.GetImport)
			r.Post("/{uuid}/retry", h.RetryImport)
		})
	})

	return r
}
