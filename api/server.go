/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. RealIP:     Client address behind the store proxy
  3. Logging:    One logrus line per request (middleware.go)
  4. Recoverer:  Panic recovery (500 instead of crash)
  5. CORS:       Register terminal and back-office frontends
  6. Identity:   X-User-ID / X-User-Admin to cashdrop.Actor

ROUTE GROUPS:
  /api/cash-drops/*      Drop lifecycle
  /api/cash-drawers/*    Drawer reads
  /api/bank-drop/*       Batching reconciled drops
  /api/admin-settings    Cap, starting amount, picklists
  /api/denominations     Catalog
  /healthz               Liveness and store ping

SECURITY NOTE:
  Identity headers are trusted as sent. Put the server behind something
  that authenticates and sets them.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogging(h.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", HeaderUserID, HeaderAdmin},
		AllowCredentials: true,
	}))
	r.Use(Identity)

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/cash-drops", func(r chi.Router) {
			r.Get("/", h.ListDrops)
			r.Post("/", h.SaveDrop)
			r.Post("/validate", h.ValidateDrop)
			r.Post("/preview", h.PreviewDrop)
			r.Get("/{id}", h.GetDrop)
			r.Delete("/{id}", h.DeleteDrop)
			r.Patch("/{id}/status", h.PatchDropStatus)
		})

		r.Route("/cash-drawers", func(r chi.Router) {
			r.Get("/", h.ListDrawers)
			r.Get("/{id}", h.GetDrawer)
		})

		r.Route("/bank-drop", func(r chi.Router) {
			r.Get("/", h.BankDropCandidates)
			r.Post("/summary", h.BankDropSummary)
			r.Post("/mark-dropped", h.CommitBankDrop)
			r.Get("/history", h.BankDropHistory)
			r.Get("/batches/{number}", h.GetBatch)
		})

		r.Get("/admin-settings", h.GetSettings)
		r.Put("/admin-settings", h.UpdateSettings)
		r.Get("/denominations", h.ListDenominations)
	})

	return r
}
