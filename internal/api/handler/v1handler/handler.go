// Package v1handler implements the JSON API consumed by the registration
// front end and the operator console.
package v1handler

import (
	"context"
	"net/http"
	"registrar/internal/attachment"
	"registrar/internal/config"
	"registrar/internal/pricing"
	"registrar/internal/registration"
	"time"

	"github.com/go-chi/chi/v5"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Registrations registration.Service
	Attachments   attachment.Service
	Pricing       pricing.Service
	// Health is checked by the health endpoint. It may be nil.
	Health Pinger
}

type Options struct {
	// CookieName is the name of the session cookie.
	CookieName string
	// CookieSecure marks the session cookie HTTPS only.
	CookieSecure bool
	// SessionTTL bounds the session cookie lifetime.
	SessionTTL time.Duration
	// MaxUploadSize is the largest accepted attachment in bytes.
	MaxUploadSize int64
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		CookieName:    cfg.Session.CookieName,
		CookieSecure:  cfg.Session.Secure,
		SessionTTL:    cfg.Session.TTL,
		MaxUploadSize: cfg.Uploads.MaxSize,
	}
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	if options.CookieName == "" {
		options.CookieName = "mterms.sid"
	}

	return &Handler{deps: deps, options: options}
}

// Routes returns the API router. Operator routes are gated by sec.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.Health)

	r.Route("/registrations", func(r chi.Router) {
		r.Post("/", h.CreateRegistration)
		r.Get("/lookup", h.LookupRegistrations)
		r.Get("/check", h.CheckRegistration)
		r.Put("/update", h.UpdateRegistration)
	})

	r.Route("/uploads", func(r chi.Router) {
		r.Post("/", h.Upload)
		r.Get("/history", h.UploadHistory)
		r.Get("/download/{id}", h.Download)
	})

	r.Get("/pricing/table", h.PricingTable)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(sec.RequireOperator(h))
		r.Get("/registrations", h.SearchRegistrations)
		r.Get("/registrations/{id}", h.GetRegistration)
		r.Put("/registrations/{id}", h.AdminUpdateRegistration)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Code: "NOT_FOUND", Message: "route not found"})
	})

	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.deps.Health != nil {
		if err := h.deps.Health.Ping(r.Context()); err != nil {
			h.writeError(w, r, err)

			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
