package v1handler

import (
	"net/http"
	"registrar/pkg/logger"
	"time"

	"go.uber.org/zap"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` //nolint: gosec
}

type LoginResponse struct {
	OK      bool   `json:"ok"`
	RegCode string `json:"regCode"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	sess, err := h.deps.Registrations.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	http.SetCookie(w, h.sessionCookie(sess.ID, sess.ExpiresAt))
	writeJSON(w, http.StatusOK, LoginResponse{OK: true, RegCode: sess.RegCode})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.options.CookieName); err == nil {
		if err := h.deps.Registrations.Logout(r.Context(), c.Value); err != nil {
			// the cookie is cleared regardless
			logger.Warn(r.Context(), "could not end session", zap.Error(err))
		}
	}

	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	var sessionID string
	if c, err := r.Cookie(h.options.CookieName); err == nil {
		sessionID = c.Value
	}

	reg, err := h.deps.Registrations.Session(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, reg)
}

func (h *Handler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.options.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.options.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
