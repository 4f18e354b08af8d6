package v1handler

import (
	"encoding/json"
	"net/http"
	"registrar/internal/registration"
	"registrar/pkg/domain"
	"registrar/pkg/serrors"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type AdminUpdateRequest struct {
	Updates json.RawMessage `json:"updates"`
}

func (h *Handler) SearchRegistrations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := optionalInt(q.Get("page"), "page")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	limit, err := optionalInt(q.Get("limit"), "limit")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Registrations.Search(r.Context(), q.Get("q"), page, limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) GetRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := registrationID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	reg, err := h.deps.Registrations.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, reg)
}

func (h *Handler) AdminUpdateRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := registrationID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req AdminUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	patch, err := registration.DecodeAdminPatch(req.Updates)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	reg, err := h.deps.Registrations.AdminUpdate(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, reg)
}

// registrationID parses the {id} path parameter. Malformed IDs cannot name a
// registration and are reported as not found.
func registrationID(r *http.Request) (domain.RegistrationID, error) {
	id, err := domain.ParseRegistrationID(chi.URLParam(r, "id"))
	if err != nil {
		return domain.RegistrationID{}, serrors.With(serrors.ErrNotFound, "registration not found")
	}

	return id, nil
}

func optionalInt(raw, field string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serrors.Invalid(field, "must be an integer")
	}

	return v, nil
}
