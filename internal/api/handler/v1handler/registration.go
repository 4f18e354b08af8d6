package v1handler

import (
	"encoding/json"
	"net/http"
	"registrar/internal/registration"
	"registrar/pkg/domain"
)

const createdMessage = "Registration saved (payment pending)."

type CreateRegistrationResponse struct {
	OK      bool   `json:"ok"`
	RegCode string `json:"regCode"`
	// Amount is the frozen total due.
	Amount   int64        `json:"amount"`
	Currency string       `json:"currency"`
	Phase    domain.Phase `json:"phase"`
	// StudentProof is empty for non-student registrations.
	StudentProof any    `json:"studentProof"`
	Message      string `json:"message"`
}

type LookupResponse struct {
	Count int                    `json:"count"`
	Rows  []registration.Summary `json:"rows"`
}

type UpdateRegistrationRequest struct {
	RegCode string          `json:"regCode"`
	Email   string          `json:"email"`
	Updates json.RawMessage `json:"updates"`
}

func (h *Handler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	var in registration.CreateInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)

		return
	}

	reg, err := h.deps.Registrations.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var proof any = struct{}{}
	if reg.Category == domain.CategoryStudent {
		proof = reg.StudentProof
	}

	writeJSON(w, http.StatusOK, CreateRegistrationResponse{
		OK:           true,
		RegCode:      reg.RegCode,
		Amount:       reg.PricingSnapshot.Total,
		Currency:     reg.PricingSnapshot.Currency,
		Phase:        reg.PricingSnapshot.Phase,
		StudentProof: proof,
		Message:      createdMessage,
	})
}

func (h *Handler) LookupRegistrations(w http.ResponseWriter, r *http.Request) {
	rows, err := h.deps.Registrations.Lookup(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, LookupResponse{Count: len(rows), Rows: rows})
}

func (h *Handler) CheckRegistration(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	reg, err := h.deps.Registrations.Check(r.Context(), q.Get("regCode"), q.Get("email"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, reg)
}

func (h *Handler) UpdateRegistration(w http.ResponseWriter, r *http.Request) {
	var req UpdateRegistrationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	patch, err := registration.DecodePatch(req.Updates)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	reg, err := h.deps.Registrations.Update(r.Context(), req.RegCode, req.Email, patch)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, reg)
}
