package v1handler

import "net/http"

func (h *Handler) PricingTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.deps.Pricing.Table(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, table)
}
