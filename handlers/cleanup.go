package handlers

import (
	"encoding/json"
	"net/http"
)

// HandleCleanup deletes expired digest documents. Invoked by the external
// scheduler alongside the digest run.
func (h *Handler) HandleCleanup(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Cleanup(r.Context()); err != nil {
		h.log.Errorw("Cleanup failed", "err", err)
		http.Error(w, "Cleanup failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
