package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HandleDigestRun computes this week's ranked list and persists it for the
// delivery job. One digest per day; re-runs conflict unless debug=true.
func (h *Handler) HandleDigestRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	debugMode := r.URL.Query().Get("debug") == "true"

	today := time.Now().Format("2006-01-02")
	if !debugMode && h.store.DigestExists(ctx, today) {
		http.Error(w, "Digest for today already exists", http.StatusConflict)
		h.log.Infow("Digest already exists", "date", today)
		return
	}

	res, err := h.pipeline.Aggregate(ctx)
	if err != nil {
		h.log.Errorw("Digest aggregation failed", "err", err)
		http.Error(w, "Digest aggregation failed", http.StatusInternalServerError)
		return
	}

	if !debugMode {
		if err := h.store.SaveDigest(ctx, today, res); err != nil {
			h.log.Errorw("Failed to save digest", "date", today, "err", err)
			http.Error(w, "Failed to save digest: "+err.Error(), http.StatusInternalServerError)
			return
		}
		h.log.Infow("Saved digest", "date", today, "entities", len(res.Entities), "fallback", res.Fallback)
	} else {
		h.log.Infow("Debug mode: skipping digest save")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
