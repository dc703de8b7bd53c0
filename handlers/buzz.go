package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"afropulse/buzz"
	fs "afropulse/firestore"
)

// Handler serves the aggregation endpoints. All the heavy lifting lives in
// the buzz pipeline; these stay thin.
type Handler struct {
	log      *zap.SugaredLogger
	pipeline *buzz.Pipeline
	store    *fs.Store
}

func NewHandler(log *zap.SugaredLogger, pipeline *buzz.Pipeline, store *fs.Store) *Handler {
	return &Handler{
		log:      log,
		pipeline: pipeline,
		store:    store,
	}
}

// HandleBuzz runs a full aggregation and returns the ranked result.
func (h *Handler) HandleBuzz(w http.ResponseWriter, r *http.Request) {
	res, err := h.pipeline.Aggregate(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		h.log.Errorw("Aggregation failed", "err", err)
		http.Error(w, "Aggregation failed", http.StatusInternalServerError)
		return
	}

	if res.Fallback {
		h.log.Infow("Serving fallback-padded result", "entities", len(res.Entities))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.Errorw("Error encoding response", "err", err)
	}
}
