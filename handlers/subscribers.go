package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	fs "afropulse/firestore"
)

// HandleSubscribe registers a digest recipient.
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	var sub fs.Subscriber
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "Invalid subscriber payload", http.StatusBadRequest)
		return
	}

	sub.Email = strings.TrimSpace(sub.Email)
	if sub.Email == "" || !strings.Contains(sub.Email, "@") {
		http.Error(w, "Valid email required", http.StatusBadRequest)
		return
	}

	if err := h.store.AddSubscriber(r.Context(), sub); err != nil {
		h.log.Errorw("Failed to add subscriber", "email", sub.Email, "err", err)
		http.Error(w, "Failed to add subscriber", http.StatusInternalServerError)
		return
	}

	h.log.Infow("Added subscriber", "email", sub.Email)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sub)
}

// HandleListSubscribers returns every digest recipient.
func (h *Handler) HandleListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.ListSubscribers(r.Context())
	if err != nil {
		h.log.Errorw("Failed to list subscribers", "err", err)
		http.Error(w, "Failed to list subscribers", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"subscribers": subs,
		"count":       len(subs),
	})
}
