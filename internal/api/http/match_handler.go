package http

import (
	"encoding/json"
	"net/http"

	"volunmatch-backend/internal/logger"
	"volunmatch-backend/internal/service"
)

type runMatchingRequest struct {
	Relaxed bool `json:"relaxed"`
}

// RunMatching triggers a matching run and dispatches proposal notifications
// for the matches it created.
func (h *Handler) RunMatching(w http.ResponseWriter, r *http.Request) {
	var req runMatchingRequest
	if r.Body != nil {
		// An empty or malformed body means a plain non-relaxed run.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	result, err := h.matchSvc.RunMatching(r.Context(), service.RunOptions{Relaxed: req.Relaxed})
	if err != nil {
		logger.Error("Matching run failed", "error", err)
		writeError(w, http.StatusInternalServerError, "matching run failed")
		return
	}

	if len(result.MatchIDs) > 0 {
		if _, err := h.matchSvc.NotifyMatches(r.Context(), result.MatchIDs); err != nil {
			logger.Error("Failed to notify new matches", "error", err)
			writeError(w, http.StatusInternalServerError, "notification dispatch failed")
			return
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// NotifyMatches dispatches proposal emails for all unnotified matches.
func (h *Handler) NotifyMatches(w http.ResponseWriter, r *http.Request) {
	sent, err := h.matchSvc.NotifyMatches(r.Context(), nil)
	if err != nil {
		logger.Error("Notification dispatch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "notification dispatch failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"sent": sent})
}

// ConfirmMatch handles the accept/decline links embedded in proposal mail.
func (h *Handler) ConfirmMatch(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	action := r.URL.Query().Get("action")
	if token == "" || action == "" {
		writeError(w, http.StatusBadRequest, "missing parameters")
		return
	}

	confirmAction := service.ConfirmActionDecline
	if action == "accept" {
		confirmAction = service.ConfirmActionAccept
	}

	result, err := h.matchSvc.ConfirmMatch(r.Context(), token, confirmAction)
	if err != nil {
		logger.Error("Confirmation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "confirmation failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
