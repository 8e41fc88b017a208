package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/logger"
	"volunmatch-backend/internal/service"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	token, err := h.adminSvc.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		logger.Error("Admin login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

type settingsRequest struct {
	Threshold int32 `json:"threshold" validate:"min=0,max=100"`
	Weights   struct {
		Skills       float64 `json:"skills" validate:"min=0"`
		Causes       float64 `json:"causes" validate:"min=0"`
		Availability float64 `json:"availability" validate:"min=0"`
		Language     float64 `json:"language" validate:"min=0"`
		Modality     float64 `json:"modality" validate:"min=0"`
	} `json:"weights"`
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsSvc.GetMatchSettings(r.Context())
	if err != nil {
		logger.Error("Failed to load match settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	settings := &domain.MatchSettings{
		Threshold: req.Threshold,
		Weights: domain.MatchWeights{
			Skills:       req.Weights.Skills,
			Causes:       req.Weights.Causes,
			Availability: req.Weights.Availability,
			Language:     req.Weights.Language,
			Modality:     req.Weights.Modality,
		},
	}
	if err := h.settingsSvc.SaveMatchSettings(r.Context(), settings); err != nil {
		logger.Error("Failed to save match settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type approveRequest struct {
	ID       int32  `json:"id" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=volunteer association"`
	Approved bool   `json:"approved"`
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.adminSvc.Approve(r.Context(), req.Type, req.ID, req.Approved); err != nil {
		if errors.Is(err, service.ErrInvalidProfileType) {
			writeError(w, http.StatusBadRequest, "invalid type")
			return
		}
		logger.Error("Approval update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminSvc.Stats(r.Context())
	if err != nil {
		logger.Error("Failed to load platform stats", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
