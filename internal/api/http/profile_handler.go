package http

import (
	"encoding/json"
	"net/http"
	"time"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/logger"
	"volunmatch-backend/internal/service"
)

type volunteerRequest struct {
	FirstName          string   `json:"first_name" validate:"required"`
	LastName           string   `json:"last_name" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	Languages          []string `json:"languages" validate:"dive,required"`
	Country            string   `json:"country" validate:"required"`
	City               string   `json:"city" validate:"required"`
	Skills             []string `json:"skills" validate:"dive,required"`
	Causes             []string `json:"causes" validate:"dive,required"`
	Availability       string   `json:"availability" validate:"required,oneof=FULLTIME PARTTIME OCCASIONAL"`
	AvailableFrom      string   `json:"available_from" validate:"omitempty,datetime=2006-01-02"`
	AvailableTo        string   `json:"available_to" validate:"omitempty,datetime=2006-01-02"`
	Modality           string   `json:"modality" validate:"required,oneof=ONSITE REMOTE HYBRID"`
	PreferredCountries []string `json:"preferred_countries" validate:"dive,required"`
	RemoteOk           bool     `json:"remote_ok"`
	Consent            bool     `json:"consent" validate:"required"`
}

type associationRequest struct {
	OrgName        string   `json:"org_name" validate:"required,min=2"`
	Email          string   `json:"email" validate:"required,email"`
	Website        string   `json:"website"`
	Social         string   `json:"social"`
	LegalStatus    string   `json:"legal_status"`
	MissionTitle   string   `json:"mission_title" validate:"required,min=2"`
	Description    string   `json:"description" validate:"required,min=10"`
	RequiredSkills []string `json:"required_skills" validate:"dive,required"`
	Causes         []string `json:"causes" validate:"dive,required"`
	StartDate      string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Modality       string   `json:"modality" validate:"required,oneof=ONSITE REMOTE HYBRID"`
	Country        string   `json:"country" validate:"required,min=2"`
	City           string   `json:"city" validate:"required,min=2"`
	Urgency        int32    `json:"urgency" validate:"min=0,max=10"`
	Consent        bool     `json:"consent" validate:"required"`
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

func (h *Handler) RegisterVolunteer(w http.ResponseWriter, r *http.Request) {
	var req volunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	signup := &service.VolunteerSignup{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Languages:          req.Languages,
		Country:            req.Country,
		City:               req.City,
		Skills:             req.Skills,
		Causes:             req.Causes,
		Availability:       domain.AvailabilityType(req.Availability),
		AvailableFrom:      parseDate(req.AvailableFrom),
		AvailableTo:        parseDate(req.AvailableTo),
		Modality:           domain.Modality(req.Modality),
		PreferredCountries: req.PreferredCountries,
		RemoteOk:           req.RemoteOk,
		Consent:            req.Consent,
	}

	_, creds, err := h.profileSvc.RegisterVolunteer(r.Context(), signup)
	if err != nil {
		logger.Error("Volunteer registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "credentials": creds})
}

func (h *Handler) RegisterAssociation(w http.ResponseWriter, r *http.Request) {
	var req associationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	signup := &service.AssociationSignup{
		OrgName:        req.OrgName,
		Email:          req.Email,
		Website:        req.Website,
		Social:         req.Social,
		LegalStatus:    req.LegalStatus,
		MissionTitle:   req.MissionTitle,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Causes:         req.Causes,
		StartDate:      parseDate(req.StartDate),
		EndDate:        parseDate(req.EndDate),
		Modality:       domain.Modality(req.Modality),
		Country:        req.Country,
		City:           req.City,
		Urgency:        req.Urgency,
		Consent:        req.Consent,
	}

	_, creds, err := h.profileSvc.RegisterAssociation(r.Context(), signup)
	if err != nil {
		logger.Error("Association registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "credentials": creds})
}
