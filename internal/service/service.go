package service

import (
	"context"
	"time"

	"volunmatch-backend/internal/domain"
)

// ConfirmAction is the action carried by a confirmation link.
type ConfirmAction string

const (
	ConfirmActionAccept  ConfirmAction = "accept"
	ConfirmActionDecline ConfirmAction = "decline"
)

// RunOptions controls a matching run. VolunteerIDs nil means all approved
// volunteers; Relaxed lowers the threshold and softens modality scoring.
type RunOptions struct {
	Relaxed      bool
	VolunteerIDs []int32
}

// RunResult reports the matches created by a run.
type RunResult struct {
	MatchesCreated int32   `json:"matches_created"`
	MatchIDs       []int32 `json:"match_ids"`
}

// ConfirmResult is the outcome of a token confirmation. An unresolved token
// is not an error: OK is false and Message explains why.
type ConfirmResult struct {
	OK      bool               `json:"ok"`
	Status  domain.MatchStatus `json:"status,omitempty"`
	Message string             `json:"message,omitempty"`
}

type MatchService interface {
	RunMatching(ctx context.Context, opts RunOptions) (*RunResult, error)
	NotifyMatches(ctx context.Context, matchIDs []int32) (int32, error)
	ConfirmMatch(ctx context.Context, token string, action ConfirmAction) (*ConfirmResult, error)
	WidenScopeAndMatch(ctx context.Context) (*RunResult, error)
}

type SettingsService interface {
	GetMatchSettings(ctx context.Context) (*domain.MatchSettings, error)
	SaveMatchSettings(ctx context.Context, settings *domain.MatchSettings) error
}

// VolunteerSignup is a validated volunteer form submission.
type VolunteerSignup struct {
	FirstName          string
	LastName           string
	Email              string
	Languages          []string
	Country            string
	City               string
	Skills             []string
	Causes             []string
	Availability       domain.AvailabilityType
	AvailableFrom      *time.Time
	AvailableTo        *time.Time
	Modality           domain.Modality
	PreferredCountries []string
	RemoteOk           bool
	Consent            bool
}

// AssociationSignup is a validated association form submission. It carries
// the association's first opportunity.
type AssociationSignup struct {
	OrgName        string
	Email          string
	Website        string
	Social         string
	LegalStatus    string
	MissionTitle   string
	Description    string
	RequiredSkills []string
	Causes         []string
	StartDate      *time.Time
	EndDate        *time.Time
	Modality       domain.Modality
	Country        string
	City           string
	Urgency        int32
	Consent        bool
}

// Credentials are the generated login details returned to a new registrant.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type ProfileService interface {
	RegisterVolunteer(ctx context.Context, signup *VolunteerSignup) (*domain.Volunteer, *Credentials, error)
	RegisterAssociation(ctx context.Context, signup *AssociationSignup) (*domain.Association, *Credentials, error)
}

// PlatformStats backs the admin dashboard counters.
type PlatformStats struct {
	Volunteers      int32 `json:"volunteers"`
	Associations    int32 `json:"associations"`
	Opportunities   int32 `json:"opportunities"`
	ProposedMatches int32 `json:"proposed_matches"`
	AcceptedMatches int32 `json:"accepted_matches"`
}

type AdminService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Approve(ctx context.Context, profileType string, id int32, approved bool) error
	Stats(ctx context.Context) (*PlatformStats, error)
}

type EmailService interface {
	SendProfileReceived(ctx context.Context, email string, role domain.Role) error
	SendMatchProposal(ctx context.Context, volunteerEmail, associationEmail string, matchID int32, volunteerToken, associationToken string) error
	SendMatchAccepted(ctx context.Context, volunteerEmail, associationEmail string) error
}
