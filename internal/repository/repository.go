package repository

import (
	"context"
	"time"

	"volunmatch-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type VolunteerRepository interface {
	Create(ctx context.Context, vol *domain.Volunteer) error
	GetByID(ctx context.Context, id int32) (*domain.Volunteer, error)

	// ListApproved returns approved volunteers with their user record
	// populated, optionally restricted to the given ids (nil means all).
	ListApproved(ctx context.Context, ids []int32) ([]domain.Volunteer, error)

	// ListStaleIDs returns ids of approved volunteers whose last proposal
	// is unset or older than the cutoff.
	ListStaleIDs(ctx context.Context, cutoff time.Time) ([]int32, error)

	SetApproved(ctx context.Context, id int32, approved bool) error
	UpdateLastProposal(ctx context.Context, id int32, at time.Time) error
	Count(ctx context.Context) (int32, error)
}

type AssociationRepository interface {
	Create(ctx context.Context, assoc *domain.Association) error
	GetByID(ctx context.Context, id int32) (*domain.Association, error)
	SetApproved(ctx context.Context, id int32, approved bool) error
	Count(ctx context.Context) (int32, error)
}

type OpportunityRepository interface {
	Create(ctx context.Context, opp *domain.Opportunity) error
	GetByID(ctx context.Context, id int32) (*domain.Opportunity, error)

	// ListActive returns active opportunities belonging to approved
	// associations, with the association and its user populated.
	ListActive(ctx context.Context) ([]domain.Opportunity, error)

	Count(ctx context.Context) (int32, error)
}

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id int32) (*domain.Match, error)

	// Exists reports whether a match already exists for the volunteer and
	// opportunity pair.
	Exists(ctx context.Context, volunteerID, opportunityID int32) (bool, error)

	// GetByToken resolves either the volunteer-side or association-side
	// confirmation token. Returns nil when no match carries the token.
	GetByToken(ctx context.Context, token string) (*domain.Match, error)

	// ListUnnotified returns PROPOSED matches that have never been
	// notified, optionally restricted to the given ids (nil means all).
	ListUnnotified(ctx context.Context, ids []int32) ([]domain.Match, error)

	GetContacts(ctx context.Context, matchID int32) (*domain.MatchContacts, error)
	UpdateStatus(ctx context.Context, id int32, status domain.MatchStatus) error
	SetVolunteerAccepted(ctx context.Context, id int32) error
	SetAssociationAccepted(ctx context.Context, id int32) error
	MarkNotified(ctx context.Context, id int32, at time.Time) error
	CountByStatus(ctx context.Context, status domain.MatchStatus) (int32, error)
}

type SettingRepository interface {
	// GetMatchSettings returns the stored settings record, or nil (with no
	// error) when none has been saved yet.
	GetMatchSettings(ctx context.Context) (*domain.MatchSettings, error)

	// SaveMatchSettings upserts the singleton record wholesale.
	SaveMatchSettings(ctx context.Context, settings *domain.MatchSettings) error
}
