package domain

import "time"

type AvailabilityType string

const (
	AvailabilityFulltime   AvailabilityType = "FULLTIME"
	AvailabilityParttime   AvailabilityType = "PARTTIME"
	AvailabilityOccasional AvailabilityType = "OCCASIONAL"
)

type Modality string

const (
	ModalityOnsite Modality = "ONSITE"
	ModalityRemote Modality = "REMOTE"
	ModalityHybrid Modality = "HYBRID"
)

type Volunteer struct {
	ID                 int32            `json:"id"`
	UserID             int32            `json:"user_id"`
	Skills             []string         `json:"skills"`
	Causes             []string         `json:"causes"`
	Availability       AvailabilityType `json:"availability"`
	AvailableFrom      *time.Time       `json:"available_from,omitempty"`
	AvailableTo        *time.Time       `json:"available_to,omitempty"`
	Modality           Modality         `json:"modality"`
	PreferredCountries []string         `json:"preferred_countries"`
	RemoteOk           bool             `json:"remote_ok"`
	ShareEmail         bool             `json:"share_email"`
	Approved           bool             `json:"approved"`
	LastProposalAt     *time.Time       `json:"last_proposal_at,omitempty"`
	CreatedOn          string           `json:"created_on"`
	User               *User            `json:"user,omitempty"` // Populated when needed
}
