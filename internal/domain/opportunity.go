package domain

import "time"

type Opportunity struct {
	ID             int32        `json:"id"`
	AssociationID  int32        `json:"association_id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	RequiredSkills []string     `json:"required_skills"`
	Causes         []string     `json:"causes"`
	StartDate      *time.Time   `json:"start_date,omitempty"`
	EndDate        *time.Time   `json:"end_date,omitempty"`
	Modality       Modality     `json:"modality"`
	Country        string       `json:"country"`
	City           string       `json:"city"`
	Urgency        int32        `json:"urgency"`
	Active         bool         `json:"active"`
	CreatedOn      string       `json:"created_on"`
	Association    *Association `json:"association,omitempty"` // Populated when needed
}
