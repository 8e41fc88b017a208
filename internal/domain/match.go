package domain

import "time"

type MatchStatus string

const (
	MatchStatusProposed MatchStatus = "PROPOSED"
	MatchStatusAccepted MatchStatus = "ACCEPTED"
	MatchStatusDeclined MatchStatus = "DECLINED"
	// MatchStatusExpired is reserved for a future timeout sweep; no flow
	// currently produces it.
	MatchStatusExpired MatchStatus = "EXPIRED"
)

type Match struct {
	ID                  int32       `json:"id"`
	VolunteerID         int32       `json:"volunteer_id"`
	OpportunityID       int32       `json:"opportunity_id"`
	Score               int32       `json:"score"`
	Status              MatchStatus `json:"status"`
	VolunteerAccepted   bool        `json:"volunteer_accepted"`
	AssociationAccepted bool        `json:"association_accepted"`
	VolunteerToken      string      `json:"-"`
	AssociationToken    string      `json:"-"`
	NotifiedAt          *time.Time  `json:"notified_at,omitempty"`
	CreatedOn           string      `json:"created_on"`
	UpdatedOn           string      `json:"updated_on"`
}

// MatchContacts carries the email addresses attached to a match, resolved
// through the volunteer's and association's user records.
type MatchContacts struct {
	VolunteerEmail   string
	AssociationEmail string
}
