package domain

type Association struct {
	ID          int32  `json:"id"`
	UserID      int32  `json:"user_id"`
	OrgName     string `json:"org_name"`
	Website     string `json:"website"`
	Social      string `json:"social"`
	LegalStatus string `json:"legal_status"`
	ShareEmail  bool   `json:"share_email"`
	Approved    bool   `json:"approved"`
	CreatedOn   string `json:"created_on"`
	User        *User  `json:"user,omitempty"` // Populated when needed
}
