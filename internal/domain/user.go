package domain

type Role string

const (
	RoleVolunteer   Role = "VOLUNTEER"
	RoleAssociation Role = "ASSOCIATION"
	RoleAdmin       Role = "ADMIN"
)

type User struct {
	ID           int32    `json:"id"`
	Role         Role     `json:"role"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Languages    []string `json:"languages"`
	Country      string   `json:"country"`
	City         string   `json:"city"`
	CreatedOn    string   `json:"created_on"`
}
