package models

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// for login
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
}

type SessionResponse struct {
	LoggedIn bool  `json:"logged_in"`
	User     *User `json:"user,omitempty"`
}
