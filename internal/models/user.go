package models

type Role string

const (
	RoleUser    Role = "USER"
	RoleAuditor Role = "AUDITOR"
	RoleAdmin   Role = "ADMIN"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     *Role  `json:"role,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

func (u User) HasRole(r Role) bool {
	return u.Role != nil && *u.Role == r
}

// AuthUser is a user plus the opaque token issued at login.
type AuthUser struct {
	User
	Token string `json:"token"`
}

// Valid reports whether the record is a complete session.
func (u AuthUser) Valid() bool {
	return u.ID != 0 && u.Username != "" && u.Token != ""
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     *Role  `json:"role,omitempty"`
}
