package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"    // Full access, including archive and log viewer
	RoleHRStaff Role = "hr_staff" // Day-to-day HR work, no destructive actions
)

// ValidRole reports whether the string maps to a known role.
func ValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleHRStaff:
		return true
	}
	return false
}

type User struct {
	ID              string
	Email           string
	Username        string
	PasswordHash    *string
	Role            Role
	EmployeeID      *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
