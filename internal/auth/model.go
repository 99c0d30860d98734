package auth

import "time"

// Roles within an organization.
const (
	RoleAdmin = "ADMIN"
	RoleOwner = "OWNER"
	RoleStaff = "STAFF"
)

// User is the domain entity. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID             string
	Name           string
	Email          string
	Password       string
	Role           string
	OrganizationID string
	CreatedAt      time.Time
}
