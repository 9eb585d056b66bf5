package domain

import "time"

// RoleAdmin is granted to every registered operator. Catalog mutations
// require it.
const RoleAdmin = "admin"

type User struct {
	ID           string
	Identity     string // trimmed, lower-cased login name
	DisplayName  string
	PasswordHash string // argon2 encoded
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
