package model

import "time"

// Role values stored in the users.role column and embedded in access
// tokens.  USER is assigned at registration; ADMIN accounts are
// provisioned out of band.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents an account record as stored in the `users` table.
// The password hash is never serialized; handlers expose users through
// this struct directly, so the field carries `json:"-"`.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name given at registration.
//  Email        – unique email address (lower-cased before storage).
//  Phone        – optional contact number.
//  PasswordHash – bcrypt hashed password.
//  Role         – USER or ADMIN.
//  LastLogin    – timestamp of the most recent successful login.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        *string    `json:"phone,omitempty"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
