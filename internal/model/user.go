package model

import "time"

// Role names stored in the users.role column and carried as the JWT
// "role" claim. Promotions only ever move away from RoleUser; ADMIN and
// DEVELOPER are terminal.
const (
	RoleUser      = "USER"
	RoleAdmin     = "ADMIN"
	RoleDeveloper = "DEVELOPER"
)

// User represents a row of the `users` table. Handlers never serialize
// this struct directly; response shapes are defined per endpoint so the
// password hash cannot leak into a JSON body.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique address, stored lower-cased.
//  PasswordHash – bcrypt hash of the password.
//  Name         – display name, alphanumeric 3–20 chars.
//  Role         – USER, ADMIN or DEVELOPER.
//  IsActive     – soft-delete flag; inactive users cannot log in.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Name         string    // users.name
	Role         string    // users.role
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
