// Package models defines the record shapes owned by the NightOwl core:
// identity users, public profiles, and the authentication session.
package models

import "time"

// User is the identity record stored in the users table. PasswordHash is a
// bcrypt hash and must never leave the repository/service layer.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Metadata     map[string]string
	CreatedAt    time.Time
}

// PublicUser is the projection of a User that sessions expose to callers.
type PublicUser struct {
	ID       string
	Email    string
	Metadata map[string]string
}

// Public returns the caller-facing projection of the user.
func (u *User) Public() PublicUser {
	md := make(map[string]string, len(u.Metadata))
	for k, v := range u.Metadata {
		md[k] = v
	}
	return PublicUser{ID: u.ID, Email: u.Email, Metadata: md}
}
