package models

import "time"

// Profile is the public-facing record for a user, one-to-one with User by ID.
// Email is a secondary lookup key and must also resolve to at most one row.
type Profile struct {
	ID              string
	Email           string
	FullName        string
	Nickname        string
	Bio             *string
	Age             *int
	Location        *string
	ProfileImageURL *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Clone returns a deep copy so that callers can hand profiles across
// goroutine boundaries without sharing pointer fields.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	out := *p
	out.Bio = clonePtr(p.Bio)
	out.Age = clonePtr(p.Age)
	out.Location = clonePtr(p.Location)
	out.ProfileImageURL = clonePtr(p.ProfileImageURL)
	return &out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
