// Package query is the data-access façade of the NightOwl core. It replaces
// a stringly-typed "from(table)" builder with a closed set of tables and
// columns, so that an unknown table or column is unrepresentable rather than
// a runtime fault. Results follow one contract: the value and a structured
// *Error with a Code, never a panic for expected data conditions.
package query

import "github.com/nightowlapp/nightowl/internal/models"

// Table enumerates the tables the façade can address.
type Table int

const (
	TableUsers Table = iota + 1
	TableProfiles
)

func (t Table) String() string {
	switch t {
	case TableUsers:
		return "users"
	case TableProfiles:
		return "profiles"
	default:
		return "unknown"
	}
}

// Column enumerates the filterable columns. Only the profile table's two
// indexable columns are addressable.
type Column int

const (
	ColID Column = iota + 1
	ColEmail
)

func (c Column) String() string {
	switch c {
	case ColID:
		return "id"
	case ColEmail:
		return "email"
	default:
		return "unknown"
	}
}

// Filter is a single equality predicate, the only predicate the core needs.
type Filter struct {
	Col   Column
	Value string
}

// ByID filters on the primary key.
func ByID(id string) Filter { return Filter{Col: ColID, Value: id} }

// ByEmail filters on the secondary email key, case-insensitively.
func ByEmail(email string) Filter { return Filter{Col: ColEmail, Value: email} }

// ProfilePatch is a partial profile update. Nil fields are left unchanged;
// non-nil fields win over the stored value.
type ProfilePatch struct {
	FullName        *string
	Nickname        *string
	Bio             *string
	Age             *int
	Location        *string
	ProfileImageURL *string
}

// Apply merges the patch onto p, patch fields winning.
func (patch ProfilePatch) Apply(p *models.Profile) {
	if patch.FullName != nil {
		p.FullName = *patch.FullName
	}
	if patch.Nickname != nil {
		p.Nickname = *patch.Nickname
	}
	if patch.Bio != nil {
		p.Bio = patch.Bio
	}
	if patch.Age != nil {
		p.Age = patch.Age
	}
	if patch.Location != nil {
		p.Location = patch.Location
	}
	if patch.ProfileImageURL != nil {
		p.ProfileImageURL = patch.ProfileImageURL
	}
}

// IsZero reports whether the patch would change nothing.
func (patch ProfilePatch) IsZero() bool {
	return patch.FullName == nil && patch.Nickname == nil && patch.Bio == nil &&
		patch.Age == nil && patch.Location == nil && patch.ProfileImageURL == nil
}
