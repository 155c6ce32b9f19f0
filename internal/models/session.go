package models

// Session is the ephemeral authentication context. At most one session is
// active per SessionStore; it is replaced on sign-in and cleared on sign-out.
// There is no expiry state machine in-core; AccessToken carries its own
// validity claim.
type Session struct {
	User         PublicUser
	AccessToken  string
	RefreshToken string
}

// Clone returns an independent copy, including the metadata map, so callers
// cannot mutate the session of record.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	md := make(map[string]string, len(s.User.Metadata))
	for k, v := range s.User.Metadata {
		md[k] = v
	}
	out.User.Metadata = md
	return &out
}
