package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightowlapp/nightowl/internal/models"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	s := NewSessionStore()
	assert.Nil(t, s.Get(), "fresh store starts signed out")

	first := &models.Session{User: models.PublicUser{ID: "u1"}, AccessToken: "a1"}
	s.Replace(first)
	require.NotNil(t, s.Get())
	assert.Equal(t, "u1", s.Get().User.ID)

	second := &models.Session{User: models.PublicUser{ID: "u2"}, AccessToken: "a2"}
	s.Replace(second)
	assert.Equal(t, "u2", s.Get().User.ID, "replace displaces the previous session")

	s.Clear()
	assert.Nil(t, s.Get())

	s.Clear() // clearing an empty store is a no-op
	assert.Nil(t, s.Get())
}

func TestSessionStore_GetReturnsCopy(t *testing.T) {
	s := NewSessionStore()
	s.Replace(&models.Session{
		User: models.PublicUser{ID: "u1", Metadata: map[string]string{"nickname": "al"}},
	})

	got := s.Get()
	got.User.Metadata["nickname"] = "tampered"
	got.AccessToken = "tampered"

	again := s.Get()
	assert.Equal(t, "al", again.User.Metadata["nickname"])
	assert.Empty(t, again.AccessToken)
}
