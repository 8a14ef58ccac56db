package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionLifecycle(t *testing.T) {
	s := New()

	assert.False(t, s.IsAuthenticated())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, s.ID())

	s.Login("ana1")
	assert.True(t, s.IsAuthenticated())
	current, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, "ana1", current)
	assert.NotEqual(t, uuid.Nil, s.ID())

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, uuid.Nil, s.ID())
}

func TestEachLoginMintsAFreshID(t *testing.T) {
	s := New()

	s.Login("ana1")
	first := s.ID()
	s.Logout()

	s.Login("ana1")
	second := s.ID()

	assert.NotEqual(t, first, second)
}

func TestLogoutWhileAnonymousIsHarmless(t *testing.T) {
	s := New()
	s.Logout()
	assert.False(t, s.IsAuthenticated())
}
