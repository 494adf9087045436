package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "users/u1/profile", profilePath("u1"))
	assert.Equal(t, "users/u1/profile/name", profileFieldPath("u1", "name"))
	assert.Equal(t, "users/u1/profile/walk/balance", profileWalkFieldPath("u1", "balance"))
	assert.Equal(t, "users/u1/profile/addresses/a1", addressPath("u1", "a1"))
	assert.Equal(t, "users/u1/notifications/n1", notificationPath("u1", "n1"))
	assert.Equal(t, "users/u1/feedback", feedbackPath("u1"))
	assert.Equal(t, "users/u1/dogs/d1", dogPath("u1", "d1"))
	assert.Equal(t, "users/u1/walks", userWalkRefsPath("u1"))
	assert.Equal(t, "walks/w1", walkPath("w1"))
	assert.Equal(t, "walks/w1/status", walkFieldPath("w1", "status"))
}
