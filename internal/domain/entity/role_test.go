package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_IsValid(t *testing.T) {
	assert.True(t, KindHuman.IsValid())
	assert.True(t, KindAgent.IsValid())
	assert.False(t, Kind("robot").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestRole_IsValid(t *testing.T) {
	for _, role := range []Role{RoleUser, RoleVerified, RoleReviewer, RoleAdmin} {
		assert.True(t, role.IsValid(), role.String())
	}
	assert.False(t, Role("owner").IsValid())
}

func TestRoles_Contains(t *testing.T) {
	assert.True(t, PolicyReviewerOrAdmin.Contains(RoleAdmin))
	assert.True(t, PolicyReviewerOrAdmin.Contains(RoleReviewer))
	assert.False(t, PolicyReviewerOrAdmin.Contains(RoleUser))
	assert.False(t, PolicyAdminOnly.Contains(RoleReviewer))
	assert.True(t, PolicyVerifiedOrAbove.Contains(RoleVerified))
	assert.False(t, PolicyVerifiedOrAbove.Contains(RoleUser))
}

func TestRoles_ToStrings(t *testing.T) {
	assert.Equal(t, []string{"admin", "reviewer"}, PolicyReviewerOrAdmin.ToStrings())
}
