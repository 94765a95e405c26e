package service

import (
	"testing"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireRole_Anonymous(t *testing.T) {
	err := RequireRole(nil, entity.PolicyReviewerOrAdmin)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestRequireRole_Allowed(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleReviewer} {
		identity := &entity.Identity{Kind: entity.KindHuman, Role: role}

		assert.NoError(t, RequireRole(identity, entity.PolicyReviewerOrAdmin), role.String())
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	identity := &entity.Identity{Kind: entity.KindHuman, Role: entity.RoleUser}

	err := RequireRole(identity, entity.PolicyReviewerOrAdmin)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequireRole_AdminOnly(t *testing.T) {
	reviewer := &entity.Identity{Kind: entity.KindHuman, Role: entity.RoleReviewer}

	err := RequireRole(reviewer, entity.PolicyAdminOnly)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
