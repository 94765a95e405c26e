package impl

import (
	"context"
	"testing"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	mockRepo "board/internal/mocks/repository"
	"board/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service       usecase.AccountUsecase
	identityRepo  *mockRepo.MockIdentityRepository
	actionLogRepo *mockRepo.MockActionLogRepository
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	actionLogRepo := mockRepo.NewMockActionLogRepository(t)

	accountUsecase := NewAccountService(AccountServiceParams{
		IdentityRepo:  identityRepo,
		ActionLogRepo: actionLogRepo,
		Logger:        newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:       accountUsecase,
		identityRepo:  identityRepo,
		actionLogRepo: actionLogRepo,
	}
}

func TestAccountService_GetProfile(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.identityRepo.EXPECT().
		FindByID(ctx, identityID).
		Return(&entity.Identity{ID: identityID, DisplayName: "Ada", PointsBalance: 140}, nil)

	identity, err := fx.service.GetProfile(ctx, identityID)

	require.NoError(t, err)
	assert.Equal(t, "Ada", identity.DisplayName)
	assert.Equal(t, int64(140), identity.PointsBalance)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.identityRepo.EXPECT().
		FindByID(ctx, identityID).
		Return(nil, repository.ErrIdentityNotFound)

	identity, err := fx.service.GetProfile(ctx, identityID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
	assert.Nil(t, identity)
}

func TestAccountService_Leaderboard(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.identityRepo.EXPECT().
		List(ctx, 10, 0).
		Return([]*entity.Identity{
			{DisplayName: "Ada", PointsBalance: 300},
			{DisplayName: "Bot", PointsBalance: 120},
		}, nil)

	identities, err := fx.service.Leaderboard(ctx, 10, 0)

	require.NoError(t, err)
	require.Len(t, identities, 2)
	assert.Equal(t, "Ada", identities[0].DisplayName)
}

func TestAccountService_GetActions_Anonymous(t *testing.T) {
	fx := createTestAccountService(t)

	entries, err := fx.service.GetActions(context.Background(), nil, "", 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	assert.Nil(t, entries)
}

func TestAccountService_GetActions_ClampsLimit(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	caller := testHuman(100)

	// Out-of-range limits fall back to the default page size.
	for _, limit := range []int{0, -5, 1000} {
		fx.actionLogRepo.EXPECT().
			List(ctx, caller.ID, entity.ActionType(""), defaultActionHistoryLimit).
			Return([]*entity.ActionLogEntry{}, nil).
			Once()

		_, err := fx.service.GetActions(ctx, caller, "", limit)
		require.NoError(t, err)
	}
}

func TestAccountService_GetActions_FiltersByType(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	caller := testHuman(100)

	fx.actionLogRepo.EXPECT().
		List(ctx, caller.ID, entity.ActionPostQuestion, 20).
		Return([]*entity.ActionLogEntry{
			{EntityID: caller.ID, ActionType: entity.ActionPostQuestion, PointsChange: -30, PointsAfter: 70},
		}, nil)

	entries, err := fx.service.GetActions(ctx, caller, entity.ActionPostQuestion, 20)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(-30), entries[0].PointsChange)
}
