package impl

import (
	"context"
	"testing"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	mockRepo "board/internal/mocks/repository"
	"board/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// skillServiceFixtures holds all test dependencies for skill service tests.
type skillServiceFixtures struct {
	service   usecase.SkillUsecase
	txManager *mockRepo.MockTransactionManager
	skillRepo *mockRepo.MockSkillRepository
}

func createTestSkillService(t *testing.T) skillServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	skillRepo := mockRepo.NewMockSkillRepository(t)

	skillUsecase := NewSkillService(SkillServiceParams{
		TxManager: txManager,
		SkillRepo: skillRepo,
		Logger:    newDiscardLogger(),
	})

	return skillServiceFixtures{
		service:   skillUsecase,
		txManager: txManager,
		skillRepo: skillRepo,
	}
}

func TestSkillService_Create_DefaultsValueLevel(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	caller := testHuman(100)

	fx.skillRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Skill")).
		Run(func(ctx context.Context, skill *entity.Skill) {
			assert.Equal(t, "medium", skill.ValueLevel)
			assert.Equal(t, caller.ID, skill.AuthorID)
			assert.Equal(t, caller.DisplayName, skill.AuthorName)
			skill.ID = 5
		}).
		Return(nil)

	skill, err := fx.service.Create(ctx, caller, usecase.CreateSkillInput{
		Name:     "daily-digest",
		Category: "data",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), skill.ID)
}

func TestSkillService_Create_Anonymous(t *testing.T) {
	fx := createTestSkillService(t)

	skill, err := fx.service.Create(context.Background(), nil, usecase.CreateSkillInput{Name: "daily-digest"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	assert.Nil(t, skill)
}

func TestSkillService_Download_CountsOnce(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	caller := testHuman(100)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSkillRepo := mockRepo.NewMockSkillRepository(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockActionLogRepo := mockRepo.NewMockActionLogRepository(t)

			mockFactory.EXPECT().SkillRepo().Return(mockSkillRepo)
			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ActionLogRepo().Return(mockActionLogRepo)

			mockSkillRepo.EXPECT().
				FindByID(ctx, int64(5)).
				Return(&entity.Skill{ID: 5, Downloads: 41}, nil)
			mockSkillRepo.EXPECT().
				RecordDownload(ctx, mock.AnythingOfType("*entity.SkillDownload")).
				Run(func(ctx context.Context, download *entity.SkillDownload) {
					assert.Equal(t, int64(5), download.SkillID)
					assert.Equal(t, caller.ID, download.DownloaderID)
				}).
				Return(nil)
			mockSkillRepo.EXPECT().
				IncrementDownloads(ctx, int64(5)).
				Return(nil)

			mockIdentityRepo.EXPECT().
				FindByID(ctx, caller.ID).
				Return(caller, nil)
			mockActionLogRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.ActionLogEntry")).
				Run(func(ctx context.Context, entry *entity.ActionLogEntry) {
					assert.Equal(t, entity.ActionDownloadSkill, entry.ActionType)
					assert.Zero(t, entry.PointsChange)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	skill, err := fx.service.Download(ctx, caller, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(42), skill.Downloads)
}

func TestSkillService_Rate_RecomputesAverage(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	caller := testHuman(100)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSkillRepo := mockRepo.NewMockSkillRepository(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockActionLogRepo := mockRepo.NewMockActionLogRepository(t)

			mockFactory.EXPECT().SkillRepo().Return(mockSkillRepo)
			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ActionLogRepo().Return(mockActionLogRepo)

			mockSkillRepo.EXPECT().
				FindByID(ctx, int64(5)).
				Return(&entity.Skill{ID: 5, Rating: 4.5, RatingCount: 2}, nil)
			mockSkillRepo.EXPECT().
				CreateRating(ctx, mock.AnythingOfType("*entity.SkillRating")).
				Run(func(ctx context.Context, rating *entity.SkillRating) {
					assert.Equal(t, caller.ID, rating.RaterID)
					assert.Equal(t, 3, rating.Rating)
				}).
				Return(nil)
			// (4.5*2 + 3) / 3 = 4, rounded to two decimals
			mockSkillRepo.EXPECT().
				UpdateRating(ctx, int64(5), 4.0, int64(3)).
				Return(nil)

			mockIdentityRepo.EXPECT().
				FindByID(ctx, caller.ID).
				Return(caller, nil)
			mockActionLogRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.ActionLogEntry")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Rate(ctx, caller, usecase.RateSkillInput{SkillID: 5, Rating: 3})

	require.NoError(t, err)
	assert.False(t, output.AlreadyRated)
	assert.Equal(t, 4.0, output.Rating)
	assert.Equal(t, int64(3), output.RatingCount)
}

func TestSkillService_Rate_DuplicateLeavesAverageAlone(t *testing.T) {
	fx := createTestSkillService(t)

	ctx := context.Background()
	caller := testHuman(100)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSkillRepo := mockRepo.NewMockSkillRepository(t)

			mockFactory.EXPECT().SkillRepo().Return(mockSkillRepo)

			mockSkillRepo.EXPECT().
				FindByID(ctx, int64(5)).
				Return(&entity.Skill{ID: 5, Rating: 4.5, RatingCount: 2}, nil)
			mockSkillRepo.EXPECT().
				CreateRating(ctx, mock.AnythingOfType("*entity.SkillRating")).
				Return(repository.ErrDuplicateRating)

			return fn(mockFactory)
		})

	output, err := fx.service.Rate(ctx, caller, usecase.RateSkillInput{SkillID: 5, Rating: 1})

	require.NoError(t, err)
	assert.True(t, output.AlreadyRated)
	assert.Equal(t, 4.5, output.Rating)
	assert.Equal(t, int64(2), output.RatingCount)
}

func TestSkillService_Rate_OutOfRange(t *testing.T) {
	fx := createTestSkillService(t)

	for _, rating := range []int{0, 6, -1} {
		output, err := fx.service.Rate(context.Background(), testHuman(100), usecase.RateSkillInput{SkillID: 5, Rating: rating})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Nil(t, output)
	}
}
