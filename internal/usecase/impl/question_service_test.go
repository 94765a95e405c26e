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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// questionServiceFixtures holds all test dependencies for question service tests.
type questionServiceFixtures struct {
	service      usecase.QuestionUsecase
	txManager    *mockRepo.MockTransactionManager
	questionRepo *mockRepo.MockQuestionRepository
}

func createTestQuestionService(t *testing.T) questionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	questionRepo := mockRepo.NewMockQuestionRepository(t)

	questionUsecase := NewQuestionService(QuestionServiceParams{
		TxManager:    txManager,
		QuestionRepo: questionRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return questionServiceFixtures{
		service:      questionUsecase,
		txManager:    txManager,
		questionRepo: questionRepo,
	}
}

func testHuman(balance int64) *entity.Identity {
	return &entity.Identity{
		ID:            uuid.New(),
		Kind:          entity.KindHuman,
		Role:          entity.RoleUser,
		DisplayName:   "Ada",
		PointsBalance: balance,
	}
}

func TestQuestionService_Create_ChargesDifficultyCost(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	caller := testHuman(200)
	input := usecase.CreateQuestionInput{
		Title:      "Summarize noisy sensor data",
		Topic:      "data",
		Difficulty: entity.DifficultyHard,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockActionLogRepo := mockRepo.NewMockActionLogRepository(t)
			mockQuestionRepo := mockRepo.NewMockQuestionRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ActionLogRepo().Return(mockActionLogRepo)
			mockFactory.EXPECT().QuestionRepo().Return(mockQuestionRepo)

			mockIdentityRepo.EXPECT().
				FindByIDForUpdate(ctx, caller.ID).
				Return(&entity.Identity{ID: caller.ID, Kind: entity.KindHuman, PointsBalance: 200}, nil)
			mockActionLogRepo.EXPECT().
				CountForDay(ctx, caller.ID, entity.ActionPostQuestion, mock.AnythingOfType("time.Time")).
				Return(0, nil)

			mockQuestionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Question")).
				Run(func(ctx context.Context, question *entity.Question) {
					assert.Equal(t, entity.QuestionPending, question.Status)
					assert.Equal(t, caller.ID, question.CreatedBy)
					question.ID = 42
				}).
				Return(nil)

			mockIdentityRepo.EXPECT().
				UpdatePointsBalance(ctx, caller.ID, int64(100)).
				Return(nil)
			mockActionLogRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.ActionLogEntry")).
				Run(func(ctx context.Context, entry *entity.ActionLogEntry) {
					assert.Equal(t, entity.ActionPostQuestion, entry.ActionType)
					assert.Equal(t, int64(-100), entry.PointsChange)
					assert.Equal(t, int64(100), entry.PointsAfter)
					assert.JSONEq(t, `{"question_id":42,"difficulty":"hard"}`, entry.Metadata)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, caller, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.Question.ID)
	assert.Equal(t, entity.QuestionPending, output.Question.Status)
}

func TestQuestionService_Create_QuotaExceeded(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	caller := testHuman(500)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockActionLogRepo := mockRepo.NewMockActionLogRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ActionLogRepo().Return(mockActionLogRepo)

			mockIdentityRepo.EXPECT().
				FindByIDForUpdate(ctx, caller.ID).
				Return(caller, nil)
			mockActionLogRepo.EXPECT().
				CountForDay(ctx, caller.ID, entity.ActionPostQuestion, mock.AnythingOfType("time.Time")).
				Return(3, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, caller, usecase.CreateQuestionInput{
		Title:      "One too many",
		Difficulty: entity.DifficultyEasy,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
	assert.Nil(t, output)
}

func TestQuestionService_Create_UnknownDifficulty(t *testing.T) {
	fx := createTestQuestionService(t)

	output, err := fx.service.Create(context.Background(), testHuman(100), usecase.CreateQuestionInput{
		Title:      "Question",
		Difficulty: entity.Difficulty("legendary"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, output)
}

func TestQuestionService_Create_Anonymous(t *testing.T) {
	fx := createTestQuestionService(t)

	output, err := fx.service.Create(context.Background(), nil, usecase.CreateQuestionInput{
		Title:      "Question",
		Difficulty: entity.DifficultyEasy,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	assert.Nil(t, output)
}

func TestQuestionService_Get_CountsView(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()

	fx.questionRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.Question{ID: 7, Views: 9, Votes: 2, Participants: 1}, nil)
	fx.questionRepo.EXPECT().
		IncrementViews(ctx, int64(7)).
		Return(nil)

	output, err := fx.service.Get(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(10), output.Question.Views)
	// heat = views + votes*5 + participants*10
	assert.Equal(t, int64(30), output.Heat)
}

func TestQuestionService_Get_NotFound(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()

	fx.questionRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrQuestionNotFound)

	output, err := fx.service.Get(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Nil(t, output)
}

func TestQuestionService_List_OrdersByHeatDescending(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()

	fx.questionRepo.EXPECT().
		List(ctx, entity.QuestionActive, 20, 0).
		Return([]*entity.Question{
			{ID: 1, Views: 5},                    // heat 5
			{ID: 2, Votes: 10},                   // heat 50
			{ID: 3, Views: 2, Participants: 2},   // heat 22
		}, nil)

	outputs, err := fx.service.List(ctx, entity.QuestionActive, 20, 0)

	require.NoError(t, err)
	require.Len(t, outputs, 3)
	assert.Equal(t, int64(2), outputs[0].Question.ID)
	assert.Equal(t, int64(3), outputs[1].Question.ID)
	assert.Equal(t, int64(1), outputs[2].Question.ID)
}

func TestQuestionService_List_UnknownStatus(t *testing.T) {
	fx := createTestQuestionService(t)

	outputs, err := fx.service.List(context.Background(), entity.QuestionStatus("archived"), 20, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, outputs)
}

func TestQuestionService_Vote_FirstVote(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	caller := testHuman(100)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockQuestionRepo := mockRepo.NewMockQuestionRepository(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockActionLogRepo := mockRepo.NewMockActionLogRepository(t)

			mockFactory.EXPECT().QuestionRepo().Return(mockQuestionRepo)
			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ActionLogRepo().Return(mockActionLogRepo)

			mockQuestionRepo.EXPECT().
				FindByID(ctx, int64(7)).
				Return(&entity.Question{ID: 7, Votes: 4}, nil)
			mockQuestionRepo.EXPECT().
				CreateVote(ctx, mock.AnythingOfType("*entity.QuestionVote")).
				Run(func(ctx context.Context, vote *entity.QuestionVote) {
					assert.Equal(t, caller.ID, vote.VoterID)
					assert.Equal(t, entity.KindHuman, vote.VoterKind)
				}).
				Return(nil)
			mockQuestionRepo.EXPECT().
				IncrementVotes(ctx, int64(7)).
				Return(nil)

			mockIdentityRepo.EXPECT().
				FindByID(ctx, caller.ID).
				Return(caller, nil)
			mockActionLogRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.ActionLogEntry")).
				Run(func(ctx context.Context, entry *entity.ActionLogEntry) {
					assert.Equal(t, entity.ActionVoteQuestion, entry.ActionType)
					assert.Zero(t, entry.PointsChange)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Vote(ctx, caller, 7)

	require.NoError(t, err)
	assert.False(t, output.AlreadyVoted)
	assert.Equal(t, int64(5), output.VoteCount)
}

func TestQuestionService_Vote_DuplicateIsIdempotent(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	caller := testHuman(100)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockQuestionRepo := mockRepo.NewMockQuestionRepository(t)

			mockFactory.EXPECT().QuestionRepo().Return(mockQuestionRepo)

			mockQuestionRepo.EXPECT().
				FindByID(ctx, int64(7)).
				Return(&entity.Question{ID: 7, Votes: 4}, nil)
			mockQuestionRepo.EXPECT().
				CreateVote(ctx, mock.AnythingOfType("*entity.QuestionVote")).
				Return(repository.ErrDuplicateVote)

			return fn(mockFactory)
		})

	output, err := fx.service.Vote(ctx, caller, 7)

	require.NoError(t, err)
	assert.True(t, output.AlreadyVoted)
	assert.Equal(t, int64(4), output.VoteCount)
}

func TestQuestionService_UpdateStatus_RequiresReviewer(t *testing.T) {
	fx := createTestQuestionService(t)

	question, err := fx.service.UpdateStatus(context.Background(), testHuman(100), 7, entity.QuestionActive)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, question)
}

func TestQuestionService_UpdateStatus_Advances(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	reviewer := testHuman(100)
	reviewer.Role = entity.RoleReviewer

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockQuestionRepo := mockRepo.NewMockQuestionRepository(t)

			mockFactory.EXPECT().QuestionRepo().Return(mockQuestionRepo)

			mockQuestionRepo.EXPECT().
				FindByID(ctx, int64(7)).
				Return(&entity.Question{ID: 7, Status: entity.QuestionPending}, nil)
			mockQuestionRepo.EXPECT().
				UpdateStatus(ctx, int64(7), entity.QuestionActive).
				Return(nil)

			return fn(mockFactory)
		})

	question, err := fx.service.UpdateStatus(ctx, reviewer, 7, entity.QuestionActive)

	require.NoError(t, err)
	assert.Equal(t, entity.QuestionActive, question.Status)
}

func TestQuestionService_UpdateStatus_InvalidTransition(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	admin := testHuman(100)
	admin.Role = entity.RoleAdmin

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockQuestionRepo := mockRepo.NewMockQuestionRepository(t)

			mockFactory.EXPECT().QuestionRepo().Return(mockQuestionRepo)

			mockQuestionRepo.EXPECT().
				FindByID(ctx, int64(7)).
				Return(&entity.Question{ID: 7, Status: entity.QuestionSolved}, nil)

			return fn(mockFactory)
		})

	question, err := fx.service.UpdateStatus(ctx, admin, 7, entity.QuestionPending)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Nil(t, question)
}
