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

// activityServiceFixtures holds all test dependencies for activity service tests.
type activityServiceFixtures struct {
	service        usecase.ActivityUsecase
	txManager      *mockRepo.MockTransactionManager
	activityRepo   *mockRepo.MockActivityRepository
	questionRepo   *mockRepo.MockQuestionRepository
	submissionRepo *mockRepo.MockSubmissionRepository
}

func createTestActivityService(t *testing.T) activityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	questionRepo := mockRepo.NewMockQuestionRepository(t)
	submissionRepo := mockRepo.NewMockSubmissionRepository(t)

	activityUsecase := NewActivityService(ActivityServiceParams{
		TxManager:      txManager,
		ActivityRepo:   activityRepo,
		QuestionRepo:   questionRepo,
		SubmissionRepo: submissionRepo,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return activityServiceFixtures{
		service:        activityUsecase,
		txManager:      txManager,
		activityRepo:   activityRepo,
		questionRepo:   questionRepo,
		submissionRepo: submissionRepo,
	}
}

func testReviewer() *entity.Identity {
	reviewer := testHuman(100)
	reviewer.Role = entity.RoleReviewer

	return reviewer
}

func TestActivityService_Create_InheritsFromQuestion(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	fx.questionRepo.EXPECT().
		FindByID(ctx, int64(9)).
		Return(&entity.Question{
			ID:           9,
			Title:        "Summarize noisy sensor data",
			Topic:        "data_processing",
			Description:  "Take raw readings and produce a daily digest.",
			Requirements: `["hourly input","daily output"]`,
			Difficulty:   entity.DifficultyMedium,
			Status:       entity.QuestionActive,
		}, nil)
	fx.activityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Activity")).
		Run(func(ctx context.Context, activity *entity.Activity) {
			assert.Equal(t, int64(9), activity.QuestionID)
			assert.Equal(t, "Summarize noisy sensor data", activity.Title)
			assert.Equal(t, "data_processing", activity.Topic)
			assert.Equal(t, entity.DifficultyMedium, activity.Difficulty)
			assert.Equal(t, entity.ActivityOpen, activity.Status)
			activity.ID = 3
		}).
		Return(nil)

	output, err := fx.service.Create(ctx, testReviewer(), usecase.CreateActivityInput{QuestionID: 9})

	require.NoError(t, err)
	assert.Equal(t, int64(3), output.Activity.ID)
	assert.Zero(t, output.Participants)
}

func TestActivityService_Create_QuestionMustBeActive(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	fx.questionRepo.EXPECT().
		FindByID(ctx, int64(9)).
		Return(&entity.Question{ID: 9, Status: entity.QuestionPending}, nil)

	output, err := fx.service.Create(ctx, testReviewer(), usecase.CreateActivityInput{QuestionID: 9})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.Nil(t, output)
}

func TestActivityService_Create_RequiresReviewer(t *testing.T) {
	fx := createTestActivityService(t)

	output, err := fx.service.Create(context.Background(), testHuman(100), usecase.CreateActivityInput{QuestionID: 9})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, output)
}

func TestActivityService_Join_FirstTime(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	caller := testHuman(100)

	fx.activityRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Activity{ID: 3, Status: entity.ActivityOpen}, nil)
	fx.activityRepo.EXPECT().
		AddParticipant(ctx, mock.AnythingOfType("*entity.ActivityParticipant")).
		Run(func(ctx context.Context, participant *entity.ActivityParticipant) {
			assert.Equal(t, int64(3), participant.ActivityID)
			assert.Equal(t, caller.ID, participant.IdentityID)
		}).
		Return(nil)
	fx.activityRepo.EXPECT().
		CountParticipants(ctx, int64(3)).
		Return(int64(5), nil)

	output, err := fx.service.Join(ctx, caller, 3)

	require.NoError(t, err)
	assert.False(t, output.AlreadyJoined)
	assert.Equal(t, int64(5), output.Participants)
}

func TestActivityService_Join_SecondTimeIsIdempotent(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	fx.activityRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Activity{ID: 3, Status: entity.ActivityOpen}, nil)
	fx.activityRepo.EXPECT().
		AddParticipant(ctx, mock.AnythingOfType("*entity.ActivityParticipant")).
		Return(repository.ErrAlreadyJoined)
	fx.activityRepo.EXPECT().
		CountParticipants(ctx, int64(3)).
		Return(int64(5), nil)

	output, err := fx.service.Join(ctx, testHuman(100), 3)

	require.NoError(t, err)
	assert.True(t, output.AlreadyJoined)
	assert.Equal(t, int64(5), output.Participants)
}

func TestActivityService_Join_ClosedActivity(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	fx.activityRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Activity{ID: 3, Status: entity.ActivityClosed}, nil)

	output, err := fx.service.Join(ctx, testHuman(100), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.Nil(t, output)
}

func TestActivityService_Submit_FirstSubmissionEarnsBonus(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	caller := testHuman(70)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockActivityRepo := mockRepo.NewMockActivityRepository(t)
			mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockActionLogRepo := mockRepo.NewMockActionLogRepository(t)

			mockFactory.EXPECT().ActivityRepo().Return(mockActivityRepo)
			mockFactory.EXPECT().SubmissionRepo().Return(mockSubmissionRepo)
			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ActionLogRepo().Return(mockActionLogRepo)

			mockActivityRepo.EXPECT().
				FindByID(ctx, int64(3)).
				Return(&entity.Activity{ID: 3, Status: entity.ActivityOpen}, nil)
			mockActivityRepo.EXPECT().
				HasParticipant(ctx, int64(3), caller.ID).
				Return(true, nil)

			mockSubmissionRepo.EXPECT().
				CountBySubmitter(ctx, int64(3), caller.ID).
				Return(int64(0), nil)
			mockSubmissionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Submission")).
				Run(func(ctx context.Context, submission *entity.Submission) {
					assert.Equal(t, caller.ID, submission.SubmitterID)
					assert.Equal(t, caller.DisplayName, submission.SubmitterName)
					submission.ID = 11
				}).
				Return(nil)

			mockIdentityRepo.EXPECT().
				FindByIDForUpdate(ctx, caller.ID).
				Return(&entity.Identity{ID: caller.ID, Kind: entity.KindHuman, PointsBalance: 70}, nil)
			mockIdentityRepo.EXPECT().
				UpdatePointsBalance(ctx, caller.ID, int64(100)).
				Return(nil)
			mockActionLogRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.ActionLogEntry")).
				Run(func(ctx context.Context, entry *entity.ActionLogEntry) {
					assert.Equal(t, entity.ActionSubmitSolution, entry.ActionType)
					assert.Equal(t, int64(30), entry.PointsChange)
					assert.Equal(t, int64(100), entry.PointsAfter)
					assert.JSONEq(t, `{"activity_id":3,"submission_id":11}`, entry.Metadata)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Submit(ctx, caller, usecase.CreateSubmissionInput{ActivityID: 3, Content: "solution"})

	require.NoError(t, err)
	assert.Equal(t, int64(30), output.PointsAwarded)
	assert.Equal(t, int64(100), output.CurrentBalance)
	assert.Equal(t, int64(11), output.Submission.ID)
}

func TestActivityService_Submit_RepeatSubmissionEarnsNothing(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	caller := testHuman(100)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockActivityRepo := mockRepo.NewMockActivityRepository(t)
			mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockActionLogRepo := mockRepo.NewMockActionLogRepository(t)

			mockFactory.EXPECT().ActivityRepo().Return(mockActivityRepo)
			mockFactory.EXPECT().SubmissionRepo().Return(mockSubmissionRepo)
			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ActionLogRepo().Return(mockActionLogRepo)

			mockActivityRepo.EXPECT().
				FindByID(ctx, int64(3)).
				Return(&entity.Activity{ID: 3, Status: entity.ActivityOpen}, nil)
			mockActivityRepo.EXPECT().
				HasParticipant(ctx, int64(3), caller.ID).
				Return(true, nil)

			mockSubmissionRepo.EXPECT().
				CountBySubmitter(ctx, int64(3), caller.ID).
				Return(int64(1), nil)
			mockSubmissionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Submission")).
				Run(func(ctx context.Context, submission *entity.Submission) {
					submission.ID = 12
				}).
				Return(nil)

			mockIdentityRepo.EXPECT().
				FindByID(ctx, caller.ID).
				Return(caller, nil)
			mockActionLogRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.ActionLogEntry")).
				Run(func(ctx context.Context, entry *entity.ActionLogEntry) {
					assert.Zero(t, entry.PointsChange)
					assert.Equal(t, int64(100), entry.PointsAfter)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Submit(ctx, caller, usecase.CreateSubmissionInput{ActivityID: 3, Content: "better solution"})

	require.NoError(t, err)
	assert.Zero(t, output.PointsAwarded)
	assert.Equal(t, int64(100), output.CurrentBalance)
}

func TestActivityService_Submit_RequiresJoin(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	caller := testHuman(100)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockActivityRepo := mockRepo.NewMockActivityRepository(t)

			mockFactory.EXPECT().ActivityRepo().Return(mockActivityRepo)

			mockActivityRepo.EXPECT().
				FindByID(ctx, int64(3)).
				Return(&entity.Activity{ID: 3, Status: entity.ActivityOpen}, nil)
			mockActivityRepo.EXPECT().
				HasParticipant(ctx, int64(3), caller.ID).
				Return(false, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Submit(ctx, caller, usecase.CreateSubmissionInput{ActivityID: 3, Content: "solution"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, output)
}

func TestActivityService_VoteSubmission_DuplicateIsIdempotent(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	caller := testHuman(100)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)

			mockFactory.EXPECT().SubmissionRepo().Return(mockSubmissionRepo)

			mockSubmissionRepo.EXPECT().
				FindByID(ctx, int64(11)).
				Return(&entity.Submission{ID: 11, VoteCount: 8}, nil)
			mockSubmissionRepo.EXPECT().
				CreateVote(ctx, mock.AnythingOfType("*entity.SubmissionVote")).
				Return(repository.ErrDuplicateVote)

			return fn(mockFactory)
		})

	output, err := fx.service.VoteSubmission(ctx, caller, 11)

	require.NoError(t, err)
	assert.True(t, output.AlreadyVoted)
	assert.Equal(t, int64(8), output.VoteCount)
}

func TestActivityService_UpdateStatus_OpenToClosed(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	fx.activityRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Activity{ID: 3, Status: entity.ActivityOpen}, nil)
	fx.activityRepo.EXPECT().
		UpdateStatus(ctx, int64(3), entity.ActivityClosed).
		Return(nil)

	activity, err := fx.service.UpdateStatus(ctx, testReviewer(), 3, entity.ActivityClosed)

	require.NoError(t, err)
	assert.Equal(t, entity.ActivityClosed, activity.Status)
}

func TestActivityService_UpdateStatus_SameStatusIsNoOp(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	fx.activityRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Activity{ID: 3, Status: entity.ActivityClosed}, nil)

	activity, err := fx.service.UpdateStatus(ctx, testReviewer(), 3, entity.ActivityClosed)

	require.NoError(t, err)
	assert.Equal(t, entity.ActivityClosed, activity.Status)
}

func TestActivityService_UpdateStatus_CannotReopen(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	fx.activityRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Activity{ID: 3, Status: entity.ActivityClosed}, nil)

	activity, err := fx.service.UpdateStatus(ctx, testReviewer(), 3, entity.ActivityOpen)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Nil(t, activity)
}
