package impl

import (
	"context"
	"fmt"
	"log/slog"

	"board/config"
	deliverycontext "board/internal/delivery/context"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/domain/service"
	"board/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	txManager      repository.TransactionManager
	activityRepo   repository.ActivityRepository
	questionRepo   repository.QuestionRepository
	submissionRepo repository.SubmissionRepository
	points         *config.PointsConfig
	logger         *slog.Logger
}

// ActivityServiceParams holds dependencies for activityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ActivityRepo   repository.ActivityRepository
	QuestionRepo   repository.QuestionRepository
	SubmissionRepo repository.SubmissionRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		txManager:      params.TxManager,
		activityRepo:   params.ActivityRepo,
		questionRepo:   params.QuestionRepo,
		submissionRepo: params.SubmissionRepo,
		points:         params.Config.Points,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create derives a new open activity from an active question, inheriting
// whatever the input leaves blank. Reviewer or admin only.
func (srv *activityService) Create(ctx context.Context, caller *entity.Identity, input usecase.CreateActivityInput) (*usecase.ActivityOutput, error) {
	if err := service.RequireRole(caller, entity.PolicyReviewerOrAdmin); err != nil {
		return nil, err
	}

	question, err := srv.questionRepo.FindByID(ctx, input.QuestionID)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("question not found")
		}

		return nil, err
	}
	if question.Status != entity.QuestionActive {
		return nil, domainerrors.ErrConflict.WrapMessage("activities derive from active questions only")
	}

	activity := &entity.Activity{
		QuestionID:   question.ID,
		Title:        input.Title,
		Topic:        question.Topic,
		Description:  input.Description,
		Requirements: question.Requirements,
		Difficulty:   question.Difficulty,
		Status:       entity.ActivityOpen,
	}
	if activity.Title == "" {
		activity.Title = question.Title
	}
	if activity.Description == "" {
		activity.Description = question.Description
	}

	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Activity created",
		slog.Int64("activityID", activity.ID), slog.Int64("questionID", question.ID), slog.Any("by", caller.ID))

	return &usecase.ActivityOutput{Activity: activity, Participants: 0}, nil
}

// Get retrieves one activity with its participant count.
func (srv *activityService) Get(ctx context.Context, id int64) (*usecase.ActivityOutput, error) {
	activity, err := srv.activityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("activity not found")
		}

		return nil, err
	}

	participants, err := srv.activityRepo.CountParticipants(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.ActivityOutput{Activity: activity, Participants: participants}, nil
}

// List retrieves activities, optionally filtered by status, newest first.
func (srv *activityService) List(ctx context.Context, status entity.ActivityStatus, limit, offset int) ([]*usecase.ActivityOutput, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown activity status")
	}

	activities, err := srv.activityRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}

	outputs := make([]*usecase.ActivityOutput, 0, len(activities))
	for _, activity := range activities {
		participants, err := srv.activityRepo.CountParticipants(ctx, activity.ID)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, &usecase.ActivityOutput{Activity: activity, Participants: participants})
	}

	return outputs, nil
}

// Join registers the caller as a participant. A second join is absorbed as
// an idempotent success; the participant count never double-counts.
func (srv *activityService) Join(ctx context.Context, caller *entity.Identity, activityID int64) (*usecase.JoinOutput, error) {
	if caller == nil {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	activity, err := srv.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("activity not found")
		}

		return nil, err
	}
	if activity.Status != entity.ActivityOpen {
		return nil, domainerrors.ErrConflict.WrapMessage("activity is closed")
	}

	alreadyJoined := false
	participant := &entity.ActivityParticipant{ActivityID: activityID, IdentityID: caller.ID}
	if err := srv.activityRepo.AddParticipant(ctx, participant); err != nil {
		if !errors.Is(err, repository.ErrAlreadyJoined) {
			return nil, err
		}
		alreadyJoined = true
	}

	participants, err := srv.activityRepo.CountParticipants(ctx, activityID)
	if err != nil {
		return nil, err
	}

	return &usecase.JoinOutput{AlreadyJoined: alreadyJoined, Participants: participants}, nil
}

// Submit records a candidate solution. The first submission per activity by
// this caller credits the bonus inside the same transaction as the insert.
func (srv *activityService) Submit(ctx context.Context, caller *entity.Identity, input usecase.CreateSubmissionInput) (*usecase.SubmissionOutput, error) {
	if caller == nil {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	var output *usecase.SubmissionOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.ActivityRepo()

		activity, err := activityRepo.FindByID(ctx, input.ActivityID)
		if err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("activity not found")
			}

			return err
		}
		if activity.Status != entity.ActivityOpen {
			return domainerrors.ErrConflict.WrapMessage("activity is closed")
		}

		joined, err := activityRepo.HasParticipant(ctx, input.ActivityID, caller.ID)
		if err != nil {
			return err
		}
		if !joined {
			return domainerrors.ErrForbidden.WrapMessage("join the activity before submitting")
		}

		submissionRepo := repoFactory.SubmissionRepo()
		priorSubmissions, err := submissionRepo.CountBySubmitter(ctx, input.ActivityID, caller.ID)
		if err != nil {
			return err
		}

		submission := &entity.Submission{
			ActivityID:    input.ActivityID,
			SubmitterID:   caller.ID,
			SubmitterName: caller.DisplayName,
			Content:       input.Content,
		}
		if err := submissionRepo.Create(ctx, submission); err != nil {
			return err
		}

		metadata := fmt.Sprintf(`{"activity_id":%d,"submission_id":%d}`, input.ActivityID, submission.ID)

		var awarded, balance int64
		if priorSubmissions == 0 {
			balance, err = applyPointsChange(ctx, repoFactory, caller.ID, srv.points.SubmitSolution, entity.ActionSubmitSolution, metadata)
			if err != nil {
				return err
			}
			awarded = srv.points.SubmitSolution
		} else {
			if err := recordAction(ctx, repoFactory, caller, entity.ActionSubmitSolution, metadata); err != nil {
				return err
			}
			balance = caller.PointsBalance
		}

		output = &usecase.SubmissionOutput{
			Submission:     submission,
			PointsAwarded:  awarded,
			CurrentBalance: balance,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Submission failed",
			slog.Int64("activityID", input.ActivityID), slog.Any("identityID", caller.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Submission recorded",
		slog.Int64("submissionID", output.Submission.ID), slog.Int64("awarded", output.PointsAwarded))

	return output, nil
}

// ListSubmissions retrieves all submissions for an activity, newest first.
func (srv *activityService) ListSubmissions(ctx context.Context, activityID int64) ([]*entity.Submission, error) {
	if _, err := srv.activityRepo.FindByID(ctx, activityID); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("activity not found")
		}

		return nil, err
	}

	return srv.submissionRepo.ListByActivity(ctx, activityID)
}

// VoteSubmission records at most one vote per voter per submission.
func (srv *activityService) VoteSubmission(ctx context.Context, caller *entity.Identity, submissionID int64) (*usecase.VoteOutput, error) {
	if caller == nil {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	var output *usecase.VoteOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		submissionRepo := repoFactory.SubmissionRepo()

		submission, err := submissionRepo.FindByID(ctx, submissionID)
		if err != nil {
			if errors.Is(err, repository.ErrSubmissionNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("submission not found")
			}

			return err
		}

		vote := &entity.SubmissionVote{
			SubmissionID: submissionID,
			VoterID:      caller.ID,
			VoterKind:    caller.Kind,
		}
		if err := submissionRepo.CreateVote(ctx, vote); err != nil {
			if errors.Is(err, repository.ErrDuplicateVote) {
				output = &usecase.VoteOutput{AlreadyVoted: true, VoteCount: submission.VoteCount}

				return nil
			}

			return err
		}

		if err := submissionRepo.IncrementVoteCount(ctx, submissionID); err != nil {
			return err
		}

		metadata := fmt.Sprintf(`{"submission_id":%d}`, submissionID)
		if err := recordAction(ctx, repoFactory, caller, entity.ActionVoteSubmission, metadata); err != nil {
			return err
		}

		output = &usecase.VoteOutput{AlreadyVoted: false, VoteCount: submission.VoteCount + 1}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// UpdateStatus moves an activity from open to closed. Reviewer or admin only.
func (srv *activityService) UpdateStatus(ctx context.Context, caller *entity.Identity, activityID int64, status entity.ActivityStatus) (*entity.Activity, error) {
	if err := service.RequireRole(caller, entity.PolicyReviewerOrAdmin); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown activity status")
	}

	activity, err := srv.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("activity not found")
		}

		return nil, err
	}

	if activity.Status == status {
		return activity, nil
	}
	if activity.Status != entity.ActivityOpen || status != entity.ActivityClosed {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("cannot move activity from %s to %s", activity.Status, status))
	}

	if err := srv.activityRepo.UpdateStatus(ctx, activityID, status); err != nil {
		return nil, err
	}
	activity.Status = status

	srv.log(ctx).Info("Activity status updated",
		slog.Int64("activityID", activityID), slog.String("status", status.String()), slog.Any("by", caller.ID))

	return activity, nil
}
