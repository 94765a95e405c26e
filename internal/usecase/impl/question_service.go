package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

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

// questionService implements the QuestionUsecase interface.
type questionService struct {
	txManager    repository.TransactionManager
	questionRepo repository.QuestionRepository
	points       *config.PointsConfig
	quota        *config.QuotaConfig
	logger       *slog.Logger
}

// QuestionServiceParams holds dependencies for questionService, injected by Fx.
type QuestionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	QuestionRepo repository.QuestionRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewQuestionService is the constructor for questionService.
func NewQuestionService(params QuestionServiceParams) usecase.QuestionUsecase {
	return &questionService{
		txManager:    params.TxManager,
		questionRepo: params.QuestionRepo,
		points:       params.Config.Points,
		quota:        params.Config.Quota,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *questionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create posts a question. Quota check, insert and points charge share one
// transaction and the caller's identity row lock, so two racing requests
// cannot both squeeze past the daily cap.
func (srv *questionService) Create(ctx context.Context, caller *entity.Identity, input usecase.CreateQuestionInput) (*usecase.QuestionOutput, error) {
	if caller == nil {
		return nil, domainerrors.ErrAuthenticationRequired
	}
	if !input.Difficulty.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown difficulty")
	}

	cost := srv.points.QuestionCost(input.Difficulty.String())

	var question *entity.Question
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identity, err := repoFactory.IdentityRepo().FindByIDForUpdate(ctx, caller.ID)
		if err != nil {
			return errors.Wrap(err, "failed to lock identity for question creation")
		}

		used, err := repoFactory.ActionLogRepo().CountForDay(ctx, identity.ID, entity.ActionPostQuestion, time.Now().UTC())
		if err != nil {
			return errors.Wrap(err, "failed to count daily questions")
		}
		if used >= srv.quota.MaxQuestionsPerDay {
			return domainerrors.ErrRateLimited.WithDetails(
				fmt.Sprintf("daily question quota reached: %d of %d used", used, srv.quota.MaxQuestionsPerDay))
		}

		question = &entity.Question{
			Title:            input.Title,
			Topic:            input.Topic,
			Description:      input.Description,
			Requirements:     input.Requirements,
			ValueExpectation: input.ValueExpectation,
			Difficulty:       input.Difficulty,
			CreatedBy:        identity.ID,
			Status:           entity.QuestionPending,
		}
		if err := repoFactory.QuestionRepo().Create(ctx, question); err != nil {
			return err
		}

		metadata := fmt.Sprintf(`{"question_id":%d,"difficulty":%q}`, question.ID, input.Difficulty)
		if _, err := applyPointsToLocked(ctx, repoFactory, identity, cost, entity.ActionPostQuestion, metadata); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Question creation failed", slog.Any("identityID", caller.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Question created", slog.Int64("questionID", question.ID), slog.Int64("cost", cost))

	return &usecase.QuestionOutput{Question: question, Heat: question.Heat()}, nil
}

// Get retrieves one question and counts the view.
func (srv *questionService) Get(ctx context.Context, id int64) (*usecase.QuestionOutput, error) {
	question, err := srv.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("question not found")
		}

		return nil, err
	}

	if err := srv.questionRepo.IncrementViews(ctx, id); err != nil {
		// A lost view does not fail the read.
		srv.log(ctx).Warn("Failed to count question view", slog.Int64("questionID", id), slog.Any("error", err))
	} else {
		question.Views++
	}

	return &usecase.QuestionOutput{Question: question, Heat: question.Heat()}, nil
}

// List retrieves questions ordered by heat, hottest first. Heat is derived,
// so the ordering happens here rather than in the store.
func (srv *questionService) List(ctx context.Context, status entity.QuestionStatus, limit, offset int) ([]*usecase.QuestionOutput, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown question status")
	}

	questions, err := srv.questionRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}

	outputs := make([]*usecase.QuestionOutput, 0, len(questions))
	for _, q := range questions {
		outputs = append(outputs, &usecase.QuestionOutput{Question: q, Heat: q.Heat()})
	}
	sort.SliceStable(outputs, func(i, j int) bool {
		return outputs[i].Heat > outputs[j].Heat
	})

	return outputs, nil
}

// Vote records at most one vote per voter. The uniqueness constraint is the
// arbiter; a duplicate is reported as an already-voted success.
func (srv *questionService) Vote(ctx context.Context, caller *entity.Identity, questionID int64) (*usecase.VoteOutput, error) {
	if caller == nil {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	var output *usecase.VoteOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		questionRepo := repoFactory.QuestionRepo()

		question, err := questionRepo.FindByID(ctx, questionID)
		if err != nil {
			if errors.Is(err, repository.ErrQuestionNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("question not found")
			}

			return err
		}

		vote := &entity.QuestionVote{
			QuestionID: questionID,
			VoterID:    caller.ID,
			VoterKind:  caller.Kind,
		}
		if err := questionRepo.CreateVote(ctx, vote); err != nil {
			if errors.Is(err, repository.ErrDuplicateVote) {
				output = &usecase.VoteOutput{AlreadyVoted: true, VoteCount: question.Votes}

				return nil
			}

			return err
		}

		if err := questionRepo.IncrementVotes(ctx, questionID); err != nil {
			return err
		}

		metadata := fmt.Sprintf(`{"question_id":%d}`, questionID)
		if err := recordAction(ctx, repoFactory, caller, entity.ActionVoteQuestion, metadata); err != nil {
			return err
		}

		output = &usecase.VoteOutput{AlreadyVoted: false, VoteCount: question.Votes + 1}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// UpdateStatus advances the question lifecycle. Reviewer or admin only, and
// strictly pending to active to solved.
func (srv *questionService) UpdateStatus(ctx context.Context, caller *entity.Identity, questionID int64, status entity.QuestionStatus) (*entity.Question, error) {
	if err := service.RequireRole(caller, entity.PolicyReviewerOrAdmin); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown question status")
	}

	var question *entity.Question
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		questionRepo := repoFactory.QuestionRepo()

		found, err := questionRepo.FindByID(ctx, questionID)
		if err != nil {
			if errors.Is(err, repository.ErrQuestionNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("question not found")
			}

			return err
		}

		if !found.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidTransition.WithDetails(
				fmt.Sprintf("cannot move question from %s to %s", found.Status, status))
		}

		if err := questionRepo.UpdateStatus(ctx, questionID, status); err != nil {
			return err
		}
		found.Status = status
		question = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Question status updated",
		slog.Int64("questionID", questionID), slog.String("status", status.String()), slog.Any("by", caller.ID))

	return question, nil
}
