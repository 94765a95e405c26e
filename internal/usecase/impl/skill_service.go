package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	deliverycontext "board/internal/delivery/context"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// skillService implements the SkillUsecase interface.
type skillService struct {
	txManager repository.TransactionManager
	skillRepo repository.SkillRepository
	logger    *slog.Logger
}

// SkillServiceParams holds dependencies for skillService, injected by Fx.
type SkillServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SkillRepo repository.SkillRepository
	Logger    *slog.Logger
}

// NewSkillService is the constructor for skillService.
func NewSkillService(params SkillServiceParams) usecase.SkillUsecase {
	return &skillService{
		txManager: params.TxManager,
		skillRepo: params.SkillRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *skillService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a new skill authored by the caller.
func (srv *skillService) Create(ctx context.Context, caller *entity.Identity, input usecase.CreateSkillInput) (*entity.Skill, error) {
	if caller == nil {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	valueLevel := input.ValueLevel
	if valueLevel == "" {
		valueLevel = "medium"
	}

	skill := &entity.Skill{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		ValueLevel:  valueLevel,
		AuthorID:    caller.ID,
		AuthorName:  caller.DisplayName,
	}
	if err := srv.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Skill published", slog.Int64("skillID", skill.ID), slog.Any("authorID", caller.ID))

	return skill, nil
}

// Get retrieves one skill.
func (srv *skillService) Get(ctx context.Context, id int64) (*entity.Skill, error) {
	skill, err := srv.skillRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("skill not found")
		}

		return nil, err
	}

	return skill, nil
}

// List retrieves skills, optionally filtered by category, best first.
func (srv *skillService) List(ctx context.Context, category string, limit, offset int) ([]*entity.Skill, error) {
	return srv.skillRepo.List(ctx, category, limit, offset)
}

// Download records one download by the caller, bumps the counter and leaves
// an audit entry, all in one transaction.
func (srv *skillService) Download(ctx context.Context, caller *entity.Identity, skillID int64) (*entity.Skill, error) {
	if caller == nil {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	var skill *entity.Skill
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		skillRepo := repoFactory.SkillRepo()

		found, err := skillRepo.FindByID(ctx, skillID)
		if err != nil {
			if errors.Is(err, repository.ErrSkillNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("skill not found")
			}

			return err
		}

		download := &entity.SkillDownload{SkillID: skillID, DownloaderID: caller.ID}
		if err := skillRepo.RecordDownload(ctx, download); err != nil {
			return err
		}
		if err := skillRepo.IncrementDownloads(ctx, skillID); err != nil {
			return err
		}

		metadata := fmt.Sprintf(`{"skill_id":%d}`, skillID)
		if err := recordAction(ctx, repoFactory, caller, entity.ActionDownloadSkill, metadata); err != nil {
			return err
		}

		found.Downloads++
		skill = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return skill, nil
}

// Rate records one rating per rater and recomputes the running average. A
// repeat rating is an already-rated success that leaves the average alone.
func (srv *skillService) Rate(ctx context.Context, caller *entity.Identity, input usecase.RateSkillInput) (*usecase.RateOutput, error) {
	if caller == nil {
		return nil, domainerrors.ErrAuthenticationRequired
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	var output *usecase.RateOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		skillRepo := repoFactory.SkillRepo()

		skill, err := skillRepo.FindByID(ctx, input.SkillID)
		if err != nil {
			if errors.Is(err, repository.ErrSkillNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("skill not found")
			}

			return err
		}

		rating := &entity.SkillRating{
			SkillID: input.SkillID,
			RaterID: caller.ID,
			Rating:  input.Rating,
			Comment: input.Comment,
		}
		if err := skillRepo.CreateRating(ctx, rating); err != nil {
			if errors.Is(err, repository.ErrDuplicateRating) {
				output = &usecase.RateOutput{
					AlreadyRated: true,
					Rating:       skill.Rating,
					RatingCount:  skill.RatingCount,
				}

				return nil
			}

			return err
		}

		newCount := skill.RatingCount + 1
		newAverage := (skill.Rating*float64(skill.RatingCount) + float64(input.Rating)) / float64(newCount)
		newAverage = math.Round(newAverage*100) / 100
		if err := skillRepo.UpdateRating(ctx, input.SkillID, newAverage, newCount); err != nil {
			return err
		}

		metadata := fmt.Sprintf(`{"skill_id":%d,"rating":%d}`, input.SkillID, input.Rating)
		if err := recordAction(ctx, repoFactory, caller, entity.ActionRateSkill, metadata); err != nil {
			return err
		}

		output = &usecase.RateOutput{
			AlreadyRated: false,
			Rating:       newAverage,
			RatingCount:  newCount,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
