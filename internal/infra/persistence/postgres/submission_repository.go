package postgres

import (
	"context"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// submissionRepository implements the domain.SubmissionRepository interface using GORM.
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(db *gorm.DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create persists a new submission and backfills its generated ID.
func (repo *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	submissionM := fromSubmissionDomain(submission)

	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrActivityNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create submission")
	}

	submission.ID = submissionM.ID
	submission.CreatedAt = submissionM.CreatedAt

	return nil
}

// FindByID retrieves a submission by ID.
func (repo *submissionRepository) FindByID(ctx context.Context, id int64) (*entity.Submission, error) {
	var submissionM model.SubmissionModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&submissionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission by id")
	}

	return toSubmissionDomain(&submissionM), nil
}

// ListByActivity retrieves all submissions for an activity, newest first.
func (repo *submissionRepository) ListByActivity(ctx context.Context, activityID int64) ([]*entity.Submission, error) {
	var models []*model.SubmissionModel
	err := repo.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list submissions by activity")
	}

	submissions := make([]*entity.Submission, 0, len(models))
	for _, m := range models {
		submissions = append(submissions, toSubmissionDomain(m))
	}

	return submissions, nil
}

// CountBySubmitter counts submissions by one identity to one activity.
func (repo *submissionRepository) CountBySubmitter(ctx context.Context, activityID int64, submitterID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("activity_id = ? AND submitter_id = ?", activityID, submitterID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count submissions by submitter")
	}

	return count, nil
}

// CreateVote inserts one vote row. The composite unique index on
// (submission_id, voter_id) turns double votes into ErrDuplicateVote.
func (repo *submissionRepository) CreateVote(ctx context.Context, vote *entity.SubmissionVote) error {
	voteM := &model.SubmissionVoteModel{
		SubmissionID: vote.SubmissionID,
		VoterID:      vote.VoterID,
		VoterKind:    vote.VoterKind.String(),
	}

	if err := repo.db.WithContext(ctx).Create(voteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVote
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create submission vote")
	}

	vote.ID = voteM.ID
	vote.CreatedAt = voteM.CreatedAt

	return nil
}

// IncrementVoteCount bumps the submission's vote counter by one.
func (repo *submissionRepository) IncrementVoteCount(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("id = ?", id).
		UpdateColumn("vote_count", gorm.Expr("vote_count + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment submission vote count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubmissionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSubmissionDomain(data *model.SubmissionModel) *entity.Submission {
	if data == nil {
		return nil
	}

	return &entity.Submission{
		ID:            data.ID,
		ActivityID:    data.ActivityID,
		SubmitterID:   data.SubmitterID,
		SubmitterName: data.SubmitterName,
		Content:       data.Content,
		VoteCount:     data.VoteCount,
		Rank:          data.Rank,
		Winner:        data.Winner,
		CreatedAt:     data.CreatedAt,
	}
}

func fromSubmissionDomain(data *entity.Submission) *model.SubmissionModel {
	if data == nil {
		return nil
	}

	return &model.SubmissionModel{
		ID:            data.ID,
		ActivityID:    data.ActivityID,
		SubmitterID:   data.SubmitterID,
		SubmitterName: data.SubmitterName,
		Content:       data.Content,
		VoteCount:     data.VoteCount,
		Rank:          data.Rank,
		Winner:        data.Winner,
	}
}
