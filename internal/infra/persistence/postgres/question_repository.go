package postgres

import (
	"context"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// questionRepository implements the domain.QuestionRepository interface using GORM.
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository is the constructor for questionRepository.
func NewQuestionRepository(db *gorm.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

// Create persists a new question and backfills its generated ID.
func (repo *questionRepository) Create(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)

	if err := repo.db.WithContext(ctx).Create(questionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required question fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create question")
	}

	question.ID = questionM.ID
	question.CreatedAt = questionM.CreatedAt
	question.UpdatedAt = questionM.UpdatedAt

	return nil
}

// FindByID retrieves a question by ID.
func (repo *questionRepository) FindByID(ctx context.Context, id int64) (*entity.Question, error) {
	var questionM model.QuestionModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&questionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find question by id")
	}

	return toQuestionDomain(&questionM), nil
}

// List retrieves questions, optionally filtered by status, newest first.
func (repo *questionRepository) List(ctx context.Context, status entity.QuestionStatus, limit, offset int) ([]*entity.Question, error) {
	query := repo.db.WithContext(ctx).Model(&model.QuestionModel{})
	if status != "" {
		query = query.Where("status = ?", status.String())
	}

	var models []*model.QuestionModel
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	questions := make([]*entity.Question, 0, len(models))
	for _, m := range models {
		questions = append(questions, toQuestionDomain(m))
	}

	return questions, nil
}

// IncrementViews bumps the view counter by one.
func (repo *questionRepository) IncrementViews(ctx context.Context, id int64) error {
	return repo.incrementCounter(ctx, id, "views")
}

// IncrementVotes bumps the vote counter by one.
func (repo *questionRepository) IncrementVotes(ctx context.Context, id int64) error {
	return repo.incrementCounter(ctx, id, "votes")
}

func (repo *questionRepository) incrementCounter(ctx context.Context, id int64, column string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment question "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// UpdateStatus writes a new lifecycle status.
func (repo *questionRepository) UpdateStatus(ctx context.Context, id int64, status entity.QuestionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update question status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// CreateVote inserts one vote row. The composite unique index on
// (question_id, voter_id) turns double votes into ErrDuplicateVote.
func (repo *questionRepository) CreateVote(ctx context.Context, vote *entity.QuestionVote) error {
	voteM := &model.QuestionVoteModel{
		QuestionID: vote.QuestionID,
		VoterID:    vote.VoterID,
		VoterKind:  vote.VoterKind.String(),
	}

	if err := repo.db.WithContext(ctx).Create(voteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVote
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create question vote")
	}

	vote.ID = voteM.ID
	vote.CreatedAt = voteM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toQuestionDomain(data *model.QuestionModel) *entity.Question {
	if data == nil {
		return nil
	}

	return &entity.Question{
		ID:               data.ID,
		Title:            data.Title,
		Topic:            data.Topic,
		Description:      data.Description,
		Requirements:     data.Requirements,
		ValueExpectation: data.ValueExpectation,
		Difficulty:       entity.Difficulty(data.Difficulty),
		CreatedBy:        data.CreatedBy,
		Status:           entity.QuestionStatus(data.Status),
		Views:            data.Views,
		Votes:            data.Votes,
		Participants:     data.Participants,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromQuestionDomain(data *entity.Question) *model.QuestionModel {
	if data == nil {
		return nil
	}

	requirements := data.Requirements
	if requirements == "" {
		requirements = "[]"
	}

	return &model.QuestionModel{
		ID:               data.ID,
		Title:            data.Title,
		Topic:            data.Topic,
		Description:      data.Description,
		Requirements:     requirements,
		ValueExpectation: data.ValueExpectation,
		Difficulty:       data.Difficulty.String(),
		CreatedBy:        data.CreatedBy,
		Status:           data.Status.String(),
		Views:            data.Views,
		Votes:            data.Votes,
		Participants:     data.Participants,
	}
}
