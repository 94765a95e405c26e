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

// skillRepository implements the domain.SkillRepository interface using GORM.
type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository is the constructor for skillRepository.
func NewSkillRepository(db *gorm.DB) repository.SkillRepository {
	return &skillRepository{db: db}
}

// Create persists a new skill and backfills its generated ID.
func (repo *skillRepository) Create(ctx context.Context, skill *entity.Skill) error {
	skillM := fromSkillDomain(skill)

	if err := repo.db.WithContext(ctx).Create(skillM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required skill fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create skill")
	}

	skill.ID = skillM.ID
	skill.CreatedAt = skillM.CreatedAt
	skill.UpdatedAt = skillM.UpdatedAt

	return nil
}

// FindByID retrieves a skill by ID.
func (repo *skillRepository) FindByID(ctx context.Context, id int64) (*entity.Skill, error) {
	var skillM model.SkillModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&skillM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSkillNotFound
		}

		return nil, errors.Wrap(err, "failed to find skill by id")
	}

	return toSkillDomain(&skillM), nil
}

// List retrieves skills, optionally filtered by category, best rated first.
func (repo *skillRepository) List(ctx context.Context, category string, limit, offset int) ([]*entity.Skill, error) {
	query := repo.db.WithContext(ctx).Model(&model.SkillModel{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var models []*model.SkillModel
	err := query.
		Order("rating DESC, downloads DESC, created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}

	skills := make([]*entity.Skill, 0, len(models))
	for _, m := range models {
		skills = append(skills, toSkillDomain(m))
	}

	return skills, nil
}

// RecordDownload appends one download record.
func (repo *skillRepository) RecordDownload(ctx context.Context, download *entity.SkillDownload) error {
	downloadM := &model.SkillDownloadModel{
		SkillID:      download.SkillID,
		DownloaderID: download.DownloaderID,
	}

	if err := repo.db.WithContext(ctx).Create(downloadM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record skill download")
	}

	download.ID = downloadM.ID
	download.CreatedAt = downloadM.CreatedAt

	return nil
}

// IncrementDownloads bumps the skill's download counter by one.
func (repo *skillRepository) IncrementDownloads(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SkillModel{}).
		Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment skill downloads")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSkillNotFound
	}

	return nil
}

// CreateRating inserts one rating row. The composite unique index on
// (skill_id, rater_id) turns repeat ratings into ErrDuplicateRating.
func (repo *skillRepository) CreateRating(ctx context.Context, rating *entity.SkillRating) error {
	ratingM := &model.SkillRatingModel{
		SkillID: rating.SkillID,
		RaterID: rating.RaterID,
		Rating:  rating.Rating,
		Comment: rating.Comment,
	}

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRating
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create skill rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// UpdateRating writes a recomputed average rating and rating count.
func (repo *skillRepository) UpdateRating(ctx context.Context, id int64, rating float64, count int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SkillModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":       rating,
			"rating_count": count,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update skill rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSkillNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSkillDomain(data *model.SkillModel) *entity.Skill {
	if data == nil {
		return nil
	}

	return &entity.Skill{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Description: data.Description,
		ValueLevel:  data.ValueLevel,
		AuthorID:    data.AuthorID,
		AuthorName:  data.AuthorName,
		Downloads:   data.Downloads,
		Rating:      data.Rating,
		RatingCount: data.RatingCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSkillDomain(data *entity.Skill) *model.SkillModel {
	if data == nil {
		return nil
	}

	return &model.SkillModel{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Description: data.Description,
		ValueLevel:  data.ValueLevel,
		AuthorID:    data.AuthorID,
		AuthorName:  data.AuthorName,
		Downloads:   data.Downloads,
		Rating:      data.Rating,
		RatingCount: data.RatingCount,
	}
}
