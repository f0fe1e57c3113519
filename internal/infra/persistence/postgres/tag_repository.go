package postgres

import (
	"context"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tagRepository implements the domain.TagRepository interface using GORM.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// FindByName looks a tag up by its exact, case-sensitive name.
func (repo *tagRepository) FindByName(ctx context.Context, name string) (*entity.Tag, error) {
	var tagM model.TagModel
	err := repo.db.WithContext(ctx).Where("name = ?", name).First(&tagM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by name")
	}

	return &entity.Tag{ID: tagM.ID, Name: tagM.Name}, nil
}

// Create persists a new tag. A unique violation surfaces as ErrTagExists so
// the caller can re-read the row the concurrent winner created.
func (repo *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	tagM := model.TagModel{Name: tag.Name}

	if err := repo.db.WithContext(ctx).Create(&tagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTagExists
		}

		return domainerrors.NewDatabaseError(err, "failed to create tag")
	}

	tag.ID = tagM.ID

	return nil
}
