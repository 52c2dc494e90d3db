package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// TagRepository manages tags.
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) GetOrCreate(ctx context.Context, name string) (*model.Tag, error) {
	if name == "" {
		return nil, nil
	}

	var tag model.Tag
	db := r.db.WithContext(ctx)
	err := db.Where("name = ?", name).First(&tag).Error
	switch {
	case err == nil:
		return &tag, nil
	case err == gorm.ErrRecordNotFound:
		tag = model.Tag{Name: name}
		if err := db.Create(&tag).Error; err != nil {
			return nil, fmt.Errorf("create tag: %w", err)
		}
		return &tag, nil
	default:
		return nil, fmt.Errorf("find tag: %w", err)
	}
}

func (r *TagRepository) ListAll(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
