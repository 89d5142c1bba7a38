package repository

import (
	"context"
	"fmt"

	"yumi/domain"

	"gorm.io/gorm"
)

type childRepository struct {
	db *gorm.DB
}

func NewChildRepository(database *gorm.DB) domain.ChildRepo {
	return &childRepository{
		db: database,
	}
}

func (r *childRepository) ListByParent(ctx context.Context, parentID int) ([]domain.ChildProfile, error) {
	children := []domain.ChildProfile{}
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Find(&children).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list children of parent %d: %w", parentID, err)
	}
	return children, nil
}

func (r *childRepository) Create(ctx context.Context, child *domain.ChildProfile) error {
	if err := r.db.WithContext(ctx).Create(child).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to create child profile: %w", err)
	}
	return nil
}

func (r *childRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&domain.ChildProfile{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete child profile %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
