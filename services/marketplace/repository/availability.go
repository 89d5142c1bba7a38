package repository

import (
	"context"
	"fmt"

	"yumi/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(database *gorm.DB) domain.AvailabilityRepo {
	return &availabilityRepository{
		db: database,
	}
}

func (r *availabilityRepository) ListByExpert(ctx context.Context, expertID int) ([]domain.ExpertAvailability, error) {
	slots := []domain.ExpertAvailability{}
	err := r.db.WithContext(ctx).
		Where("expert_id = ?", expertID).
		Order("available_date ASC").
		Order("available_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list availability of expert %d: %w", expertID, err)
	}
	return slots, nil
}

func (r *availabilityRepository) CreateIfAbsent(ctx context.Context, slot *domain.ExpertAvailability) (*domain.ExpertAvailability, bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(slot)
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to create availability: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return slot, true, nil
	}

	var existing domain.ExpertAvailability
	err := r.db.WithContext(ctx).
		Where("expert_id = ? AND available_date = ? AND available_time = ?",
			slot.ExpertID, slot.AvailableDate, slot.AvailableTime).
		First(&existing).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to load existing availability: %w", err)
	}
	return &existing, false, nil
}

func (r *availabilityRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&domain.ExpertAvailability{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete availability %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
