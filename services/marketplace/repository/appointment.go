package repository

import (
	"context"
	"errors"
	"fmt"

	"yumi/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(database *gorm.DB) domain.AppointmentRepo {
	return &appointmentRepository{
		db: database,
	}
}

func (r *appointmentRepository) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&domain.Appointment{})
	if filter.ExpertID != nil {
		q = q.Where("expert_id = ?", *filter.ExpertID)
	}
	if filter.ParentID != nil {
		q = q.Where("parent_id = ?", *filter.ParentID)
	}

	appts := []domain.Appointment{}
	// "date" is a keyword in postgres, so let gorm quote it
	q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true})
	if err := q.Find(&appts).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int) (*domain.Appointment, error) {
	var appt domain.Appointment
	if err := r.db.WithContext(ctx).First(&appt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error fetching appointment %d: %w", id, err)
	}
	return &appt, nil
}

func (r *appointmentRepository) BookSlot(ctx context.Context, appt *domain.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("expert_id = ? AND available_date = ? AND available_time = ?",
			appt.ExpertID, appt.Date, appt.Time).
			Delete(&domain.ExpertAvailability{})
		if res.Error != nil {
			return fmt.Errorf("failed to reserve slot: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrSlotUnavailable
		}

		appt.Status = domain.StatusApproved
		if err := tx.Create(appt).Error; err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		return nil
	})
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int, status domain.AppointmentStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update appointment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
