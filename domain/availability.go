package domain

import (
	"context"
	"time"

	"gorm.io/datatypes"
)

type ExpertAvailability struct {
	ID            int            `gorm:"primaryKey;autoIncrement" json:"id"`
	ExpertID      int            `gorm:"not null;uniqueIndex:idx_availability_slot,priority:1" json:"expert_id"`
	Expert        *User          `gorm:"foreignKey:ExpertID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	AvailableDate datatypes.Date `gorm:"type:date;not null;uniqueIndex:idx_availability_slot,priority:2" json:"available_date"`
	AvailableTime string         `gorm:"type:varchar(32);not null;uniqueIndex:idx_availability_slot,priority:3" json:"available_time"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

type AvailabilityRequest struct {
	ExpertID int    `json:"expert_id" valid:"required~Expert ID is required"`
	Date     string `json:"date" valid:"required~Date is required"`
	Time     string `json:"time" valid:"required~Time is required"`
}

type AvailabilityRepo interface {
	ListByExpert(ctx context.Context, expertID int) ([]ExpertAvailability, error)
	// CreateIfAbsent inserts the slot unless the same triple exists. The
	// returned bool reports whether a new row was written.
	CreateIfAbsent(ctx context.Context, slot *ExpertAvailability) (*ExpertAvailability, bool, error)
	Delete(ctx context.Context, id int) error
}

type AvailabilityUseCase interface {
	ListByExpert(ctx context.Context, expertID int) ([]ExpertAvailability, error)
	Create(ctx context.Context, req *AvailabilityRequest) (*ExpertAvailability, bool, error)
	Delete(ctx context.Context, id int) error
}
