package domain

import (
	"context"
	"time"

	"gorm.io/datatypes"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

type Appointment struct {
	ID        int               `gorm:"primaryKey;autoIncrement" json:"id"`
	ExpertID  int               `gorm:"not null;index" json:"expert_id"`
	Expert    *User             `gorm:"foreignKey:ExpertID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ParentID  int               `gorm:"not null;index" json:"parent_id"`
	Parent    *User             `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Date      datatypes.Date    `gorm:"type:date;not null;index" json:"date"`
	Time      string            `gorm:"type:varchar(32);not null" json:"time"`
	ChildName string            `gorm:"type:varchar(150);not null" json:"child_name"`
	ChildAge  int               `gorm:"not null" json:"child_age"`
	Topic     string            `gorm:"type:text;not null" json:"topic"`
	Status    AppointmentStatus `gorm:"type:varchar(16);not null;index;check:status IN ('pending','approved','rejected','completed')" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

type BookingRequest struct {
	ExpertID  int    `json:"expert_id" valid:"required~Expert ID is required"`
	ParentID  int    `json:"parent_id" valid:"required~Parent ID is required"`
	Date      string `json:"date" valid:"required~Date is required"`
	Time      string `json:"time" valid:"required~Time is required"`
	ChildName string `json:"child_name" valid:"required~Child name is required"`
	ChildAge  int    `json:"child_age"`
	Topic     string `json:"topic" valid:"required~Topic is required"`
}

type StatusRequest struct {
	Status string `json:"status" valid:"required~Status is required"`
}

type AppointmentFilter struct {
	ExpertID *int
	ParentID *int
}

type AppointmentRepo interface {
	List(ctx context.Context, filter AppointmentFilter) ([]Appointment, error)
	FindByID(ctx context.Context, id int) (*Appointment, error)
	// BookSlot consumes the matching availability row and inserts the
	// appointment in a single transaction.
	BookSlot(ctx context.Context, appt *Appointment) error
	UpdateStatus(ctx context.Context, id int, status AppointmentStatus) error
}

type AppointmentUseCase interface {
	List(ctx context.Context, filter AppointmentFilter) ([]Appointment, error)
	Get(ctx context.Context, id int) (*Appointment, error)
	Book(ctx context.Context, req *BookingRequest) (*Appointment, error)
	UpdateStatus(ctx context.Context, id int, status string) (*Appointment, error)
}
