package domain

import (
	"context"
	"time"
)

type ChildProfile struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ParentID  int       `gorm:"not null;index" json:"parent_id"`
	Parent    *User     `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Age       int       `gorm:"not null" json:"age"`
	Interests string    `gorm:"type:text" json:"interests"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type ChildRequest struct {
	ParentID  int    `json:"parent_id" valid:"required~Parent ID is required"`
	Name      string `json:"name" valid:"required~Name is required"`
	Age       int    `json:"age"`
	Interests string `json:"interests"`
}

type ChildRepo interface {
	ListByParent(ctx context.Context, parentID int) ([]ChildProfile, error)
	Create(ctx context.Context, child *ChildProfile) error
	Delete(ctx context.Context, id int) error
}

type ChildUseCase interface {
	ListByParent(ctx context.Context, parentID int) ([]ChildProfile, error)
	Create(ctx context.Context, req *ChildRequest) (*ChildProfile, error)
	Delete(ctx context.Context, id int) error
}
