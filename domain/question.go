package domain

import (
	"context"
	"time"
)

type ExpertQuestion struct {
	ID                 int        `gorm:"primaryKey;autoIncrement" json:"id"`
	ParentID           int        `gorm:"not null;index" json:"parent_id"`
	Parent             *User      `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ParentName         string     `gorm:"type:varchar(150);not null" json:"parent_name"`
	QuestionText       string     `gorm:"type:text;not null" json:"question_text"`
	ProductName        *string    `gorm:"type:varchar(255)" json:"product_name,omitempty"`
	AnswerText         *string    `gorm:"type:text" json:"answer_text,omitempty"`
	AnsweredByExpertID *int       `gorm:"index" json:"answered_by_expert_id,omitempty"`
	AnsweredByExpert   *User      `gorm:"foreignKey:AnsweredByExpertID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	AskedAt            time.Time  `gorm:"not null;index" json:"asked_at"`
	AnsweredAt         *time.Time `json:"answered_at,omitempty"`
}

type QuestionRequest struct {
	ParentID     int     `json:"parent_id" valid:"required~Parent ID is required"`
	ParentName   string  `json:"parent_name"`
	QuestionText string  `json:"question_text" valid:"required~Question text is required"`
	ProductName  *string `json:"product_name"`
}

type AnswerRequest struct {
	ExpertID   int    `json:"expert_id" valid:"required~Expert ID is required"`
	AnswerText string `json:"answer_text" valid:"required~Answer text is required"`
}

type QuestionRepo interface {
	Create(ctx context.Context, q *ExpertQuestion) error
	List(ctx context.Context, answered *bool) ([]ExpertQuestion, error)
	FindByID(ctx context.Context, id int) (*ExpertQuestion, error)
	// SaveAnswer writes the answer only when the question is still open.
	SaveAnswer(ctx context.Context, id, expertID int, answer string, at time.Time) error
}

type QuestionUseCase interface {
	Ask(ctx context.Context, req *QuestionRequest) (*ExpertQuestion, error)
	List(ctx context.Context, answered *bool) ([]ExpertQuestion, error)
	Answer(ctx context.Context, id int, req *AnswerRequest) (*ExpertQuestion, error)
}
