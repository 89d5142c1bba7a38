package domain

import (
	"context"
	"time"
)

type Message struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID   int       `gorm:"not null;index" json:"sender_id"`
	Sender     *User     `gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ReceiverID int       `gorm:"not null;index" json:"receiver_id"`
	Receiver   *User     `gorm:"foreignKey:ReceiverID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	SentAt     time.Time `gorm:"not null;index" json:"sent_at"`
	IsRead     bool      `gorm:"not null" json:"is_read"`
}

type MessageRequest struct {
	SenderID   int    `json:"sender_id" valid:"required~Sender ID is required"`
	ReceiverID int    `json:"receiver_id" valid:"required~Receiver ID is required"`
	Content    string `json:"content" valid:"required~Content is required"`
}

type MessageRepo interface {
	Create(ctx context.Context, msg *Message) error
	ListForUser(ctx context.Context, userID int) ([]Message, error)
	Conversation(ctx context.Context, userA, userB int) ([]Message, error)
	MarkRead(ctx context.Context, id int) error
}

type MessageUseCase interface {
	Send(ctx context.Context, req *MessageRequest) (*Message, error)
	Inbox(ctx context.Context, userID int) ([]Message, error)
	Conversation(ctx context.Context, userA, userB int) ([]Message, error)
	MarkRead(ctx context.Context, id int) error
}
