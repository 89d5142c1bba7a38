package repository

import (
	"context"
	"fmt"

	"yumi/domain"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(database *gorm.DB) domain.MessageRepo {
	return &messageRepository{
		db: database,
	}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *messageRepository) ListForUser(ctx context.Context, userID int) ([]domain.Message, error) {
	msgs := []domain.Message{}
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("sent_at DESC").
		Order("id DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages of user %d: %w", userID, err)
	}
	return msgs, nil
}

func (r *messageRepository) Conversation(ctx context.Context, userA, userB int) ([]domain.Message, error) {
	msgs := []domain.Message{}
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("sent_at ASC").
		Order("id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return msgs, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark message %d read: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
