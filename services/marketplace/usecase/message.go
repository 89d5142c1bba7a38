package usecase

import (
	"context"
	"strings"
	"time"

	"yumi/domain"
)

type messageUseCase struct {
	messageRepo domain.MessageRepo
	userRepo    domain.UserRepo
	TimeOut     time.Duration
}

func NewMessageUseCase(repo domain.MessageRepo, userRepo domain.UserRepo, to time.Duration) domain.MessageUseCase {
	return &messageUseCase{
		messageRepo: repo,
		userRepo:    userRepo,
		TimeOut:     to,
	}
}

func (m *messageUseCase) Send(ctx context.Context, req *domain.MessageRequest) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, m.TimeOut)
	defer cancel()

	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, domain.NewValidationError("content", "Content is required")
	}
	if req.SenderID == req.ReceiverID {
		return nil, domain.ErrSelfMessage
	}

	for _, id := range []int{req.SenderID, req.ReceiverID} {
		if _, err := m.userRepo.FindByID(ctx, id); err != nil {
			return nil, err
		}
	}

	msg := &domain.Message{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    content,
		SentAt:     time.Now().UTC(),
	}
	if err := m.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (m *messageUseCase) Inbox(ctx context.Context, userID int) ([]domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, m.TimeOut)
	defer cancel()

	if userID <= 0 {
		return nil, domain.NewValidationError("userId", "User ID is required")
	}
	return m.messageRepo.ListForUser(ctx, userID)
}

func (m *messageUseCase) Conversation(ctx context.Context, userA, userB int) ([]domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, m.TimeOut)
	defer cancel()

	if userA <= 0 || userB <= 0 {
		return nil, domain.NewValidationError("user", "Both user IDs are required")
	}
	return m.messageRepo.Conversation(ctx, userA, userB)
}

func (m *messageUseCase) MarkRead(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, m.TimeOut)
	defer cancel()

	return m.messageRepo.MarkRead(ctx, id)
}
