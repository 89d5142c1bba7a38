package usecase

import (
	"context"
	"strings"
	"time"

	"yumi/domain"
)

type questionUseCase struct {
	questionRepo domain.QuestionRepo
	userRepo     domain.UserRepo
	TimeOut      time.Duration
}

func NewQuestionUseCase(repo domain.QuestionRepo, userRepo domain.UserRepo, to time.Duration) domain.QuestionUseCase {
	return &questionUseCase{
		questionRepo: repo,
		userRepo:     userRepo,
		TimeOut:      to,
	}
}

func (q *questionUseCase) Ask(ctx context.Context, req *domain.QuestionRequest) (*domain.ExpertQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, q.TimeOut)
	defer cancel()

	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}

	parent, err := q.userRepo.FindByID(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.ParentName)
	if name == "" {
		name = parent.Name
	}
	var product *string
	if req.ProductName != nil && strings.TrimSpace(*req.ProductName) != "" {
		p := strings.TrimSpace(*req.ProductName)
		product = &p
	}

	question := &domain.ExpertQuestion{
		ParentID:     parent.ID,
		ParentName:   name,
		QuestionText: strings.TrimSpace(req.QuestionText),
		ProductName:  product,
		AskedAt:      time.Now().UTC(),
	}
	if err := q.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (q *questionUseCase) List(ctx context.Context, answered *bool) ([]domain.ExpertQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, q.TimeOut)
	defer cancel()

	return q.questionRepo.List(ctx, answered)
}

func (q *questionUseCase) Answer(ctx context.Context, id int, req *domain.AnswerRequest) (*domain.ExpertQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, q.TimeOut)
	defer cancel()

	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}

	expert, err := q.userRepo.FindByID(ctx, req.ExpertID)
	if err != nil {
		return nil, err
	}
	if expert.Role != domain.RoleExpert {
		return nil, domain.ErrInvalidRole
	}

	if err := q.questionRepo.SaveAnswer(ctx, id, expert.ID, strings.TrimSpace(req.AnswerText), time.Now().UTC()); err != nil {
		return nil, err
	}
	return q.questionRepo.FindByID(ctx, id)
}
