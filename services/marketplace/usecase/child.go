package usecase

import (
	"context"
	"strings"
	"time"

	"yumi/domain"
)

const maxChildAge = 18

type childUseCase struct {
	childRepo domain.ChildRepo
	userRepo  domain.UserRepo
	TimeOut   time.Duration
}

func NewChildUseCase(repo domain.ChildRepo, userRepo domain.UserRepo, to time.Duration) domain.ChildUseCase {
	return &childUseCase{
		childRepo: repo,
		userRepo:  userRepo,
		TimeOut:   to,
	}
}

func (c *childUseCase) ListByParent(ctx context.Context, parentID int) ([]domain.ChildProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, c.TimeOut)
	defer cancel()

	if parentID <= 0 {
		return nil, domain.NewValidationError("parentId", "Parent ID is required")
	}
	return c.childRepo.ListByParent(ctx, parentID)
}

func (c *childUseCase) Create(ctx context.Context, req *domain.ChildRequest) (*domain.ChildProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, c.TimeOut)
	defer cancel()

	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.Age < 0 || req.Age > maxChildAge {
		return nil, domain.NewValidationError("age", "Age must be between 0 and 18")
	}

	parent, err := c.userRepo.FindByID(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}
	if parent.Role != domain.RoleParent {
		return nil, domain.ErrInvalidRole
	}

	child := &domain.ChildProfile{
		ParentID:  parent.ID,
		Name:      strings.TrimSpace(req.Name),
		Age:       req.Age,
		Interests: strings.TrimSpace(req.Interests),
	}
	if err := c.childRepo.Create(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (c *childUseCase) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, c.TimeOut)
	defer cancel()

	return c.childRepo.Delete(ctx, id)
}
