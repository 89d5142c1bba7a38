package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yumi/domain"

	"golang.org/x/crypto/bcrypt"
)

type userUseCase struct {
	userRepo domain.UserRepo
	TimeOut  time.Duration
}

func NewUserUseCase(repo domain.UserRepo, to time.Duration) domain.UserUseCase {
	return &userUseCase{
		userRepo: repo,
		TimeOut:  to,
	}
}

func (u *userUseCase) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, u.TimeOut)
	defer cancel()

	if filter.Role != nil && !filter.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return u.userRepo.List(ctx, filter)
}

func (u *userUseCase) ListExperts(ctx context.Context) ([]domain.ExpertProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, u.TimeOut)
	defer cancel()

	role, active := domain.RoleExpert, true
	users, err := u.userRepo.List(ctx, domain.UserFilter{Role: &role, Active: &active})
	if err != nil {
		return nil, err
	}

	experts := make([]domain.ExpertProfile, 0, len(users))
	for _, e := range users {
		experts = append(experts, domain.ExpertProfile{
			ID:       e.ID,
			Name:     e.Name,
			Title:    e.Title,
			Bio:      e.Bio,
			ImageURL: e.ImageURL,
		})
	}
	return experts, nil
}

func (u *userUseCase) GetUser(ctx context.Context, id int) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, u.TimeOut)
	defer cancel()

	return u.userRepo.FindByID(ctx, id)
}

func (u *userUseCase) CreateExpert(ctx context.Context, req *domain.CreateExpertRequest) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, u.TimeOut)
	defer cancel()

	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := u.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	expert := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleExpert,
		IsActive:     true,
		Title:        req.Title,
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
	}
	if err := u.userRepo.Create(ctx, expert); err != nil {
		return nil, err
	}
	return expert, nil
}

func (u *userUseCase) SetActive(ctx context.Context, id int, active bool) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, u.TimeOut)
	defer cancel()

	if err := u.userRepo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return u.userRepo.FindByID(ctx, id)
}

func (u *userUseCase) DeleteUser(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, u.TimeOut)
	defer cancel()

	return u.userRepo.Delete(ctx, id)
}
