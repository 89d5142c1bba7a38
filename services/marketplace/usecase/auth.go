package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yumi/config"
	"yumi/domain"

	"golang.org/x/crypto/bcrypt"
)

type authUseCase struct {
	userRepo domain.UserRepo
	tokens   domain.TokenIssuer
	limiter  domain.LoginLimiter
	TimeOut  time.Duration
}

// NewAuthUseCase builds the auth flow. limiter may be nil, which disables
// login throttling.
func NewAuthUseCase(repo domain.UserRepo, tokens domain.TokenIssuer, limiter domain.LoginLimiter, to time.Duration) domain.AuthUseCase {
	return &authUseCase{
		userRepo: repo,
		tokens:   tokens,
		limiter:  limiter,
		TimeOut:  to,
	}
}

func (a *authUseCase) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, a.TimeOut)
	defer cancel()

	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}

	role := domain.RoleParent
	if strings.TrimSpace(req.Role) != "" {
		r, err := domain.ParseRole(req.Role)
		if err != nil {
			return nil, err
		}
		role = r
	}
	if role == domain.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := a.userRepo.EmailExists(ctx, email)
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

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		// experts wait for admin approval
		IsActive: role == domain.RoleParent,
	}
	if err := a.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *authUseCase) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, a.TimeOut)
	defer cancel()

	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if a.limiter != nil {
		blocked, err := a.limiter.Blocked(ctx, email)
		if err != nil {
			config.GetLogrusInstance().WithError(err).Warn("login limiter unavailable")
		} else if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.registerFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		a.registerFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	if a.limiter != nil {
		if err := a.limiter.Reset(ctx, email); err != nil {
			config.GetLogrusInstance().WithError(err).Warn("failed to reset login attempts")
		}
	}

	token, err := a.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &domain.LoginResponse{Token: token, User: user}, nil
}

func (a *authUseCase) registerFailure(ctx context.Context, email string) {
	if a.limiter == nil {
		return
	}
	if err := a.limiter.RegisterFailure(ctx, email); err != nil {
		config.GetLogrusInstance().WithError(err).Warn("failed to count login attempt")
	}
}
