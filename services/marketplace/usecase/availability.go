package usecase

import (
	"context"
	"time"

	"yumi/domain"
)

type availabilityUseCase struct {
	availabilityRepo domain.AvailabilityRepo
	userRepo         domain.UserRepo
	TimeOut          time.Duration
}

func NewAvailabilityUseCase(repo domain.AvailabilityRepo, userRepo domain.UserRepo, to time.Duration) domain.AvailabilityUseCase {
	return &availabilityUseCase{
		availabilityRepo: repo,
		userRepo:         userRepo,
		TimeOut:          to,
	}
}

func (a *availabilityUseCase) ListByExpert(ctx context.Context, expertID int) ([]domain.ExpertAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, a.TimeOut)
	defer cancel()

	return a.availabilityRepo.ListByExpert(ctx, expertID)
}

// Create publishes a slot. Re-submitting an existing slot is not an error;
// the stored row comes back with created=false.
func (a *availabilityUseCase) Create(ctx context.Context, req *domain.AvailabilityRequest) (*domain.ExpertAvailability, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, a.TimeOut)
	defer cancel()

	if err := domain.ValidateStruct(req); err != nil {
		return nil, false, err
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, false, err
	}
	label, err := domain.ParseTimeLabel(req.Time)
	if err != nil {
		return nil, false, err
	}

	expert, err := a.userRepo.FindByID(ctx, req.ExpertID)
	if err != nil {
		return nil, false, err
	}
	if expert.Role != domain.RoleExpert {
		return nil, false, domain.ErrInvalidRole
	}

	return a.availabilityRepo.CreateIfAbsent(ctx, &domain.ExpertAvailability{
		ExpertID:      expert.ID,
		AvailableDate: date,
		AvailableTime: label,
	})
}

func (a *availabilityUseCase) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, a.TimeOut)
	defer cancel()

	return a.availabilityRepo.Delete(ctx, id)
}
