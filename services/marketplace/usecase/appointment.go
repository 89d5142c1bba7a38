package usecase

import (
	"context"
	"strings"
	"time"

	"yumi/config"
	"yumi/domain"
)

type appointmentUseCase struct {
	appointmentRepo domain.AppointmentRepo
	notifier        domain.Notifier
	TimeOut         time.Duration
}

// NewAppointmentUseCase builds the booking flow. notifier may be nil.
func NewAppointmentUseCase(repo domain.AppointmentRepo, notifier domain.Notifier, to time.Duration) domain.AppointmentUseCase {
	return &appointmentUseCase{
		appointmentRepo: repo,
		notifier:        notifier,
		TimeOut:         to,
	}
}

func (a *appointmentUseCase) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, a.TimeOut)
	defer cancel()

	return a.appointmentRepo.List(ctx, filter)
}

func (a *appointmentUseCase) Get(ctx context.Context, id int) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, a.TimeOut)
	defer cancel()

	return a.appointmentRepo.FindByID(ctx, id)
}

// Book turns a published slot into an approved appointment. The slot is
// consumed and the appointment written atomically; a slot that is missing
// or already taken yields ErrSlotUnavailable.
func (a *appointmentUseCase) Book(ctx context.Context, req *domain.BookingRequest) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, a.TimeOut)
	defer cancel()

	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.ChildAge < 0 || req.ChildAge > maxChildAge {
		return nil, domain.NewValidationError("child_age", "Child age must be between 0 and 18")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	label, err := domain.ParseTimeLabel(req.Time)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		ExpertID:  req.ExpertID,
		ParentID:  req.ParentID,
		Date:      date,
		Time:      label,
		ChildName: strings.TrimSpace(req.ChildName),
		ChildAge:  req.ChildAge,
		Topic:     strings.TrimSpace(req.Topic),
	}
	if err := a.appointmentRepo.BookSlot(ctx, appt); err != nil {
		return nil, err
	}

	// the booking stands even when the email cannot be sent
	if a.notifier != nil {
		if err := a.notifier.AppointmentBooked(ctx, appt); err != nil {
			config.GetLogrusInstance().WithError(err).WithField("appointment_id", appt.ID).Warn("booking notification failed")
		}
	}
	return appt, nil
}

func (a *appointmentUseCase) UpdateStatus(ctx context.Context, id int, status string) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, a.TimeOut)
	defer cancel()

	s := domain.AppointmentStatus(strings.ToLower(strings.TrimSpace(status)))
	if !s.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if err := a.appointmentRepo.UpdateStatus(ctx, id, s); err != nil {
		return nil, err
	}
	return a.appointmentRepo.FindByID(ctx, id)
}
