package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"yumi/domain"
	"yumi/middleware"
	"yumi/services/marketplace/repository"
	"yumi/services/marketplace/usecase"
	"yumi/testutil"

	"gorm.io/gorm"
)

const timeout = 5 * time.Second

type memLimiter struct {
	mu       sync.Mutex
	max      int
	failures map[string]int
}

func newMemLimiter(max int) *memLimiter {
	return &memLimiter{max: max, failures: map[string]int{}}
}

func (l *memLimiter) Blocked(_ context.Context, email string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failures[strings.ToLower(email)] >= l.max, nil
}

func (l *memLimiter) RegisterFailure(_ context.Context, email string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[strings.ToLower(email)]++
	return nil
}

func (l *memLimiter) Reset(_ context.Context, email string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, strings.ToLower(email))
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	booked []int
	err    error
}

func (n *recordingNotifier) AppointmentBooked(_ context.Context, appt *domain.Appointment) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.booked = append(n.booked, appt.ID)
	return n.err
}

type fixture struct {
	db           *gorm.DB
	auth         domain.AuthUseCase
	users        domain.UserUseCase
	children     domain.ChildUseCase
	availability domain.AvailabilityUseCase
	appointments domain.AppointmentUseCase
	messages     domain.MessageUseCase
	questions    domain.QuestionUseCase
	limiter      *memLimiter
	notifier     *recordingNotifier
	tokens       *middleware.JWTManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewSQLiteDB(t)

	userRepo := repository.NewUserRepository(db)
	limiter := newMemLimiter(3)
	notifier := &recordingNotifier{}
	tokens := middleware.NewJWTManager("test-secret", time.Hour)

	return &fixture{
		db:           db,
		auth:         usecase.NewAuthUseCase(userRepo, tokens, limiter, timeout),
		users:        usecase.NewUserUseCase(userRepo, timeout),
		children:     usecase.NewChildUseCase(repository.NewChildRepository(db), userRepo, timeout),
		availability: usecase.NewAvailabilityUseCase(repository.NewAvailabilityRepository(db), userRepo, timeout),
		appointments: usecase.NewAppointmentUseCase(repository.NewAppointmentRepository(db), notifier, timeout),
		messages:     usecase.NewMessageUseCase(repository.NewMessageRepository(db), userRepo, timeout),
		questions:    usecase.NewQuestionUseCase(repository.NewQuestionRepository(db), userRepo, timeout),
		limiter:      limiter,
		notifier:     notifier,
		tokens:       tokens,
	}
}
