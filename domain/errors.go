package domain

import (
	"errors"
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not active")
	ErrSlotUnavailable    = errors.New("selected slot is no longer available")
	ErrInvalidStatus      = errors.New("invalid appointment status")
	ErrInvalidRole        = errors.New("invalid role")
	ErrHasDependents      = errors.New("record is still referenced")
	ErrSelfMessage        = errors.New("cannot send a message to yourself")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrAlreadyAnswered    = errors.New("question already answered")
)

// ValidationError lists the offending fields of a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// ValidateStruct runs the govalidator tags of req.
func ValidateStruct(req interface{}) error {
	if _, err := govalidator.ValidateStruct(req); err != nil {
		fields := govalidator.ErrorsByField(err)
		if len(fields) == 0 {
			fields = map[string]string{"request": err.Error()}
		}
		return &ValidationError{Fields: fields}
	}
	return nil
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
