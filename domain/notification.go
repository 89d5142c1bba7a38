package domain

import "context"

// Notifier tells the people involved about a booked consultation.
type Notifier interface {
	AppointmentBooked(ctx context.Context, appt *Appointment) error
}
