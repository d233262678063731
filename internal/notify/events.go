package notify

import (
	"context"
	"time"

	"github.com/google/uuid"

	"frizer/backend/internal/domain"
)

type EventType string

const (
	EventAppointmentCreated EventType = "appointment.created"
	EventAppointmentUpdated EventType = "appointment.updated"
	EventAppointmentDeleted EventType = "appointment.deleted"
)

// Event is an appointment lifecycle notification. The appointment is a
// snapshot taken after the triggering write committed; for deletions it
// is the last known state.
type Event struct {
	ID          uuid.UUID
	Type        EventType
	OccurredAt  time.Time
	Appointment domain.Appointment
}

func NewEvent(typ EventType, appt domain.Appointment) Event {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Event{
		ID:          id,
		Type:        typ,
		OccurredAt:  time.Now().UTC(),
		Appointment: appt,
	}
}

// Publisher is the notification port the scheduling core holds.
// Publish is fire-and-forget: implementations must not surface
// subscriber failures to the caller.
type Publisher interface {
	Publish(ctx context.Context, evt Event)
}
