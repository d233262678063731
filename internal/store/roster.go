package store

import (
	"context"

	"github.com/google/uuid"

	"frizer/backend/internal/domain"
)

// RosterRepository resolves parties and runs roster transitions.
// InRosterTransaction serializes all roster work for one appointment:
// every read and write performed through the RosterTx commits as a
// single unit, so a history move and the attendance write are never
// observable half-applied.
type RosterRepository interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (domain.Customer, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (domain.Employee, error)
	InRosterTransaction(ctx context.Context, appointmentID uuid.UUID, fn func(ctx context.Context, tx RosterTx) error) error
}

type RosterTx interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (domain.Customer, error)
	SaveCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (domain.Employee, error)
	SaveEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error)
	SaveAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
}
