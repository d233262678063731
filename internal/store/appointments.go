package store

import (
	"context"

	"github.com/google/uuid"

	"frizer/backend/internal/domain"
)

type AppointmentRepository interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	Update(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogRepository covers the lookup-by-id surface the scheduling
// core consumes from catalog management.
type CatalogRepository interface {
	GetSalon(ctx context.Context, id uuid.UUID) (domain.Salon, error)
	GetTreatment(ctx context.Context, id uuid.UUID) (domain.Treatment, error)
}
