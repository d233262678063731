package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Customer and Employee are the two parties that reference
// appointments. Each tracks its own active and history membership;
// an appointment id lives in at most one of the two collections and
// never twice in the same one.

type Customer struct {
	bun.BaseModel `bun:"table:customers"`

	ID                  uuid.UUID   `bun:"id,pk,type:uuid"`
	FirstName           string      `bun:"first_name,notnull"`
	LastName            string      `bun:"last_name,notnull"`
	Email               string      `bun:"email,notnull"`
	AppointmentsActive  []uuid.UUID `bun:"appointments_active,array,type:uuid[]"`
	AppointmentsHistory []uuid.UUID `bun:"appointments_history,array,type:uuid[]"`
	CreatedAt           time.Time   `bun:"created_at,notnull"`
	UpdatedAt           time.Time   `bun:"updated_at,notnull"`
}

func (c *Customer) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	applyEntityDefaults(&c.ID, &c.CreatedAt, &c.UpdatedAt, query)
	return nil
}

// RegisterActive appends the appointment to the active collection.
// It is a no-op when the appointment is already tracked on either
// collection; it reports whether the roster changed.
func (c *Customer) RegisterActive(appointmentID uuid.UUID) bool {
	active, ok := registerActive(c.AppointmentsActive, c.AppointmentsHistory, appointmentID)
	c.AppointmentsActive = active
	return ok
}

// Archive removes the appointment from the active collection if
// present and appends it to history exactly once. Archival is
// tolerant of an appointment that was never registered as active.
func (c *Customer) Archive(appointmentID uuid.UUID) {
	c.AppointmentsActive, c.AppointmentsHistory = archive(c.AppointmentsActive, c.AppointmentsHistory, appointmentID)
}

type Employee struct {
	bun.BaseModel `bun:"table:employees"`

	ID                  uuid.UUID   `bun:"id,pk,type:uuid"`
	FirstName           string      `bun:"first_name,notnull"`
	LastName            string      `bun:"last_name,notnull"`
	SalonID             uuid.UUID   `bun:"salon_id,notnull,type:uuid"`
	AppointmentsActive  []uuid.UUID `bun:"appointments_active,array,type:uuid[]"`
	AppointmentsHistory []uuid.UUID `bun:"appointments_history,array,type:uuid[]"`
	CreatedAt           time.Time   `bun:"created_at,notnull"`
	UpdatedAt           time.Time   `bun:"updated_at,notnull"`
}

func (e *Employee) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	applyEntityDefaults(&e.ID, &e.CreatedAt, &e.UpdatedAt, query)
	return nil
}

func (e *Employee) RegisterActive(appointmentID uuid.UUID) bool {
	active, ok := registerActive(e.AppointmentsActive, e.AppointmentsHistory, appointmentID)
	e.AppointmentsActive = active
	return ok
}

func (e *Employee) Archive(appointmentID uuid.UUID) {
	e.AppointmentsActive, e.AppointmentsHistory = archive(e.AppointmentsActive, e.AppointmentsHistory, appointmentID)
}

func registerActive(active, history []uuid.UUID, id uuid.UUID) ([]uuid.UUID, bool) {
	if containsID(active, id) || containsID(history, id) {
		return active, false
	}
	return append(active, id), true
}

func archive(active, history []uuid.UUID, id uuid.UUID) ([]uuid.UUID, []uuid.UUID) {
	active = removeID(active, id)
	if !containsID(history, id) {
		history = append(history, id)
	}
	return active, history
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func applyEntityDefaults(id *uuid.UUID, createdAt, updatedAt *time.Time, query bun.Query) {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if *id == uuid.Nil {
			if v, err := uuid.NewV7(); err == nil {
				*id = v
			}
		}
		if createdAt.IsZero() {
			*createdAt = now
		}
		if updatedAt.IsZero() {
			*updatedAt = now
		}
	case *bun.UpdateQuery:
		*updatedAt = now
	}
}
