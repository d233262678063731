package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SlotMinutes is the booking grid granularity. Appointment boundaries
// must fall on a multiple of it within the hour; seconds are not part
// of the domain.
const SlotMinutes = 20

type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	DateFrom    time.Time `bun:"date_from,notnull"`
	DateTo      time.Time `bun:"date_to,notnull"`
	TreatmentID uuid.UUID `bun:"treatment_id,notnull,type:uuid"`
	SalonID     uuid.UUID `bun:"salon_id,notnull,type:uuid"`
	EmployeeID  uuid.UUID `bun:"employee_id,notnull,type:uuid"`
	CustomerID  uuid.UUID `bun:"customer_id,notnull,type:uuid"`
	Attended    bool      `bun:"attended,notnull,default:false"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if a.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			a.ID = id
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	return nil
}

// OnSlotGrid reports whether t falls on the booking grid, i.e. its
// minute-of-hour component is a multiple of SlotMinutes.
func OnSlotGrid(t time.Time) bool {
	return t.Minute()%SlotMinutes == 0
}
