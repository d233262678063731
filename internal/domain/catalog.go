package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Salon and Treatment are catalog entities. The scheduling core only
// resolves them by id for referential integrity; catalog management
// itself lives elsewhere.

type Salon struct {
	bun.BaseModel `bun:"table:salons"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Name      string    `bun:"name,notnull"`
	City      string    `bun:"city"`
	Address   string    `bun:"address"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

func (s *Salon) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	applyEntityDefaults(&s.ID, &s.CreatedAt, &s.UpdatedAt, query)
	return nil
}

type Treatment struct {
	bun.BaseModel `bun:"table:treatments"`

	ID              uuid.UUID `bun:"id,pk,type:uuid"`
	Name            string    `bun:"name,notnull"`
	SalonID         uuid.UUID `bun:"salon_id,notnull,type:uuid"`
	Price           float64   `bun:"price,notnull"`
	DurationInSlots int       `bun:"duration_in_slots,notnull"`
	CreatedAt       time.Time `bun:"created_at,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
}

func (t *Treatment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	applyEntityDefaults(&t.ID, &t.CreatedAt, &t.UpdatedAt, query)
	return nil
}
