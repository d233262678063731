package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"frizer/backend/internal/domain"
	"frizer/backend/internal/store"
)

type RosterRepo struct {
	db *bun.DB
}

func NewRosterRepo(db *bun.DB) *RosterRepo {
	return &RosterRepo{db: db}
}

type rosterTx struct {
	tx bun.Tx
}

func (r *RosterRepo) GetCustomer(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	return selectCustomer(ctx, r.db, id)
}

func (r *RosterRepo) GetEmployee(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	return selectEmployee(ctx, r.db, id)
}

// InRosterTransaction runs fn inside one database transaction holding
// an advisory lock keyed by the appointment id, serializing all roster
// transitions for that appointment across both parties.
func (r *RosterRepo) InRosterTransaction(ctx context.Context, appointmentID uuid.UUID, fn func(ctx context.Context, tx store.RosterTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockAppointmentRoster(ctx, tx, appointmentID); err != nil {
			return err
		}
		return fn(ctx, rosterTx{tx: tx})
	})
}

func lockAppointmentRoster(ctx context.Context, tx bun.Tx, appointmentID uuid.UUID) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", appointmentID.String()).Exec(ctx)
	return err
}

func (r rosterTx) GetCustomer(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	return selectCustomer(ctx, r.tx, id)
}

func (r rosterTx) SaveCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	m := c
	res, err := r.tx.NewUpdate().Model(&m).WherePK().Exec(ctx)
	if err != nil {
		return domain.Customer{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Customer{}, err
	}
	if affected == 0 {
		return domain.Customer{}, store.ErrCustomerNotFound
	}
	return m, nil
}

func (r rosterTx) GetEmployee(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	return selectEmployee(ctx, r.tx, id)
}

func (r rosterTx) SaveEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	m := e
	res, err := r.tx.NewUpdate().Model(&m).WherePK().Exec(ctx)
	if err != nil {
		return domain.Employee{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Employee{}, err
	}
	if affected == 0 {
		return domain.Employee{}, store.ErrEmployeeNotFound
	}
	return m, nil
}

func (r rosterTx) SaveAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := appt
	res, err := r.tx.NewUpdate().Model(&m).WherePK().Exec(ctx)
	if err != nil {
		return domain.Appointment{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Appointment{}, err
	}
	if affected == 0 {
		return domain.Appointment{}, store.ErrAppointmentNotFound
	}
	return m, nil
}

func selectCustomer(ctx context.Context, db bun.IDB, id uuid.UUID) (domain.Customer, error) {
	var c domain.Customer
	err := db.NewSelect().
		Model(&c).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, store.ErrCustomerNotFound
		}
		return domain.Customer{}, err
	}
	return c, nil
}

func selectEmployee(ctx context.Context, db bun.IDB, id uuid.UUID) (domain.Employee, error) {
	var e domain.Employee
	err := db.NewSelect().
		Model(&e).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Employee{}, store.ErrEmployeeNotFound
		}
		return domain.Employee{}, err
	}
	return e, nil
}
