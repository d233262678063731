package roster

import (
	"context"

	"github.com/google/uuid"

	"frizer/backend/internal/domain"
	"frizer/backend/internal/notify"
	"frizer/backend/internal/store"
)

// Service keeps each customer's and employee's active/history
// appointment membership in lock-step with the appointment
// lifecycle. Every transition runs inside a single store transaction
// keyed by the appointment id, so the two party rosters and the
// appointment's attended flag never commit half-applied.
type Service struct {
	rosters store.RosterRepository
}

func NewService(rosters store.RosterRepository) *Service {
	return &Service{rosters: rosters}
}

// AddCustomerActive appends the appointment to the customer's active
// collection. Appointments already tracked on either collection are
// left alone.
func (s *Service) AddCustomerActive(ctx context.Context, customerID uuid.UUID, appt domain.Appointment) (domain.Customer, error) {
	var out domain.Customer
	err := s.rosters.InRosterTransaction(ctx, appt.ID, func(ctx context.Context, tx store.RosterTx) error {
		c, err := tx.GetCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		if !c.RegisterActive(appt.ID) {
			out = c
			return nil
		}
		out, err = tx.SaveCustomer(ctx, c)
		return err
	})
	if err != nil {
		return domain.Customer{}, err
	}
	return out, nil
}

// AddCustomerHistory archives the appointment on the customer's
// roster: removed from active if present, appended to history, and
// the appointment marked attended. The attendance write commits in
// the same transaction as the roster move.
func (s *Service) AddCustomerHistory(ctx context.Context, customerID uuid.UUID, appt domain.Appointment) (domain.Customer, error) {
	var out domain.Customer
	err := s.rosters.InRosterTransaction(ctx, appt.ID, func(ctx context.Context, tx store.RosterTx) error {
		c, err := tx.GetCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		c.Archive(appt.ID)

		appt.Attended = true
		if _, err := tx.SaveAppointment(ctx, appt); err != nil {
			return err
		}
		out, err = tx.SaveCustomer(ctx, c)
		return err
	})
	if err != nil {
		return domain.Customer{}, err
	}
	return out, nil
}

func (s *Service) AddEmployeeActive(ctx context.Context, employeeID uuid.UUID, appt domain.Appointment) (domain.Employee, error) {
	var out domain.Employee
	err := s.rosters.InRosterTransaction(ctx, appt.ID, func(ctx context.Context, tx store.RosterTx) error {
		e, err := tx.GetEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		if !e.RegisterActive(appt.ID) {
			out = e
			return nil
		}
		out, err = tx.SaveEmployee(ctx, e)
		return err
	})
	if err != nil {
		return domain.Employee{}, err
	}
	return out, nil
}

func (s *Service) AddEmployeeHistory(ctx context.Context, employeeID uuid.UUID, appt domain.Appointment) (domain.Employee, error) {
	var out domain.Employee
	err := s.rosters.InRosterTransaction(ctx, appt.ID, func(ctx context.Context, tx store.RosterTx) error {
		e, err := tx.GetEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		e.Archive(appt.ID)

		appt.Attended = true
		if _, err := tx.SaveAppointment(ctx, appt); err != nil {
			return err
		}
		out, err = tx.SaveEmployee(ctx, e)
		return err
	})
	if err != nil {
		return domain.Employee{}, err
	}
	return out, nil
}

// RegisterActive puts the appointment on both parties' active rosters
// in one transaction. Consistency between the two sides is a
// cross-aggregate invariant, so the writes commit together.
func (s *Service) RegisterActive(ctx context.Context, appt domain.Appointment) error {
	return s.rosters.InRosterTransaction(ctx, appt.ID, func(ctx context.Context, tx store.RosterTx) error {
		c, err := tx.GetCustomer(ctx, appt.CustomerID)
		if err != nil {
			return err
		}
		if c.RegisterActive(appt.ID) {
			if _, err := tx.SaveCustomer(ctx, c); err != nil {
				return err
			}
		}

		e, err := tx.GetEmployee(ctx, appt.EmployeeID)
		if err != nil {
			return err
		}
		if e.RegisterActive(appt.ID) {
			if _, err := tx.SaveEmployee(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

// ArchiveAppointment moves the appointment to history on both
// parties' rosters and marks it attended, all in one transaction.
func (s *Service) ArchiveAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	err := s.rosters.InRosterTransaction(ctx, appt.ID, func(ctx context.Context, tx store.RosterTx) error {
		c, err := tx.GetCustomer(ctx, appt.CustomerID)
		if err != nil {
			return err
		}
		c.Archive(appt.ID)
		if _, err := tx.SaveCustomer(ctx, c); err != nil {
			return err
		}

		e, err := tx.GetEmployee(ctx, appt.EmployeeID)
		if err != nil {
			return err
		}
		e.Archive(appt.ID)
		if _, err := tx.SaveEmployee(ctx, e); err != nil {
			return err
		}

		appt.Attended = true
		appt, err = tx.SaveAppointment(ctx, appt)
		return err
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return appt, nil
}

// HandleAppointmentEvent is the reactive registration path: wired as
// a bus subscriber, it registers freshly created appointments on both
// parties' active rosters. Deletion events are deliberately ignored;
// a hard delete does not cascade into roster membership.
func (s *Service) HandleAppointmentEvent(ctx context.Context, evt notify.Event) error {
	switch evt.Type {
	case notify.EventAppointmentCreated:
		return s.RegisterActive(ctx, evt.Appointment)
	default:
		return nil
	}
}
