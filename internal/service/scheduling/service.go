package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"frizer/backend/internal/domain"
	"frizer/backend/internal/notify"
	"frizer/backend/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// ErrNotDivisibleBy20Minutes rejects booking boundaries that miss the
// 20-minute grid. It is distinct from the store NotFound sentinels so
// the transport can answer 400 instead of 404.
var ErrNotDivisibleBy20Minutes = &ValidationError{
	msg: "appointment time must fall on a 20-minute boundary",
}

// Service owns the appointment lifecycle: creation, mutation,
// deletion and attendance toggling. Referenced entities are
// re-resolved from the store on every call; nothing is cached across
// operations.
type Service struct {
	appointments store.AppointmentRepository
	rosters      store.RosterRepository
	catalog      store.CatalogRepository
	events       notify.Publisher
}

func NewService(
	appointments store.AppointmentRepository,
	rosters store.RosterRepository,
	catalog store.CatalogRepository,
	events notify.Publisher,
) *Service {
	return &Service{
		appointments: appointments,
		rosters:      rosters,
		catalog:      catalog,
		events:       events,
	}
}

type CreateInput struct {
	DateFrom    time.Time
	DateTo      time.Time
	TreatmentID uuid.UUID
	SalonID     uuid.UUID
	EmployeeID  uuid.UUID
	CustomerID  uuid.UUID
}

func (s *Service) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Appointment, error) {
	if err := s.resolveReferences(ctx, in); err != nil {
		return domain.Appointment{}, err
	}

	from := in.DateFrom.UTC()
	to := in.DateTo.UTC()
	if err := validateSlot(from, to); err != nil {
		return domain.Appointment{}, err
	}

	appt, err := s.appointments.Create(ctx, domain.Appointment{
		DateFrom:    from,
		DateTo:      to,
		TreatmentID: in.TreatmentID,
		SalonID:     in.SalonID,
		EmployeeID:  in.EmployeeID,
		CustomerID:  in.CustomerID,
		Attended:    false,
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	s.events.Publish(ctx, notify.NewEvent(notify.EventAppointmentCreated, appt))
	return appt, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in CreateInput) (domain.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, err
	}

	if err := s.resolveReferences(ctx, in); err != nil {
		return domain.Appointment{}, err
	}

	from := in.DateFrom.UTC()
	to := in.DateTo.UTC()
	if err := validateSlot(from, to); err != nil {
		return domain.Appointment{}, err
	}

	appt.DateFrom = from
	appt.DateTo = to
	appt.TreatmentID = in.TreatmentID
	appt.SalonID = in.SalonID
	appt.EmployeeID = in.EmployeeID
	appt.CustomerID = in.CustomerID

	updated, err := s.appointments.Update(ctx, appt)
	if err != nil {
		return domain.Appointment{}, err
	}

	s.events.Publish(ctx, notify.NewEvent(notify.EventAppointmentUpdated, updated))
	return updated, nil
}

// Delete hard-removes the appointment and returns its last known
// state for caller display. Roster membership is intentionally left
// untouched; see the roster package.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, err
	}
	if err := s.appointments.Delete(ctx, id); err != nil {
		return domain.Appointment{}, err
	}

	s.events.Publish(ctx, notify.NewEvent(notify.EventAppointmentDeleted, appt))
	return appt, nil
}

// ToggleAttendance flips the attended flag. Applying it twice
// restores the original value.
func (s *Service) ToggleAttendance(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, err
	}
	appt.Attended = !appt.Attended
	return s.appointments.Update(ctx, appt)
}

// resolveReferences enforces referential existence of all four
// referenced entities. Resolution order is fixed: customer, salon,
// treatment, then employee, so the first missing reference wins.
func (s *Service) resolveReferences(ctx context.Context, in CreateInput) error {
	if _, err := s.rosters.GetCustomer(ctx, in.CustomerID); err != nil {
		return err
	}
	if _, err := s.catalog.GetSalon(ctx, in.SalonID); err != nil {
		return err
	}
	if _, err := s.catalog.GetTreatment(ctx, in.TreatmentID); err != nil {
		return err
	}
	if _, err := s.rosters.GetEmployee(ctx, in.EmployeeID); err != nil {
		return err
	}
	return nil
}

func validateSlot(from, to time.Time) error {
	if !domain.OnSlotGrid(from) || !domain.OnSlotGrid(to) {
		return ErrNotDivisibleBy20Minutes
	}
	if !to.After(from) {
		return validationError("date_to must be after date_from")
	}
	return nil
}
