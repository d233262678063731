package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"frizer/backend/internal/domain"
	"frizer/backend/internal/service/scheduling"
)

type schedulingService interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	Create(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, in scheduling.CreateInput) (domain.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	ToggleAttendance(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
}

type rosterService interface {
	AddCustomerActive(ctx context.Context, customerID uuid.UUID, appt domain.Appointment) (domain.Customer, error)
	AddCustomerHistory(ctx context.Context, customerID uuid.UUID, appt domain.Appointment) (domain.Customer, error)
	AddEmployeeActive(ctx context.Context, employeeID uuid.UUID, appt domain.Appointment) (domain.Employee, error)
	AddEmployeeHistory(ctx context.Context, employeeID uuid.UUID, appt domain.Appointment) (domain.Employee, error)
	ArchiveAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
}

// Server exposes the scheduling engine and roster synchronizer over
// REST. It owns no business rules; it parses, delegates and maps
// failures to status codes.
type Server struct {
	scheduling schedulingService
	rosters    rosterService
	log        *slog.Logger
}

func NewServer(scheduling schedulingService, rosters rosterService, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		scheduling: scheduling,
		rosters:    rosters,
		log:        log.With(slog.String("component", "http.server")),
	}
}

func (s *Server) Register(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.GET("/appointments", s.listAppointments)
	api.POST("/appointments", s.createAppointment)
	api.GET("/appointments/:id", s.getAppointment)
	api.PUT("/appointments/:id", s.updateAppointment)
	api.DELETE("/appointments/:id", s.deleteAppointment)
	api.PUT("/appointments/:id/attendance", s.toggleAttendance)
	api.POST("/appointments/:id/archive", s.archiveAppointment)

	api.POST("/customers/:id/appointments/:appointmentID/active", s.addCustomerActive)
	api.POST("/customers/:id/appointments/:appointmentID/history", s.addCustomerHistory)
	api.POST("/employees/:id/appointments/:appointmentID/active", s.addEmployeeActive)
	api.POST("/employees/:id/appointments/:appointmentID/history", s.addEmployeeHistory)
}

type appointmentResponse struct {
	ID          string    `json:"id"`
	DateFrom    time.Time `json:"date_from"`
	DateTo      time.Time `json:"date_to"`
	TreatmentID string    `json:"treatment_id"`
	SalonID     string    `json:"salon_id"`
	EmployeeID  string    `json:"employee_id"`
	CustomerID  string    `json:"customer_id"`
	Attended    bool      `json:"attended"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type customerResponse struct {
	ID                  string   `json:"id"`
	FirstName           string   `json:"first_name"`
	LastName            string   `json:"last_name"`
	Email               string   `json:"email"`
	AppointmentsActive  []string `json:"appointments_active"`
	AppointmentsHistory []string `json:"appointments_history"`
}

type employeeResponse struct {
	ID                  string   `json:"id"`
	FirstName           string   `json:"first_name"`
	LastName            string   `json:"last_name"`
	SalonID             string   `json:"salon_id"`
	AppointmentsActive  []string `json:"appointments_active"`
	AppointmentsHistory []string `json:"appointments_history"`
}

func toAppointmentResponse(a domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:          a.ID.String(),
		DateFrom:    a.DateFrom,
		DateTo:      a.DateTo,
		TreatmentID: a.TreatmentID.String(),
		SalonID:     a.SalonID.String(),
		EmployeeID:  a.EmployeeID.String(),
		CustomerID:  a.CustomerID.String(),
		Attended:    a.Attended,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{
		ID:                  c.ID.String(),
		FirstName:           c.FirstName,
		LastName:            c.LastName,
		Email:               c.Email,
		AppointmentsActive:  idStrings(c.AppointmentsActive),
		AppointmentsHistory: idStrings(c.AppointmentsHistory),
	}
}

func toEmployeeResponse(e domain.Employee) employeeResponse {
	return employeeResponse{
		ID:                  e.ID.String(),
		FirstName:           e.FirstName,
		LastName:            e.LastName,
		SalonID:             e.SalonID.String(),
		AppointmentsActive:  idStrings(e.AppointmentsActive),
		AppointmentsHistory: idStrings(e.AppointmentsHistory),
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
