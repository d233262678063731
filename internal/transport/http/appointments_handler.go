package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"frizer/backend/internal/service/scheduling"
	"frizer/backend/internal/store"
)

type httpError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

type appointmentRequest struct {
	DateFrom    time.Time `json:"date_from" binding:"required"`
	DateTo      time.Time `json:"date_to" binding:"required"`
	TreatmentID uuid.UUID `json:"treatment_id" binding:"required"`
	SalonID     uuid.UUID `json:"salon_id" binding:"required"`
	EmployeeID  uuid.UUID `json:"employee_id" binding:"required"`
	CustomerID  uuid.UUID `json:"customer_id" binding:"required"`
}

func (req appointmentRequest) toInput() scheduling.CreateInput {
	return scheduling.CreateInput{
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		TreatmentID: req.TreatmentID,
		SalonID:     req.SalonID,
		EmployeeID:  req.EmployeeID,
		CustomerID:  req.CustomerID,
	}
}

func (s *Server) listAppointments(c *gin.Context) {
	appts, err := s.scheduling.List(c.Request.Context())
	if err != nil {
		s.writeError(c, "list appointments", err)
		return
	}

	out := make([]appointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointmentResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"data": out, "total": len(out)})
}

func (s *Server) getAppointment(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	appt, err := s.scheduling.Get(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, "get appointment", err)
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

func (s *Server) createAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Code: "invalid_body", Message: err.Error()})
		return
	}

	appt, err := s.scheduling.Create(c.Request.Context(), req.toInput())
	if err != nil {
		s.writeError(c, "create appointment", err)
		return
	}

	s.log.Info("appointment created",
		slog.String("appointment_id", appt.ID.String()),
		slog.Time("date_from", appt.DateFrom),
		slog.Time("date_to", appt.DateTo),
	)
	c.JSON(http.StatusCreated, toAppointmentResponse(appt))
}

func (s *Server) updateAppointment(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Code: "invalid_body", Message: err.Error()})
		return
	}

	appt, err := s.scheduling.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		s.writeError(c, "update appointment", err)
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

func (s *Server) deleteAppointment(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	appt, err := s.scheduling.Delete(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, "delete appointment", err)
		return
	}

	s.log.Info("appointment deleted", slog.String("appointment_id", id.String()))
	c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

func (s *Server) toggleAttendance(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	appt, err := s.scheduling.ToggleAttendance(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, "toggle attendance", err)
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

func (s *Server) archiveAppointment(c *gin.Context) {
	id, ok := s.pathID(c, "id")
	if !ok {
		return
	}

	appt, err := s.scheduling.Get(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, "archive appointment", err)
		return
	}

	appt, err = s.rosters.ArchiveAppointment(c.Request.Context(), appt)
	if err != nil {
		s.writeError(c, "archive appointment", err)
		return
	}

	s.log.Info("appointment archived", slog.String("appointment_id", id.String()))
	c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

func (s *Server) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Code: "invalid_id", Message: name + " must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps failure kinds to status codes: unresolved
// identifiers read as 404, validation failures as 400, anything else
// as an internal error.
func (s *Server) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, store.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, httpError{Code: "appointment_not_found", Message: "appointment does not exist"})
	case errors.Is(err, store.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, httpError{Code: "customer_not_found", Message: "customer does not exist"})
	case errors.Is(err, store.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, httpError{Code: "employee_not_found", Message: "employee does not exist"})
	case errors.Is(err, store.ErrSalonNotFound):
		c.JSON(http.StatusNotFound, httpError{Code: "salon_not_found", Message: "salon does not exist"})
	case errors.Is(err, store.ErrTreatmentNotFound):
		c.JSON(http.StatusNotFound, httpError{Code: "treatment_not_found", Message: "treatment does not exist"})
	default:
		var vErr *scheduling.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, httpError{Code: "invalid_appointment", Message: vErr.Error()})
			return
		}
		s.log.Error(op+" failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, httpError{Code: "internal_error", Message: "internal error"})
	}
}
