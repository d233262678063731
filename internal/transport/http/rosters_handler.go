package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frizer/backend/internal/domain"
)

// Roster endpoints resolve the appointment first so the synchronizer
// always operates on the most recently committed state.

func (s *Server) addCustomerActive(c *gin.Context) {
	s.withRosterAppointment(c, func(appt domain.Appointment) {
		customerID, ok := s.pathID(c, "id")
		if !ok {
			return
		}
		customer, err := s.rosters.AddCustomerActive(c.Request.Context(), customerID, appt)
		if err != nil {
			s.writeError(c, "add customer active appointment", err)
			return
		}
		c.JSON(http.StatusOK, toCustomerResponse(customer))
	})
}

func (s *Server) addCustomerHistory(c *gin.Context) {
	s.withRosterAppointment(c, func(appt domain.Appointment) {
		customerID, ok := s.pathID(c, "id")
		if !ok {
			return
		}
		customer, err := s.rosters.AddCustomerHistory(c.Request.Context(), customerID, appt)
		if err != nil {
			s.writeError(c, "add customer history appointment", err)
			return
		}
		c.JSON(http.StatusOK, toCustomerResponse(customer))
	})
}

func (s *Server) addEmployeeActive(c *gin.Context) {
	s.withRosterAppointment(c, func(appt domain.Appointment) {
		employeeID, ok := s.pathID(c, "id")
		if !ok {
			return
		}
		employee, err := s.rosters.AddEmployeeActive(c.Request.Context(), employeeID, appt)
		if err != nil {
			s.writeError(c, "add employee active appointment", err)
			return
		}
		c.JSON(http.StatusOK, toEmployeeResponse(employee))
	})
}

func (s *Server) addEmployeeHistory(c *gin.Context) {
	s.withRosterAppointment(c, func(appt domain.Appointment) {
		employeeID, ok := s.pathID(c, "id")
		if !ok {
			return
		}
		employee, err := s.rosters.AddEmployeeHistory(c.Request.Context(), employeeID, appt)
		if err != nil {
			s.writeError(c, "add employee history appointment", err)
			return
		}
		c.JSON(http.StatusOK, toEmployeeResponse(employee))
	})
}

func (s *Server) withRosterAppointment(c *gin.Context, fn func(appt domain.Appointment)) {
	appointmentID, ok := s.pathID(c, "appointmentID")
	if !ok {
		return
	}
	appt, err := s.scheduling.Get(c.Request.Context(), appointmentID)
	if err != nil {
		s.writeError(c, "resolve appointment", err)
		return
	}
	fn(appt)
}
