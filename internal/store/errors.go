package store

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrSalonNotFound       = errors.New("salon not found")
	ErrTreatmentNotFound   = errors.New("treatment not found")
)
