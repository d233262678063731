package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"frizer/backend/internal/domain"
	"frizer/backend/internal/service/scheduling"
	"frizer/backend/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeScheduling struct {
	listFn   func(ctx context.Context) ([]domain.Appointment, error)
	getFn    func(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	createFn func(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error)
	updateFn func(ctx context.Context, id uuid.UUID, in scheduling.CreateInput) (domain.Appointment, error)
	deleteFn func(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	toggleFn func(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
}

func (f *fakeScheduling) List(ctx context.Context) ([]domain.Appointment, error) {
	return f.listFn(ctx)
}

func (f *fakeScheduling) Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	return f.getFn(ctx, id)
}

func (f *fakeScheduling) Create(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error) {
	return f.createFn(ctx, in)
}

func (f *fakeScheduling) Update(ctx context.Context, id uuid.UUID, in scheduling.CreateInput) (domain.Appointment, error) {
	return f.updateFn(ctx, id, in)
}

func (f *fakeScheduling) Delete(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	return f.deleteFn(ctx, id)
}

func (f *fakeScheduling) ToggleAttendance(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	return f.toggleFn(ctx, id)
}

type fakeRosterService struct {
	addCustomerActiveFn  func(ctx context.Context, customerID uuid.UUID, appt domain.Appointment) (domain.Customer, error)
	addCustomerHistoryFn func(ctx context.Context, customerID uuid.UUID, appt domain.Appointment) (domain.Customer, error)
	addEmployeeActiveFn  func(ctx context.Context, employeeID uuid.UUID, appt domain.Appointment) (domain.Employee, error)
	addEmployeeHistoryFn func(ctx context.Context, employeeID uuid.UUID, appt domain.Appointment) (domain.Employee, error)
	archiveFn            func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
}

func (f *fakeRosterService) AddCustomerActive(ctx context.Context, customerID uuid.UUID, appt domain.Appointment) (domain.Customer, error) {
	return f.addCustomerActiveFn(ctx, customerID, appt)
}

func (f *fakeRosterService) AddCustomerHistory(ctx context.Context, customerID uuid.UUID, appt domain.Appointment) (domain.Customer, error) {
	return f.addCustomerHistoryFn(ctx, customerID, appt)
}

func (f *fakeRosterService) AddEmployeeActive(ctx context.Context, employeeID uuid.UUID, appt domain.Appointment) (domain.Employee, error) {
	return f.addEmployeeActiveFn(ctx, employeeID, appt)
}

func (f *fakeRosterService) AddEmployeeHistory(ctx context.Context, employeeID uuid.UUID, appt domain.Appointment) (domain.Employee, error) {
	return f.addEmployeeHistoryFn(ctx, employeeID, appt)
}

func (f *fakeRosterService) ArchiveAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	return f.archiveFn(ctx, appt)
}

func newTestRouter(sched schedulingService, rosters rosterService) *gin.Engine {
	r := gin.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewServer(sched, rosters, log).Register(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httpError {
	t.Helper()
	var out httpError
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return out
}

func sampleAppointment() domain.Appointment {
	return domain.Appointment{
		ID:          uuid.MustParse("00000000-0000-0000-0000-0000000000a1"),
		DateFrom:    time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		DateTo:      time.Date(2026, 9, 1, 8, 20, 0, 0, time.UTC),
		TreatmentID: uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		SalonID:     uuid.MustParse("00000000-0000-0000-0000-000000000002"),
		EmployeeID:  uuid.MustParse("00000000-0000-0000-0000-000000000003"),
		CustomerID:  uuid.MustParse("00000000-0000-0000-0000-000000000004"),
	}
}

func appointmentBody(a domain.Appointment) gin.H {
	return gin.H{
		"date_from":    a.DateFrom,
		"date_to":      a.DateTo,
		"treatment_id": a.TreatmentID,
		"salon_id":     a.SalonID,
		"employee_id":  a.EmployeeID,
		"customer_id":  a.CustomerID,
	}
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	appt := sampleAppointment()

	t.Run("created", func(t *testing.T) {
		r := newTestRouter(&fakeScheduling{
			createFn: func(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error) {
				return appt, nil
			},
		}, &fakeRosterService{})

		w := doRequest(t, r, http.MethodPost, "/api/appointments", appointmentBody(appt))
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusCreated, w.Body)
		}

		var out appointmentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if out.ID != appt.ID.String() {
			t.Fatalf("id = %s, want %s", out.ID, appt.ID)
		}
		if out.Attended {
			t.Fatalf("attended = true, want false")
		}
	})

	t.Run("off-grid time", func(t *testing.T) {
		r := newTestRouter(&fakeScheduling{
			createFn: func(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error) {
				return domain.Appointment{}, scheduling.ErrNotDivisibleBy20Minutes
			},
		}, &fakeRosterService{})

		w := doRequest(t, r, http.MethodPost, "/api/appointments", appointmentBody(appt))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		if got := decodeError(t, w); got.Code != "invalid_appointment" {
			t.Fatalf("error code = %q, want invalid_appointment", got.Code)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		r := newTestRouter(&fakeScheduling{
			createFn: func(ctx context.Context, in scheduling.CreateInput) (domain.Appointment, error) {
				return domain.Appointment{}, store.ErrCustomerNotFound
			},
		}, &fakeRosterService{})

		w := doRequest(t, r, http.MethodPost, "/api/appointments", appointmentBody(appt))
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
		if got := decodeError(t, w); got.Code != "customer_not_found" {
			t.Fatalf("error code = %q, want customer_not_found", got.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		r := newTestRouter(&fakeScheduling{}, &fakeRosterService{})

		w := doRequest(t, r, http.MethodPost, "/api/appointments", gin.H{"date_from": appt.DateFrom})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		if got := decodeError(t, w); got.Code != "invalid_body" {
			t.Fatalf("error code = %q, want invalid_body", got.Code)
		}
	})
}

func TestGetAppointmentEndpoint(t *testing.T) {
	appt := sampleAppointment()

	t.Run("found", func(t *testing.T) {
		r := newTestRouter(&fakeScheduling{
			getFn: func(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
				if id != appt.ID {
					return domain.Appointment{}, store.ErrAppointmentNotFound
				}
				return appt, nil
			},
		}, &fakeRosterService{})

		w := doRequest(t, r, http.MethodGet, "/api/appointments/"+appt.ID.String(), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r := newTestRouter(&fakeScheduling{
			getFn: func(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
				return domain.Appointment{}, store.ErrAppointmentNotFound
			},
		}, &fakeRosterService{})

		w := doRequest(t, r, http.MethodGet, "/api/appointments/"+uuid.NewString(), nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		r := newTestRouter(&fakeScheduling{}, &fakeRosterService{})

		w := doRequest(t, r, http.MethodGet, "/api/appointments/not-a-uuid", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		if got := decodeError(t, w); got.Code != "invalid_id" {
			t.Fatalf("error code = %q, want invalid_id", got.Code)
		}
	})
}

func TestListAppointmentsEndpoint(t *testing.T) {
	r := newTestRouter(&fakeScheduling{
		listFn: func(ctx context.Context) ([]domain.Appointment, error) {
			return []domain.Appointment{sampleAppointment()}, nil
		},
	}, &fakeRosterService{})

	w := doRequest(t, r, http.MethodGet, "/api/appointments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var out struct {
		Data  []appointmentResponse `json:"data"`
		Total int                   `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out.Total != 1 || len(out.Data) != 1 {
		t.Fatalf("total = %d, data = %d entries, want 1 each", out.Total, len(out.Data))
	}
}

func TestDeleteAppointmentEndpoint(t *testing.T) {
	appt := sampleAppointment()
	appt.Attended = true

	r := newTestRouter(&fakeScheduling{
		deleteFn: func(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
			return appt, nil
		},
	}, &fakeRosterService{})

	w := doRequest(t, r, http.MethodDelete, "/api/appointments/"+appt.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var out appointmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !out.Attended {
		t.Fatalf("body does not reflect the deleted entity's last state")
	}
}

func TestToggleAttendanceEndpoint(t *testing.T) {
	appt := sampleAppointment()
	appt.Attended = true

	r := newTestRouter(&fakeScheduling{
		toggleFn: func(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
			return appt, nil
		},
	}, &fakeRosterService{})

	w := doRequest(t, r, http.MethodPut, "/api/appointments/"+appt.ID.String()+"/attendance", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var out appointmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !out.Attended {
		t.Fatalf("attended = false in body, want true")
	}
}

func TestArchiveAppointmentEndpoint(t *testing.T) {
	appt := sampleAppointment()

	var archived []uuid.UUID
	r := newTestRouter(
		&fakeScheduling{
			getFn: func(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
				return appt, nil
			},
		},
		&fakeRosterService{
			archiveFn: func(ctx context.Context, got domain.Appointment) (domain.Appointment, error) {
				archived = append(archived, got.ID)
				got.Attended = true
				return got, nil
			},
		},
	)

	w := doRequest(t, r, http.MethodPost, "/api/appointments/"+appt.ID.String()+"/archive", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if len(archived) != 1 || archived[0] != appt.ID {
		t.Fatalf("archived ids = %v, want [%s]", archived, appt.ID)
	}

	var out appointmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !out.Attended {
		t.Fatalf("attended = false in body, want true after archival")
	}
}

func TestRosterEndpoints(t *testing.T) {
	appt := sampleAppointment()
	customerID := appt.CustomerID
	employeeID := appt.EmployeeID

	sched := &fakeScheduling{
		getFn: func(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
			if id != appt.ID {
				return domain.Appointment{}, store.ErrAppointmentNotFound
			}
			return appt, nil
		},
	}

	t.Run("customer history", func(t *testing.T) {
		rosters := &fakeRosterService{
			addCustomerHistoryFn: func(ctx context.Context, id uuid.UUID, got domain.Appointment) (domain.Customer, error) {
				if id != customerID || got.ID != appt.ID {
					t.Fatalf("got customer=%s appointment=%s", id, got.ID)
				}
				return domain.Customer{ID: id, AppointmentsHistory: []uuid.UUID{appt.ID}}, nil
			},
		}
		r := newTestRouter(sched, rosters)

		path := "/api/customers/" + customerID.String() + "/appointments/" + appt.ID.String() + "/history"
		w := doRequest(t, r, http.MethodPost, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusOK, w.Body)
		}

		var out customerResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(out.AppointmentsHistory) != 1 || out.AppointmentsHistory[0] != appt.ID.String() {
			t.Fatalf("history = %v, want [%s]", out.AppointmentsHistory, appt.ID)
		}
	})

	t.Run("employee active", func(t *testing.T) {
		rosters := &fakeRosterService{
			addEmployeeActiveFn: func(ctx context.Context, id uuid.UUID, got domain.Appointment) (domain.Employee, error) {
				return domain.Employee{ID: id, AppointmentsActive: []uuid.UUID{got.ID}}, nil
			},
		}
		r := newTestRouter(sched, rosters)

		path := "/api/employees/" + employeeID.String() + "/appointments/" + appt.ID.String() + "/active"
		w := doRequest(t, r, http.MethodPost, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusOK, w.Body)
		}
	})

	t.Run("unknown appointment", func(t *testing.T) {
		r := newTestRouter(sched, &fakeRosterService{})

		path := "/api/customers/" + customerID.String() + "/appointments/" + uuid.NewString() + "/active"
		w := doRequest(t, r, http.MethodPost, path, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
		if got := decodeError(t, w); got.Code != "appointment_not_found" {
			t.Fatalf("error code = %q, want appointment_not_found", got.Code)
		}
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(&fakeScheduling{}, &fakeRosterService{})

	w := doRequest(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
