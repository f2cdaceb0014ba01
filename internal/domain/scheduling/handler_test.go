package scheduling

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo, *mockRepo) {
	svc, repo := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	return h, e, repo
}

func TestHandler_BookAppointment(t *testing.T) {
	h, e, repo := newTestHandler()
	body := `{"patient_id":1,"doctor_id":1,"date":"2026-09-01","time":"10:30","status":"Approved"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.BookAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if repo.appointments[0].Status != StatusPending {
		t.Errorf("caller-supplied status must be ignored, got %s", repo.appointments[0].Status)
	}
}

func TestHandler_BookAppointment_MissingField(t *testing.T) {
	h, e, _ := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"patient_id":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.BookAppointment(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", he.Code)
	}
}

func TestHandler_ListAppointments_ByEmail(t *testing.T) {
	h, e, _ := newTestHandler()
	h.svc.Book(context.Background(), &Appointment{PatientID: 1, DoctorID: 1, Date: "2026-09-01", Time: "10:30"})

	req := httptest.NewRequest(http.MethodGet, "/?email=alice%40gmail.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var items []PatientView
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(items) != 1 || items[0].Doctor != "Dr. John Anderson" {
		t.Errorf("unexpected patient view: %+v", items)
	}
}

func TestHandler_ListAppointments_ByDoctor(t *testing.T) {
	h, e, _ := newTestHandler()
	h.svc.Book(context.Background(), &Appointment{PatientID: 1, DoctorID: 1, Date: "2026-09-01", Time: "10:30"})

	req := httptest.NewRequest(http.MethodGet, "/?doctor=Dr.+John+Anderson", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var items []DoctorView
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(items) != 1 || items[0].Patient != "Alice Kumar" || items[0].PatientID != 1 {
		t.Errorf("unexpected doctor view: %+v", items)
	}
}

func TestHandler_ListAppointments_All(t *testing.T) {
	h, e, _ := newTestHandler()
	h.svc.Book(context.Background(), &Appointment{PatientID: 1, DoctorID: 1, Date: "2026-09-01", Time: "10:30"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var items []AdminView
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(items) != 1 || items[0].Patient != "Alice Kumar" || items[0].Doctor != "Dr. John Anderson" {
		t.Errorf("unexpected admin view: %+v", items)
	}
}

func TestHandler_ListAppointments_EmptyResult(t *testing.T) {
	h, e, _ := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?email=nobody%40gmail.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %s", rec.Body.String())
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	h, e, repo := newTestHandler()
	a := &Appointment{PatientID: 1, DoctorID: 1, Date: "2026-09-01", Time: "10:30"}
	h.svc.Book(context.Background(), a)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"Approved"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if repo.appointments[0].Status != StatusApproved {
		t.Errorf("expected Approved, got %s", repo.appointments[0].Status)
	}
}

func TestHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	h, e, _ := newTestHandler()
	a := &Appointment{PatientID: 1, DoctorID: 1, Date: "2026-09-01", Time: "10:30"}
	h.svc.Book(context.Background(), a)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"Pending"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.UpdateStatus(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", he.Code)
	}
}

func TestHandler_UpdateStatus_InvalidID(t *testing.T) {
	h, e, _ := newTestHandler()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"Approved"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")

	err := h.UpdateStatus(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", he.Code)
	}
}
