package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(NewService(newMockRepo()))
	return h, echo.New()
}

func doLogin(t *testing.T, h *Handler, e *echo.Echo, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h.Login(c)
}

func TestHandler_Login_Admin(t *testing.T) {
	h, e := newTestHandler()
	rec, err := doLogin(t, h, e, `{"username":"svanam","password":"admin@2110"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var result LoginResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.Role != RoleAdmin || result.Username != "svanam" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestHandler_Login_Doctor(t *testing.T) {
	h, e := newTestHandler()
	rec, err := doLogin(t, h, e, `{"username":"john@gmail.com","password":"svmhospital123"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var result LoginResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.Role != RoleDoctor || result.DoctorName != "Dr. John Anderson" || result.Specialty != "Cardiology" {
		t.Errorf("unexpected result: %+v", result)
	}
	// The front-end reads data.doctorName, so the key is camelCase.
	var raw map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if _, ok := raw["doctorName"]; !ok {
		t.Errorf("expected doctorName key in response, got %s", rec.Body.String())
	}
}

func TestHandler_Login_Invalid(t *testing.T) {
	h, e := newTestHandler()
	_, err := doLogin(t, h, e, `{"username":"nobody","password":"wrong"}`)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", he.Code)
	}
	if he.Message != "Invalid login" {
		t.Errorf("expected message %q, got %v", "Invalid login", he.Message)
	}
}
