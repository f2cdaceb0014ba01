package scheduling

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/appointments", h.ListAppointments)
	api.POST("/appointments", h.BookAppointment)
	api.PUT("/appointments/:id/status", h.UpdateStatus)
}

func (h *Handler) BookAppointment(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Book(c.Request().Context(), &a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"msg": "Appointment booked"})
}

// ListAppointments serves three mutually exclusive views selected by query
// parameter: ?email= for a patient's bookings, ?doctor= for a doctor's
// schedule, neither for the admin overview.
func (h *Handler) ListAppointments(c echo.Context) error {
	ctx := c.Request().Context()

	if email := c.QueryParam("email"); email != "" {
		items, err := h.svc.ListByPatientEmail(ctx, email)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, items)
	}

	if doctor := c.QueryParam("doctor"); doctor != "" {
		items, err := h.svc.ListByDoctorName(ctx, doctor)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, items)
	}

	items, err := h.svc.ListAll(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.UpdateStatus(c.Request().Context(), id, body.Status); err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "Status updated"})
}
