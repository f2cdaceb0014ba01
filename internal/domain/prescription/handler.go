package prescription

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/prescriptions", h.ListPrescriptions)
	api.POST("/prescriptions", h.WritePrescription)
}

// writeRequest mirrors the consultation form, which submits camelCase keys.
type writeRequest struct {
	DoctorName  string   `json:"doctorName"`
	PatientName string   `json:"patientName"`
	Age         *int     `json:"age"`
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	Medicines   string   `json:"medicines"`
}

func (h *Handler) WritePrescription(c echo.Context) error {
	var req writeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p := Prescription{
		DoctorName:  req.DoctorName,
		PatientName: req.PatientName,
		Age:         req.Age,
		Height:      req.Height,
		Weight:      req.Weight,
		Medicines:   req.Medicines,
	}
	if err := h.svc.Write(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"msg": "Prescription saved"})
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
