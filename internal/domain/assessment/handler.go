package assessment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cardioscore/risk-api/internal/domain/patient"
	"github.com/cardioscore/risk-api/internal/platform/auth"
	"github.com/cardioscore/risk-api/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Read endpoints – clinician, auditor
	readGroup := api.Group("", auth.RequireRole("clinician", "auditor"))
	readGroup.GET("/assessments", h.ListAssessments)
	readGroup.GET("/assessments/:id", h.GetAssessment)
	readGroup.GET("/risk-factors", h.ListRiskFactors)

	// Write endpoints – clinician
	writeGroup := api.Group("", auth.RequireRole("clinician"))
	writeGroup.POST("/assessments", h.CreateAssessment)
}

func (h *Handler) CreateAssessment(c echo.Context) error {
	var req AssessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, err := h.svc.Assess(c.Request().Context(), &req)
	if err != nil {
		var verr *patient.ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
		}
		var serr *ScoringError
		if errors.As(err, &serr) {
			// Degenerate fitted parameters: not the caller's fault.
			return echo.NewHTTPError(http.StatusInternalServerError, serr.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) GetAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) ListAssessments(c echo.Context) error {
	pg := pagination.FromContext(c)

	var (
		items []*RiskAssessment
		total int
		err   error
	)
	if ref := c.QueryParam("patient_ref"); ref != "" {
		items, total, err = h.svc.ListByPatient(c.Request().Context(), ref, pg.Limit, pg.Offset)
	} else {
		items, total, err = h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListRiskFactors(c echo.Context) error {
	return c.JSON(http.StatusOK, KnownRiskFactors)
}
