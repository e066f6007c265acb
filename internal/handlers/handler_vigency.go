package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/finca-nomina/nomina_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vigencyHandler exposes priced windows of labor prices and payroll variables.
type vigencyHandler struct {
	vigencyService portssvc.VigencySvcFacade
	laborService   portssvc.LaborSvcFacade
	now            func() time.Time
}

func newVigencyHandler(vs portssvc.VigencySvcFacade, ls portssvc.LaborSvcFacade) *vigencyHandler {
	return &vigencyHandler{vigencyService: vs, laborService: ls, now: time.Now}
}

func registerVigencyRoutes(rg *gin.RouterGroup, vigencyService portssvc.VigencySvcFacade, laborService portssvc.LaborSvcFacade) {
	h := newVigencyHandler(vigencyService, laborService)

	prices := rg.Group("/labors/:id/prices")
	{
		prices.GET("", h.laborPriceHistory)
		prices.GET("/current", h.currentLaborPrice)
		prices.POST("", middleware.RequireWriter(), h.openLaborPrice)
	}

	variables := rg.Group("/payroll-variables/:name")
	{
		variables.GET("", h.variableHistory)
		variables.GET("/current", h.currentVariable)
		variables.POST("", middleware.RequireWriter(), h.openVariable)
	}
}

// laborSubject resolves the labor in the path, so prices are never opened for unknown labors.
func (h *vigencyHandler) laborSubject(c *gin.Context) (domain.Subject, error) {
	labor, _, err := h.laborService.GetLabor(c.Request.Context(), c.Param("id"))
	if err != nil {
		return domain.Subject{}, err
	}
	return domain.LaborPriceSubject(labor.LaborID), nil
}

func variableSubject(c *gin.Context) (domain.Subject, error) {
	name := domain.VariableName(c.Param("name"))
	if !name.IsValid() {
		return domain.Subject{}, fmt.Errorf("%w: unknown payroll variable %q", apperrors.ErrNotFound, name)
	}
	return domain.VariableSubject(name), nil
}

// queryDate reads the optional "date" query parameter, defaulting to today.
func (h *vigencyHandler) queryDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return dto.NewDate(h.now()).Time, nil
	}
	d, err := dto.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return d.Time, nil
}

func (h *vigencyHandler) open(c *gin.Context, subject domain.Subject) {
	var req dto.OpenWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	window, err := h.vigencyService.OpenWindow(c.Request.Context(), actor, subject, req)
	if err != nil {
		respondError(c, err, "Failed to open window")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWindowResponse(window))
}

func (h *vigencyHandler) current(c *gin.Context, subject domain.Subject) {
	d, err := h.queryDate(c)
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}
	window, err := h.vigencyService.CurrentValue(c.Request.Context(), subject, d)
	if err != nil {
		respondError(c, err, "Failed to resolve value")
		return
	}
	c.JSON(http.StatusOK, dto.ToWindowResponse(window))
}

func (h *vigencyHandler) history(c *gin.Context, subject domain.Subject) {
	windows, err := h.vigencyService.History(c.Request.Context(), subject)
	if err != nil {
		respondError(c, err, "Failed to list windows")
		return
	}
	c.JSON(http.StatusOK, dto.ToWindowResponses(windows))
}

// openLaborPrice godoc
// @Summary Set a labor price from a date on
// @Description Opens an open-ended price window. With supersede the window in force is closed the day before.
// @Tags vigency
// @Accept json
// @Produce json
// @Param id path string true "Labor ID"
// @Param window body dto.OpenWindowRequest true "Price window"
// @Success 201 {object} dto.WindowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Overlaps an open window"
// @Security BearerAuth
// @Router /labors/{id}/prices [post]
func (h *vigencyHandler) openLaborPrice(c *gin.Context) {
	subject, err := h.laborSubject(c)
	if err != nil {
		respondError(c, err, "Failed to resolve labor")
		return
	}
	h.open(c, subject)
}

// currentLaborPrice godoc
// @Summary Labor price in force on a date
// @Tags vigency
// @Produce json
// @Param id path string true "Labor ID"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} dto.WindowResponse
// @Failure 404 {object} ErrorResponse "No price in force"
// @Security BearerAuth
// @Router /labors/{id}/prices/current [get]
func (h *vigencyHandler) currentLaborPrice(c *gin.Context) {
	h.current(c, domain.LaborPriceSubject(c.Param("id")))
}

// laborPriceHistory godoc
// @Summary Price history of a labor
// @Tags vigency
// @Produce json
// @Param id path string true "Labor ID"
// @Success 200 {array} dto.WindowResponse
// @Security BearerAuth
// @Router /labors/{id}/prices [get]
func (h *vigencyHandler) laborPriceHistory(c *gin.Context) {
	h.history(c, domain.LaborPriceSubject(c.Param("id")))
}

// openVariable godoc
// @Summary Set a payroll variable from a date on
// @Tags vigency
// @Accept json
// @Produce json
// @Param name path string true "SALARIO_MINIMO, AUXILIO_TRANSPORTE, PORCENTAJE_SALUD or PORCENTAJE_PENSION"
// @Param window body dto.OpenWindowRequest true "Value window"
// @Success 201 {object} dto.WindowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll-variables/{name} [post]
func (h *vigencyHandler) openVariable(c *gin.Context) {
	subject, err := variableSubject(c)
	if err != nil {
		respondError(c, err, "Unknown variable")
		return
	}
	h.open(c, subject)
}

// currentVariable godoc
// @Summary Payroll variable in force on a date
// @Tags vigency
// @Produce json
// @Param name path string true "Variable name"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} dto.WindowResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll-variables/{name}/current [get]
func (h *vigencyHandler) currentVariable(c *gin.Context) {
	subject, err := variableSubject(c)
	if err != nil {
		respondError(c, err, "Unknown variable")
		return
	}
	h.current(c, subject)
}

// variableHistory godoc
// @Summary History of a payroll variable
// @Tags vigency
// @Produce json
// @Param name path string true "Variable name"
// @Success 200 {array} dto.WindowResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll-variables/{name} [get]
func (h *vigencyHandler) variableHistory(c *gin.Context) {
	subject, err := variableSubject(c)
	if err != nil {
		respondError(c, err, "Unknown variable")
		return
	}
	h.history(c, subject)
}
