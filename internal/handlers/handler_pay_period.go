package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/finca-nomina/nomina_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type payPeriodHandler struct {
	payPeriodService portssvc.PayPeriodSvcFacade
}

func registerPayPeriodRoutes(rg *gin.RouterGroup, payPeriodService portssvc.PayPeriodSvcFacade) {
	h := &payPeriodHandler{payPeriodService: payPeriodService}

	periods := rg.Group("/pay-periods")
	{
		periods.GET("", h.listPayPeriods)
		periods.GET("/:id", h.getPayPeriod)
		periods.POST("", middleware.RequireWriter(), h.createPayPeriod)
		periods.POST("/:id/advance", middleware.RequireWriter(), h.advancePayPeriod)
	}
}

// createPayPeriod godoc
// @Summary Create a quincena
// @Description Number 1 covers days 1 to 15, number 2 the rest of the month.
// @Tags pay-periods
// @Accept json
// @Produce json
// @Param period body dto.CreatePayPeriodRequest true "Quincena"
// @Success 201 {object} dto.PayPeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Quincena exists"
// @Security BearerAuth
// @Router /pay-periods [post]
func (h *payPeriodHandler) createPayPeriod(c *gin.Context) {
	var req dto.CreatePayPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	period, err := h.payPeriodService.CreatePayPeriod(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create quincena")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPayPeriodResponse(period))
}

// getPayPeriod godoc
// @Summary Get a quincena
// @Tags pay-periods
// @Produce json
// @Param id path string true "Quincena ID"
// @Success 200 {object} dto.PayPeriodResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pay-periods/{id} [get]
func (h *payPeriodHandler) getPayPeriod(c *gin.Context) {
	period, err := h.payPeriodService.GetPayPeriod(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve quincena")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayPeriodResponse(period))
}

// listPayPeriods godoc
// @Summary List quincenas, newest first
// @Tags pay-periods
// @Produce json
// @Param year query int false "Restrict to a year"
// @Success 200 {array} dto.PayPeriodResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /pay-periods [get]
func (h *payPeriodHandler) listPayPeriods(c *gin.Context) {
	var year *int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, fmt.Errorf("%w: year must be a number", apperrors.ErrValidation), "Invalid year")
			return
		}
		year = &y
	}
	periods, err := h.payPeriodService.ListPayPeriods(c.Request.Context(), year)
	if err != nil {
		respondError(c, err, "Failed to list quincenas")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayPeriodResponses(periods))
}

// advancePayPeriod godoc
// @Summary Move a quincena to its next status
// @Description OPEN, CALCULATING, CALCULATED, PAID.
// @Tags pay-periods
// @Produce json
// @Param id path string true "Quincena ID"
// @Success 200 {object} dto.PayPeriodResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already PAID"
// @Security BearerAuth
// @Router /pay-periods/{id}/advance [post]
func (h *payPeriodHandler) advancePayPeriod(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	period, err := h.payPeriodService.AdvancePayPeriod(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to advance quincena")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayPeriodResponse(period))
}
