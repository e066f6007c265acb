package handlers

import (
	"log/slog"
	"net/http"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/finca-nomina/nomina_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := &payrollHandler{payrollService: payrollService}

	payrolls := rg.Group("/payrolls")
	{
		payrolls.GET("", h.listPayrolls)
		payrolls.GET("/:id", h.getPayroll)
		payrolls.POST("", middleware.RequireWriter(), h.createPayroll)
		payrolls.POST("/:id/adjustments", middleware.RequireWriter(), h.addAdjustment)
		payrolls.POST("/:id/calculate", middleware.RequireWriter(), h.calculatePayroll)
		payrolls.POST("/:id/approve", middleware.RequireSuperAdmin(), h.approvePayroll)
		payrolls.POST("/:id/pay", middleware.RequireSuperAdmin(), h.markPayrollPaid)
	}
}

// createPayroll godoc
// @Summary Open a DRAFT payroll
// @Tags payrolls
// @Accept json
// @Produce json
// @Param payroll body dto.CreatePayrollRequest true "Worker and quincena"
// @Success 201 {object} dto.PayrollResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Payroll exists or quincena paid"
// @Security BearerAuth
// @Router /payrolls [post]
func (h *payrollHandler) createPayroll(c *gin.Context) {
	var req dto.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	payroll, err := h.payrollService.CreatePayroll(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create payroll")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPayrollResponse(payroll))
}

// getPayroll godoc
// @Summary Get a payroll with its lines
// @Tags payrolls
// @Produce json
// @Param id path string true "Payroll ID"
// @Success 200 {object} dto.PayrollResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payrolls/{id} [get]
func (h *payrollHandler) getPayroll(c *gin.Context) {
	payroll, err := h.payrollService.GetPayroll(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve payroll")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollResponse(payroll))
}

// listPayrolls godoc
// @Summary List payrolls
// @Tags payrolls
// @Produce json
// @Param payPeriodID query string false "Quincena"
// @Param workerID query string false "Worker"
// @Param status query string false "DRAFT, CALCULATED, APPROVED or PAID"
// @Success 200 {array} dto.PayrollResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payrolls [get]
func (h *payrollHandler) listPayrolls(c *gin.Context) {
	var params dto.ListPayrollsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	payrolls, err := h.payrollService.ListPayrolls(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to list payrolls")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollResponses(payrolls))
}

// addAdjustment godoc
// @Summary Add a manual earning or deduction
// @Tags payrolls
// @Accept json
// @Produce json
// @Param id path string true "Payroll ID"
// @Param adjustment body dto.AddAdjustmentRequest true "Adjustment"
// @Success 200 {object} dto.PayrollResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Payroll not editable"
// @Security BearerAuth
// @Router /payrolls/{id}/adjustments [post]
func (h *payrollHandler) addAdjustment(c *gin.Context) {
	var req dto.AddAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	payroll, err := h.payrollService.AddAdjustment(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to add adjustment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollResponse(payroll))
}

// payrollTransition runs one lifecycle step and renders the result.
func (h *payrollHandler) payrollTransition(c *gin.Context, step string,
	fn func(*gin.Context, domain.Actor, string) (*domain.Payroll, error)) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	payroll, err := fn(c, actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to "+step+" payroll")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payroll "+step+" done",
		slog.String("payroll_id", payroll.PayrollID), slog.String("status", string(payroll.Status)))
	c.JSON(http.StatusOK, dto.ToPayrollResponse(payroll))
}

// calculatePayroll godoc
// @Summary Calculate a payroll
// @Description Rebuilds LABOR lines from the quincena's labor records at the prices in force on each date, and LOAN lines from pending installments.
// @Tags payrolls
// @Produce json
// @Param id path string true "Payroll ID"
// @Success 200 {object} dto.PayrollResponse
// @Failure 400 {object} ErrorResponse "A labor has no price on a recorded date"
// @Failure 409 {object} ErrorResponse "Payroll not editable"
// @Security BearerAuth
// @Router /payrolls/{id}/calculate [post]
func (h *payrollHandler) calculatePayroll(c *gin.Context) {
	h.payrollTransition(c, "calculate", func(c *gin.Context, a domain.Actor, id string) (*domain.Payroll, error) {
		return h.payrollService.CalculatePayroll(c.Request.Context(), a, id)
	})
}

// approvePayroll godoc
// @Summary Approve a CALCULATED payroll
// @Tags payrolls
// @Produce json
// @Param id path string true "Payroll ID"
// @Success 200 {object} dto.PayrollResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payrolls/{id}/approve [post]
func (h *payrollHandler) approvePayroll(c *gin.Context) {
	h.payrollTransition(c, "approve", func(c *gin.Context, a domain.Actor, id string) (*domain.Payroll, error) {
		return h.payrollService.ApprovePayroll(c.Request.Context(), a, id)
	})
}

// markPayrollPaid godoc
// @Summary Pay an APPROVED payroll
// @Description Settles the loan installments the payroll deducted.
// @Tags payrolls
// @Produce json
// @Param id path string true "Payroll ID"
// @Success 200 {object} dto.PayrollResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payrolls/{id}/pay [post]
func (h *payrollHandler) markPayrollPaid(c *gin.Context) {
	h.payrollTransition(c, "pay", func(c *gin.Context, a domain.Actor, id string) (*domain.Payroll, error) {
		return h.payrollService.MarkPayrollPaid(c.Request.Context(), a, id)
	})
}
