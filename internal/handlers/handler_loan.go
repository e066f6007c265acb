package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/finca-nomina/nomina_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.GET("", h.listLoans)
		loans.GET("/:id", h.getLoan)
		loans.POST("", middleware.RequireWriter(), h.createLoan)
		loans.POST("/:id/installments/:seq/settle", middleware.RequireWriter(), h.settleInstallment)
		loans.POST("/:id/payment", middleware.RequireWriter(), h.registerFullPayment)
		loans.POST("/:id/cancel", middleware.RequireWriter(), h.cancelLoan)
		loans.DELETE("/:id", middleware.RequireWriter(), h.deleteLoan)
	}
}

// createLoan godoc
// @Summary Lend money to a worker
// @Description INSTALLMENTS loans are split into installmentCount amounts; leftover cents go to the first one.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.CreateLoanRequest true "Loan"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Worker not found"
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	loan, err := h.loanService.CreateLoan(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create loan")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Loan created",
		slog.String("loan_id", loan.LoanID), slog.String("worker_id", loan.WorkerID))
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// getLoan godoc
// @Summary Get a loan with its installments
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	loan, err := h.loanService.GetLoan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve loan")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List loans
// @Tags loans
// @Produce json
// @Param workerID query string false "Worker"
// @Param status query string false "ACTIVE, SETTLED or CANCELLED"
// @Param paymentMode query string false "SINGLE or INSTALLMENTS"
// @Success 200 {array} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	var params dto.ListLoansParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	loans, err := h.loanService.ListLoans(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to list loans")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

// settleInstallment godoc
// @Summary Settle one installment
// @Description Marks a PENDING installment as deducted in a quincena. Settling the last one settles the loan.
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param seq path int true "Installment sequence number"
// @Param settlement body dto.SettleInstallmentRequest true "Settlement"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Installment or loan not pending"
// @Security BearerAuth
// @Router /loans/{id}/installments/{seq}/settle [post]
func (h *loanHandler) settleInstallment(c *gin.Context) {
	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil || seq < 1 {
		respondError(c, fmt.Errorf("%w: installment sequence must be a positive integer", apperrors.ErrValidation), "Invalid sequence")
		return
	}
	var req dto.SettleInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	loan, err := h.loanService.SettleInstallment(c.Request.Context(), actor, c.Param("id"), seq, req)
	if err != nil {
		respondError(c, err, "Failed to settle installment")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// registerFullPayment godoc
// @Summary Register the single payment of a loan
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param payment body dto.RegisterPaymentRequest true "Payment"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id}/payment [post]
func (h *loanHandler) registerFullPayment(c *gin.Context) {
	var req dto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	loan, err := h.loanService.RegisterFullPayment(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to register payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// cancelLoan godoc
// @Summary Cancel a loan
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Loan not active"
// @Security BearerAuth
// @Router /loans/{id}/cancel [post]
func (h *loanHandler) cancelLoan(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	loan, err := h.loanService.CancelLoan(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to cancel loan")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// deleteLoan godoc
// @Summary Delete a loan
// @Description Only loans without any settled installment can be deleted.
// @Tags loans
// @Param id path string true "Loan ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Loan has deductions"
// @Security BearerAuth
// @Router /loans/{id} [delete]
func (h *loanHandler) deleteLoan(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	if err := h.loanService.DeleteLoan(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete loan")
		return
	}
	c.Status(http.StatusNoContent)
}
