package handlers

import (
	"fmt"
	"net/http"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/finca-nomina/nomina_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type laborRecordHandler struct {
	recordService portssvc.LaborRecordSvcFacade
}

func registerLaborRecordRoutes(rg *gin.RouterGroup, recordService portssvc.LaborRecordSvcFacade) {
	h := &laborRecordHandler{recordService: recordService}

	records := rg.Group("/labor-records")
	{
		records.GET("", h.listLaborRecords)
		records.GET("/:id", h.getLaborRecord)
		records.POST("", middleware.RequireWriter(), h.createLaborRecord)
		records.PUT("/:id", middleware.RequireWriter(), h.updateLaborRecord)
		records.DELETE("/:id", middleware.RequireWriter(), h.deleteLaborRecord)
	}
}

// createLaborRecord godoc
// @Summary Record a day of work
// @Description The date must fall inside the quincena and before its registration deadline.
// @Tags labor-records
// @Accept json
// @Produce json
// @Param record body dto.CreateLaborRecordRequest true "Labor record"
// @Success 201 {object} dto.LaborRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Quincena closed for registration"
// @Security BearerAuth
// @Router /labor-records [post]
func (h *laborRecordHandler) createLaborRecord(c *gin.Context) {
	var req dto.CreateLaborRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	record, err := h.recordService.CreateLaborRecord(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create labor record")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLaborRecordResponse(record))
}

// getLaborRecord godoc
// @Summary Get a labor record
// @Tags labor-records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} dto.LaborRecordResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /labor-records/{id} [get]
func (h *laborRecordHandler) getLaborRecord(c *gin.Context) {
	record, err := h.recordService.GetLaborRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve labor record")
		return
	}
	c.JSON(http.StatusOK, dto.ToLaborRecordResponse(record))
}

// listLaborRecords godoc
// @Summary List labor records, newest first
// @Tags labor-records
// @Produce json
// @Param workerID query string false "Worker"
// @Param payPeriodID query string false "Quincena"
// @Param laborID query string false "Labor"
// @Param dateFrom query string false "YYYY-MM-DD"
// @Param dateTo query string false "YYYY-MM-DD"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLaborRecordsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /labor-records [get]
func (h *laborRecordHandler) listLaborRecords(c *gin.Context) {
	var params dto.ListLaborRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperrors.ErrValidation, err), "Invalid filter")
		return
	}
	records, next, err := h.recordService.ListLaborRecords(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list labor records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLaborRecordsResponse(records, next))
}

// updateLaborRecord godoc
// @Summary Update a labor record
// @Tags labor-records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param record body dto.UpdateLaborRecordRequest true "Fields to change"
// @Success 200 {object} dto.LaborRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /labor-records/{id} [put]
func (h *laborRecordHandler) updateLaborRecord(c *gin.Context) {
	var req dto.UpdateLaborRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	record, err := h.recordService.UpdateLaborRecord(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update labor record")
		return
	}
	c.JSON(http.StatusOK, dto.ToLaborRecordResponse(record))
}

// deleteLaborRecord godoc
// @Summary Delete a labor record
// @Tags labor-records
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /labor-records/{id} [delete]
func (h *laborRecordHandler) deleteLaborRecord(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	if err := h.recordService.DeleteLaborRecord(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete labor record")
		return
	}
	c.Status(http.StatusNoContent)
}
