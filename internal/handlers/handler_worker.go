package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/finca-nomina/nomina_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type workerHandler struct {
	workerService portssvc.WorkerSvcFacade
}

func newWorkerHandler(ws portssvc.WorkerSvcFacade) *workerHandler {
	return &workerHandler{workerService: ws}
}

func registerWorkerRoutes(rg *gin.RouterGroup, workerService portssvc.WorkerSvcFacade) {
	h := newWorkerHandler(workerService)

	workers := rg.Group("/workers")
	{
		workers.GET("", h.listWorkers)
		workers.GET("/:id", h.getWorker)
		workers.POST("", middleware.RequireWriter(), h.createWorker)
		workers.PUT("/:id", middleware.RequireWriter(), h.updateWorker)
		workers.PATCH("/:id/status", middleware.RequireWriter(), h.changeWorkerStatus)
	}
}

// createWorker godoc
// @Summary Register a worker
// @Tags workers
// @Accept  json
// @Produce  json
// @Param   worker body dto.CreateWorkerRequest true "Worker details"
// @Success 201 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Document number already registered"
// @Security BearerAuth
// @Router /workers [post]
func (h *workerHandler) createWorker(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create worker")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Worker created", slog.String("worker_id", worker.WorkerID))
	c.JSON(http.StatusCreated, dto.RedactWorker(worker, actor.Role.CanViewSensitive()))
}

// getWorker godoc
// @Summary Get a worker
// @Description Bank data is masked unless the caller may view sensitive data; unmasked reads are audited.
// @Tags workers
// @Produce  json
// @Param   id path string true "Worker ID"
// @Success 200 {object} dto.WorkerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id} [get]
func (h *workerHandler) getWorker(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	worker, err := h.workerService.GetWorker(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve worker")
		return
	}
	c.JSON(http.StatusOK, dto.RedactWorker(worker, actor.Role.CanViewSensitive()))
}

// listWorkers godoc
// @Summary List workers
// @Tags workers
// @Produce  json
// @Param   status query string false "ACTIVE, INACTIVE or RETIRED"
// @Param   contractTypeID query string false "Contract type"
// @Param   search query string false "Matches names and document number"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListWorkersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers [get]
func (h *workerHandler) listWorkers(c *gin.Context) {
	var params dto.ListWorkersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	workers, total, err := h.workerService.ListWorkers(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to list workers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkersResponse(workers, total, params.Limit, params.Offset, actor.Role.CanViewSensitive()))
}

// updateWorker godoc
// @Summary Update a worker
// @Tags workers
// @Accept  json
// @Produce  json
// @Param   id path string true "Worker ID"
// @Param   worker body dto.UpdateWorkerRequest true "Fields to change"
// @Success 200 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id} [put]
func (h *workerHandler) updateWorker(c *gin.Context) {
	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update worker")
		return
	}
	c.JSON(http.StatusOK, dto.RedactWorker(worker, actor.Role.CanViewSensitive()))
}

// changeWorkerStatus godoc
// @Summary Change the status of a worker
// @Description Retiring without a retire date uses today.
// @Tags workers
// @Accept  json
// @Produce  json
// @Param   id path string true "Worker ID"
// @Param   status body dto.ChangeWorkerStatusRequest true "New status"
// @Success 200 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id}/status [patch]
func (h *workerHandler) changeWorkerStatus(c *gin.Context) {
	var req dto.ChangeWorkerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	worker, err := h.workerService.ChangeWorkerStatus(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to change worker status")
		return
	}
	c.JSON(http.StatusOK, dto.RedactWorker(worker, actor.Role.CanViewSensitive()))
}
