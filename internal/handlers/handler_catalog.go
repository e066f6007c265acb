package handlers

import (
	"net/http"

	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/finca-nomina/nomina_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
	laborService   portssvc.LaborSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade, ls portssvc.LaborSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs, laborService: ls}
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade, laborService portssvc.LaborSvcFacade) {
	h := newCatalogHandler(catalogService, laborService)

	rg.GET("/roles", h.listRoles)
	rg.GET("/contract-types", h.listContractTypes)
	rg.GET("/units", h.listUnits)

	labors := rg.Group("/labors")
	{
		labors.GET("", h.listLabors)
		labors.GET("/:id", h.getLabor)
		labors.POST("", middleware.RequireWriter(), h.createLabor)
		labors.PUT("/:id", middleware.RequireWriter(), h.updateLabor)
	}
}

// listRoles godoc
// @Summary List roles
// @Tags catalogs
// @Produce json
// @Success 200 {array} dto.RoleResponse
// @Security BearerAuth
// @Router /roles [get]
func (h *catalogHandler) listRoles(c *gin.Context) {
	roles, err := h.catalogService.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list roles")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleResponses(roles))
}

// listContractTypes godoc
// @Summary List contract types
// @Tags catalogs
// @Produce json
// @Success 200 {array} domain.ContractType
// @Security BearerAuth
// @Router /contract-types [get]
func (h *catalogHandler) listContractTypes(c *gin.Context) {
	types, err := h.catalogService.ListContractTypes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list contract types")
		return
	}
	c.JSON(http.StatusOK, types)
}

// listUnits godoc
// @Summary List units of measure
// @Tags catalogs
// @Produce json
// @Success 200 {array} domain.UnitOfMeasure
// @Security BearerAuth
// @Router /units [get]
func (h *catalogHandler) listUnits(c *gin.Context) {
	units, err := h.catalogService.ListUnits(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list units")
		return
	}
	c.JSON(http.StatusOK, units)
}

// createLabor godoc
// @Summary Add a labor to the catalog
// @Description The code is stored upper-cased and must be unique.
// @Tags labors
// @Accept json
// @Produce json
// @Param labor body dto.CreateLaborRequest true "Labor"
// @Success 201 {object} dto.LaborResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code taken"
// @Security BearerAuth
// @Router /labors [post]
func (h *catalogHandler) createLabor(c *gin.Context) {
	var req dto.CreateLaborRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	labor, err := h.laborService.CreateLabor(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create labor")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLaborResponse(labor, nil))
}

// getLabor godoc
// @Summary Get a labor with the price in force today
// @Tags labors
// @Produce json
// @Param id path string true "Labor ID"
// @Success 200 {object} dto.LaborResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /labors/{id} [get]
func (h *catalogHandler) getLabor(c *gin.Context) {
	labor, price, err := h.laborService.GetLabor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve labor")
		return
	}
	c.JSON(http.StatusOK, dto.ToLaborResponse(labor, price))
}

// listLabors godoc
// @Summary List labors
// @Tags labors
// @Produce json
// @Param active query bool false "Only active or inactive labors"
// @Param unitID query string false "Unit of measure"
// @Param isSpecial query bool false "Special labors"
// @Param search query string false "Matches code and name"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListLaborsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /labors [get]
func (h *catalogHandler) listLabors(c *gin.Context) {
	var params dto.ListLaborsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	labors, total, err := h.laborService.ListLabors(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to list labors")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLaborsResponse(labors, total))
}

// updateLabor godoc
// @Summary Update a labor
// @Tags labors
// @Accept json
// @Produce json
// @Param id path string true "Labor ID"
// @Param labor body dto.UpdateLaborRequest true "Fields to change"
// @Success 200 {object} dto.LaborResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /labors/{id} [put]
func (h *catalogHandler) updateLabor(c *gin.Context) {
	var req dto.UpdateLaborRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	labor, err := h.laborService.UpdateLabor(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update labor")
		return
	}
	c.JSON(http.StatusOK, dto.ToLaborResponse(labor, nil))
}
