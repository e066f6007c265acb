package handlers

import (
	"net/http"

	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/finca-nomina/nomina_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	rg.GET("/audit", middleware.RequireSuperAdmin(), listAuditEntries(auditService))
}

// listAuditEntries godoc
// @Summary Browse the audit log, newest first
// @Tags audit
// @Produce json
// @Param action query string false "CREATE, UPDATE, DELETE or VIEW_SENSITIVE"
// @Param table query string false "Table name"
// @Param userID query string false "Acting user"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.ListAuditResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit [get]
func listAuditEntries(auditService portssvc.AuditSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params dto.ListAuditParams
		if err := c.ShouldBindQuery(&params); err != nil {
			respondBindError(c, err)
			return
		}
		entries, total, err := auditService.ListAuditEntries(c.Request.Context(), params.ToFilter())
		if err != nil {
			respondError(c, err, "Failed to list audit entries")
			return
		}
		c.JSON(http.StatusOK, dto.ToListAuditResponse(entries, total, params.Page, params.PageSize))
	}
}
