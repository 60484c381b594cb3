package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigflow/gigflow-go/response"
	"github.com/gigflow/gigflow-go/services"
	"github.com/gigflow/gigflow-go/utils"
)

type AuditHandler struct {
	service *services.AuditService
}

func NewAuditHandler(service *services.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// GetAuditLogs godoc
// @Summary The requester's recent audit entries
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AuditLog
// @Router /api/audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	logs, err := h.service.GetLogsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error while fetching audit logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
