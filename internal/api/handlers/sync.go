package handlers

import (
	"net/http"

	"calling-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the external data sync job
type SyncHandler struct {
	service service.SyncServiceInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(service service.SyncServiceInterface) *SyncHandler {
	return &SyncHandler{service: service}
}

// TriggerSync handles POST /api/v1/sync
// @Summary Trigger a data sync
// @Description Start the external sync job that refreshes members, organizations and callings
// @Tags sync
// @Produce json
// @Success 202 {object} service.SyncStatus "Sync started"
// @Failure 409 {object} ErrorResponse "A sync is already running"
// @Failure 503 {object} ErrorResponse "Sync is not configured"
// @Security SessionAuth
// @Router /sync [post]
func (h *SyncHandler) TriggerSync(c *gin.Context) {
	status, err := h.service.Start(c.Request.Context())
	if err != nil {
		handleError(c, err, "start sync")
		return
	}

	c.JSON(http.StatusAccepted, status)
}

// GetSyncStatus handles GET /api/v1/sync/status
// @Summary Get sync status
// @Description Report whether a sync is running and the outcome of the last run
// @Tags sync
// @Produce json
// @Success 200 {object} service.SyncStatus "Current sync status"
// @Security SessionAuth
// @Router /sync/status [get]
func (h *SyncHandler) GetSyncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status())
}
