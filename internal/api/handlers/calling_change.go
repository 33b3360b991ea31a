package handlers

import (
	"net/http"

	"calling-tracker-backend/internal/database/models"
	"calling-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CallingChangeHandler handles HTTP requests for the calling change workflow
type CallingChangeHandler struct {
	service service.CallingChangeServiceInterface
}

// NewCallingChangeHandler creates a new calling change handler
func NewCallingChangeHandler(service service.CallingChangeServiceInterface) *CallingChangeHandler {
	return &CallingChangeHandler{service: service}
}

// ListCallingChanges handles GET /api/v1/calling-changes
// @Summary List calling changes
// @Description List calling changes with their considerations and tasks, highest priority first
// @Tags calling-changes
// @Accept json
// @Produce json
// @Param status query string false "Filter by status" Enums(hold, in_progress, approved, completed)
// @Success 200 {array} service.CallingChangeResponse "Successfully retrieved calling changes"
// @Failure 400 {object} ErrorResponse "Invalid status filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes [get]
func (h *CallingChangeHandler) ListCallingChanges(c *gin.Context) {
	var status *models.CallingChangeStatus
	if raw := c.Query("status"); raw != "" {
		s := models.CallingChangeStatus(raw)
		status = &s
	}

	changes, err := h.service.ListCallingChanges(c.Request.Context(), status)
	if err != nil {
		handleError(c, err, "list calling changes")
		return
	}

	c.JSON(http.StatusOK, changes)
}

// GetCallingChange handles GET /api/v1/calling-changes/:id
// @Summary Get calling change by ID
// @Description Get a calling change with its considerations and tasks
// @Tags calling-changes
// @Accept json
// @Produce json
// @Param id path string true "Calling change ID (UUID)"
// @Success 200 {object} service.CallingChangeResponse "Successfully retrieved calling change"
// @Failure 400 {object} ErrorResponse "Invalid calling change ID"
// @Failure 404 {object} ErrorResponse "Calling change not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes/{id} [get]
func (h *CallingChangeHandler) GetCallingChange(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "calling change ID")
	if !ok {
		return
	}

	change, err := h.service.GetCallingChange(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "get calling change")
		return
	}

	c.JSON(http.StatusOK, change)
}

// CreateCallingChange handles POST /api/v1/calling-changes
// @Summary Create a calling change
// @Description Open a calling change for a calling. Only one open change per calling is allowed.
// @Tags calling-changes
// @Accept json
// @Produce json
// @Param change body service.CreateCallingChangeRequest true "Calling change data"
// @Success 201 {object} service.CallingChangeResponse "Successfully created calling change"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Calling or member not found"
// @Failure 409 {object} ErrorResponse "Calling already has an open change"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes [post]
func (h *CallingChangeHandler) CreateCallingChange(c *gin.Context) {
	var req service.CreateCallingChangeRequest
	if !bindJSON(c, &req) {
		return
	}

	change, err := h.service.CreateCallingChange(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err, "create calling change")
		return
	}

	c.JSON(http.StatusCreated, change)
}

// UpdateCallingChange handles PUT /api/v1/calling-changes/:id
// @Summary Update a calling change
// @Description Patch status, priority or the assigned bishopric member. Setting status to completed here
// @Description bypasses finalization: assignments and tasks are left untouched.
// @Tags calling-changes
// @Accept json
// @Produce json
// @Param id path string true "Calling change ID (UUID)"
// @Param change body service.UpdateCallingChangeRequest true "Fields to update"
// @Success 200 {object} service.CallingChangeResponse "Successfully updated calling change"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Calling change not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes/{id} [put]
func (h *CallingChangeHandler) UpdateCallingChange(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "calling change ID")
	if !ok {
		return
	}

	var req service.UpdateCallingChangeRequest
	if !bindJSON(c, &req) {
		return
	}

	change, err := h.service.UpdateCallingChange(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err, "update calling change")
		return
	}

	c.JSON(http.StatusOK, change)
}

// AddConsideration handles POST /api/v1/calling-changes/:id/considerations
// @Summary Add a consideration
// @Description Add a member as a candidate for the calling change
// @Tags considerations
// @Accept json
// @Produce json
// @Param id path string true "Calling change ID (UUID)"
// @Param consideration body service.AddConsiderationRequest true "Consideration data"
// @Success 201 {object} service.ConsiderationResponse "Successfully added consideration"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Calling change or member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes/{id}/considerations [post]
func (h *CallingChangeHandler) AddConsideration(c *gin.Context) {
	changeID, ok := parseUUIDParam(c, "id", "calling change ID")
	if !ok {
		return
	}

	var req service.AddConsiderationRequest
	if !bindJSON(c, &req) {
		return
	}

	consideration, err := h.service.AddConsideration(c.Request.Context(), changeID, &req)
	if err != nil {
		handleError(c, err, "add consideration")
		return
	}

	c.JSON(http.StatusCreated, consideration)
}

// UpdateConsideration handles PUT /api/v1/calling-changes/:id/considerations/:cid
// @Summary Update a consideration
// @Description Update the notes or ordering of a consideration
// @Tags considerations
// @Accept json
// @Produce json
// @Param id path string true "Calling change ID (UUID)"
// @Param cid path string true "Consideration ID (UUID)"
// @Param consideration body service.UpdateConsiderationRequest true "Fields to update"
// @Success 200 {object} service.ConsiderationResponse "Successfully updated consideration"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Consideration not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes/{id}/considerations/{cid} [put]
func (h *CallingChangeHandler) UpdateConsideration(c *gin.Context) {
	changeID, ok := parseUUIDParam(c, "id", "calling change ID")
	if !ok {
		return
	}
	considerationID, ok := parseUUIDParam(c, "cid", "consideration ID")
	if !ok {
		return
	}

	var req service.UpdateConsiderationRequest
	if !bindJSON(c, &req) {
		return
	}

	consideration, err := h.service.UpdateConsideration(c.Request.Context(), changeID, considerationID, &req)
	if err != nil {
		handleError(c, err, "update consideration")
		return
	}

	c.JSON(http.StatusOK, consideration)
}

// RemoveConsideration handles DELETE /api/v1/calling-changes/:id/considerations/:cid
// @Summary Remove a consideration
// @Description Remove a candidate from the calling change, even when selected for prayer
// @Tags considerations
// @Param id path string true "Calling change ID (UUID)"
// @Param cid path string true "Consideration ID (UUID)"
// @Success 204 "Consideration removed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Consideration not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes/{id}/considerations/{cid} [delete]
func (h *CallingChangeHandler) RemoveConsideration(c *gin.Context) {
	changeID, ok := parseUUIDParam(c, "id", "calling change ID")
	if !ok {
		return
	}
	considerationID, ok := parseUUIDParam(c, "cid", "consideration ID")
	if !ok {
		return
	}

	if err := h.service.RemoveConsideration(c.Request.Context(), changeID, considerationID); err != nil {
		handleError(c, err, "remove consideration")
		return
	}

	c.Status(http.StatusNoContent)
}

// SelectForPrayer handles PUT /api/v1/calling-changes/:id/considerations/:cid/select
// @Summary Select a consideration for prayer
// @Description Mark the consideration as selected for prayer, clearing any other selection on the change
// @Tags considerations
// @Produce json
// @Param id path string true "Calling change ID (UUID)"
// @Param cid path string true "Consideration ID (UUID)"
// @Success 200 {object} service.ConsiderationResponse "Consideration selected"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Consideration not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes/{id}/considerations/{cid}/select [put]
func (h *CallingChangeHandler) SelectForPrayer(c *gin.Context) {
	changeID, ok := parseUUIDParam(c, "id", "calling change ID")
	if !ok {
		return
	}
	considerationID, ok := parseUUIDParam(c, "cid", "consideration ID")
	if !ok {
		return
	}

	consideration, err := h.service.SelectForPrayer(c.Request.Context(), changeID, considerationID)
	if err != nil {
		handleError(c, err, "select consideration for prayer")
		return
	}

	c.JSON(http.StatusOK, consideration)
}

// ApproveSelection handles POST /api/v1/calling-changes/:id/approve
// @Summary Approve the selected consideration
// @Description Approve the member selected for prayer and generate the task checklist
// @Tags calling-changes
// @Produce json
// @Param id path string true "Calling change ID (UUID)"
// @Success 200 {object} service.CallingChangeResponse "Selection approved, tasks generated"
// @Failure 400 {object} ErrorResponse "No person selected or change not approvable"
// @Failure 404 {object} ErrorResponse "Calling change not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes/{id}/approve [post]
func (h *CallingChangeHandler) ApproveSelection(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "calling change ID")
	if !ok {
		return
	}

	change, err := h.service.ApproveSelection(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "approve selection")
		return
	}

	c.JSON(http.StatusOK, change)
}

// Finalize handles POST /api/v1/calling-changes/:id/finalize
// @Summary Finalize a calling change
// @Description Swap the active calling assignment to the new member and complete the change.
// @Description All tasks must be completed first.
// @Tags calling-changes
// @Produce json
// @Param id path string true "Calling change ID (UUID)"
// @Success 200 {object} service.CallingChangeResponse "Calling change completed"
// @Failure 400 {object} ErrorResponse "Change cannot be finalized"
// @Failure 404 {object} ErrorResponse "Calling change not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes/{id}/finalize [post]
func (h *CallingChangeHandler) Finalize(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "calling change ID")
	if !ok {
		return
	}

	change, err := h.service.Finalize(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "finalize calling change")
		return
	}

	c.JSON(http.StatusOK, change)
}

// UpdateTask handles PUT /api/v1/calling-changes/:id/tasks/:tid
// @Summary Update a task
// @Description Update status, assignee, due date (YYYY-MM-DD, empty clears) or notes of a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Calling change ID (UUID)"
// @Param tid path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} service.TaskResponse "Successfully updated task"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes/{id}/tasks/{tid} [put]
func (h *CallingChangeHandler) UpdateTask(c *gin.Context) {
	changeID, ok := parseUUIDParam(c, "id", "calling change ID")
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "tid", "task ID")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), changeID, taskID, &req)
	if err != nil {
		handleError(c, err, "update task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// ToggleTask handles POST /api/v1/calling-changes/:id/tasks/:tid/toggle
// @Summary Toggle a task
// @Description Flip a task between pending and completed
// @Tags tasks
// @Produce json
// @Param id path string true "Calling change ID (UUID)"
// @Param tid path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse "Task toggled"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionAuth
// @Router /calling-changes/{id}/tasks/{tid}/toggle [post]
func (h *CallingChangeHandler) ToggleTask(c *gin.Context) {
	changeID, ok := parseUUIDParam(c, "id", "calling change ID")
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "tid", "task ID")
	if !ok {
		return
	}

	task, err := h.service.ToggleTask(c.Request.Context(), changeID, taskID)
	if err != nil {
		handleError(c, err, "toggle task")
		return
	}

	c.JSON(http.StatusOK, task)
}
