package service

import (
	"time"

	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CreateCallingChangeRequest represents the request to open a calling change
type CreateCallingChangeRequest struct {
	CallingID                 uuid.UUID                  `json:"calling_id" validate:"required"`
	CurrentMemberID           *uuid.UUID                 `json:"current_member_id,omitempty"`
	Status                    models.CallingChangeStatus `json:"status,omitempty" validate:"omitempty,oneof=hold in_progress"`
	Priority                  int                        `json:"priority"`
	AssignedToBishopricMember string                     `json:"assigned_to_bishopric_member,omitempty" validate:"max=200"`
}

// UpdateCallingChangeRequest is a partial field patch. Setting status to completed
// here marks the change done without running Finalize.
type UpdateCallingChangeRequest struct {
	Status                    *models.CallingChangeStatus `json:"status,omitempty" validate:"omitempty,oneof=hold in_progress approved completed"`
	Priority                  *int                        `json:"priority,omitempty"`
	AssignedToBishopricMember *string                     `json:"assigned_to_bishopric_member,omitempty" validate:"omitempty,max=200"`
}

// AddConsiderationRequest represents the request to add a candidate to a calling change
type AddConsiderationRequest struct {
	MemberID           uuid.UUID `json:"member_id" validate:"required"`
	Notes              string    `json:"notes,omitempty"`
	ConsiderationOrder int       `json:"consideration_order"`
}

// UpdateConsiderationRequest patches the notes and order of a consideration
type UpdateConsiderationRequest struct {
	Notes              *string `json:"notes,omitempty"`
	ConsiderationOrder *int    `json:"consideration_order,omitempty"`
}

// UpdateTaskRequest patches the mutable fields of a task. DueDate uses YYYY-MM-DD;
// an empty string clears it.
type UpdateTaskRequest struct {
	Status     *models.TaskStatus `json:"status,omitempty" validate:"omitempty,oneof=pending completed"`
	AssignedTo *string            `json:"assigned_to,omitempty" validate:"omitempty,max=200"`
	DueDate    *string            `json:"due_date,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
}

// MemberSummary is the member detail embedded in workflow responses
type MemberSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	PhotoURL string    `json:"photo_url,omitempty"`
}

// ConsiderationResponse represents a consideration in API responses
type ConsiderationResponse struct {
	ID                  uuid.UUID      `json:"id"`
	CallingChangeID     uuid.UUID      `json:"calling_change_id"`
	MemberID            uuid.UUID      `json:"member_id"`
	Member              *MemberSummary `json:"member,omitempty"`
	IsSelectedForPrayer bool           `json:"is_selected_for_prayer"`
	Notes               string         `json:"notes"`
	ConsiderationOrder  int            `json:"consideration_order"`
	CreatedAt           string         `json:"created_at"`
	UpdatedAt           string         `json:"updated_at"`
}

// TaskResponse represents a checklist task in API responses
type TaskResponse struct {
	ID              uuid.UUID         `json:"id"`
	CallingChangeID uuid.UUID         `json:"calling_change_id"`
	TaskType        models.TaskType   `json:"task_type"`
	MemberID        *uuid.UUID        `json:"member_id,omitempty"`
	Member          *MemberSummary    `json:"member,omitempty"`
	AssignedTo      string            `json:"assigned_to"`
	Status          models.TaskStatus `json:"status"`
	DueDate         *string           `json:"due_date,omitempty"`
	CompletedDate   *string           `json:"completed_date,omitempty"`
	Notes           string            `json:"notes"`
	SortOrder       int               `json:"sort_order"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

// CallingChangeResponse represents a calling change with its considerations and tasks
type CallingChangeResponse struct {
	ID                        uuid.UUID                  `json:"id"`
	CallingID                 uuid.UUID                  `json:"calling_id"`
	CallingTitle              string                     `json:"calling_title"`
	OrganizationID            uuid.UUID                  `json:"organization_id"`
	OrganizationName          string                     `json:"organization_name"`
	RequiresSettingApart      bool                       `json:"requires_setting_apart"`
	CurrentMemberID           *uuid.UUID                 `json:"current_member_id,omitempty"`
	CurrentMember             *MemberSummary             `json:"current_member,omitempty"`
	NewMemberID               *uuid.UUID                 `json:"new_member_id,omitempty"`
	NewMember                 *MemberSummary             `json:"new_member,omitempty"`
	Status                    models.CallingChangeStatus `json:"status"`
	Priority                  int                        `json:"priority"`
	AssignedToBishopricMember string                     `json:"assigned_to_bishopric_member"`
	CompletedDate             *string                    `json:"completed_date,omitempty"`
	CreatedAt                 string                     `json:"created_at"`
	UpdatedAt                 string                     `json:"updated_at"`
	Considerations            []ConsiderationResponse    `json:"considerations"`
	Tasks                     []TaskResponse             `json:"tasks"`
}

func toMemberSummary(member *models.Member) *MemberSummary {
	if member == nil || member.ID == uuid.Nil {
		return nil
	}
	return &MemberSummary{
		ID:       member.ID,
		FullName: member.FullName,
		PhotoURL: member.PhotoURL,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toConsiderationResponse(c *models.CallingConsideration) *ConsiderationResponse {
	return &ConsiderationResponse{
		ID:                  c.ID,
		CallingChangeID:     c.CallingChangeID,
		MemberID:            c.MemberID,
		Member:              toMemberSummary(&c.Member),
		IsSelectedForPrayer: c.IsSelectedForPrayer,
		Notes:               c.Notes,
		ConsiderationOrder:  c.ConsiderationOrder,
		CreatedAt:           c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           c.UpdatedAt.Format(time.RFC3339),
	}
}

func toTaskResponse(t *models.CallingChangeTask) *TaskResponse {
	return &TaskResponse{
		ID:              t.ID,
		CallingChangeID: t.CallingChangeID,
		TaskType:        t.TaskType,
		MemberID:        t.MemberID,
		Member:          toMemberSummary(t.Member),
		AssignedTo:      t.AssignedTo,
		Status:          t.Status,
		DueDate:         formatDate(t.DueDate),
		CompletedDate:   formatDate(t.CompletedDate),
		Notes:           t.Notes,
		SortOrder:       t.SortOrder,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       t.UpdatedAt.Format(time.RFC3339),
	}
}

func toCallingChangeResponse(c *models.CallingChange) *CallingChangeResponse {
	resp := &CallingChangeResponse{
		ID:                        c.ID,
		CallingID:                 c.CallingID,
		CallingTitle:              c.Calling.Title,
		OrganizationID:            c.Calling.OrganizationID,
		OrganizationName:          c.Calling.Organization.Name,
		RequiresSettingApart:      c.Calling.RequiresSettingApart,
		CurrentMemberID:           c.CurrentMemberID,
		CurrentMember:             toMemberSummary(c.CurrentMember),
		NewMemberID:               c.NewMemberID,
		NewMember:                 toMemberSummary(c.NewMember),
		Status:                    c.Status,
		Priority:                  c.Priority,
		AssignedToBishopricMember: c.AssignedToBishopricMember,
		CompletedDate:             formatDate(c.CompletedDate),
		CreatedAt:                 c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                 c.UpdatedAt.Format(time.RFC3339),
		Considerations:            make([]ConsiderationResponse, 0, len(c.Considerations)),
		Tasks:                     make([]TaskResponse, 0, len(c.Tasks)),
	}
	for i := range c.Considerations {
		resp.Considerations = append(resp.Considerations, *toConsiderationResponse(&c.Considerations[i]))
	}
	for i := range c.Tasks {
		resp.Tasks = append(resp.Tasks, *toTaskResponse(&c.Tasks[i]))
	}
	return resp
}
