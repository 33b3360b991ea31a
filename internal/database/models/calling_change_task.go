package models

import (
	"time"

	"github.com/google/uuid"
)

// CallingChangeTask is one checklist item generated when a calling change is approved
type CallingChangeTask struct {
	BaseModel
	CallingChangeID uuid.UUID  `json:"calling_change_id" gorm:"type:uuid;not null;index" validate:"required"`
	TaskType        TaskType   `json:"task_type" gorm:"type:varchar(50);not null"`
	MemberID        *uuid.UUID `json:"member_id,omitempty" gorm:"type:uuid;index"`
	AssignedTo      string     `json:"assigned_to" gorm:"size:200"`
	Status          TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	DueDate         *time.Time `json:"due_date,omitempty" gorm:"type:date"`
	CompletedDate   *time.Time `json:"completed_date,omitempty" gorm:"type:date"`
	Notes           string     `json:"notes" gorm:"type:text"`
	SortOrder       int        `json:"sort_order" gorm:"not null;default:0"`

	// Relationships
	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for CallingChangeTask
func (CallingChangeTask) TableName() string {
	return "calling_change_tasks"
}
