package models

import (
	"time"

	"github.com/google/uuid"
)

// CallingChange tracks one reassignment of a calling from selection through
// finalization. Rows are never deleted.
type CallingChange struct {
	BaseModel
	CallingID                 uuid.UUID           `json:"calling_id" gorm:"type:uuid;not null;index" validate:"required"`
	CurrentMemberID           *uuid.UUID          `json:"current_member_id,omitempty" gorm:"type:uuid;index"`
	NewMemberID               *uuid.UUID          `json:"new_member_id,omitempty" gorm:"type:uuid;index"`
	Status                    CallingChangeStatus `json:"status" gorm:"type:varchar(20);not null;default:'in_progress';index"`
	Priority                  int                 `json:"priority" gorm:"not null;default:0"`
	AssignedToBishopricMember string              `json:"assigned_to_bishopric_member" gorm:"size:200"`
	CompletedDate             *time.Time          `json:"completed_date,omitempty" gorm:"type:date"`

	// Relationships
	Calling        Calling                `json:"calling,omitempty" gorm:"foreignKey:CallingID;constraint:OnDelete:CASCADE"`
	CurrentMember  *Member                `json:"current_member,omitempty" gorm:"foreignKey:CurrentMemberID;constraint:OnDelete:SET NULL"`
	NewMember      *Member                `json:"new_member,omitempty" gorm:"foreignKey:NewMemberID;constraint:OnDelete:SET NULL"`
	Considerations []CallingConsideration `json:"considerations,omitempty" gorm:"foreignKey:CallingChangeID;constraint:OnDelete:CASCADE"`
	Tasks          []CallingChangeTask    `json:"tasks,omitempty" gorm:"foreignKey:CallingChangeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CallingChange
func (CallingChange) TableName() string {
	return "calling_changes"
}

// IsVacant reports whether the calling had no holder when the change was opened
func (c *CallingChange) IsVacant() bool {
	return c.CurrentMemberID == nil
}
