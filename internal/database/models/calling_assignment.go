package models

import (
	"time"

	"github.com/google/uuid"
)

// CallingAssignment binds a member to a calling for a period of time. Only one
// assignment per calling is expected to be active.
type CallingAssignment struct {
	BaseModel
	CallingID     uuid.UUID  `json:"calling_id" gorm:"type:uuid;not null;index" validate:"required"`
	MemberID      uuid.UUID  `json:"member_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsActive      bool       `json:"is_active" gorm:"not null;index"`
	AssignedDate  time.Time  `json:"assigned_date" gorm:"type:date;not null"`
	SustainedDate *time.Time `json:"sustained_date,omitempty" gorm:"type:date"`
	SetApartDate  *time.Time `json:"set_apart_date,omitempty" gorm:"type:date"`
	ReleasedDate  *time.Time `json:"released_date,omitempty" gorm:"type:date"`

	// Relationships
	Calling Calling `json:"calling,omitempty" gorm:"foreignKey:CallingID;constraint:OnDelete:CASCADE"`
	Member  Member  `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CallingAssignment
func (CallingAssignment) TableName() string {
	return "calling_assignments"
}
