package models

import (
	"github.com/google/uuid"
)

// CallingConsideration is a candidate being weighed for a calling change
type CallingConsideration struct {
	BaseModel
	CallingChangeID     uuid.UUID `json:"calling_change_id" gorm:"type:uuid;not null;index" validate:"required"`
	MemberID            uuid.UUID `json:"member_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsSelectedForPrayer bool      `json:"is_selected_for_prayer" gorm:"not null;default:false"`
	Notes               string    `json:"notes" gorm:"type:text"`
	ConsiderationOrder  int       `json:"consideration_order" gorm:"not null;default:0"`

	// Relationships
	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CallingConsideration
func (CallingConsideration) TableName() string {
	return "calling_considerations"
}
