package models

import (
	"github.com/google/uuid"
)

// Calling is a role within an organization that a member can be assigned to
type Calling struct {
	BaseModel
	OrganizationID       uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title                string    `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	RequiresSettingApart bool      `json:"requires_setting_apart" gorm:"not null"`
	DisplayOrder         int       `json:"display_order" gorm:"default:0"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Calling
func (Calling) TableName() string {
	return "callings"
}
