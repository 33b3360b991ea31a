package models

import (
	"github.com/google/uuid"
)

// Organization is a unit of the ward (e.g. Relief Society, Primary). Organizations
// form a tree through ParentOrgID.
type Organization struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	ParentOrgID *uuid.UUID `json:"parent_org_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Parent   *Organization `json:"parent,omitempty" gorm:"foreignKey:ParentOrgID;constraint:OnDelete:SET NULL"`
	Callings []Calling     `json:"callings,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
