package testutils

import (
	"fmt"
	"time"

	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Elders Quorum " + uuid.NewString()[:8],
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithParent creates a sub-organization of parentID
func (f *OrganizationFactory) WithParent(parentID uuid.UUID) *models.Organization {
	org := f.Create()
	org.ParentOrgID = &parentID
	return org
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create() *models.Member {
	id := uuid.New()
	short := id.String()[:8]
	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:  "Member " + short,
		FirstName: "Member",
		LastName:  short,
		Email:     fmt.Sprintf("member.%s@example.org", short),
		Phone:     "+1-555-0100",
		IsActive:  true,
	}
}

// WithName creates a member with the given first and last name
func (f *MemberFactory) WithName(first, last string) *models.Member {
	member := f.Create()
	member.FirstName = first
	member.LastName = last
	member.FullName = first + " " + last
	return member
}

// CallingFactory provides methods to create test Calling data
type CallingFactory struct{}

// NewCallingFactory creates a new CallingFactory
func NewCallingFactory() *CallingFactory {
	return &CallingFactory{}
}

// WithOrganization creates a test Calling in the given organization
func (f *CallingFactory) WithOrganization(orgID uuid.UUID) *models.Calling {
	return &models.Calling{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:       orgID,
		Title:                "Ward Clerk",
		RequiresSettingApart: true,
		DisplayOrder:         1,
	}
}

// AssignmentFactory provides methods to create test CallingAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Active creates an active assignment of memberID to callingID
func (f *AssignmentFactory) Active(callingID, memberID uuid.UUID) *models.CallingAssignment {
	return &models.CallingAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CallingID:    callingID,
		MemberID:     memberID,
		IsActive:     true,
		AssignedDate: time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC),
	}
}

// CallingChangeFactory provides methods to create test CallingChange data
type CallingChangeFactory struct{}

// NewCallingChangeFactory creates a new CallingChangeFactory
func NewCallingChangeFactory() *CallingChangeFactory {
	return &CallingChangeFactory{}
}

// ForCalling creates an in-progress change; currentMemberID nil means the calling is vacant
func (f *CallingChangeFactory) ForCalling(callingID uuid.UUID, currentMemberID *uuid.UUID) *models.CallingChange {
	return &models.CallingChange{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CallingID:                 callingID,
		CurrentMemberID:           currentMemberID,
		Status:                    models.CallingChangeStatusInProgress,
		AssignedToBishopricMember: "Bishop Example",
	}
}

// ConsiderationFactory provides methods to create test CallingConsideration data
type ConsiderationFactory struct{}

// NewConsiderationFactory creates a new ConsiderationFactory
func NewConsiderationFactory() *ConsiderationFactory {
	return &ConsiderationFactory{}
}

// For creates an unselected consideration of memberID for changeID
func (f *ConsiderationFactory) For(changeID, memberID uuid.UUID) *models.CallingConsideration {
	return &models.CallingConsideration{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CallingChangeID: changeID,
		MemberID:        memberID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization  *OrganizationFactory
	Member        *MemberFactory
	Calling       *CallingFactory
	Assignment    *AssignmentFactory
	CallingChange *CallingChangeFactory
	Consideration *ConsiderationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:  NewOrganizationFactory(),
		Member:        NewMemberFactory(),
		Calling:       NewCallingFactory(),
		Assignment:    NewAssignmentFactory(),
		CallingChange: NewCallingChangeFactory(),
		Consideration: NewConsiderationFactory(),
	}
}

// CreateOccupiedCalling creates an organization with one calling held by a member
func (fs *FactorySet) CreateOccupiedCalling() (*models.Organization, *models.Calling, *models.Member, *models.CallingAssignment) {
	org := fs.Organization.Create()
	calling := fs.Calling.WithOrganization(org.ID)
	member := fs.Member.Create()
	assignment := fs.Assignment.Active(calling.ID, member.ID)
	return org, calling, member, assignment
}
