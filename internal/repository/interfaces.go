package repository

import (
	"time"

	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetChildren(parentID uuid.UUID) ([]models.Organization, error)
	FirstOrCreate(name string, parentID *uuid.UUID) (*models.Organization, bool, error)
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByEmail(email string) (*models.Member, error)
	GetByFullName(fullName string) (*models.Member, error)
	ListActive() ([]models.Member, error)
}

// CallingRepositoryInterface defines the interface for calling repository operations
type CallingRepositoryInterface interface {
	Create(calling *models.Calling) error
	GetByID(id uuid.UUID) (*models.Calling, error)
	GetWithOrganization(id uuid.UUID) (*models.Calling, error)
	GetByTitle(orgID uuid.UUID, title string) (*models.Calling, error)
	ListByOrganization(orgID uuid.UUID) ([]models.Calling, error)
}

// AssignmentRepositoryInterface defines the interface for calling assignment operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.CallingAssignment) error
	GetActiveByCalling(callingID uuid.UUID) (*models.CallingAssignment, error)
	ListByCalling(callingID uuid.UUID) ([]models.CallingAssignment, error)
	FindByCallingAndMember(callingID, memberID uuid.UUID) (*models.CallingAssignment, error)
	Release(callingID, memberID uuid.UUID, releasedDate time.Time) (int64, error)
}

// CallingChangeRepositoryInterface defines the interface for calling change operations
type CallingChangeRepositoryInterface interface {
	Create(change *models.CallingChange) error
	GetByID(id uuid.UUID) (*models.CallingChange, error)
	GetWithDetails(id uuid.UUID) (*models.CallingChange, error)
	List(status *models.CallingChangeStatus) ([]models.CallingChange, error)
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	CountOpenForCalling(callingID uuid.UUID) (int64, error)
}

// ConsiderationRepositoryInterface defines the interface for consideration operations
type ConsiderationRepositoryInterface interface {
	Create(consideration *models.CallingConsideration) error
	GetByIDForChange(changeID, id uuid.UUID) (*models.CallingConsideration, error)
	ListByChange(changeID uuid.UUID) ([]models.CallingConsideration, error)
	ListSelected(changeID uuid.UUID) ([]models.CallingConsideration, error)
	ClearSelection(changeID uuid.UUID) error
	SetSelected(id uuid.UUID) error
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Delete(changeID, id uuid.UUID) (int64, error)
}

// TaskRepositoryInterface defines the interface for calling change task operations
type TaskRepositoryInterface interface {
	CreateBatch(tasks []models.CallingChangeTask) error
	ListByChange(changeID uuid.UUID) ([]models.CallingChangeTask, error)
	CountByChange(changeID uuid.UUID) (int64, error)
	CountIncomplete(changeID uuid.UUID) (int64, error)
	GetByIDForChange(changeID, id uuid.UUID) (*models.CallingChangeTask, error)
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
}

var (
	_ OrganizationRepositoryInterface  = (*OrganizationRepository)(nil)
	_ MemberRepositoryInterface        = (*MemberRepository)(nil)
	_ CallingRepositoryInterface       = (*CallingRepository)(nil)
	_ AssignmentRepositoryInterface    = (*AssignmentRepository)(nil)
	_ CallingChangeRepositoryInterface = (*CallingChangeRepository)(nil)
	_ ConsiderationRepositoryInterface = (*ConsiderationRepository)(nil)
	_ TaskRepositoryInterface          = (*TaskRepository)(nil)
)
