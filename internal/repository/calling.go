package repository

import (
	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallingRepository handles database operations for callings
type CallingRepository struct {
	db *gorm.DB
}

// NewCallingRepository creates a new calling repository
func NewCallingRepository(db *gorm.DB) *CallingRepository {
	return &CallingRepository{db: db}
}

// Create creates a new calling
func (r *CallingRepository) Create(calling *models.Calling) error {
	return r.db.Omit("Organization").Create(calling).Error
}

// GetByID retrieves a calling by ID
func (r *CallingRepository) GetByID(id uuid.UUID) (*models.Calling, error) {
	var calling models.Calling
	err := r.db.First(&calling, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &calling, nil
}

// GetWithOrganization retrieves a calling with its organization
func (r *CallingRepository) GetWithOrganization(id uuid.UUID) (*models.Calling, error) {
	var calling models.Calling
	err := r.db.Preload("Organization").First(&calling, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &calling, nil
}

// GetByTitle retrieves a calling by title within an organization
func (r *CallingRepository) GetByTitle(orgID uuid.UUID, title string) (*models.Calling, error) {
	var calling models.Calling
	err := r.db.First(&calling, "organization_id = ? AND title = ?", orgID, title).Error
	if err != nil {
		return nil, err
	}
	return &calling, nil
}

// ListByOrganization retrieves the callings of an organization in display order
func (r *CallingRepository) ListByOrganization(orgID uuid.UUID) ([]models.Calling, error) {
	var callings []models.Calling
	err := r.db.Where("organization_id = ?", orgID).
		Order("display_order ASC").Order("title ASC").
		Find(&callings).Error
	return callings, err
}
