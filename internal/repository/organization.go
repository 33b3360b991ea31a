package repository

import (
	"errors"

	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Omit("Parent", "Callings").Create(org).Error
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByName retrieves an organization by name
func (r *OrganizationRepository) GetByName(name string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetChildren retrieves the direct sub-organizations of an organization
func (r *OrganizationRepository) GetChildren(parentID uuid.UUID) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.Where("parent_org_id = ?", parentID).Order("name ASC").Find(&orgs).Error
	return orgs, err
}

// FirstOrCreate returns the organization with the given name, creating it when missing
func (r *OrganizationRepository) FirstOrCreate(name string, parentID *uuid.UUID) (*models.Organization, bool, error) {
	existing, err := r.GetByName(name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	org := &models.Organization{Name: name, ParentOrgID: parentID}
	if err := r.Create(org); err != nil {
		return nil, false, err
	}
	return org, true, nil
}
