package repository

import (
	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail retrieves a member by email
func (r *MemberRepository) GetByEmail(email string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByFullName retrieves a member by full name
func (r *MemberRepository) GetByFullName(fullName string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "full_name = ?", fullName).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListActive retrieves active members ordered by name
func (r *MemberRepository) ListActive() ([]models.Member, error) {
	var members []models.Member
	err := r.db.Where("is_active = ?", true).Order("last_name ASC").Order("first_name ASC").Find(&members).Error
	return members, err
}
