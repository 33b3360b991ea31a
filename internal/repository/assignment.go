package repository

import (
	"time"

	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for calling assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.CallingAssignment) error {
	return r.db.Omit("Calling", "Member").Create(assignment).Error
}

// GetActiveByCalling retrieves the active assignment of a calling
func (r *AssignmentRepository) GetActiveByCalling(callingID uuid.UUID) (*models.CallingAssignment, error) {
	var assignment models.CallingAssignment
	err := r.db.Preload("Member").
		Where("calling_id = ? AND is_active = ?", callingID, true).
		Order("assigned_date DESC").
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListByCalling retrieves the assignment history of a calling, newest first
func (r *AssignmentRepository) ListByCalling(callingID uuid.UUID) ([]models.CallingAssignment, error) {
	var assignments []models.CallingAssignment
	err := r.db.Where("calling_id = ?", callingID).
		Order("assigned_date DESC").Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

// FindByCallingAndMember retrieves the latest assignment of a member to a calling
func (r *AssignmentRepository) FindByCallingAndMember(callingID, memberID uuid.UUID) (*models.CallingAssignment, error) {
	var assignment models.CallingAssignment
	err := r.db.Where("calling_id = ? AND member_id = ?", callingID, memberID).
		Order("assigned_date DESC").
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Release deactivates the active assignments of a member in a calling and stamps
// the release date. It returns the number of released rows.
func (r *AssignmentRepository) Release(callingID, memberID uuid.UUID, releasedDate time.Time) (int64, error) {
	result := r.db.Model(&models.CallingAssignment{}).
		Where("calling_id = ? AND member_id = ? AND is_active = ?", callingID, memberID, true).
		Updates(map[string]interface{}{
			"is_active":     false,
			"released_date": releasedDate,
		})
	return result.RowsAffected, result.Error
}
