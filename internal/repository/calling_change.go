package repository

import (
	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallingChangeRepository handles database operations for calling changes
type CallingChangeRepository struct {
	db *gorm.DB
}

// NewCallingChangeRepository creates a new calling change repository
func NewCallingChangeRepository(db *gorm.DB) *CallingChangeRepository {
	return &CallingChangeRepository{db: db}
}

// Create creates a new calling change
func (r *CallingChangeRepository) Create(change *models.CallingChange) error {
	return r.db.Omit("Calling", "CurrentMember", "NewMember", "Considerations", "Tasks").Create(change).Error
}

// GetByID retrieves a calling change by ID without relations
func (r *CallingChangeRepository) GetByID(id uuid.UUID) (*models.CallingChange, error) {
	var change models.CallingChange
	err := r.db.First(&change, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &change, nil
}

// GetWithDetails retrieves a calling change with its calling, members,
// considerations and tasks
func (r *CallingChangeRepository) GetWithDetails(id uuid.UUID) (*models.CallingChange, error) {
	var change models.CallingChange
	err := withDetails(r.db).First(&change, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &change, nil
}

// List retrieves calling changes, optionally filtered by status, highest priority first
func (r *CallingChangeRepository) List(status *models.CallingChangeStatus) ([]models.CallingChange, error) {
	var changes []models.CallingChange

	query := withDetails(r.db)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	err := query.Order("priority DESC").Order("created_at DESC").Find(&changes).Error
	if err != nil {
		return nil, err
	}
	return changes, nil
}

// UpdateFields updates the given columns of a calling change
func (r *CallingChangeRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.CallingChange{}).Where("id = ?", id).Updates(updates).Error
}

// CountOpenForCalling counts calling changes for a calling that are not completed
func (r *CallingChangeRepository) CountOpenForCalling(callingID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.CallingChange{}).
		Where("calling_id = ? AND status <> ?", callingID, models.CallingChangeStatusCompleted).
		Count(&count).Error
	return count, err
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Calling").
		Preload("Calling.Organization").
		Preload("CurrentMember").
		Preload("NewMember").
		Preload("Considerations", func(db *gorm.DB) *gorm.DB {
			return db.Order("consideration_order ASC").Order("created_at ASC")
		}).
		Preload("Considerations.Member").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Tasks.Member")
}
