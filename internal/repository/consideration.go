package repository

import (
	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsiderationRepository handles database operations for calling considerations
type ConsiderationRepository struct {
	db *gorm.DB
}

// NewConsiderationRepository creates a new consideration repository
func NewConsiderationRepository(db *gorm.DB) *ConsiderationRepository {
	return &ConsiderationRepository{db: db}
}

// Create creates a new consideration
func (r *ConsiderationRepository) Create(consideration *models.CallingConsideration) error {
	return r.db.Omit("Member").Create(consideration).Error
}

// GetByIDForChange retrieves a consideration that belongs to the given calling change
func (r *ConsiderationRepository) GetByIDForChange(changeID, id uuid.UUID) (*models.CallingConsideration, error) {
	var consideration models.CallingConsideration
	err := r.db.Preload("Member").
		First(&consideration, "id = ? AND calling_change_id = ?", id, changeID).Error
	if err != nil {
		return nil, err
	}
	return &consideration, nil
}

// ListByChange retrieves all considerations of a calling change in display order
func (r *ConsiderationRepository) ListByChange(changeID uuid.UUID) ([]models.CallingConsideration, error) {
	var considerations []models.CallingConsideration
	err := r.db.Where("calling_change_id = ?", changeID).
		Order("consideration_order ASC").Order("created_at ASC").
		Find(&considerations).Error
	return considerations, err
}

// ListSelected retrieves the considerations of a change marked for prayer
func (r *ConsiderationRepository) ListSelected(changeID uuid.UUID) ([]models.CallingConsideration, error) {
	var considerations []models.CallingConsideration
	err := r.db.Where("calling_change_id = ? AND is_selected_for_prayer = ?", changeID, true).
		Find(&considerations).Error
	return considerations, err
}

// ClearSelection unmarks every consideration of a calling change
func (r *ConsiderationRepository) ClearSelection(changeID uuid.UUID) error {
	return r.db.Model(&models.CallingConsideration{}).
		Where("calling_change_id = ?", changeID).
		Update("is_selected_for_prayer", false).Error
}

// SetSelected marks a single consideration for prayer
func (r *ConsiderationRepository) SetSelected(id uuid.UUID) error {
	return r.db.Model(&models.CallingConsideration{}).
		Where("id = ?", id).
		Update("is_selected_for_prayer", true).Error
}

// UpdateFields updates the given columns of a consideration
func (r *ConsiderationRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.CallingConsideration{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a consideration of a calling change and returns the number of removed rows
func (r *ConsiderationRepository) Delete(changeID, id uuid.UUID) (int64, error) {
	result := r.db.Where("id = ? AND calling_change_id = ?", id, changeID).
		Delete(&models.CallingConsideration{})
	return result.RowsAffected, result.Error
}
