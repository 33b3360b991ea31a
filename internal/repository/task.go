package repository

import (
	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for calling change tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateBatch inserts tasks in one statement
func (r *TaskRepository) CreateBatch(tasks []models.CallingChangeTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.Omit("Member").Create(&tasks).Error
}

// ListByChange retrieves the tasks of a calling change in checklist order
func (r *TaskRepository) ListByChange(changeID uuid.UUID) ([]models.CallingChangeTask, error) {
	var tasks []models.CallingChangeTask
	err := r.db.Where("calling_change_id = ?", changeID).Order("sort_order ASC").Find(&tasks).Error
	return tasks, err
}

// CountByChange counts the tasks of a calling change
func (r *TaskRepository) CountByChange(changeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.CallingChangeTask{}).
		Where("calling_change_id = ?", changeID).
		Count(&count).Error
	return count, err
}

// CountIncomplete counts tasks of a calling change that are not completed
func (r *TaskRepository) CountIncomplete(changeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.CallingChangeTask{}).
		Where("calling_change_id = ? AND status <> ?", changeID, models.TaskStatusCompleted).
		Count(&count).Error
	return count, err
}

// GetByIDForChange retrieves a task that belongs to the given calling change
func (r *TaskRepository) GetByIDForChange(changeID, id uuid.UUID) (*models.CallingChangeTask, error) {
	var task models.CallingChangeTask
	err := r.db.Preload("Member").
		First(&task, "id = ? AND calling_change_id = ?", id, changeID).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateFields updates the given columns of a task
func (r *TaskRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.CallingChangeTask{}).Where("id = ?", id).Updates(updates).Error
}
