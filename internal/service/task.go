package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calling-tracker-backend/internal/database/models"
	apperrors "calling-tracker-backend/internal/errors"
	"calling-tracker-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateTask patches the status, assignee, due date or notes of a task.
// Completing a task stamps today's date; reopening it clears the stamp.
func (s *CallingChangeService) UpdateTask(ctx context.Context, changeID, taskID uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var due *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationError("due_date", "must be formatted as YYYY-MM-DD")
		}
		due = &parsed
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := repository.NewTaskRepository(tx)
		task, err := loadTask(tx, changeID, taskID)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Status != nil && *req.Status != task.Status {
			s.statusUpdates(updates, *req.Status)
		}
		if req.AssignedTo != nil {
			updates["assigned_to"] = *req.AssignedTo
		}
		if req.DueDate != nil {
			if due == nil {
				updates["due_date"] = nil
			} else {
				updates["due_date"] = *due
			}
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tasks.UpdateFields(taskID, updates); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.loadTask(ctx, changeID, taskID)
}

// ToggleTask flips a task between pending and completed
func (s *CallingChangeService) ToggleTask(ctx context.Context, changeID, taskID uuid.UUID) (*TaskResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := loadTask(tx, changeID, taskID)
		if err != nil {
			return err
		}

		next := models.TaskStatusCompleted
		if task.Status == models.TaskStatusCompleted {
			next = models.TaskStatusPending
		}

		updates := map[string]interface{}{}
		s.statusUpdates(updates, next)
		if err := repository.NewTaskRepository(tx).UpdateFields(taskID, updates); err != nil {
			return fmt.Errorf("failed to toggle task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.loadTask(ctx, changeID, taskID)
}

func (s *CallingChangeService) statusUpdates(updates map[string]interface{}, status models.TaskStatus) {
	updates["status"] = status
	if status == models.TaskStatusCompleted {
		updates["completed_date"] = dateOnly(s.now())
	} else {
		updates["completed_date"] = nil
	}
}

func (s *CallingChangeService) loadTask(ctx context.Context, changeID, taskID uuid.UUID) (*TaskResponse, error) {
	task, err := loadTask(s.db.WithContext(ctx), changeID, taskID)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

func loadTask(db *gorm.DB, changeID, taskID uuid.UUID) (*models.CallingChangeTask, error) {
	if _, err := loadChange(repository.NewCallingChangeRepository(db), changeID); err != nil {
		return nil, err
	}
	task, err := repository.NewTaskRepository(db).GetByIDForChange(changeID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}
