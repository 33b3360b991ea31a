package service

import (
	"context"
	"fmt"

	"calling-tracker-backend/internal/database/models"
	apperrors "calling-tracker-backend/internal/errors"
	"calling-tracker-backend/internal/logger"
	"calling-tracker-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Finalize completes an approved calling change once every task is done: the
// current member's active assignment is released, the new member receives an
// active assignment and the change is marked completed, all dated today.
func (s *CallingChangeService) Finalize(ctx context.Context, id uuid.UUID) (*CallingChangeResponse, error) {
	today := dateOnly(s.now())
	var released int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changes := repository.NewCallingChangeRepository(tx)
		change, err := loadChange(changes, id)
		if err != nil {
			return err
		}
		if change.Status == models.CallingChangeStatusCompleted {
			return apperrors.ErrCallingChangeCompleted
		}
		if change.NewMemberID == nil {
			return apperrors.ErrNoNewMemberSelected
		}

		incomplete, err := repository.NewTaskRepository(tx).CountIncomplete(id)
		if err != nil {
			return fmt.Errorf("failed to count incomplete tasks: %w", err)
		}
		if incomplete > 0 {
			return apperrors.ErrIncompleteTasks
		}

		assignments := repository.NewAssignmentRepository(tx)
		if change.CurrentMemberID != nil {
			released, err = assignments.Release(change.CallingID, *change.CurrentMemberID, today)
			if err != nil {
				return fmt.Errorf("failed to release current assignment: %w", err)
			}
		}

		if err := assignments.Create(&models.CallingAssignment{
			CallingID:    change.CallingID,
			MemberID:     *change.NewMemberID,
			IsActive:     true,
			AssignedDate: today,
		}); err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		if err := changes.UpdateFields(id, map[string]interface{}{
			"status":         models.CallingChangeStatusCompleted,
			"completed_date": today,
		}); err != nil {
			return fmt.Errorf("failed to complete calling change: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"calling_change_id":    id,
		"released_assignments": released,
	}).Info("calling change finalized")
	s.recorder.ObserveTransition(models.CallingChangeStatusCompleted)

	return s.loadDetails(ctx, id)
}
