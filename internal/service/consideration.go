package service

import (
	"context"
	"errors"
	"fmt"

	"calling-tracker-backend/internal/database/models"
	apperrors "calling-tracker-backend/internal/errors"
	"calling-tracker-backend/internal/logger"
	"calling-tracker-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddConsideration adds a candidate to a calling change. New considerations are
// never selected; the same member may be considered more than once.
func (s *CallingChangeService) AddConsideration(ctx context.Context, changeID uuid.UUID, req *AddConsiderationRequest) (*ConsiderationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	consideration := &models.CallingConsideration{
		CallingChangeID:    changeID,
		MemberID:           req.MemberID,
		Notes:              req.Notes,
		ConsiderationOrder: req.ConsiderationOrder,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadChange(repository.NewCallingChangeRepository(tx), changeID); err != nil {
			return err
		}
		if err := memberExists(tx, req.MemberID); err != nil {
			return err
		}
		if err := repository.NewConsiderationRepository(tx).Create(consideration); err != nil {
			return fmt.Errorf("failed to create consideration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"calling_change_id": changeID,
		"consideration_id":  consideration.ID,
	}).Debug("consideration added")

	return s.loadConsideration(ctx, changeID, consideration.ID)
}

// UpdateConsideration patches the notes and order of a consideration. The prayer
// selection only changes through SelectForPrayer.
func (s *CallingChangeService) UpdateConsideration(ctx context.Context, changeID, considerationID uuid.UUID, req *UpdateConsiderationRequest) (*ConsiderationResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadChange(repository.NewCallingChangeRepository(tx), changeID); err != nil {
			return err
		}
		considerations := repository.NewConsiderationRepository(tx)
		if _, err := loadConsideration(considerations, changeID, considerationID); err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}
		if req.ConsiderationOrder != nil {
			updates["consideration_order"] = *req.ConsiderationOrder
		}
		if len(updates) == 0 {
			return nil
		}
		if err := considerations.UpdateFields(considerationID, updates); err != nil {
			return fmt.Errorf("failed to update consideration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.loadConsideration(ctx, changeID, considerationID)
}

// RemoveConsideration deletes a consideration from a calling change, selected or not
func (s *CallingChangeService) RemoveConsideration(ctx context.Context, changeID, considerationID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadChange(repository.NewCallingChangeRepository(tx), changeID); err != nil {
			return err
		}
		removed, err := repository.NewConsiderationRepository(tx).Delete(changeID, considerationID)
		if err != nil {
			return fmt.Errorf("failed to delete consideration: %w", err)
		}
		if removed == 0 {
			return apperrors.ErrConsiderationNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"calling_change_id": changeID,
		"consideration_id":  considerationID,
	}).Debug("consideration removed")
	return nil
}

// SelectForPrayer marks one consideration of a calling change as selected and
// clears every other selection of that change in the same transaction
func (s *CallingChangeService) SelectForPrayer(ctx context.Context, changeID, considerationID uuid.UUID) (*ConsiderationResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadChange(repository.NewCallingChangeRepository(tx), changeID); err != nil {
			return err
		}
		considerations := repository.NewConsiderationRepository(tx)
		if _, err := loadConsideration(considerations, changeID, considerationID); err != nil {
			return err
		}
		if err := considerations.ClearSelection(changeID); err != nil {
			return fmt.Errorf("failed to clear selection: %w", err)
		}
		if err := considerations.SetSelected(considerationID); err != nil {
			return fmt.Errorf("failed to select consideration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"calling_change_id": changeID,
		"consideration_id":  considerationID,
	}).Info("consideration selected for prayer")

	return s.loadConsideration(ctx, changeID, considerationID)
}

func (s *CallingChangeService) loadConsideration(ctx context.Context, changeID, considerationID uuid.UUID) (*ConsiderationResponse, error) {
	c, err := loadConsideration(repository.NewConsiderationRepository(s.db.WithContext(ctx)), changeID, considerationID)
	if err != nil {
		return nil, err
	}
	return toConsiderationResponse(c), nil
}

func loadConsideration(repo *repository.ConsiderationRepository, changeID, considerationID uuid.UUID) (*models.CallingConsideration, error) {
	c, err := repo.GetByIDForChange(changeID, considerationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConsiderationNotFound
		}
		return nil, fmt.Errorf("failed to get consideration: %w", err)
	}
	return c, nil
}
