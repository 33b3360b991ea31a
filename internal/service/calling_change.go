package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calling-tracker-backend/internal/database/models"
	apperrors "calling-tracker-backend/internal/errors"
	"calling-tracker-backend/internal/logger"
	"calling-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallingChangeService runs the calling change workflow: the status state machine,
// the consideration tracker, task generation on approval and finalization.
// Every multi-step mutation runs in a single database transaction.
type CallingChangeService struct {
	db        *gorm.DB
	validator *validator.Validate
	recorder  Recorder
	now       func() time.Time
}

// Option configures a CallingChangeService
type Option func(*CallingChangeService)

// WithRecorder sets the instrumentation sink
func WithRecorder(r Recorder) Option {
	return func(s *CallingChangeService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithClock overrides the clock used for release, assignment and completion dates
func WithClock(now func() time.Time) Option {
	return func(s *CallingChangeService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewCallingChangeService creates a new calling change service
func NewCallingChangeService(db *gorm.DB, validator *validator.Validate, opts ...Option) *CallingChangeService {
	s := &CallingChangeService{
		db:        db,
		validator: validator,
		recorder:  nopRecorder{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListCallingChanges returns calling changes with considerations and tasks,
// optionally filtered by status, highest priority first
func (s *CallingChangeService) ListCallingChanges(ctx context.Context, status *models.CallingChangeStatus) ([]CallingChangeResponse, error) {
	if status != nil && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", *status))
	}

	changes, err := repository.NewCallingChangeRepository(s.db.WithContext(ctx)).List(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list calling changes: %w", err)
	}

	responses := make([]CallingChangeResponse, 0, len(changes))
	for i := range changes {
		responses = append(responses, *toCallingChangeResponse(&changes[i]))
	}
	return responses, nil
}

// GetCallingChange returns a calling change with its considerations and tasks
func (s *CallingChangeService) GetCallingChange(ctx context.Context, id uuid.UUID) (*CallingChangeResponse, error) {
	return s.loadDetails(ctx, id)
}

// CreateCallingChange opens a calling change. Only one open change per calling is allowed.
func (s *CallingChangeService) CreateCallingChange(ctx context.Context, req *CreateCallingChangeRequest) (*CallingChangeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	status := req.Status
	if status == "" {
		status = models.CallingChangeStatusInProgress
	}

	change := &models.CallingChange{
		CallingID:                 req.CallingID,
		CurrentMemberID:           req.CurrentMemberID,
		Status:                    status,
		Priority:                  req.Priority,
		AssignedToBishopricMember: req.AssignedToBishopricMember,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewCallingRepository(tx).GetByID(req.CallingID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCallingNotFound
			}
			return fmt.Errorf("failed to get calling: %w", err)
		}
		if req.CurrentMemberID != nil {
			if err := memberExists(tx, *req.CurrentMemberID); err != nil {
				return err
			}
		}

		changes := repository.NewCallingChangeRepository(tx)
		open, err := changes.CountOpenForCalling(req.CallingID)
		if err != nil {
			return fmt.Errorf("failed to count open calling changes: %w", err)
		}
		if open > 0 {
			return apperrors.ErrOpenCallingChangeExists
		}

		if err := changes.Create(change); err != nil {
			return fmt.Errorf("failed to create calling change: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"calling_change_id": change.ID,
		"calling_id":        change.CallingID,
		"status":            change.Status,
	}).Info("calling change created")
	s.recorder.ObserveTransition(change.Status)

	return s.loadDetails(ctx, change.ID)
}

// UpdateCallingChange applies a partial field patch. The status may move freely
// between hold and in_progress. Setting status=completed through this path skips
// the Finalize checks and leaves assignments and tasks untouched.
func (s *CallingChangeService) UpdateCallingChange(ctx context.Context, id uuid.UUID, req *UpdateCallingChangeRequest) (*CallingChangeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	log := logger.WithContext(ctx).WithField("calling_change_id", id)
	var transitioned *models.CallingChangeStatus

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changes := repository.NewCallingChangeRepository(tx)
		change, err := loadChange(changes, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Status != nil && *req.Status != change.Status {
			if change.Status == models.CallingChangeStatusCompleted {
				return apperrors.ErrCallingChangeCompleted
			}
			switch *req.Status {
			case models.CallingChangeStatusApproved:
				if change.NewMemberID == nil {
					return apperrors.ErrNoNewMemberSelected
				}
			case models.CallingChangeStatusCompleted:
				log.WithField("previous_status", change.Status).
					Warn("calling change marked completed by status update; finalize checks and assignment swap were skipped")
			}
			updates["status"] = *req.Status
			transitioned = req.Status
		}
		if req.Priority != nil {
			updates["priority"] = *req.Priority
		}
		if req.AssignedToBishopricMember != nil {
			updates["assigned_to_bishopric_member"] = *req.AssignedToBishopricMember
		}

		if len(updates) == 0 {
			return nil
		}
		if err := changes.UpdateFields(id, updates); err != nil {
			return fmt.Errorf("failed to update calling change: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if transitioned != nil {
		log.WithField("status", *transitioned).Info("calling change status updated")
		s.recorder.ObserveTransition(*transitioned)
	}

	return s.loadDetails(ctx, id)
}

// ApproveSelection records the member selected for prayer as the new member,
// moves the change to approved and generates its task checklist, all in one
// transaction. It fails if tasks were already generated or the change is completed.
func (s *CallingChangeService) ApproveSelection(ctx context.Context, id uuid.UUID) (*CallingChangeResponse, error) {
	var generated []models.CallingChangeTask

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changes := repository.NewCallingChangeRepository(tx)
		tasks := repository.NewTaskRepository(tx)

		change, err := loadChange(changes, id)
		if err != nil {
			return err
		}
		if change.Status == models.CallingChangeStatusCompleted {
			return apperrors.ErrCallingChangeCompleted
		}

		existing, err := tasks.CountByChange(id)
		if err != nil {
			return fmt.Errorf("failed to count tasks: %w", err)
		}
		if existing > 0 {
			return apperrors.ErrTasksAlreadyGenerated
		}

		selected, err := repository.NewConsiderationRepository(tx).ListSelected(id)
		if err != nil {
			return fmt.Errorf("failed to get selected consideration: %w", err)
		}
		switch {
		case len(selected) == 0:
			return apperrors.ErrNoPersonSelected
		case len(selected) > 1:
			return apperrors.ErrMultiplePersonsSelected
		}
		newMemberID := selected[0].MemberID

		if err := changes.UpdateFields(id, map[string]interface{}{
			"new_member_id": newMemberID,
			"status":        models.CallingChangeStatusApproved,
		}); err != nil {
			return fmt.Errorf("failed to approve calling change: %w", err)
		}

		generated = GenerateTasks(id, change.CurrentMemberID, newMemberID, change.AssignedToBishopricMember)
		if err := tasks.CreateBatch(generated); err != nil {
			return fmt.Errorf("failed to create tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"calling_change_id": id,
		"tasks":             len(generated),
	}).Info("calling change approved")
	s.recorder.ObserveTransition(models.CallingChangeStatusApproved)
	s.recorder.ObserveTasksGenerated(generated)

	return s.loadDetails(ctx, id)
}

func (s *CallingChangeService) loadDetails(ctx context.Context, id uuid.UUID) (*CallingChangeResponse, error) {
	change, err := repository.NewCallingChangeRepository(s.db.WithContext(ctx)).GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCallingChangeNotFound
		}
		return nil, fmt.Errorf("failed to get calling change: %w", err)
	}
	return toCallingChangeResponse(change), nil
}

func loadChange(repo *repository.CallingChangeRepository, id uuid.UUID) (*models.CallingChange, error) {
	change, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCallingChangeNotFound
		}
		return nil, fmt.Errorf("failed to get calling change: %w", err)
	}
	return change, nil
}

func memberExists(tx *gorm.DB, id uuid.UUID) error {
	if _, err := repository.NewMemberRepository(tx).GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}
	return nil
}

// dateOnly truncates t to a calendar date in its own location, expressed at UTC midnight
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
