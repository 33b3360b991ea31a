package service

import (
	"context"

	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CallingChangeServiceInterface defines the interface for the calling change workflow
type CallingChangeServiceInterface interface {
	ListCallingChanges(ctx context.Context, status *models.CallingChangeStatus) ([]CallingChangeResponse, error)
	GetCallingChange(ctx context.Context, id uuid.UUID) (*CallingChangeResponse, error)
	CreateCallingChange(ctx context.Context, req *CreateCallingChangeRequest) (*CallingChangeResponse, error)
	UpdateCallingChange(ctx context.Context, id uuid.UUID, req *UpdateCallingChangeRequest) (*CallingChangeResponse, error)
	AddConsideration(ctx context.Context, changeID uuid.UUID, req *AddConsiderationRequest) (*ConsiderationResponse, error)
	UpdateConsideration(ctx context.Context, changeID, considerationID uuid.UUID, req *UpdateConsiderationRequest) (*ConsiderationResponse, error)
	RemoveConsideration(ctx context.Context, changeID, considerationID uuid.UUID) error
	SelectForPrayer(ctx context.Context, changeID, considerationID uuid.UUID) (*ConsiderationResponse, error)
	ApproveSelection(ctx context.Context, id uuid.UUID) (*CallingChangeResponse, error)
	Finalize(ctx context.Context, id uuid.UUID) (*CallingChangeResponse, error)
	UpdateTask(ctx context.Context, changeID, taskID uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	ToggleTask(ctx context.Context, changeID, taskID uuid.UUID) (*TaskResponse, error)
}

// SyncServiceInterface defines the interface for the external sync job runner
type SyncServiceInterface interface {
	Start(ctx context.Context) (SyncStatus, error)
	Status() SyncStatus
}

var (
	_ CallingChangeServiceInterface = (*CallingChangeService)(nil)
	_ SyncServiceInterface          = (*SyncService)(nil)
)
