package service

import (
	"time"

	"calling-tracker-backend/internal/database/models"
)

// Recorder receives workflow events for instrumentation
type Recorder interface {
	ObserveTransition(to models.CallingChangeStatus)
	ObserveTasksGenerated(tasks []models.CallingChangeTask)
	ObserveSyncRun(result string, duration time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveTransition(models.CallingChangeStatus)    {}
func (nopRecorder) ObserveTasksGenerated([]models.CallingChangeTask) {}
func (nopRecorder) ObserveSyncRun(string, time.Duration)             {}
