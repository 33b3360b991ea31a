package service

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"time"

	apperrors "calling-tracker-backend/internal/errors"
	"calling-tracker-backend/internal/logger"
)

const maxSyncOutput = 4096

// SyncStatus is a snapshot of the external data sync job
type SyncStatus struct {
	Configured bool       `json:"configured"`
	Running    bool       `json:"running"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Succeeded  *bool      `json:"succeeded,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
	LastOutput string     `json:"last_output,omitempty"`
}

// CommandRunner executes the sync command and returns its combined output
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// SyncService runs the external member/calling sync as a subprocess, one run at a time
type SyncService struct {
	command  []string
	timeout  time.Duration
	runner   CommandRunner
	recorder Recorder

	mu     sync.Mutex
	status SyncStatus

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncService creates a sync service for command, split on whitespace.
// An empty command leaves the service unconfigured.
func NewSyncService(command string, timeout time.Duration, recorder Recorder) *SyncService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &SyncService{
		command:  strings.Fields(command),
		timeout:  timeout,
		runner:   execRunner,
		recorder: recorder,
		ctx:      ctx,
		cancel:   cancel,
	}
	s.status.Configured = len(s.command) > 0
	return s
}

// SetRunner replaces the subprocess runner
func (s *SyncService) SetRunner(runner CommandRunner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runner = runner
}

// Start launches a sync run in the background. ctx identifies the caller for
// logging only; the run outlives the request and is bounded by the configured timeout.
func (s *SyncService) Start(ctx context.Context) (SyncStatus, error) {
	if len(s.command) == 0 {
		return s.Status(), apperrors.ErrSyncNotConfigured
	}

	s.mu.Lock()
	if s.status.Running {
		snapshot := s.status
		s.mu.Unlock()
		return snapshot, apperrors.ErrSyncAlreadyRunning
	}
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return s.Status(), apperrors.NewConfigurationError("sync service is shut down")
	}
	started := time.Now()
	s.status = SyncStatus{Configured: true, Running: true, StartedAt: &started}
	runner := s.runner
	snapshot := s.status
	s.wg.Add(1)
	s.mu.Unlock()

	logger.WithContext(ctx).WithField("command", s.command[0]).Info("sync started")

	go s.run(runner, started)
	return snapshot, nil
}

func (s *SyncService) run(runner CommandRunner, started time.Time) {
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	output, err := runner(ctx, s.command[0], s.command[1:]...)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = errors.New("sync timed out after " + s.timeout.String())
	}

	finished := time.Now()
	succeeded := err == nil
	result := "success"
	if err != nil {
		result = "failure"
	}

	s.recorder.ObserveSyncRun(result, finished.Sub(started))
	log := logger.New().WithField("duration", finished.Sub(started).String())
	if err != nil {
		log.WithError(err).Error("sync failed")
	} else {
		log.Info("sync finished")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Running = false
	s.status.FinishedAt = &finished
	s.status.Succeeded = &succeeded
	s.status.LastOutput = tail(string(output), maxSyncOutput)
	if err != nil {
		s.status.LastError = err.Error()
	}
}

// Status returns a snapshot of the current sync state
func (s *SyncService) Status() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Close cancels a running sync and waits for it to exit
func (s *SyncService) Close() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
