package service_test

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	apperrors "calling-tracker-backend/internal/errors"
	"calling-tracker-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func waitIdle(t *testing.T, svc *service.SyncService) service.SyncStatus {
	t.Helper()
	require.Eventually(t, func() bool { return !svc.Status().Running }, 5*time.Second, 10*time.Millisecond)
	return svc.Status()
}

func TestSyncService_NotConfigured(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	svc := service.NewSyncService("  ", time.Second, nil)
	defer svc.Close()

	status, err := svc.Start(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrSyncNotConfigured)
	assert.True(t, apperrors.IsConfiguration(err))
	assert.False(t, status.Configured)
	assert.False(t, status.Running)
}

func TestSyncService_SingleRunAtATime(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	recorder := &fakeRecorder{}
	svc := service.NewSyncService("sync-members --full", time.Minute, recorder)
	defer svc.Close()

	release := make(chan struct{})
	var gotName string
	var gotArgs []string
	svc.SetRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		<-release
		return []byte("imported 12 members"), nil
	})

	status, err := svc.Start(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Running)
	require.NotNil(t, status.StartedAt)

	_, err = svc.Start(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSyncAlreadyRunning)

	close(release)
	final := waitIdle(t, svc)

	assert.Equal(t, "sync-members", gotName)
	assert.Equal(t, []string{"--full"}, gotArgs)
	require.NotNil(t, final.Succeeded)
	assert.True(t, *final.Succeeded)
	assert.Equal(t, "imported 12 members", final.LastOutput)
	assert.Empty(t, final.LastError)
	require.NotNil(t, final.FinishedAt)
	assert.Equal(t, []string{"success"}, recorder.runs())
}

func TestSyncService_RecordsFailure(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	recorder := &fakeRecorder{}
	svc := service.NewSyncService("sync-members", time.Minute, recorder)
	defer svc.Close()
	svc.SetRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("auth failed"), errors.New("exit status 1")
	})

	_, err := svc.Start(context.Background())
	require.NoError(t, err)
	final := waitIdle(t, svc)

	require.NotNil(t, final.Succeeded)
	assert.False(t, *final.Succeeded)
	assert.Equal(t, "exit status 1", final.LastError)
	assert.Equal(t, "auth failed", final.LastOutput)
	assert.Equal(t, []string{"failure"}, recorder.runs())

	// a new run clears the previous outcome
	svc.SetRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, nil
	})
	_, err = svc.Start(context.Background())
	require.NoError(t, err)
	final = waitIdle(t, svc)
	assert.Empty(t, final.LastError)
	assert.True(t, *final.Succeeded)
}

func TestSyncService_Timeout(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	svc := service.NewSyncService("sync-members", 20*time.Millisecond, nil)
	defer svc.Close()
	svc.SetRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	_, err := svc.Start(context.Background())
	require.NoError(t, err)
	final := waitIdle(t, svc)

	assert.Contains(t, final.LastError, "timed out")
}

func TestSyncService_CloseCancelsRun(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	svc := service.NewSyncService("sync-members", time.Hour, nil)
	started := make(chan struct{})
	svc.SetRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	_, err := svc.Start(context.Background())
	require.NoError(t, err)
	<-started

	svc.Close()

	assert.False(t, svc.Status().Running)
	_, err = svc.Start(context.Background())
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestSyncService_RunsSubprocess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on echo")
	}
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	svc := service.NewSyncService("echo synced", 5*time.Second, nil)
	defer svc.Close()

	_, err := svc.Start(context.Background())
	require.NoError(t, err)
	final := waitIdle(t, svc)

	assert.Empty(t, final.LastError)
	assert.Equal(t, "synced\n", final.LastOutput)
}
