package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calling-tracker-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_WorkflowCounters(t *testing.T) {
	m := New()

	m.ObserveTransition(models.CallingChangeStatusApproved)
	m.ObserveTransition(models.CallingChangeStatusApproved)
	m.ObserveTasksGenerated([]models.CallingChangeTask{
		{TaskType: models.TaskTypeExtendCalling},
		{TaskType: models.TaskTypeSetApart},
		{TaskType: models.TaskTypeSetApart},
	})

	body := scrape(t, m)
	assert.Contains(t, body, `calling_tracker_status_transitions_total{status="approved"} 2`)
	assert.Contains(t, body, `calling_tracker_tasks_generated_total{task_type="set_apart"} 2`)
	assert.Contains(t, body, `calling_tracker_tasks_generated_total{task_type="extend_calling"} 1`)
}

func TestMetrics_SyncAndHTTP(t *testing.T) {
	m := New()

	m.ObserveSyncRun("failure", 3*time.Second)
	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/calling-changes/:id/approve", http.StatusBadRequest, 15*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `calling_tracker_sync_runs_total{result="failure"} 1`)
	assert.Contains(t, body, `calling_tracker_sync_duration_seconds_count 1`)
	assert.Contains(t, body, `calling_tracker_http_requests_total{code="400",method="POST",route="/api/v1/calling-changes/:id/approve"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
