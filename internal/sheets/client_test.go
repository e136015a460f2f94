package sheets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szymonw/studylog/internal/store"
)

func testTaskRecord() store.TaskRecord {
	start := time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC)
	return store.TaskRecord{
		TaskID:             "task-1",
		SessionID:          "sess-1",
		Name:               "Zadanie 007",
		Description:        "układy równań",
		Categories:         []string{"Równania", "Algebra"},
		CorrectlyCompleted: true,
		Order:              1,
		Subject:            "Matematyka",
		Location:           "W szkole",
		StartTime:          start,
		EndTime:            start.Add(4 * time.Minute),
	}
}

func TestWriteTask(t *testing.T) {
	var (
		gotPath   string
		gotAuth   string
		gotCT     string
		gotBody   map[string]any
		gotMethod string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/exec", "secret-token")
	err := c.WriteTask(context.Background(), testTaskRecord())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/exec", gotPath)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, "appendTask", gotBody["action"])

	rec, ok := gotBody["record"].(map[string]any)
	require.True(t, ok, "record field missing")
	assert.Equal(t, "Zadanie 007", rec["task_name"])
	assert.Equal(t, "W szkole", rec["location"])
	assert.Equal(t, true, rec["correctly_completed"])
	assert.Equal(t, "2026-03-14T16:00:00Z", rec["start_time"])
	assert.Len(t, rec["categories"], 2)
}

func TestWriteSessionSummary(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	err := c.WriteSessionSummary(context.Background(), store.SessionRecord{
		SessionID:       "sess-1",
		Subject:         "Fizyka",
		Location:        "W domu",
		StartTime:       time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2026, 3, 14, 16, 45, 0, 0, time.UTC),
		DurationMinutes: 40,
		TotalTasks:      5,
		CorrectTasks:    4,
		AccuracyPercent: 80,
	})
	require.NoError(t, err)

	assert.Equal(t, "appendSession", gotBody["action"])
	rec := gotBody["record"].(map[string]any)
	assert.Equal(t, "Fizyka", rec["subject"])
	assert.Equal(t, float64(40), rec["duration_minutes"])
	assert.Equal(t, float64(80), rec["accuracy_percentage"])
	// Empty notes stay off the wire.
	_, hasNotes := rec["notes"]
	assert.False(t, hasNotes)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	require.NoError(t, c.WriteTask(context.Background(), testTaskRecord()))
	assert.Empty(t, gotAuth)
}

func TestRejectedWrite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sheet is full", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	err := c.WriteTask(context.Background(), testTaskRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
	assert.Contains(t, err.Error(), "sheet is full")
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(srv.URL, "")
	err := c.WriteTask(ctx, testTaskRecord())
	require.Error(t, err)
}
