// Package sheets talks to the spreadsheet-backed remote store over its
// HTTP endpoint. Writes are append-only: the endpoint accepts a record
// or rejects it, nothing is read back.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/szymonw/studylog/internal/store"
)

const defaultTimeout = 15 * time.Second

// Client implements store.Writer against the remote endpoint.
type Client struct {
	endpoint string
	token    string
	client   *http.Client
}

var _ store.Writer = (*Client)(nil)

// NewClient returns a Client for the given endpoint. token may be empty
// when the endpoint does not require one.
func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

// envelope is the request body the endpoint expects: an action selecting
// the target sheet plus the record itself.
type envelope struct {
	Action string `json:"action"`
	Record any    `json:"record"`
}

type taskPayload struct {
	TaskID             string   `json:"task_id"`
	SessionID          string   `json:"session_id"`
	TaskName           string   `json:"task_name"`
	Description        string   `json:"description,omitempty"`
	Categories         []string `json:"categories"`
	CorrectlyCompleted bool     `json:"correctly_completed"`
	TaskOrder          int      `json:"task_order"`
	Subject            string   `json:"subject"`
	Location           string   `json:"location"`
	StartTime          string   `json:"start_time"`
	EndTime            string   `json:"end_time"`
}

type sessionPayload struct {
	SessionID          string `json:"session_id"`
	Subject            string `json:"subject"`
	Location           string `json:"location"`
	Notes              string `json:"notes,omitempty"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	DurationMinutes    int    `json:"duration_minutes"`
	TotalTasks         int    `json:"total_tasks"`
	CorrectTasks       int    `json:"correct_tasks"`
	AccuracyPercentage int    `json:"accuracy_percentage"`
}

// WriteTask appends one task row.
func (c *Client) WriteTask(ctx context.Context, rec store.TaskRecord) error {
	return c.post(ctx, envelope{
		Action: "appendTask",
		Record: taskPayload{
			TaskID:             rec.TaskID,
			SessionID:          rec.SessionID,
			TaskName:           rec.Name,
			Description:        rec.Description,
			Categories:         rec.Categories,
			CorrectlyCompleted: rec.CorrectlyCompleted,
			TaskOrder:          rec.Order,
			Subject:            rec.Subject,
			Location:           rec.Location,
			StartTime:          rec.StartTime.UTC().Format(time.RFC3339),
			EndTime:            rec.EndTime.UTC().Format(time.RFC3339),
		},
	})
}

// WriteSessionSummary appends the session roll-up row.
func (c *Client) WriteSessionSummary(ctx context.Context, rec store.SessionRecord) error {
	return c.post(ctx, envelope{
		Action: "appendSession",
		Record: sessionPayload{
			SessionID:          rec.SessionID,
			Subject:            rec.Subject,
			Location:           rec.Location,
			Notes:              rec.Notes,
			StartTime:          rec.StartTime.UTC().Format(time.RFC3339),
			EndTime:            rec.EndTime.UTC().Format(time.RFC3339),
			DurationMinutes:    rec.DurationMinutes,
			TotalTasks:         rec.TotalTasks,
			CorrectTasks:       rec.CorrectTasks,
			AccuracyPercentage: rec.AccuracyPercent,
		},
	})
}

func (c *Client) post(ctx context.Context, env envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode %s: %w", env.Action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", env.Action, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: HTTP %d: %s", env.Action, resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
