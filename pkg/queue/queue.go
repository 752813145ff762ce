// Package queue provides the asynchronous check-job queue using goqite.
package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"maragu.dev/goqite"

	"github.com/joeblew999/plat-emailguard/pkg/emailsafe"
)

// Report lifecycle states.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusFailed     = "failed"
)

// CheckJob is one document waiting to be run through the pipeline.
type CheckJob struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"` // api, ui, mcp, batch
	HTML      string    `json:"html"`
	Subject   string    `json:"subject,omitempty"`
	MJML      bool      `json:"mjml,omitempty"` // render before validating
	CreatedAt time.Time `json:"created_at"`
}

// Queue manages check jobs using goqite, with report rows in SQLite for
// tracking. Events is optional; when set, lifecycle events are batched to the
// report_events table.
type Queue struct {
	db     *sql.DB
	queue  *goqite.Queue
	Events *EventRecorder
}

// NewQueue creates a new check-job queue on top of an open database.
func NewQueue(db *sql.DB) (*Queue, error) {
	if err := goqite.Setup(context.Background(), db); err != nil {
		return nil, fmt.Errorf("setup goqite: %w", err)
	}

	q := goqite.New(goqite.NewOpts{
		DB:   db,
		Name: "checks",
	})

	return &Queue{db: db, queue: q}, nil
}

// Enqueue adds a check job to the queue and creates its tracking row.
func (q *Queue) Enqueue(ctx context.Context, job CheckJob) (string, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.Source == "" {
		job.Source = "api"
	}
	job.CreatedAt = time.Now()

	body, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshal job: %w", err)
	}

	if err := q.queue.Send(ctx, goqite.Message{Body: body}); err != nil {
		return "", fmt.Errorf("send to queue: %w", err)
	}

	if _, err := q.db.ExecContext(ctx, `
		INSERT INTO reports (id, source, sanitized_html, status)
		VALUES (?, ?, '', ?)
	`, job.ID, job.Source, StatusQueued); err != nil {
		return "", fmt.Errorf("store report row: %w", err)
	}

	return job.ID, nil
}

// Receive gets the next job from the queue. Returns nil job when the queue is
// empty.
func (q *Queue) Receive(ctx context.Context) (*CheckJob, *goqite.Message, error) {
	msg, err := q.queue.Receive(ctx)
	if err != nil {
		return nil, nil, err
	}
	if msg == nil {
		return nil, nil, nil
	}

	var job CheckJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		return nil, msg, fmt.Errorf("unmarshal job: %w", err)
	}

	return &job, msg, nil
}

// Extend extends the timeout for a message being processed.
func (q *Queue) Extend(ctx context.Context, msg *goqite.Message, d time.Duration) error {
	return q.queue.Extend(ctx, msg.ID, d)
}

// Delete removes a message from the queue (job completed).
func (q *Queue) Delete(ctx context.Context, msg *goqite.Message) error {
	return q.queue.Delete(ctx, msg.ID)
}

// MarkProcessing marks a report as picked up by a worker.
func (q *Queue) MarkProcessing(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE reports SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, StatusProcessing, id)
	return err
}

// StoreResult persists the pipeline outcome for a report.
func (q *Queue) StoreResult(ctx context.Context, id string, res emailsafe.ValidationResult, score emailsafe.QualityScore, plainText string) error {
	issues, err := json.Marshal(res.Issues)
	if err != nil {
		return fmt.Errorf("marshal issues: %w", err)
	}
	fixes, err := json.Marshal(res.Fixes)
	if err != nil {
		return fmt.Errorf("marshal fixes: %w", err)
	}

	_, err = q.db.ExecContext(ctx, `
		UPDATE reports
		SET is_valid = ?, sanitized_html = ?, plain_text = ?, issues = ?, fixes = ?,
		    score = ?, score_structure = ?, score_compatibility = ?,
		    score_accessibility = ?, score_content = ?,
		    status = ?, error = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, boolToInt(res.IsValid), res.SanitizedHTML, plainText, string(issues), string(fixes),
		score.Score, score.Breakdown.Structure, score.Breakdown.Compatibility,
		score.Breakdown.Accessibility, score.Breakdown.Content,
		StatusDone, id)
	return err
}

// MarkFailed records a processing failure for a report.
func (q *Queue) MarkFailed(ctx context.Context, id string, cause error) error {
	var errStr sql.NullString
	if cause != nil {
		errStr = sql.NullString{String: cause.Error(), Valid: true}
	}

	_, err := q.db.ExecContext(ctx, `
		UPDATE reports SET status = ?, error = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, StatusFailed, errStr, id)
	return err
}

// Stats returns report counts grouped by status.
func (q *Queue) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM reports GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
	}
	return stats, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
