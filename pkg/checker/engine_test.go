package checker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-emailguard/pkg/db"
	"github.com/joeblew999/plat-emailguard/pkg/queue"
)

func newTestEngine(t *testing.T) (*Engine, *queue.Queue) {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	q, err := queue.NewQueue(database.DB)
	require.NoError(t, err)

	engine := NewEngine(q, Config{RateLimit: 6000, MessageTimeout: 5 * time.Second})
	return engine, q
}

func TestCheckNow(t *testing.T) {
	engine, _ := newTestEngine(t)

	result, score, report, err := engine.CheckNow(context.Background(),
		`<p onclick="alert(1)">Hello world</p>`, "Weekly update")
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.NotContains(t, result.SanitizedHTML, "onclick")
	assert.Contains(t, result.SanitizedHTML, "<!DOCTYPE html>")

	assert.GreaterOrEqual(t, score.Score, 0)
	assert.LessOrEqual(t, score.Score, 100)

	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
}

func TestCheckNowCleanDocument(t *testing.T) {
	engine, _ := newTestEngine(t)

	html := `<!DOCTYPE html>
<html><head><meta charset="UTF-8"><title>T</title></head>
<body><table><tr><td><h1>Hi</h1><p>Welcome to the service, glad to have you on board.</p></td></tr></table></body></html>`

	result, _, _, err := engine.CheckNow(context.Background(), html, "")
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Issues)
}

func TestWorkerProcessesJob(t *testing.T) {
	engine, q := newTestEngine(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, queue.CheckJob{
		Source: "batch",
		HTML:   "<p>queued content</p>",
	})
	require.NoError(t, err)

	engine.Start(1)
	defer engine.Stop()

	require.Eventually(t, func() bool {
		stats, err := q.Stats(ctx)
		return err == nil && stats[queue.StatusDone] == 1
	}, 5*time.Second, 50*time.Millisecond, "job %s should be processed", id)
}

func TestWorkerMarksRenderFailurePermanent(t *testing.T) {
	engine, q := newTestEngine(t)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, queue.CheckJob{
		Source: "batch",
		HTML:   "<mjml><mj-unclosed",
		MJML:   true,
	})
	require.NoError(t, err)

	engine.Start(1)
	defer engine.Stop()

	require.Eventually(t, func() bool {
		stats, err := q.Stats(ctx)
		return err == nil && stats[queue.StatusFailed] == 1
	}, 5*time.Second, 50*time.Millisecond)

	// The message must be gone from the queue, not redelivered.
	job, msg, err := q.Receive(ctx)
	require.NoError(t, err)
	assert.Nil(t, job)
	assert.Nil(t, msg)
}

func TestStartStopIdempotent(t *testing.T) {
	engine, _ := newTestEngine(t)

	engine.Start(1)
	engine.Start(1)
	engine.Stop()
	engine.Stop()
}
