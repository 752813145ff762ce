package queue

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-emailguard/pkg/db"
	"github.com/joeblew999/plat-emailguard/pkg/emailsafe"
)

func newTestQueue(t *testing.T) *Queue {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	q, err := NewQueue(database.DB)
	require.NoError(t, err)
	return q
}

func TestEnqueueReceiveRoundTrip(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, CheckJob{
		Source:  "api",
		HTML:    "<p>hello</p>",
		Subject: "Test",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	job, msg, err := q.Receive(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)
	require.NotNil(t, msg)

	assert.Equal(t, id, job.ID)
	assert.Equal(t, "api", job.Source)
	assert.Equal(t, "<p>hello</p>", job.HTML)
	assert.Equal(t, "Test", job.Subject)
	assert.False(t, job.CreatedAt.IsZero())

	require.NoError(t, q.Delete(ctx, msg))
}

func TestEnqueueDefaults(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, CheckJob{HTML: "<p>x</p>"})
	require.NoError(t, err)

	job, msg, err := q.Receive(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)
	defer q.Delete(ctx, msg)

	assert.Equal(t, id, job.ID)
	assert.Equal(t, "api", job.Source)
}

func TestReceiveEmptyQueue(t *testing.T) {
	q := newTestQueue(t)

	job, msg, err := q.Receive(context.Background())
	require.NoError(t, err)
	assert.Nil(t, job)
	assert.Nil(t, msg)
}

func TestStoreResultLifecycle(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, CheckJob{Source: "ui", HTML: "<p>hi</p>"})
	require.NoError(t, err)

	stats, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats[StatusQueued])

	require.NoError(t, q.MarkProcessing(ctx, id))

	stats, err = q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats[StatusProcessing])

	result := emailsafe.ValidationResult{
		IsValid:       false,
		SanitizedHTML: "<html></html>",
		Issues:        []string{"incomplete HTML structure"},
		Fixes:         []string{"email structure added"},
	}
	score := emailsafe.QualityScore{Score: 40}
	require.NoError(t, q.StoreResult(ctx, id, result, score, "hi"))

	stats, err = q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats[StatusDone])
	assert.Zero(t, stats[StatusProcessing])
}

func TestMarkFailed(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, CheckJob{HTML: "<mjml>broken"})
	require.NoError(t, err)

	require.NoError(t, q.MarkFailed(ctx, id, assert.AnError))

	stats, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats[StatusFailed])
}
