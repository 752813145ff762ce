// Package checker provides the batch check engine: a worker pool that drains
// the check-job queue, runs each document through the validation pipeline,
// and persists the resulting reports.
package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/rescue"
	"github.com/zeromicro/go-zero/core/syncx"
	"github.com/zeromicro/go-zero/core/threading"
	"golang.org/x/time/rate"

	"github.com/joeblew999/plat-emailguard/pkg/deliverability"
	"github.com/joeblew999/plat-emailguard/pkg/emailsafe"
	"github.com/joeblew999/plat-emailguard/pkg/queue"
	"github.com/joeblew999/plat-emailguard/pkg/render"
)

// Config holds check engine configuration.
type Config struct {
	RateLimit      int           // checks per minute
	MessageTimeout time.Duration // goqite visibility extension while processing
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		RateLimit:      120,
		MessageTimeout: 30 * time.Second,
	}
}

// Engine drains the queue and turns jobs into stored reports.
type Engine struct {
	config      Config
	queue       *queue.Queue
	rateLimiter *rate.Limiter
	running     *syncx.AtomicBool

	ctx    context.Context
	cancel context.CancelFunc
	group  *threading.RoutineGroup
}

// NewEngine creates a new check engine.
func NewEngine(q *queue.Queue, cfg Config) *Engine {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultConfig().RateLimit
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimit)), 1)

	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		config:      cfg,
		queue:       q,
		rateLimiter: limiter,
		running:     syncx.NewAtomicBool(),
		ctx:         ctx,
		cancel:      cancel,
		group:       threading.NewRoutineGroup(),
	}
}

// Start starts the engine with the specified number of workers.
func (e *Engine) Start(workers int) {
	if !e.running.CompareAndSwap(false, true) {
		return // Already running
	}

	logx.Infow("Check engine started", logx.Field("workers", workers))
	for i := 0; i < workers; i++ {
		e.group.RunSafe(func() { e.worker() })
	}
}

// Stop gracefully stops the engine.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return // Already stopped
	}

	logx.Info("Check engine stopping, waiting for workers")
	e.cancel()
	e.group.Wait()
	logx.Info("Check engine stopped")
}

func (e *Engine) worker() {
	backoff := 100 * time.Millisecond
	const maxBackoff = 5 * time.Second

	for {
		select {
		case <-e.ctx.Done():
			return
		default:
			job, msg, err := e.queue.Receive(e.ctx)
			if err != nil || job == nil {
				time.Sleep(backoff)
				if backoff < maxBackoff {
					backoff = min(backoff*2, maxBackoff)
				}
				e.updateQueueDepth()
				continue
			}

			backoff = 100 * time.Millisecond // Reset on work found
			if e.processJob(job) {
				e.queue.Delete(e.ctx, msg)
			}
			// On storage failure the message stays in the queue and is
			// redelivered after its visibility timeout.
		}
	}
}

// processJob runs one job through the pipeline. It returns true when the
// queue message should be deleted (success or permanent failure).
func (e *Engine) processJob(job *queue.CheckJob) (done bool) {
	ctx := logx.ContextWithFields(e.ctx,
		logx.Field("job_id", job.ID),
		logx.Field("source", job.Source),
		logx.Field("html_size", len(job.HTML)),
	)

	// Panic recovery: mark job failed and record metric if processing panics
	defer rescue.RecoverCtx(ctx, func() {
		checksFailed.Inc(job.Source, "panic")
		e.queue.MarkFailed(ctx, job.ID, fmt.Errorf("panic during check"))
		done = true
	})

	logx.WithContext(ctx).Info("Processing check job")

	start := time.Now()

	if err := e.rateLimiter.Wait(ctx); err != nil {
		return false
	}

	e.queue.MarkProcessing(ctx, job.ID)

	html := job.HTML
	if job.MJML {
		rendered, err := render.MJML(html)
		if err != nil {
			// Unrenderable MJML cannot succeed on retry.
			e.queue.MarkFailed(ctx, job.ID, fmt.Errorf("render mjml: %w", err))
			checksFailed.Inc(job.Source, "render")
			e.recordEvent(job.ID, "failed", err.Error())
			logx.WithContext(ctx).Errorf("Check failed permanently: %v", err)
			return true
		}
		html = rendered
	}

	// The pipeline is total: from here on the only failure mode is storage.
	result := emailsafe.ValidateAndSanitize(html)
	score := emailsafe.CalculateQualityScore(result.SanitizedHTML)
	plainText := emailsafe.ExtractPlainText(result.SanitizedHTML)

	if err := e.queue.StoreResult(ctx, job.ID, result, score, plainText); err != nil {
		checksFailed.Inc(job.Source, "storage")
		e.recordEvent(job.ID, "retry", err.Error())
		logx.WithContext(ctx).Errorf("Store report failed, job will be redelivered: %v", err)
		return false
	}

	checksDone.Inc(job.Source, fmt.Sprintf("%t", result.IsValid))
	checkDuration.ObserveFloat(time.Since(start).Seconds(), job.Source)
	qualityScore.Set(float64(score.Score), job.Source)
	e.recordEvent(job.ID, "checked", fmt.Sprintf("score %d, %d issues", score.Score, len(result.Issues)))

	logx.WithContext(ctx).Infow("Check complete",
		logx.Field("valid", result.IsValid),
		logx.Field("score", score.Score),
		logx.Field("issues", len(result.Issues)),
	)
	return true
}

// CheckNow runs a document through the pipeline synchronously, bypassing the
// queue. Used by the API for interactive requests.
func (e *Engine) CheckNow(ctx context.Context, html, subject string) (emailsafe.ValidationResult, emailsafe.QualityScore, deliverability.Report, error) {
	if err := e.rateLimiter.Wait(ctx); err != nil {
		return emailsafe.ValidationResult{}, emailsafe.QualityScore{}, deliverability.Report{}, err
	}

	result := emailsafe.ValidateAndSanitize(html)
	score := emailsafe.CalculateQualityScore(result.SanitizedHTML)
	report := deliverability.Check(result.SanitizedHTML, subject)
	return result, score, report, nil
}

// recordEvent writes an event to the queue's BulkInserter if available.
func (e *Engine) recordEvent(reportID, eventType, details string) {
	if e.queue.Events != nil {
		e.queue.Events.RecordEvent(reportID, eventType, details)
	}
}

// updateQueueDepth refreshes the queue depth gauge from current stats.
func (e *Engine) updateQueueDepth() {
	stats, err := e.queue.Stats(e.ctx)
	if err != nil {
		return
	}
	for status, count := range stats {
		queueDepth.Set(float64(count), status)
	}
}
