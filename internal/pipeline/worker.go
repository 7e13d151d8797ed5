package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pardivkamishetty/outliner/internal/parser"
	"github.com/pardivkamishetty/outliner/internal/schema"
	"github.com/pardivkamishetty/outliner/internal/sink"
	"github.com/pardivkamishetty/outliner/internal/stats"
)

// Worker processes a single document job.
type Worker struct {
	opts      parser.Options
	validator schema.Validator
	out       sink.Sink
	stats     *stats.ExtractStats
	log       *slog.Logger
}

func NewWorker(opts parser.Options, validator schema.Validator, out sink.Sink, st *stats.ExtractStats, log *slog.Logger) *Worker {
	return &Worker{
		opts:      opts,
		validator: validator,
		out:       out,
		stats:     st,
		log:       log,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	src, err := parser.ForFileTuned(job.Filename, w.opts)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: Extract outline and record latency.
	job.SetStatus(StatusExtracting, "extracting")
	start := time.Now()
	doc, err := src.Extract(bytes.NewReader(job.FileData()), job.Filename)
	w.stats.Record(time.Since(start))
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	// Phase 3: Validate against the output contract.
	job.SetStatus(StatusValidating, "validating")
	if err := w.validator.Validate(doc); err != nil {
		log.Error("validation failed", "error", err)
		job.AddError(fmt.Sprintf("validate: %s", err))
		job.SetStatus(StatusFailed, "validating")
		return
	}
	job.SetResult(doc)

	// Phase 4: Deliver with retries for transient failures.
	job.SetStatus(StatusWriting, "writing")
	name := parser.Stem(job.Filename)
	var lastErr error
	for attempt := range MaxRetries {
		lastErr = w.out.Write(ctx, name, doc)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable write error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			job.AddError(ctx.Err().Error())
			job.SetStatus(StatusFailed, "writing")
			return
		}
	}
	if lastErr != nil {
		log.Error("write failed", "error", lastErr)
		job.AddError(fmt.Sprintf("write: %s", lastErr))
		job.SetStatus(StatusFailed, "writing")
		return
	}

	log.Info("extraction complete", "title", doc.Title, "headings", len(doc.Outline))
	job.SetStatus(StatusCompleted, "done")
}
