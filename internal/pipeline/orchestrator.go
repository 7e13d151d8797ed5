package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pardivkamishetty/outliner/internal/config"
	"github.com/pardivkamishetty/outliner/internal/parser"
	"github.com/pardivkamishetty/outliner/internal/schema"
	"github.com/pardivkamishetty/outliner/internal/sink"
	"github.com/pardivkamishetty/outliner/internal/stats"
)

// Orchestrator manages the document extraction pipeline.
type Orchestrator struct {
	jobs      *JobStore
	queue     chan *Job
	validator schema.Validator
	out       sink.Sink
	stats     *stats.ExtractStats
	log       *slog.Logger
	cfg       config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup

	// mu orders Submit against Stop so a request still in flight during
	// shutdown cannot send into the closed queue.
	mu      sync.Mutex
	stopped bool
}

// NewOrchestrator creates the pipeline. Call Start to launch workers.
func NewOrchestrator(cfg config.Config, validator schema.Validator, out sink.Sink, st *stats.ExtractStats, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:      NewJobStore(cfg.JobTTL),
		queue:     make(chan *Job, cfg.MaxQueueSize),
		validator: validator,
		out:       out,
		stats:     st,
		log:       log,
		cfg:       cfg,
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.parserOpts(), o.validator, o.out, o.stats, o.log)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline. It is idempotent, and a
// Submit racing it is refused instead of hitting the closed queue.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	alreadyStopped := o.stopped
	o.stopped = true
	if !alreadyStopped {
		close(o.queue)
	}
	o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	o.wg.Wait()
}

// Submit queues a new job for processing. The queue send never blocks,
// so holding the lock across it is safe.
func (o *Orchestrator) Submit(job *Job) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		job.SetStatus(StatusFailed, "shutting_down")
		return fmt.Errorf("pipeline is shutting down")
	}
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats returns the latency tracker for direct use by API handlers.
func (o *Orchestrator) Stats() *stats.ExtractStats {
	return o.stats
}

func (o *Orchestrator) parserOpts() parser.Options {
	return parser.Options{
		Proximity:  o.cfg.CharProximity,
		SampleRuns: o.cfg.ScriptSampleRuns,
	}
}
