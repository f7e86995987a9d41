package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"maleri_backend/internal/catalog"
	"maleri_backend/platform/config"
	"maleri_backend/platform/logger"
)

// CatalogReloader is satisfied by the catalog service.
type CatalogReloader interface {
	Reload(ctx context.Context, sourceName string) (catalog.ReloadResult, error)
}

// Worker consumes background jobs.
type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	reloader CatalogReloader
	log      *logger.Logger
}

// NewWorker creates the job worker.
func NewWorker(cfg config.RedisConfig, reloader CatalogReloader, log *logger.Logger) (*Worker, error) {
	opt, err := redisClientOpt(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 2,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		reloader: reloader,
		log:      log,
	}
	mux.HandleFunc(TaskCatalogRefresh, w.handleCatalogRefresh)

	return w, nil
}

// Run blocks serving jobs until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleCatalogRefresh(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseCatalogRefreshPayload(task)
	if err != nil {
		return err
	}

	result, err := w.reloader.Reload(ctx, payload.Source)
	if err != nil {
		return fmt.Errorf("catalog refresh: %w", err)
	}

	w.log.Info("catalog refreshed",
		"source", payload.Source,
		"accepted", result.Accepted,
		"rejected", len(result.Rejected),
	)
	return nil
}

// Periodic emits the recurring catalog refresh task.
type Periodic struct {
	scheduler *asynq.Scheduler
	log       *logger.Logger
}

// NewPeriodic registers the catalog refresh at the configured interval.
func NewPeriodic(cfg config.RedisConfig, interval time.Duration, log *logger.Logger) (*Periodic, error) {
	opt, err := redisClientOpt(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{})

	task, err := NewCatalogRefreshTask(CatalogRefreshPayload{Source: "scheduled"})
	if err != nil {
		return nil, err
	}
	if _, err := scheduler.Register(fmt.Sprintf("@every %s", interval), task); err != nil {
		return nil, fmt.Errorf("register catalog refresh: %w", err)
	}

	return &Periodic{scheduler: scheduler, log: log}, nil
}

// Run blocks emitting scheduled tasks until the context is cancelled.
func (p *Periodic) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		p.scheduler.Shutdown()
	}()

	if err := p.scheduler.Run(); err != nil {
		p.log.Error("periodic scheduler stopped", "error", err)
	}
}
