// Package worker runs the River job client that reclaims orphaned attachment
// blobs.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"registrar/internal/attachment"
	"registrar/internal/config"
	"registrar/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the job client.
type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
	// SweepInterval is how often the orphan blob sweep is enqueued.
	SweepInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:    cfg.Worker.MaxWorkers,
		SweepInterval: cfg.Uploads.SweepInterval,
	}
}

// Start registers the cleanup workers and the periodic sweep, and starts
// processing jobs until ctx is canceled or the client is stopped.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	attachments attachment.Service,
	options Options,
) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewBlobCleanupWorker(attachments))
	river.AddWorker(workers, NewOrphanSweepWorker(attachments))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	var periodic []*river.PeriodicJob
	if options.SweepInterval > 0 {
		periodic = append(periodic, river.NewPeriodicJob(
			river.PeriodicInterval(options.SweepInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return attachment.OrphanSweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		))
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
