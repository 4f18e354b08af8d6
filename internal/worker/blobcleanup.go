package worker

import (
	"context"
	"fmt"
	"registrar/internal/attachment"
	"registrar/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// BlobCleanupWorker deletes a single blob left behind by an upload whose
// attachment record was never committed. A blob that gained a record in the
// meantime is kept.
type BlobCleanupWorker struct {
	river.WorkerDefaults[attachment.BlobCleanupArgs]

	attachments attachment.Service
}

func NewBlobCleanupWorker(attachments attachment.Service) *BlobCleanupWorker {
	return &BlobCleanupWorker{attachments: attachments}
}

func (w *BlobCleanupWorker) Work(ctx context.Context, job *river.Job[attachment.BlobCleanupArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("blobID", job.Args.BlobID))

	deleted, err := w.attachments.ReclaimBlob(ctx, job.Args.BlobID)
	if err != nil {
		logger.Error(ctx, "error reclaiming orphan blob", zap.Error(err))

		return fmt.Errorf("could not reclaim blob: %w", err)
	}

	if deleted {
		logger.Info(ctx, "orphan blob reclaimed")
	} else {
		logger.Debug(ctx, "blob is referenced or already gone")
	}

	return nil
}

// OrphanSweepWorker removes every unreferenced blob older than the grace
// period. It catches blobs whose cleanup job could not be enqueued.
type OrphanSweepWorker struct {
	river.WorkerDefaults[attachment.OrphanSweepArgs]

	attachments attachment.Service
}

func NewOrphanSweepWorker(attachments attachment.Service) *OrphanSweepWorker {
	return &OrphanSweepWorker{attachments: attachments}
}

func (w *OrphanSweepWorker) Work(ctx context.Context, job *river.Job[attachment.OrphanSweepArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	n, err := w.attachments.SweepOrphans(ctx)
	if err != nil {
		logger.Error(ctx, "error sweeping orphan blobs", zap.Error(err))

		return fmt.Errorf("could not sweep orphan blobs: %w", err)
	}
	if n > 0 {
		logger.Info(ctx, "orphan blobs swept", zap.Int64("deleted", n))
	}

	return nil
}
