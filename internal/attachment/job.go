package attachment

import (
	"registrar/pkg/domain"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// BlobCleanupArgs asks the worker to reclaim a blob whose attachment record
// was never committed.
type BlobCleanupArgs struct {
	// BlobID is unique so at most one cleanup per blob is pending at a time.
	BlobID domain.AttachmentID `json:"blobId" river:"unique"`

	// maxAttempts bounds retries of the cleanup.
	maxAttempts int
	// delay postpones the first attempt so an in-flight record transaction
	// can finish before the blob is judged.
	delay time.Duration
}

// Kind returns the River job kind used to register and dispatch the cleanup worker.
func (args BlobCleanupArgs) Kind() string { return "ReclaimOrphanBlob" }

// InsertOpts returns the River options controlling retries and uniqueness.
func (args BlobCleanupArgs) InsertOpts() river.InsertOpts {
	opts := river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
	if args.delay > 0 {
		opts.ScheduledAt = time.Now().Add(args.delay)
	}

	return opts
}

// OrphanSweepArgs triggers a sweep of every unreferenced blob older than the
// grace period. It is enqueued periodically by the worker.
type OrphanSweepArgs struct{}

// Kind returns the River job kind of the periodic sweep.
func (OrphanSweepArgs) Kind() string { return "SweepOrphanBlobs" }

// InsertOpts keeps a single sweep queued at a time.
func (OrphanSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}
