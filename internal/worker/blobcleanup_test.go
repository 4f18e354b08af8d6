package worker_test

import (
	"context"
	"errors"
	"registrar/internal/attachment"
	"registrar/internal/worker"
	"registrar/pkg/domain"
	"registrar/pkg/logger"
	"testing"

	mockattachment "registrar/internal/attachment/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeCleanupJob(id int64, blobID domain.AttachmentID) *river.Job[attachment.BlobCleanupArgs] {
	return &river.Job[attachment.BlobCleanupArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   attachment.BlobCleanupArgs{BlobID: blobID},
	}
}

func TestBlobCleanupWorker_Work(t *testing.T) {
	for _, deleted := range []bool{true, false} {
		ctrl := gomock.NewController(t)
		mock := mockattachment.NewMockService(ctrl)
		w := worker.NewBlobCleanupWorker(mock)
		blobID := domain.AttachmentID(uuid.New())

		mock.EXPECT().ReclaimBlob(gomock.Any(), blobID).Return(deleted, nil)

		require.NoError(t, w.Work(context.Background(), makeCleanupJob(1, blobID)))
	}
}

func TestBlobCleanupWorker_Work_ErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockattachment.NewMockService(ctrl)
	w := worker.NewBlobCleanupWorker(mock)
	cause := errors.New("db down")

	mock.EXPECT().ReclaimBlob(gomock.Any(), gomock.Any()).Return(false, cause)

	err := w.Work(context.Background(), makeCleanupJob(2, domain.AttachmentID(uuid.New())))
	require.ErrorIs(t, err, cause)
}

func TestOrphanSweepWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockattachment.NewMockService(ctrl)
	w := worker.NewOrphanSweepWorker(mock)

	mock.EXPECT().SweepOrphans(gomock.Any()).Return(int64(3), nil)

	require.NoError(t, w.Work(context.Background(), &river.Job[attachment.OrphanSweepArgs]{
		JobRow: &rivertype.JobRow{ID: 3},
	}))
}

func TestOrphanSweepWorker_Work_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockattachment.NewMockService(ctrl)
	w := worker.NewOrphanSweepWorker(mock)

	mock.EXPECT().SweepOrphans(gomock.Any()).Return(int64(0), errors.New("db down"))

	require.Error(t, w.Work(context.Background(), &river.Job[attachment.OrphanSweepArgs]{
		JobRow: &rivertype.JobRow{ID: 4},
	}))
}

func TestBlobCleanupArgs_InsertOpts(t *testing.T) {
	opts := attachment.BlobCleanupArgs{}.InsertOpts()
	require.True(t, opts.UniqueOpts.ByArgs)
	require.Equal(t, "ReclaimOrphanBlob", attachment.BlobCleanupArgs{}.Kind())
	require.Equal(t, "SweepOrphanBlobs", attachment.OrphanSweepArgs{}.Kind())
}
