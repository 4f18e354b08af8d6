package attachment_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"registrar/internal/attachment"
	"registrar/pkg/domain"
	"registrar/pkg/serrors"
	"registrar/pkg/storage"
	"strings"
	"testing"
	"time"

	mockstorage "registrar/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	regCode = "MTERM2026-000042"
	email   = "wei.tan@example.com"
)

var now = time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, attachment.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := attachment.New(st, nil, attachment.Options{
		MaxSize:            16,
		BlobWriteTimeout:   time.Second,
		OrphanGracePeriod:  time.Hour,
		CleanupMaxAttempts: 5,
		Now:                func() time.Time { return now },
	})

	return ctrl, st, s
}

func expectWithTx(t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage),
) *gomock.Call {
	t.Helper()

	return m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func testRegistration() *domain.Registration {
	return &domain.Registration{
		ID:       domain.RegistrationID(uuid.New()),
		RegCode:  regCode,
		Category: domain.CategoryStudent,
		Personal: domain.Personal{Email: email},
		StudentProof: domain.StudentProof{
			Required: true, Status: domain.VerificationUnverified,
		},
	}
}

func TestService_Upload_StudentProof(t *testing.T) {
	ctrl, st, s := newTestService(t)
	reg := testRegistration()
	var blobID domain.AttachmentID

	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), regCode, email).Return(reg, nil)
	st.EXPECT().MaxAttachmentVersion(gomock.Any(), reg.ID, domain.AttachmentStudentProof).Return(1, nil)
	st.EXPECT().PutBlob(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b domain.Blob) error {
		_, hasDeadline := ctx.Deadline()
		require.True(t, hasDeadline)
		require.Equal(t, regCode+"/studentProof/v2-card_2026.pdf", b.Name)
		require.Equal(t, "application/pdf", b.ContentType)
		require.Equal(t, int64(5), b.Size)
		require.Len(t, b.Checksum, 64)
		blobID = b.ID

		return nil
	})
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockRegistration(gomock.Any(), reg.ID).Return(reg, nil)
		tx.EXPECT().MaxAttachmentVersion(gomock.Any(), reg.ID, domain.AttachmentStudentProof).Return(1, nil)
		tx.EXPECT().StoreAttachment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a domain.Attachment) (*domain.Attachment, error) {
				require.Equal(t, blobID, a.ID)
				require.Equal(t, 2, a.Version)
				require.Equal(t, "card_2026.pdf", a.Filename)

				return &a, nil
			})
		tx.EXPECT().UpdateRegistration(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r domain.Registration) (*domain.Registration, error) {
				require.True(t, r.StudentProof.Provided)

				return &r, nil
			})
	})

	a, err := s.Upload(context.Background(), regCode, " Wei.Tan@Example.com", domain.AttachmentStudentProof,
		strings.NewReader("%PDF-"), attachment.FileMeta{Filename: "card 2026.pdf", ContentType: "application/pdf"})
	require.NoError(t, err)
	require.Equal(t, 2, a.Version)
}

func TestService_Upload_SlidesLeaveProofAlone(t *testing.T) {
	ctrl, st, s := newTestService(t)
	reg := testRegistration()

	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), regCode, email).Return(reg, nil)
	st.EXPECT().MaxAttachmentVersion(gomock.Any(), reg.ID, domain.AttachmentSlides).Return(0, nil)
	st.EXPECT().PutBlob(gomock.Any(), gomock.Any()).Return(nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockRegistration(gomock.Any(), reg.ID).Return(reg, nil)
		tx.EXPECT().MaxAttachmentVersion(gomock.Any(), reg.ID, domain.AttachmentSlides).Return(0, nil)
		tx.EXPECT().StoreAttachment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a domain.Attachment) (*domain.Attachment, error) {
				return &a, nil
			})
	})

	a, err := s.Upload(context.Background(), regCode, email, domain.AttachmentSlides,
		strings.NewReader("png!"), attachment.FileMeta{Filename: "talk.png", ContentType: "image/png"})
	require.NoError(t, err)
	require.Equal(t, 1, a.Version)
}

func TestService_Upload_Rejects(t *testing.T) {
	tests := []struct {
		name        string
		typ         domain.AttachmentType
		contentType string
		content     string
		cause       error
	}{
		{"unknown type", "passport", "application/pdf", "x", attachment.ErrInvalidType},
		{"unsupported format", domain.AttachmentAbstract, "application/msword", "x", attachment.ErrInvalidFormat},
		{"missing format", domain.AttachmentAbstract, "", "x", attachment.ErrInvalidFormat},
		{"too large", domain.AttachmentAbstract, "application/pdf", strings.Repeat("x", 17), attachment.ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, st, s := newTestService(t)
			st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(testRegistration(), nil)

			// no blob or record is written
			_, err := s.Upload(context.Background(), regCode, email, tt.typ,
				strings.NewReader(tt.content), attachment.FileMeta{Filename: "f", ContentType: tt.contentType})
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestService_Upload_ExactlyMaxSize(t *testing.T) {
	ctrl, st, s := newTestService(t)
	reg := testRegistration()

	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(reg, nil)
	st.EXPECT().MaxAttachmentVersion(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	st.EXPECT().PutBlob(gomock.Any(), gomock.Any()).Return(nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockRegistration(gomock.Any(), reg.ID).Return(reg, nil)
		tx.EXPECT().MaxAttachmentVersion(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
		tx.EXPECT().StoreAttachment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a domain.Attachment) (*domain.Attachment, error) {
				return &a, nil
			})
	})

	a, err := s.Upload(context.Background(), regCode, email, domain.AttachmentBankReceipt,
		bytes.NewReader(bytes.Repeat([]byte("x"), 16)), attachment.FileMeta{Filename: "r.jpg", ContentType: "image/jpeg"})
	require.NoError(t, err)
	require.Equal(t, int64(16), a.Size)
}

func TestService_Upload_UnknownRegistration(t *testing.T) {
	_, st, s := newTestService(t)
	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.Upload(context.Background(), regCode, "someone@else.com", domain.AttachmentSlides,
		strings.NewReader("x"), attachment.FileMeta{ContentType: "image/png"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Upload_BlobWriteFails(t *testing.T) {
	_, st, s := newTestService(t)
	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(testRegistration(), nil)
	st.EXPECT().MaxAttachmentVersion(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	st.EXPECT().PutBlob(gomock.Any(), gomock.Any()).Return(errors.New("bucket down"))

	// no record transaction is opened
	_, err := s.Upload(context.Background(), regCode, email, domain.AttachmentSlides,
		strings.NewReader("x"), attachment.FileMeta{ContentType: "image/png"})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestService_Upload_RecordFailsSchedulesCleanup(t *testing.T) {
	ctrl, st, s := newTestService(t)
	reg := testRegistration()
	var blobID domain.AttachmentID

	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(reg, nil)
	st.EXPECT().MaxAttachmentVersion(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	st.EXPECT().PutBlob(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b domain.Blob) error {
		blobID = b.ID

		return nil
	})
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockRegistration(gomock.Any(), reg.ID).Return(nil, errors.New("connection reset"))
	})
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			cleanup, ok := args.(attachment.BlobCleanupArgs)
			require.True(t, ok)
			require.Equal(t, blobID, cleanup.BlobID)
			require.Equal(t, 5, cleanup.InsertOpts().MaxAttempts)

			return true, nil
		})

	_, err := s.Upload(context.Background(), regCode, email, domain.AttachmentSlides,
		strings.NewReader("x"), attachment.FileMeta{ContentType: "image/png"})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestService_Upload_VersionRace(t *testing.T) {
	ctrl, st, s := newTestService(t)
	reg := testRegistration()

	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(reg, nil)
	st.EXPECT().MaxAttachmentVersion(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	st.EXPECT().PutBlob(gomock.Any(), gomock.Any()).Return(nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockRegistration(gomock.Any(), reg.ID).Return(reg, nil)
		tx.EXPECT().MaxAttachmentVersion(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
		tx.EXPECT().StoreAttachment(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateVersion)
	})
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)

	_, err := s.Upload(context.Background(), regCode, email, domain.AttachmentAbstract,
		strings.NewReader("x"), attachment.FileMeta{ContentType: "application/pdf"})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestService_History(t *testing.T) {
	_, st, s := newTestService(t)
	reg := testRegistration()
	id := domain.AttachmentID(uuid.New())

	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), regCode, email).Return(reg, nil)
	st.EXPECT().RegistrationAttachments(gomock.Any(), reg.ID, domain.AttachmentBankReceipt).Return([]domain.Attachment{
		{ID: id, Type: domain.AttachmentBankReceipt, Version: 2},
		{Type: domain.AttachmentBankReceipt, Version: 1},
	}, nil)

	rows, err := s.History(context.Background(), regCode, email, domain.AttachmentBankReceipt)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 2, rows[0].Version)
	require.Equal(t,
		"/api/uploads/download/"+id.String()+"?email=wei.tan%40example.com&regCode=MTERM2026-000042",
		rows[0].DownloadURL)
}

func TestService_History_InvalidType(t *testing.T) {
	_, st, s := newTestService(t)
	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(testRegistration(), nil)

	_, err := s.History(context.Background(), regCode, email, "selfie")
	require.ErrorIs(t, err, attachment.ErrInvalidType)
}

func TestService_Download(t *testing.T) {
	_, st, s := newTestService(t)
	reg := testRegistration()
	id := domain.AttachmentID(uuid.New())

	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), regCode, email).Return(reg, nil)
	st.EXPECT().AttachmentByID(gomock.Any(), reg.ID, id).Return(&domain.Attachment{
		ID: id, Filename: "slides.pdf", ContentType: "application/pdf",
	}, nil)
	st.EXPECT().BlobByID(gomock.Any(), id).Return(&domain.Blob{ID: id, Size: 3, Data: []byte("pdf")}, nil)

	f, err := s.Download(context.Background(), id, regCode, email)
	require.NoError(t, err)
	require.Equal(t, "slides.pdf", f.Filename)
	require.Equal(t, "application/pdf", f.ContentType)
	data, err := io.ReadAll(f.Content)
	require.NoError(t, err)
	require.Equal(t, "pdf", string(data))
}

func TestService_Download_OtherRegistration(t *testing.T) {
	_, st, s := newTestService(t)
	reg := testRegistration()
	id := domain.AttachmentID(uuid.New())

	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(reg, nil)
	st.EXPECT().AttachmentByID(gomock.Any(), reg.ID, id).Return(nil, nil)

	_, err := s.Download(context.Background(), id, regCode, email)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestService_Download_WrongPair(t *testing.T) {
	_, st, s := newTestService(t)
	st.EXPECT().RegistrationByCodeAndEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.Download(context.Background(), domain.AttachmentID(uuid.New()), regCode, email)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_SweepOrphans(t *testing.T) {
	_, st, s := newTestService(t)
	st.EXPECT().DeleteOrphanBlobs(gomock.Any(), now.Add(-time.Hour)).Return(int64(4), nil)

	n, err := s.SweepOrphans(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
}

func TestService_ReclaimBlob(t *testing.T) {
	_, st, s := newTestService(t)
	id := domain.AttachmentID(uuid.New())
	st.EXPECT().DeleteOrphanBlob(gomock.Any(), id).Return(false, nil)

	deleted, err := s.ReclaimBlob(context.Background(), id)
	require.NoError(t, err)
	require.False(t, deleted)
}
