// Package attachment stores versioned registrant uploads. Payloads go to the
// blob bucket first and the attachment record is appended afterwards, so a
// failure in between can only leave an unreferenced blob, which the worker
// reclaims.
package attachment

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/url"
	"registrar/internal/config"
	"registrar/pkg/domain"
	"registrar/pkg/logger"
	"registrar/pkg/metrics"
	"registrar/pkg/serrors"
	"registrar/pkg/storage"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("registrar/internal/attachment") //nolint: gochecknoglobals

// DefaultDownloadPath is the route prefix download URLs are built from.
const DefaultDownloadPath = "/api/uploads/download/"

// Options configure upload limits and orphan reclamation.
type Options struct {
	// MaxSize is the largest accepted payload in bytes.
	MaxSize int64
	// BlobWriteTimeout bounds a single blob write.
	BlobWriteTimeout time.Duration
	// OrphanGracePeriod is the minimum age of an unreferenced blob before the
	// sweep may delete it.
	OrphanGracePeriod time.Duration
	// CleanupMaxAttempts bounds retries of a cleanup job.
	CleanupMaxAttempts int
	// DownloadPath prefixes the download URL of every history row.
	DownloadPath string
	// Now returns the current instant. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxSize:            cfg.Uploads.MaxSize,
		BlobWriteTimeout:   cfg.Uploads.BlobWriteTimeout,
		OrphanGracePeriod:  cfg.Uploads.OrphanGracePeriod,
		CleanupMaxAttempts: cfg.Uploads.CleanupMaxAttempts,
		DownloadPath:       DefaultDownloadPath,
	}
}

// FileMeta describes an uploaded file as reported by the client.
type FileMeta struct {
	Filename    string
	ContentType string
}

// HistoryRow is an attachment listing entry.
type HistoryRow struct {
	domain.Attachment
	DownloadURL string `json:"downloadUrl"`
}

// File is a downloadable attachment payload.
type File struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type service struct {
	options Options
	storage storage.Storage
	metrics *metrics.Registrar
}

// New creates an attachment Service. m may be nil.
func New(st storage.Storage, m *metrics.Registrar, options Options) Service {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.DownloadPath == "" {
		options.DownloadPath = DefaultDownloadPath
	}

	return &service{
		options: options,
		storage: st,
		metrics: m,
	}
}

func (s *service) Upload(ctx context.Context,
	regCode, email string,
	attachmentType domain.AttachmentType,
	content io.Reader,
	meta FileMeta,
) (*domain.Attachment, error) {
	ctx, span := tracer.Start(ctx, "attachment.Upload", trace.WithAttributes(
		attribute.String("regCode", regCode),
		attribute.String("type", string(attachmentType)),
	))
	defer span.End()

	reg, err := s.authorize(ctx, regCode, email)
	if err != nil {
		return nil, err
	}
	if !attachmentType.Valid() {
		return nil, serrors.Wrap(serrors.ErrBadRequest, ErrInvalidType, "invalid attachment type")
	}
	contentType := normalizeContentType(meta.ContentType)
	if contentType == "" {
		return nil, serrors.Wrap(serrors.ErrBadRequest, ErrInvalidFormat, "only PDF, PNG or JPEG files are accepted")
	}

	// reading one byte past the limit detects oversize payloads without buffering them
	data, err := io.ReadAll(io.LimitReader(content, s.options.MaxSize+1))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read file")
	}
	if int64(len(data)) > s.options.MaxSize {
		return nil, serrors.Wrap(serrors.ErrBadRequest, ErrTooLarge, "file exceeds %d bytes", s.options.MaxSize)
	}
	if len(data) == 0 {
		return nil, serrors.Invalid("file", "is empty")
	}

	// the version in the blob name is a label; the record assigns the real one under lock
	latest, err := s.storage.MaxAttachmentVersion(ctx, reg.ID, attachmentType)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read attachment version")
	}

	sum := sha256.Sum256(data)
	filename := SanitizeFilename(meta.Filename)
	blob := domain.Blob{
		ID:          domain.AttachmentID(uuid.New()),
		Name:        BlobName(reg.RegCode, attachmentType, latest+1, filename),
		ContentType: contentType,
		Size:        int64(len(data)),
		Checksum:    hex.EncodeToString(sum[:]),
		Data:        data,
	}
	ctx = logger.WithFields(ctx, zap.String("regCode", reg.RegCode), zap.Stringer("blobID", blob.ID))

	if err := s.putBlob(ctx, blob); err != nil {
		return nil, err
	}

	stored, err := s.appendRecord(ctx, reg.ID, attachmentType, blob, filename)
	if err != nil {
		s.orphaned(ctx, blob.ID, err)

		return nil, err
	}

	s.metrics.AttachmentUploaded(ctx, string(attachmentType), stored.Size)
	logger.Info(ctx, "attachment uploaded",
		zap.String("type", string(attachmentType)),
		zap.Int("version", stored.Version),
		zap.Int64("size", stored.Size))

	return stored, nil
}

func (s *service) putBlob(ctx context.Context, blob domain.Blob) error {
	writeCtx := ctx
	if s.options.BlobWriteTimeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(ctx, s.options.BlobWriteTimeout)
		defer cancel()
	}

	if err := s.storage.PutBlob(writeCtx, blob); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return serrors.Wrap(serrors.ErrTimeout, err, "blob write timed out")
		}

		return serrors.Wrap(serrors.ErrUnavailable, err, "could not store file")
	}

	return nil
}

// appendRecord assigns the next version under a lock on the registration row
// and appends the attachment record.
func (s *service) appendRecord(ctx context.Context,
	registrationID domain.RegistrationID,
	attachmentType domain.AttachmentType,
	blob domain.Blob,
	filename string,
) (*domain.Attachment, error) {
	var stored *domain.Attachment
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		reg, err := tx.LockRegistration(ctx, registrationID)
		if err != nil {
			return fmt.Errorf("could not lock registration: %w", err)
		}
		if reg == nil {
			return serrors.With(serrors.ErrNotFound, "registration not found")
		}

		latest, err := tx.MaxAttachmentVersion(ctx, registrationID, attachmentType)
		if err != nil {
			return fmt.Errorf("could not read attachment version: %w", err)
		}

		stored, err = tx.StoreAttachment(ctx, domain.Attachment{
			ID:             blob.ID,
			RegistrationID: registrationID,
			Type:           attachmentType,
			Version:        latest + 1,
			Filename:       filename,
			Size:           blob.Size,
			ContentType:    blob.ContentType,
			Checksum:       blob.Checksum,
			UploadedAt:     s.options.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("could not store attachment: %w", err)
		}

		if attachmentType == domain.AttachmentStudentProof && !reg.StudentProof.Provided {
			reg.StudentProof.Provided = true
			if _, err := tx.UpdateRegistration(ctx, *reg); err != nil {
				return fmt.Errorf("could not flag student proof: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if serrors.KindOf(err) != nil {
			return nil, err //nolint: wrapcheck
		}
		if errors.Is(err, storage.ErrDuplicateVersion) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "concurrent upload, please retry")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not record attachment")
	}

	return stored, nil
}

// orphaned reports a blob left without a record and schedules its cleanup.
func (s *service) orphaned(ctx context.Context, ID domain.AttachmentID, cause error) {
	logger.Error(ctx, "orphaned blob", zap.Error(cause))
	s.metrics.BlobOrphaned(ctx)

	// the request context may be the reason the record failed
	jobCtx := context.WithoutCancel(ctx)
	if _, err := s.storage.AddJob(jobCtx, BlobCleanupArgs{
		BlobID:      ID,
		maxAttempts: s.options.CleanupMaxAttempts,
		delay:       time.Minute,
	}, nil); err != nil {
		logger.Error(ctx, "could not enqueue orphan blob cleanup", zap.Error(err))
	}
}

func (s *service) History(ctx context.Context,
	regCode, email string,
	attachmentType domain.AttachmentType,
) ([]HistoryRow, error) {
	reg, err := s.authorize(ctx, regCode, email)
	if err != nil {
		return nil, err
	}
	if attachmentType != "" && !attachmentType.Valid() {
		return nil, serrors.Wrap(serrors.ErrBadRequest, ErrInvalidType, "invalid attachment type")
	}

	attachments, err := s.storage.RegistrationAttachments(ctx, reg.ID, attachmentType)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not list attachments")
	}

	rows := make([]HistoryRow, 0, len(attachments))
	for _, a := range attachments {
		rows = append(rows, HistoryRow{
			Attachment:  a,
			DownloadURL: s.downloadURL(a.ID, reg.RegCode, reg.Personal.Email),
		})
	}

	return rows, nil
}

func (s *service) downloadURL(ID domain.AttachmentID, regCode, email string) string {
	q := url.Values{}
	q.Set("regCode", regCode)
	q.Set("email", email)

	return s.options.DownloadPath + url.PathEscape(ID.String()) + "?" + q.Encode()
}

func (s *service) Download(ctx context.Context, ID domain.AttachmentID, regCode, email string) (*File, error) {
	reg, err := s.authorize(ctx, regCode, email)
	if err != nil {
		return nil, err
	}

	attachment, err := s.storage.AttachmentByID(ctx, reg.ID, ID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load attachment")
	}
	if attachment == nil {
		return nil, serrors.With(serrors.ErrForbidden, "attachment does not belong to this registration")
	}

	blob, err := s.storage.BlobByID(ctx, ID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load file")
	}
	if blob == nil {
		logger.Error(ctx, "attachment without blob", zap.Stringer("attachmentID", ID))

		return nil, serrors.With(serrors.ErrNotFound, "file not found")
	}

	return &File{
		Filename:    attachment.Filename,
		ContentType: attachment.ContentType,
		Size:        blob.Size,
		Content:     bytes.NewReader(blob.Data),
	}, nil
}

func (s *service) ReclaimBlob(ctx context.Context, ID domain.AttachmentID) (bool, error) {
	deleted, err := s.storage.DeleteOrphanBlob(ctx, ID)
	if err != nil {
		return false, fmt.Errorf("could not delete orphan blob: %w", err)
	}

	return deleted, nil
}

func (s *service) SweepOrphans(ctx context.Context) (int64, error) {
	n, err := s.storage.DeleteOrphanBlobs(ctx, s.options.Now().Add(-s.options.OrphanGracePeriod))
	if err != nil {
		return 0, fmt.Errorf("could not sweep orphan blobs: %w", err)
	}

	return n, nil
}

// authorize resolves the registration owning the (regCode, email) pair.
func (s *service) authorize(ctx context.Context, regCode, email string) (*domain.Registration, error) {
	regCode = strings.TrimSpace(regCode)
	email = domain.NormalizeEmail(email)
	if regCode == "" || email == "" {
		return nil, serrors.With(serrors.ErrNotFound, "registration not found")
	}

	reg, err := s.storage.RegistrationByCodeAndEmail(ctx, regCode, email)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load registration")
	}
	if reg == nil {
		return nil, serrors.With(serrors.ErrNotFound, "registration not found")
	}

	return reg, nil
}
