package storage

import (
	"context"
	"registrar/pkg/domain"
	"time"
)

// AttachmentStorage persists attachment records. Records are append-only.
type AttachmentStorage interface {
	// MaxAttachmentVersion returns the highest version stored for the
	// (registration, type) pair, or 0 when none exists.
	MaxAttachmentVersion(ctx context.Context,
		registrationID domain.RegistrationID,
		attachmentType domain.AttachmentType) (int, error)
	// StoreAttachment appends an attachment record. It returns
	// ErrDuplicateVersion when the version is already taken.
	StoreAttachment(ctx context.Context, attachment domain.Attachment) (*domain.Attachment, error)
	// RegistrationAttachments lists attachments of a registration ordered by
	// version descending. An empty type lists every type.
	RegistrationAttachments(ctx context.Context,
		registrationID domain.RegistrationID,
		attachmentType domain.AttachmentType) ([]domain.Attachment, error)
	// AttachmentByID returns the attachment only if it belongs to the given
	// registration; nil otherwise.
	AttachmentByID(ctx context.Context,
		registrationID domain.RegistrationID,
		ID domain.AttachmentID) (*domain.Attachment, error)
}

// BlobStorage is the bucket holding attachment payloads.
type BlobStorage interface {
	// PutBlob durably writes a payload under blob.ID.
	PutBlob(ctx context.Context, blob domain.Blob) error
	// BlobByID reads a payload, or returns nil when it does not exist.
	BlobByID(ctx context.Context, ID domain.AttachmentID) (*domain.Blob, error)
	// DeleteOrphanBlob deletes the blob only if no attachment references it.
	// It reports whether a blob was deleted.
	DeleteOrphanBlob(ctx context.Context, ID domain.AttachmentID) (bool, error)
	// DeleteOrphanBlobs deletes unreferenced blobs created before olderThan and
	// returns how many were removed.
	DeleteOrphanBlobs(ctx context.Context, olderThan time.Time) (int64, error)
}
