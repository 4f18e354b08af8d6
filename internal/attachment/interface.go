package attachment

import (
	"context"
	"io"
	"registrar/pkg/domain"
)

//go:generate mockgen -package mockattachment -source=interface.go -destination=mock/mockattachment.go *
type Service interface {
	// Upload stores content as the next version of attachmentType for the
	// registration identified by (regCode, email).
	Upload(ctx context.Context,
		regCode, email string,
		attachmentType domain.AttachmentType,
		content io.Reader,
		meta FileMeta) (*domain.Attachment, error)
	// History lists the attachments of a registration, newest version first.
	// An empty attachmentType lists every type.
	History(ctx context.Context, regCode, email string, attachmentType domain.AttachmentType) ([]HistoryRow, error)
	// Download returns the payload of an attachment owned by (regCode, email).
	Download(ctx context.Context, ID domain.AttachmentID, regCode, email string) (*File, error)
	// ReclaimBlob deletes a blob if no attachment references it.
	ReclaimBlob(ctx context.Context, ID domain.AttachmentID) (bool, error)
	// SweepOrphans deletes every unreferenced blob older than the grace period.
	SweepOrphans(ctx context.Context) (int64, error)
}
