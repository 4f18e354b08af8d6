package postgres

import (
	"context"
	"fmt"
	"registrar/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// unreferenced matches blobs that no attachment points at.
var unreferenced = goqu.L("NOT EXISTS (SELECT 1 FROM attachments WHERE attachments.id = blobs.id)")

func (p *PgSQL) PutBlob(ctx context.Context, blob domain.Blob) error {
	// payloads are binary, so they travel as bound parameters rather than
	// interpolated literals
	_, err := p.Builder.Insert(blobsTable).
		Prepared(true).
		Rows(PgBlob{
			ID:          uuid.UUID(blob.ID),
			Name:        blob.Name,
			ContentType: blob.ContentType,
			Size:        blob.Size,
			Checksum:    blob.Checksum,
			Data:        blob.Data,
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not put blob: %w", err)
	}

	return nil
}

func (p *PgSQL) BlobByID(ctx context.Context, ID domain.AttachmentID) (*domain.Blob, error) {
	var row PgBlob
	found, err := p.Builder.From(blobsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get blob: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteOrphanBlob(ctx context.Context, ID domain.AttachmentID) (bool, error) {
	res, err := p.Builder.Delete(blobsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID)), unreferenced).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete blob: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) DeleteOrphanBlobs(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := p.Builder.Delete(blobsTable).
		Where(goqu.I("created_at").Lt(olderThan), unreferenced).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete orphan blobs: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
