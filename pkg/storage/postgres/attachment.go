package postgres

import (
	"context"
	"fmt"
	"registrar/pkg/domain"
	"registrar/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const attachmentsVersionKey = "attachments_registration_type_version_key"

func (p *PgSQL) MaxAttachmentVersion(ctx context.Context,
	registrationID domain.RegistrationID,
	attachmentType domain.AttachmentType,
) (int, error) {
	var version int
	_, err := p.Builder.From(attachmentsTable).
		Select(goqu.COALESCE(goqu.MAX("version"), 0)).
		Where(
			goqu.I("registration_id").Eq(uuid.UUID(registrationID)),
			goqu.I("type").Eq(string(attachmentType)),
		).
		ScanValContext(ctx, &version)
	if err != nil {
		return 0, fmt.Errorf("could not get max attachment version: %w", err)
	}

	return version, nil
}

func (p *PgSQL) StoreAttachment(ctx context.Context, attachment domain.Attachment) (*domain.Attachment, error) {
	var row PgAttachment
	row.FromDomain(attachment)

	var out PgAttachment
	_, err := p.Builder.Insert(attachmentsTable).
		Rows(row).
		Returning(&PgAttachment{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		if isUniqueViolation(err, attachmentsVersionKey) {
			return nil, storage.ErrDuplicateVersion
		}

		return nil, fmt.Errorf("could not store attachment: %w", err)
	}

	d := out.ToDomain()

	return &d, nil
}

func (p *PgSQL) RegistrationAttachments(ctx context.Context,
	registrationID domain.RegistrationID,
	attachmentType domain.AttachmentType,
) ([]domain.Attachment, error) {
	ds := p.Builder.From(attachmentsTable).
		Where(goqu.I("registration_id").Eq(uuid.UUID(registrationID)))
	if attachmentType != "" {
		ds = ds.Where(goqu.I("type").Eq(string(attachmentType)))
	}

	var rows []PgAttachment
	err := ds.Order(goqu.I("version").Desc(), goqu.I("uploaded_at").Desc(), goqu.I("type").Asc()).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not list attachments: %w", err)
	}

	out := make([]domain.Attachment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) AttachmentByID(ctx context.Context,
	registrationID domain.RegistrationID,
	ID domain.AttachmentID,
) (*domain.Attachment, error) {
	var row PgAttachment
	found, err := p.Builder.From(attachmentsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("registration_id").Eq(uuid.UUID(registrationID)),
		).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get attachment: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	d := row.ToDomain()

	return &d, nil
}
