package postgres

import (
	"encoding/json"
	"fmt"
	"registrar/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgPricingPolicy is the row layout of the pricing_policies table.
type PgPricingPolicy struct {
	Key             string          `db:"key"`
	Currency        string          `db:"currency"`
	EventStartDate  time.Time       `db:"event_start_date"`
	Base            json.RawMessage `db:"base"`
	EarlyAdjustment json.RawMessage `db:"early_adjustment"`
	LateAdjustment  json.RawMessage `db:"late_adjustment"`
	AddonPrice      int64           `db:"addon_price"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPricingPolicy) ToDomain() (*domain.PricingPolicy, error) {
	out := domain.PricingPolicy{
		Key:      p.Key,
		Currency: p.Currency,
		// DATE columns carry no zone; pin them to midnight UTC
		EventStartDate: time.Date(p.EventStartDate.Year(), p.EventStartDate.Month(), p.EventStartDate.Day(),
			0, 0, 0, 0, time.UTC),
		AddonPrice: p.AddonPrice,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if err := unmarshalColumns(
		column{"base", p.Base, &out.Base},
		column{"early_adjustment", p.EarlyAdjustment, &out.EarlyAdjustment},
		column{"late_adjustment", p.LateAdjustment, &out.LateAdjustment},
	); err != nil {
		return nil, err
	}

	return &out, nil
}

func (p *PgPricingPolicy) FromDomain(policy domain.PricingPolicy) error {
	*p = PgPricingPolicy{
		Key:            policy.Key,
		Currency:       policy.Currency,
		EventStartDate: policy.EventStartDate,
		AddonPrice:     policy.AddonPrice,
	}

	return marshalColumns(
		column{"base", &p.Base, policy.Base},
		column{"early_adjustment", &p.EarlyAdjustment, policy.EarlyAdjustment},
		column{"late_adjustment", &p.LateAdjustment, policy.LateAdjustment},
	)
}

// PgRegistration is the public row layout of the registrations table. It
// deliberately has no password_hash field so that reads scanned into it never
// select the credential column.
type PgRegistration struct {
	ID       uuid.UUID `db:"id"       goqu:"skipinsert"`
	RegCode  string    `db:"reg_code"`
	Category string    `db:"category"`
	Email    string    `db:"email"`

	Personal        json.RawMessage `db:"personal"`
	Professional    json.RawMessage `db:"professional"`
	Address         json.RawMessage `db:"address"`
	Billing         json.RawMessage `db:"billing"`
	Program         json.RawMessage `db:"program"`
	Student         json.RawMessage `db:"student"`
	StudentProof    json.RawMessage `db:"student_proof"`
	Addons          json.RawMessage `db:"addons"`
	Consents        json.RawMessage `db:"consents"`
	PricingSnapshot json.RawMessage `db:"pricing_snapshot"`
	Payment         json.RawMessage `db:"payment"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

// pgRegistrationInsert extends PgRegistration with the credential column for inserts.
type pgRegistrationInsert struct {
	PgRegistration

	PasswordHash *string `db:"password_hash"`
}

// pgCredential is the narrow credential projection of the registrations table.
type pgCredential struct {
	ID           uuid.UUID `db:"id"`
	RegCode      string    `db:"reg_code"`
	Email        string    `db:"email"`
	PasswordHash *string   `db:"password_hash"`
}

func (p *PgRegistration) ToDomain() (*domain.Registration, error) {
	out := domain.Registration{
		ID:        domain.RegistrationID(p.ID),
		RegCode:   p.RegCode,
		Category:  domain.Category(p.Category),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if err := unmarshalColumns(
		column{"personal", p.Personal, &out.Personal},
		column{"professional", p.Professional, &out.Professional},
		column{"address", p.Address, &out.Address},
		column{"billing", p.Billing, &out.Billing},
		column{"program", p.Program, &out.Program},
		column{"student", p.Student, &out.Student},
		column{"student_proof", p.StudentProof, &out.StudentProof},
		column{"addons", p.Addons, &out.Addons},
		column{"consents", p.Consents, &out.Consents},
		column{"pricing_snapshot", p.PricingSnapshot, &out.PricingSnapshot},
		column{"payment", p.Payment, &out.Payment},
	); err != nil {
		return nil, err
	}
	// the email column is the source of truth for the normalized address
	out.Personal.Email = p.Email

	return &out, nil
}

func (p *PgRegistration) FromDomain(reg domain.Registration) error {
	*p = PgRegistration{
		ID:        uuid.UUID(reg.ID),
		RegCode:   reg.RegCode,
		Category:  string(reg.Category),
		Email:     domain.NormalizeEmail(reg.Personal.Email),
		CreatedAt: reg.CreatedAt,
		UpdatedAt: reg.UpdatedAt,
	}

	return marshalColumns(
		column{"personal", &p.Personal, reg.Personal},
		column{"professional", &p.Professional, reg.Professional},
		column{"address", &p.Address, reg.Address},
		column{"billing", &p.Billing, reg.Billing},
		column{"program", &p.Program, reg.Program},
		column{"student", &p.Student, reg.Student},
		column{"student_proof", &p.StudentProof, reg.StudentProof},
		column{"addons", &p.Addons, reg.Addons},
		column{"consents", &p.Consents, reg.Consents},
		column{"pricing_snapshot", &p.PricingSnapshot, reg.PricingSnapshot},
		column{"payment", &p.Payment, reg.Payment},
	)
}

func pgRegistrationsToDomain(rows []PgRegistration) ([]domain.Registration, error) {
	out := make([]domain.Registration, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

// PgAttachment is the row layout of the attachments table.
type PgAttachment struct {
	ID             uuid.UUID `db:"id"`
	RegistrationID uuid.UUID `db:"registration_id"`
	Type           string    `db:"type"`
	Version        int       `db:"version"`
	Filename       string    `db:"filename"`
	Size           int64     `db:"size"`
	ContentType    string    `db:"content_type"`
	Checksum       string    `db:"checksum"`
	UploadedAt     time.Time `db:"uploaded_at" goqu:"skipinsert"`
}

func (p *PgAttachment) ToDomain() domain.Attachment {
	return domain.Attachment{
		ID:             domain.AttachmentID(p.ID),
		RegistrationID: domain.RegistrationID(p.RegistrationID),
		Type:           domain.AttachmentType(p.Type),
		Version:        p.Version,
		Filename:       p.Filename,
		Size:           p.Size,
		ContentType:    p.ContentType,
		Checksum:       p.Checksum,
		UploadedAt:     p.UploadedAt,
	}
}

func (p *PgAttachment) FromDomain(a domain.Attachment) {
	*p = PgAttachment{
		ID:             uuid.UUID(a.ID),
		RegistrationID: uuid.UUID(a.RegistrationID),
		Type:           string(a.Type),
		Version:        a.Version,
		Filename:       a.Filename,
		Size:           a.Size,
		ContentType:    a.ContentType,
		Checksum:       a.Checksum,
		UploadedAt:     a.UploadedAt,
	}
}

// PgBlob is the row layout of the blobs table.
type PgBlob struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	ContentType string    `db:"content_type"`
	Size        int64     `db:"size"`
	Checksum    string    `db:"checksum"`
	Data        []byte    `db:"data"`
	CreatedAt   time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgBlob) ToDomain() *domain.Blob {
	return &domain.Blob{
		ID:          domain.AttachmentID(p.ID),
		Name:        p.Name,
		ContentType: p.ContentType,
		Size:        p.Size,
		Checksum:    p.Checksum,
		Data:        p.Data,
		CreatedAt:   p.CreatedAt,
	}
}

// column pairs a JSONB column name with its raw value and its domain value.
// For unmarshalling raw is json.RawMessage and value a pointer; for
// marshalling raw is *json.RawMessage and value the source.
type column struct {
	name  string
	raw   any
	value any
}

func unmarshalColumns(cols ...column) error {
	for _, c := range cols {
		raw, _ := c.raw.(json.RawMessage)
		if len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, c.value); err != nil {
			return fmt.Errorf("could not unmarshal %s: %w", c.name, err)
		}
	}

	return nil
}

func marshalColumns(cols ...column) error {
	for _, c := range cols {
		b, err := json.Marshal(c.value)
		if err != nil {
			return fmt.Errorf("could not marshal %s: %w", c.name, err)
		}
		dst, _ := c.raw.(*json.RawMessage)
		*dst = b
	}

	return nil
}
