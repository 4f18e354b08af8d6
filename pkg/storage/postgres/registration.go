package postgres

import (
	"context"
	"fmt"
	"registrar/pkg/domain"
	"registrar/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const registrationsEmailKey = "registrations_email_key"

func (p *PgSQL) StoreRegistration(ctx context.Context,
	reg domain.Registration,
	passwordHash string,
) (*domain.Registration, error) {
	var row pgRegistrationInsert
	if err := row.FromDomain(reg); err != nil {
		return nil, err
	}
	if passwordHash != "" {
		row.PasswordHash = &passwordHash
	}

	var out PgRegistration
	_, err := p.Builder.Insert(registrationsTable).
		Rows(row).
		Returning(&PgRegistration{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		if isUniqueViolation(err, registrationsEmailKey) {
			return nil, storage.ErrDuplicateEmail
		}

		return nil, fmt.Errorf("could not store registration: %w", err)
	}

	return out.ToDomain()
}

func (p *PgSQL) RegistrationByID(ctx context.Context, ID domain.RegistrationID) (*domain.Registration, error) {
	return p.registrationWhere(ctx, p.Builder.From(registrationsTable).Where(goqu.I("id").Eq(uuid.UUID(ID))))
}

func (p *PgSQL) RegistrationByCodeAndEmail(ctx context.Context, regCode, email string) (*domain.Registration, error) {
	return p.registrationWhere(ctx, p.Builder.From(registrationsTable).Where(
		goqu.I("reg_code").Eq(strings.TrimSpace(regCode)),
		goqu.I("email").Eq(domain.NormalizeEmail(email)),
	))
}

func (p *PgSQL) LockRegistration(ctx context.Context, ID domain.RegistrationID) (*domain.Registration, error) {
	return p.registrationWhere(ctx, p.Builder.From(registrationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		ForUpdate(exp.Wait))
}

func (p *PgSQL) registrationWhere(ctx context.Context, ds *goqu.SelectDataset) (*domain.Registration, error) {
	var row PgRegistration
	found, err := ds.ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get registration: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain()
}

func (p *PgSQL) RegistrationsByEmail(ctx context.Context, email string) ([]domain.Registration, error) {
	var rows []PgRegistration
	err := p.Builder.From(registrationsTable).
		Where(goqu.I("email").Eq(domain.NormalizeEmail(email))).
		Order(goqu.I("created_at").Desc(), goqu.I("reg_code").Desc()).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not list registrations: %w", err)
	}

	return pgRegistrationsToDomain(rows)
}

func (p *PgSQL) RegistrationCredential(ctx context.Context, email string) (*domain.RegistrationCredential, error) {
	var row pgCredential
	found, err := p.Builder.From(registrationsTable).
		Where(goqu.I("email").Eq(domain.NormalizeEmail(email))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get registration credential: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	out := domain.RegistrationCredential{
		ID:      domain.RegistrationID(row.ID),
		RegCode: row.RegCode,
		Email:   row.Email,
	}
	if row.PasswordHash != nil {
		out.PasswordHash = *row.PasswordHash
	}

	return &out, nil
}

func (p *PgSQL) UpdateRegistration(ctx context.Context, reg domain.Registration) (*domain.Registration, error) {
	var row PgRegistration
	if err := row.FromDomain(reg); err != nil {
		return nil, err
	}

	var out PgRegistration
	found, err := p.Builder.Update(registrationsTable).
		Set(goqu.Record{
			"category":      row.Category,
			"personal":      row.Personal,
			"professional":  row.Professional,
			"address":       row.Address,
			"billing":       row.Billing,
			"program":       row.Program,
			"student":       row.Student,
			"student_proof": row.StudentProof,
			"consents":      row.Consents,
			"payment":       row.Payment,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgRegistration{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, fmt.Errorf("could not update registration: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return out.ToDomain()
}

func (p *PgSQL) SearchRegistrations(ctx context.Context,
	query string,
	offset, limit uint,
) (storage.RegistrationSearch, error) {
	var where []exp.Expression
	if q := strings.TrimSpace(query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		where = append(where, goqu.Or(
			goqu.I("reg_code").ILike(pattern),
			goqu.I("email").ILike(pattern),
			goqu.L("personal->>'firstName'").ILike(pattern),
			goqu.L("personal->>'lastName'").ILike(pattern),
			goqu.L("professional->>'affiliation'").ILike(pattern),
		))
	}

	total, err := p.Builder.From(registrationsTable).Where(where...).CountContext(ctx)
	if err != nil {
		return storage.RegistrationSearch{}, fmt.Errorf("could not count registrations: %w", err)
	}

	var rows []PgRegistration
	err = p.Builder.From(registrationsTable).
		Where(where...).
		Order(goqu.I("created_at").Desc(), goqu.I("reg_code").Desc()).
		Offset(offset).
		Limit(limit).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return storage.RegistrationSearch{}, fmt.Errorf("could not search registrations: %w", err)
	}

	out, err := pgRegistrationsToDomain(rows)
	if err != nil {
		return storage.RegistrationSearch{}, err
	}

	return storage.RegistrationSearch{Rows: out, Total: total}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes every LIKE metacharacter in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
