// Package registration implements the registration lifecycle: creation with a
// unique code and frozen price snapshot, registrant login, self-service
// amendments and operator search and edit.
package registration

import (
	"context"
	"errors"
	"fmt"
	"math"
	"registrar/internal/config"
	"registrar/internal/pricing"
	"registrar/internal/sequence"
	"registrar/internal/session"
	"registrar/pkg/credential"
	"registrar/pkg/domain"
	"registrar/pkg/logger"
	"registrar/pkg/metrics"
	"registrar/pkg/serrors"
	"registrar/pkg/storage"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("registrar/internal/registration") //nolint: gochecknoglobals

// invalidCredentials is the single answer to every failed login.
const invalidCredentials = "invalid email or password"

// Options configure code issuance, credentials, sessions and search paging.
type Options struct {
	// EventCode prefixes every registration code.
	EventCode string
	// CounterKey names the counter that numbers registrations.
	CounterKey string
	// CodeWidth is the zero-padded width of the numeric part of a code.
	CodeWidth int
	// BcryptCost is the password hash work factor. Zero uses the default.
	BcryptCost int
	// SessionTTL is how long a login session stays valid.
	SessionTTL time.Duration
	// SearchDefaultLimit is the page size used when none is requested.
	SearchDefaultLimit int
	// SearchMaxLimit bounds the page size.
	SearchMaxLimit int
	// Now returns the current instant. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		EventCode:          cfg.Registration.EventCode,
		CounterKey:         cfg.Registration.CounterKey,
		CodeWidth:          cfg.Registration.CodeWidth,
		BcryptCost:         cfg.Registration.BcryptCost,
		SessionTTL:         cfg.Session.TTL,
		SearchDefaultLimit: cfg.Registration.SearchDefaultLimit,
		SearchMaxLimit:     cfg.Registration.SearchMaxLimit,
	}
}

// Deps are the collaborators of the registration service.
type Deps struct {
	Storage  storage.Storage
	Pricing  pricing.Service
	Sessions session.Store
	// Metrics may be nil.
	Metrics *metrics.Registrar
}

// Summary is the short form of a registration returned by Lookup.
type Summary struct {
	RegCode         string                 `json:"regCode"`
	Category        domain.Category        `json:"category"`
	PricingSnapshot domain.PricingSnapshot `json:"pricingSnapshot"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// SearchResult is one page of an operator search.
type SearchResult struct {
	Rows  []domain.Registration `json:"rows"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

type service struct {
	options Options
	deps    Deps

	dummyHashOnce sync.Once
	dummyHash     string
}

// New creates a registration Service.
func New(deps Deps, options Options) Service {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.SearchMaxLimit <= 0 {
		options.SearchMaxLimit = 100
	}
	if options.SearchDefaultLimit <= 0 || options.SearchDefaultLimit > options.SearchMaxLimit {
		options.SearchDefaultLimit = min(20, options.SearchMaxLimit)
	}

	return &service{
		options: options,
		deps:    deps,
	}
}

func (s *service) Create(ctx context.Context, in CreateInput) (*domain.Registration, error) {
	ctx, span := tracer.Start(ctx, "registration.Create")
	defer span.End()

	in.normalize()
	if err := in.validate(s.options.Now()); err != nil {
		return nil, err
	}
	reg := in.build()

	var passwordHash string
	if in.Password != "" {
		hash, err := credential.Hash(in.Password, s.options.BcryptCost)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		passwordHash = hash
	}

	snapshot, err := s.deps.Pricing.Quote(ctx, reg.Category, reg.Addons.Dinner)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			return nil, err //nolint: wrapcheck
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "pricing not configured")
	}
	reg.PricingSnapshot = snapshot

	var stored *domain.Registration
	if err := s.deps.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		// allocating inside the transaction returns the number when the insert fails
		seq, err := sequence.New(tx).Allocate(ctx, s.options.CounterKey)
		if err != nil {
			return err //nolint: wrapcheck
		}
		reg.RegCode = sequence.FormatCode(s.options.EventCode, seq, s.options.CodeWidth)

		stored, err = tx.StoreRegistration(ctx, reg, passwordHash)
		if err != nil {
			return fmt.Errorf("could not store registration: %w", err)
		}

		return nil
	}); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "registration already exists")
		}
		if serrors.KindOf(err) != nil {
			return nil, err //nolint: wrapcheck
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not create registration")
	}

	span.SetAttributes(attribute.String("regCode", stored.RegCode))
	s.deps.Metrics.RegistrationCreated(ctx, string(stored.Category), string(stored.PricingSnapshot.Phase))
	logger.Info(ctx, "registration created",
		zap.String("regCode", stored.RegCode),
		zap.String("category", string(stored.Category)),
		zap.String("phase", string(stored.PricingSnapshot.Phase)),
		zap.Int64("total", stored.PricingSnapshot.Total))

	return stored, nil
}

func (s *service) Authenticate(ctx context.Context, email, secret string) (*domain.Session, error) {
	ctx, span := tracer.Start(ctx, "registration.Authenticate")
	defer span.End()

	email = domain.NormalizeEmail(email)
	if email == "" || secret == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, invalidCredentials)
	}

	cred, err := s.deps.Storage.RegistrationCredential(ctx, email)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load credential")
	}

	hash := s.fallbackHash()
	if cred != nil && cred.PasswordHash != "" {
		hash = cred.PasswordHash
	}
	// unknown emails still pay for a bcrypt comparison
	if err := credential.Verify(secret, hash); err != nil || cred == nil || cred.PasswordHash == "" {
		if err != nil && !errors.Is(err, credential.ErrMismatch) {
			logger.Warn(ctx, "could not verify credential", zap.Error(err))
		}

		return nil, serrors.With(serrors.ErrUnauthorized, invalidCredentials)
	}

	token, err := credential.NewToken()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not create session")
	}
	now := s.options.Now()
	sess := domain.Session{
		ID:             token,
		RegistrationID: cred.ID,
		RegCode:        cred.RegCode,
		Email:          cred.Email,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.options.SessionTTL),
	}
	if err := s.deps.Sessions.Create(ctx, sess); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not store session")
	}

	logger.Info(ctx, "registrant logged in", zap.String("regCode", cred.RegCode))

	return &sess, nil
}

// fallbackHash is compared against when no usable hash exists so that unknown
// and known emails take the same time to reject.
func (s *service) fallbackHash() string {
	s.dummyHashOnce.Do(func() {
		hash, err := credential.Hash("registrar-timing-equalizer", s.options.BcryptCost)
		if err != nil {
			logger.Warn(context.Background(), "could not create fallback hash", zap.Error(err))

			return
		}
		s.dummyHash = hash
	})

	return s.dummyHash
}

func (s *service) Session(ctx context.Context, sessionID string) (*domain.Registration, error) {
	if sessionID == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "not logged in")
	}

	sess, err := s.deps.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load session")
	}
	if sess == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "not logged in")
	}

	reg, err := s.withAttachments(ctx, s.deps.Storage, func(st storage.AllStorage) (*domain.Registration, error) {
		return st.RegistrationByID(ctx, sess.RegistrationID)
	})
	if errors.Is(err, serrors.ErrNotFound) {
		if err := s.deps.Sessions.Delete(ctx, sessionID); err != nil {
			logger.Warn(ctx, "could not delete dangling session", zap.Error(err))
		}

		return nil, serrors.With(serrors.ErrUnauthorized, "not logged in")
	}

	return reg, err
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.deps.Sessions.Delete(ctx, sessionID); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not delete session")
	}

	return nil
}

func (s *service) Lookup(ctx context.Context, email string) ([]Summary, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, serrors.Invalid("email", "is required")
	}

	rows, err := s.deps.Storage.RegistrationsByEmail(ctx, email)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not look up registrations")
	}

	out := make([]Summary, 0, len(rows))
	for _, r := range rows {
		out = append(out, Summary{
			RegCode:         r.RegCode,
			Category:        r.Category,
			PricingSnapshot: r.PricingSnapshot,
			CreatedAt:       r.CreatedAt,
		})
	}

	return out, nil
}

func (s *service) Check(ctx context.Context, regCode, email string) (*domain.Registration, error) {
	regCode, email, err := identity(regCode, email)
	if err != nil {
		return nil, err
	}

	return s.withAttachments(ctx, s.deps.Storage, func(st storage.AllStorage) (*domain.Registration, error) {
		return st.RegistrationByCodeAndEmail(ctx, regCode, email)
	})
}

func (s *service) Update(ctx context.Context, regCode, email string, patch Patch) (*domain.Registration, error) {
	ctx, span := tracer.Start(ctx, "registration.Update", trace.WithAttributes(attribute.String("regCode", regCode)))
	defer span.End()

	regCode, email, err := identity(regCode, email)
	if err != nil {
		return nil, err
	}

	current, err := s.deps.Storage.RegistrationByCodeAndEmail(ctx, regCode, email)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load registration")
	}
	if current == nil {
		return nil, serrors.With(serrors.ErrNotFound, "registration not found")
	}
	patch.normalize()
	if err := patch.validate(current.Category, s.options.Now()); err != nil {
		return nil, err
	}

	return s.amend(ctx, current.ID, patch.apply)
}

func (s *service) Search(ctx context.Context, query string, page, pageSize int) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.options.SearchDefaultLimit
	}
	pageSize = max(min(pageSize, s.options.SearchMaxLimit), 1)
	// pages past the last representable offset are empty anyway
	page = min(page, math.MaxInt/pageSize)

	res, err := s.deps.Storage.SearchRegistrations(ctx,
		strings.TrimSpace(query),
		uint(page-1)*uint(pageSize), //nolint: gosec
		uint(pageSize))               //nolint: gosec
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not search registrations")
	}

	rows := res.Rows
	if rows == nil {
		rows = []domain.Registration{}
	}

	return &SearchResult{Rows: rows, Total: res.Total, Page: page, Limit: pageSize}, nil
}

func (s *service) Get(ctx context.Context, ID domain.RegistrationID) (*domain.Registration, error) {
	return s.withAttachments(ctx, s.deps.Storage, func(st storage.AllStorage) (*domain.Registration, error) {
		return st.RegistrationByID(ctx, ID)
	})
}

func (s *service) AdminUpdate(ctx context.Context,
	ID domain.RegistrationID,
	patch AdminPatch,
) (*domain.Registration, error) {
	ctx, span := tracer.Start(ctx, "registration.AdminUpdate", trace.WithAttributes(attribute.String("id", ID.String())))
	defer span.End()

	current, err := s.deps.Storage.RegistrationByID(ctx, ID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load registration")
	}
	if current == nil {
		return nil, serrors.With(serrors.ErrNotFound, "registration not found")
	}
	patch.normalize()
	if err := patch.validate(current.Category, s.options.Now()); err != nil {
		return nil, err
	}

	return s.amend(ctx, ID, patch.apply)
}

// amend runs a read-merge-write of one registration under a row lock.
func (s *service) amend(ctx context.Context,
	ID domain.RegistrationID,
	merge func(reg *domain.Registration),
) (*domain.Registration, error) {
	var updated *domain.Registration
	err := s.deps.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		reg, err := s.withAttachments(ctx, tx, func(st storage.AllStorage) (*domain.Registration, error) {
			return st.LockRegistration(ctx, ID)
		})
		if err != nil {
			return err
		}

		merge(reg)
		res, err := tx.UpdateRegistration(ctx, *reg)
		if err != nil {
			return serrors.Wrap(serrors.ErrUnavailable, err, "could not update registration")
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "registration not found")
		}
		res.Attachments = reg.Attachments
		updated = res

		return nil
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "registration updated", zap.String("regCode", updated.RegCode))

	return updated, nil
}

// withAttachments loads a registration through fetch and attaches its full
// attachment history.
func (s *service) withAttachments(ctx context.Context,
	st storage.AllStorage,
	fetch func(st storage.AllStorage) (*domain.Registration, error),
) (*domain.Registration, error) {
	reg, err := fetch(st)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load registration")
	}
	if reg == nil {
		return nil, serrors.With(serrors.ErrNotFound, "registration not found")
	}

	attachments, err := st.RegistrationAttachments(ctx, reg.ID, "")
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load attachments")
	}
	reg.Attachments = attachments

	return reg, nil
}

// identity trims and checks the (regCode, email) pair that authorizes a
// registrant without a session.
func identity(regCode, email string) (string, string, error) {
	regCode = strings.TrimSpace(regCode)
	email = domain.NormalizeEmail(email)
	if regCode == "" {
		return "", "", serrors.Invalid("regCode", "is required")
	}
	if email == "" {
		return "", "", serrors.Invalid("email", "is required")
	}

	return regCode, email, nil
}
