package pricing_test

import (
	"context"
	"errors"
	"registrar/internal/config"
	"registrar/internal/pricing"
	"registrar/pkg/domain"
	"registrar/pkg/serrors"
	"testing"
	"time"

	mockstorage "registrar/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, now time.Time) (*mockstorage.MockAllStorage, pricing.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	s := pricing.New(st, pricing.Options{
		PolicyKey: "pricing-2026",
		Location:  time.UTC,
		Now:       func() time.Time { return now },
	})

	return st, s
}

func TestService_Quote(t *testing.T) {
	st, s := newTestService(t, day(2026, time.April, 1))
	policy := testPolicy()
	st.EXPECT().PricingPolicy(gomock.Any(), "pricing-2026").Return(&policy, nil)

	snapshot, err := s.Quote(context.Background(), domain.CategoryStudent, true)
	require.NoError(t, err)
	require.Equal(t, domain.PricingSnapshot{
		Currency: "MYR", Phase: domain.PhaseEarlyBird, Base: 200, AddonsTotal: 150, Total: 350,
	}, snapshot)
}

func TestService_Quote_NotSeeded(t *testing.T) {
	st, s := newTestService(t, day(2026, time.April, 1))
	st.EXPECT().PricingPolicy(gomock.Any(), "pricing-2026").Return(nil, nil)

	_, err := s.Quote(context.Background(), domain.CategoryStudent, false)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Quote_StorageFailure(t *testing.T) {
	st, s := newTestService(t, day(2026, time.April, 1))
	st.EXPECT().PricingPolicy(gomock.Any(), "pricing-2026").Return(nil, errors.New("db down"))

	_, err := s.Quote(context.Background(), domain.CategoryStudent, false)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestService_Table(t *testing.T) {
	st, s := newTestService(t, day(2026, time.July, 25))
	policy := testPolicy()
	st.EXPECT().PricingPolicy(gomock.Any(), "pricing-2026").Return(&policy, nil)

	table, err := s.Table(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.PhaseLateOnSite, table.NowPhase)
	require.Len(t, table.Rows, 3)
}

func TestService_Seed(t *testing.T) {
	st, s := newTestService(t, day(2026, time.April, 1))
	policy := testPolicy()
	st.EXPECT().UpsertPricingPolicy(gomock.Any(), policy).Return(&policy, nil)

	got, err := s.Seed(context.Background(), policy)
	require.NoError(t, err)
	require.Equal(t, policy, *got)
}

func TestService_Seed_Validation(t *testing.T) {
	_, s := newTestService(t, day(2026, time.April, 1))

	tests := []struct {
		name   string
		mutate func(p *domain.PricingPolicy)
		field  string
	}{
		{"empty key", func(p *domain.PricingPolicy) { p.Key = "" }, "key"},
		{"bad currency", func(p *domain.PricingPolicy) { p.Currency = "RM" }, "currency"},
		{"no start", func(p *domain.PricingPolicy) { p.EventStartDate = time.Time{} }, "eventStartDate"},
		{"negative addon", func(p *domain.PricingPolicy) { p.AddonPrice = -1 }, "addonPrice"},
		{"negative early price", func(p *domain.PricingPolicy) { p.EarlyAdjustment.Student = -300 }, "base"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := testPolicy()
			tt.mutate(&policy)

			_, err := s.Seed(context.Background(), policy)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			var se *serrors.Error
			require.ErrorAs(t, err, &se)
			require.Equal(t, tt.field, se.Field())
		})
	}
}

func TestSeedPolicy_FromConfig(t *testing.T) {
	cfg, err := config.LoadEnv()
	require.NoError(t, err)

	policy, err := pricing.SeedPolicy(cfg)
	require.NoError(t, err)

	want := testPolicy()
	require.Equal(t, want, policy)
}

func TestSeedPolicy_BadDate(t *testing.T) {
	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	cfg.Pricing.Seed.EventStartDate = "01/08/2026"

	_, err = pricing.SeedPolicy(cfg)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
