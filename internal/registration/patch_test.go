package registration_test

import (
	"errors"
	"registrar/internal/registration"
	"registrar/pkg/domain"
	"registrar/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireField(t *testing.T, err error, field string) {
	t.Helper()

	require.ErrorIs(t, err, serrors.ErrBadRequest)
	var se *serrors.Error
	require.True(t, errors.As(err, &se))
	require.Equal(t, field, se.Field())
}

func TestDecodePatch(t *testing.T) {
	p, err := registration.DecodePatch([]byte(`{"personal":{"phone":"+60 12"},"consents":{"marketingOptIn":true}}`))
	require.NoError(t, err)
	require.NotNil(t, p.Personal)
	require.Equal(t, "+60 12", *p.Personal.Phone)
	require.Nil(t, p.Personal.FirstName)
	require.True(t, *p.Consents.MarketingOptIn)
	require.Nil(t, p.Address)
}

func TestDecodePatch_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"empty body", ``, "updates"},
		{"not an object", `[1,2]`, "updates"},
		{"no fields", `{}`, "updates"},
		{"registration code", `{"regCode":"MTERM2026-000001"}`, "regCode"},
		{"mongo style id", `{"_id":"x"}`, "_id"},
		{"nested email", `{"personal":{"email":"x@y.z"}}`, "personal.email"},
		{"creation time", `{"createdAt":"2026-01-01"}`, "createdAt"},
		{"pricing snapshot", `{"pricingSnapshot":{"total":1}}`, "pricingSnapshot"},
		{"payment", `{"payment":{"status":"paid"}}`, "payment"},
		{"proof review", `{"studentProof":{"status":"verified"}}`, "studentProof.status"},
		{"unknown nested key", `{"address":{"planet":"Mars"}}`, "address.planet"},
		{"wrong type", `{"program":{"presenting":"yes"}}`, "program.presenting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registration.DecodePatch([]byte(tt.body))
			requireField(t, err, tt.field)
		})
	}
}

func TestDecodeAdminPatch(t *testing.T) {
	p, err := registration.DecodeAdminPatch([]byte(
		`{"payment":{"status":"paid"},"studentProof":{"status":"verified","provided":true},"personal":{"lastName":"Lim"}}`))
	require.NoError(t, err)
	require.Equal(t, domain.PaymentPaid, *p.Payment.Status)
	require.Equal(t, domain.VerificationVerified, *p.StudentProof.Status)
	require.True(t, *p.StudentProof.Provided)
	require.Equal(t, "Lim", *p.Personal.LastName)

	_, err = registration.DecodeAdminPatch([]byte(`{"email":"x@y.z"}`))
	requireField(t, err, "email")
}
