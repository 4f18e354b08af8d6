package registration

import (
	"errors"
	"registrar/pkg/domain"
	"registrar/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

func validInput() CreateInput {
	return CreateInput{
		Category: domain.CategoryAcademia,
		Personal: domain.Personal{FirstName: "Aisha", LastName: "Rahman", Email: "aisha@uni.edu.my"},
		Professional: domain.Professional{
			Affiliation: "Universiti Malaya",
		},
		Consents: domain.Consents{PDPA: true, CodeOfConduct: true},
	}
}

func TestCreateInput_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *CreateInput)
		field  string
	}{
		{"valid", func(*CreateInput) {}, ""},
		{"unknown category", func(in *CreateInput) { in.Category = "vip" }, "category"},
		{"blank first name", func(in *CreateInput) { in.Personal.FirstName = "   " }, "personal.firstName"},
		{"missing affiliation", func(in *CreateInput) { in.Professional.Affiliation = "" }, "professional.affiliation"},
		{"malformed email", func(in *CreateInput) { in.Personal.Email = "not-an-email" }, "personal.email"},
		{"display name email", func(in *CreateInput) { in.Personal.Email = "Aisha <a@b.co>" }, "personal.email"},
		{"pdpa declined", func(in *CreateInput) { in.Consents.PDPA = false }, "consents.pdpa"},
		{"code of conduct declined", func(in *CreateInput) { in.Consents.CodeOfConduct = false }, "consents.codeOfConduct"},
		{"student without university", func(in *CreateInput) {
			in.Category = domain.CategoryStudent
		}, "student.university"},
		{"graduation year in the past", func(in *CreateInput) {
			in.Category = domain.CategoryStudent
			in.Student = domain.Student{University: "UM", ExpectedGradYear: 2010}
		}, "student.expectedGradYear"},
		{"password too long", func(in *CreateInput) { in.Password = strings.Repeat("x", 73) }, "password"},
		{"oversized field", func(in *CreateInput) { in.Address.City = strings.Repeat("k", 201) }, "address.city"},
		{"non-student graduation year ignored", func(in *CreateInput) {
			in.Student = domain.Student{ExpectedGradYear: 1990}
		}, ""},
		{"oversized billing field", func(in *CreateInput) { in.Billing.TaxNo = strings.Repeat("t", 201) }, "billing.taxNo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			in.normalize()
			err := in.validate(testNow)
			if tt.field == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, serrors.ErrBadRequest)
			var se *serrors.Error
			require.True(t, errors.As(err, &se))
			require.Equal(t, tt.field, se.Field())
		})
	}
}

func TestCreateInput_ReportsFirstFieldInDeclarationOrder(t *testing.T) {
	in := validInput()
	long := strings.Repeat("x", 201)
	in.Billing.PONumber = long
	in.Address.Line2 = long
	in.Program.Title = long
	in.normalize()

	for range 20 {
		err := in.validate(testNow)
		var se *serrors.Error
		require.True(t, errors.As(err, &se))
		require.Equal(t, "address.line2", se.Field())
	}
}

func TestCreateInput_ValidationMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *CreateInput)
		message string
	}{
		{"required", func(in *CreateInput) { in.Personal.LastName = "" }, "is required"},
		{"email", func(in *CreateInput) { in.Personal.Email = "a@" }, "is not a valid email address"},
		{"consent", func(in *CreateInput) { in.Consents.CodeOfConduct = false }, "must be accepted"},
		{"category", func(in *CreateInput) { in.Category = "" }, "must be one of student, academia, industry"},
		{"length", func(in *CreateInput) { in.Professional.RoleTitle = strings.Repeat("r", 201) }, "must be at most 200 characters"},
		{"graduation year", func(in *CreateInput) {
			in.Category = domain.CategoryStudent
			in.Student = domain.Student{University: "UM", ExpectedGradYear: testNow.Year() + 16}
		}, "is out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			in.normalize()

			var se *serrors.Error
			require.True(t, errors.As(in.validate(testNow), &se))
			require.Equal(t, se.Field()+": "+tt.message, se.Message())
		})
	}
}

func TestCreateInput_NormalizeEmail(t *testing.T) {
	in := validInput()
	in.Personal.Email = "  Aisha@UNI.edu.MY "
	in.normalize()

	require.Equal(t, "aisha@uni.edu.my", in.Personal.Email)
	require.NoError(t, in.validate(testNow))
}

func TestCreateInput_BuildDefaults(t *testing.T) {
	in := validInput()
	in.Program.Presenting = true
	reg := in.build()

	require.Equal(t, "talk", reg.Program.Type)
	require.Equal(t, domain.PaymentMethodManual, reg.Payment.Method)
	require.Equal(t, domain.PaymentPending, reg.Payment.Status)
	require.Equal(t, domain.StudentProof{}, reg.StudentProof)
	require.Empty(t, reg.RegCode)

	in.Program.Presenting = false
	require.Equal(t, "none", in.build().Program.Type)
}

func TestCreateInput_BuildStudent(t *testing.T) {
	in := validInput()
	in.Category = domain.CategoryStudent
	in.Student = domain.Student{University: "UM"}
	in.StudentProof.Deferred = true
	reg := in.build()

	require.Equal(t, "Other", reg.Student.Level)
	require.Equal(t, domain.StudentProof{
		Required: true,
		Deferred: true,
		Provided: false,
		Status:   domain.VerificationUnverified,
	}, reg.StudentProof)
}

func TestCreateInput_NonStudentDropsStudentSection(t *testing.T) {
	in := validInput()
	in.Student = domain.Student{University: "UM"}
	in.StudentProof.Deferred = true
	reg := in.build()

	require.Equal(t, domain.Student{}, reg.Student)
	require.False(t, reg.StudentProof.Required)
}
