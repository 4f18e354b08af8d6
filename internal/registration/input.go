package registration

import (
	"registrar/pkg/domain"
	"strings"
	"time"
)

// defaultStudentLevel is recorded when a student leaves the level blank.
const defaultStudentLevel = "Other"

// StudentProofInput carries the only proof flag a registrant chooses.
type StudentProofInput struct {
	// Deferred means the proof will be uploaded later.
	Deferred bool `json:"deferred"`
}

// CreateInput is the body of a new registration.
type CreateInput struct {
	Category     domain.Category     `json:"category" validate:"oneof=student academia industry"`
	Personal     domain.Personal     `json:"personal"`
	Professional domain.Professional `json:"professional"`
	Address      domain.Address      `json:"address"`
	Billing      domain.Billing      `json:"billing"`
	Program      domain.Program      `json:"program"`
	Student      domain.Student      `json:"student" validate:"-"`
	StudentProof StudentProofInput   `json:"studentProof"`
	Addons       domain.Addons       `json:"addons"`
	Consents     domain.Consents     `json:"consents"`
	// Password is optional; without it the registrant cannot log in.
	Password string `json:"password,omitempty" validate:"max=72"` //nolint: gosec
}

// normalize trims every free-text field and normalizes the email in place.
func (in *CreateInput) normalize() {
	in.Category = domain.Category(strings.TrimSpace(string(in.Category)))
	trim(&in.Personal.FirstName, &in.Personal.LastName, &in.Personal.Phone, &in.Personal.Country)
	in.Personal.Email = domain.NormalizeEmail(in.Personal.Email)
	trim(&in.Professional.Affiliation, &in.Professional.Department, &in.Professional.RoleTitle)
	trim(&in.Address.Line1, &in.Address.Line2, &in.Address.City, &in.Address.State,
		&in.Address.Postcode, &in.Address.Country)
	trim(&in.Billing.BillTo, &in.Billing.TaxNo, &in.Billing.PONumber)
	trim(&in.Program.Type, &in.Program.Title, &in.Program.TopicArea)
	trim(&in.Student.University, &in.Student.Level)
}

// validate checks a normalized input. The first failing field is reported.
// The student section only counts for the student category.
func (in *CreateInput) validate(now time.Time) error {
	if err := validateStruct(now, in, ""); err != nil {
		return err
	}
	if in.Category == domain.CategoryStudent {
		return validateStruct(now, &in.Student, "student")
	}

	return nil
}

// build turns a validated input into a registration aggregate with every
// server-side default applied. The code and snapshot are filled in later.
func (in *CreateInput) build() domain.Registration {
	reg := domain.Registration{
		Category:     in.Category,
		Personal:     in.Personal,
		Professional: in.Professional,
		Address:      in.Address,
		Billing:      in.Billing,
		Program:      in.Program,
		Addons:       in.Addons,
		Consents:     in.Consents,
		Payment: domain.Payment{
			Method: domain.PaymentMethodManual,
			Status: domain.PaymentPending,
		},
	}
	if reg.Program.Type == "" {
		reg.Program.Type = "none"
		if reg.Program.Presenting {
			reg.Program.Type = "talk"
		}
	}
	if in.Category == domain.CategoryStudent {
		reg.Student = in.Student
		if reg.Student.Level == "" {
			reg.Student.Level = defaultStudentLevel
		}
		reg.StudentProof = domain.StudentProof{
			Required: true,
			Deferred: in.StudentProof.Deferred,
			Provided: false,
			Status:   domain.VerificationUnverified,
		}
	}

	return reg
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
