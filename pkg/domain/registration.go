package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RegistrationID uniquely identifies a registration record.
// It wraps uuid.UUID to provide type safety at the domain layer.
type RegistrationID uuid.UUID

// String returns the canonical textual form of the ID.
func (id RegistrationID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical textual form.
func (id RegistrationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses an ID from its textual form.
func (id *RegistrationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Category is the registrant category that drives pricing.
type Category string

const (
	CategoryStudent  Category = "student"
	CategoryAcademia Category = "academia"
	CategoryIndustry Category = "industry"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStudent, CategoryAcademia, CategoryIndustry:
		return true
	default:
		return false
	}
}

// VerificationStatus is the review state of a student's proof of enrolment.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationVerified   VerificationStatus = "verified"
	VerificationRejected   VerificationStatus = "rejected"
)

// Valid reports whether s is one of the known verification states.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationUnverified, VerificationVerified, VerificationRejected:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks payment state. Payments are never processed here.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Valid reports whether s is one of the known payment states.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

// PaymentMethodManual is the only payment method the registrar records.
const PaymentMethodManual = "manual"

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Every uniqueness check and lookup operates on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Personal struct {
	FirstName string `json:"firstName" validate:"required,max=200"`
	LastName  string `json:"lastName" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email,max=200"`
	Phone     string `json:"phone,omitempty" validate:"max=200"`
	Country   string `json:"country,omitempty" validate:"max=200"`
}

type Professional struct {
	Affiliation string `json:"affiliation" validate:"required,max=200"`
	Department  string `json:"department,omitempty" validate:"max=200"`
	RoleTitle   string `json:"roleTitle,omitempty" validate:"max=200"`
}

type Address struct {
	Line1    string `json:"line1,omitempty" validate:"max=200"`
	Line2    string `json:"line2,omitempty" validate:"max=200"`
	City     string `json:"city,omitempty" validate:"max=200"`
	State    string `json:"state,omitempty" validate:"max=200"`
	Postcode string `json:"postcode,omitempty" validate:"max=200"`
	Country  string `json:"country,omitempty" validate:"max=200"`
}

type Billing struct {
	BillTo   string `json:"billTo,omitempty" validate:"max=200"`
	TaxNo    string `json:"taxNo,omitempty" validate:"max=200"`
	PONumber string `json:"poNumber,omitempty" validate:"max=200"`
}

type Program struct {
	Presenting bool   `json:"presenting"`
	Type       string `json:"type,omitempty" validate:"max=200"`
	Title      string `json:"title,omitempty" validate:"max=200"`
	TopicArea  string `json:"topicArea,omitempty" validate:"max=200"`
}

// Student is validated only for the student category.
type Student struct {
	University       string `json:"university,omitempty" validate:"required,max=200"`
	Level            string `json:"level,omitempty" validate:"max=200"`
	ExpectedGradYear int    `json:"expectedGradYear,omitempty" validate:"omitempty,gradyear"`
}

// StudentProof tracks whether a student's proof of enrolment is required,
// deferred by the registrant, provided through an upload, and reviewed.
type StudentProof struct {
	Required bool               `json:"required"`
	Deferred bool               `json:"deferred"`
	Provided bool               `json:"provided"`
	Status   VerificationStatus `json:"status,omitempty"`
}

type Addons struct {
	Dinner bool `json:"dinner"`
}

// Consents are validated at creation, where both mandatory ones must be given.
type Consents struct {
	PDPA           bool `json:"pdpa" validate:"eq=true"`
	CodeOfConduct  bool `json:"codeOfConduct" validate:"eq=true"`
	MarketingOptIn bool `json:"marketingOptIn"`
}

type Payment struct {
	Method string        `json:"method"`
	Status PaymentStatus `json:"status"`
}

// Registration is the public projection of a registration aggregate. It never
// carries the credential hash; see RegistrationCredential.
type Registration struct {
	// ID is the internal identifier of the registration.
	ID RegistrationID `json:"id"`
	// RegCode is the human-readable code, e.g. MTERM2026-000042. Immutable once assigned.
	RegCode string `json:"regCode"`
	// Category drives pricing and student-specific requirements.
	Category Category `json:"category"`

	Personal     Personal     `json:"personal"`
	Professional Professional `json:"professional"`
	Address      Address      `json:"address"`
	Billing      Billing      `json:"billing"`
	Program      Program      `json:"program"`
	Student      Student      `json:"student"`
	StudentProof StudentProof `json:"studentProof"`
	Addons       Addons       `json:"addons"`
	Consents     Consents     `json:"consents"`

	// PricingSnapshot is written once at creation and never recomputed.
	PricingSnapshot PricingSnapshot `json:"pricingSnapshot"`
	Payment         Payment         `json:"payment"`

	// Attachments is the append-only list of uploaded artifacts, newest version first.
	Attachments []Attachment `json:"uploads,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegistrationCredential is the narrow credential-bearing projection used only
// while authenticating a registrant.
type RegistrationCredential struct {
	ID           RegistrationID
	RegCode      string
	Email        string
	PasswordHash string
}

// ParseRegistrationID parses the textual form of a RegistrationID.
func ParseRegistrationID(s string) (RegistrationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RegistrationID{}, err //nolint: wrapcheck
	}

	return RegistrationID(id), nil
}
