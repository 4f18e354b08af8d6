package registration

import (
	"bytes"
	"encoding/json"
	"errors"
	"registrar/pkg/domain"
	"registrar/pkg/serrors"
	"slices"
	"strings"
	"time"
)

type PersonalPatch struct {
	FirstName *string `json:"firstName" validate:"omitnil,min=1,max=200"`
	LastName  *string `json:"lastName" validate:"omitnil,min=1,max=200"`
	Phone     *string `json:"phone" validate:"omitnil,max=200"`
	Country   *string `json:"country" validate:"omitnil,max=200"`
}

type ProfessionalPatch struct {
	Affiliation *string `json:"affiliation" validate:"omitnil,min=1,max=200"`
	Department  *string `json:"department" validate:"omitnil,max=200"`
	RoleTitle   *string `json:"roleTitle" validate:"omitnil,max=200"`
}

type AddressPatch struct {
	Line1    *string `json:"line1" validate:"omitnil,max=200"`
	Line2    *string `json:"line2" validate:"omitnil,max=200"`
	City     *string `json:"city" validate:"omitnil,max=200"`
	State    *string `json:"state" validate:"omitnil,max=200"`
	Postcode *string `json:"postcode" validate:"omitnil,max=200"`
	Country  *string `json:"country" validate:"omitnil,max=200"`
}

type BillingPatch struct {
	BillTo   *string `json:"billTo" validate:"omitnil,max=200"`
	TaxNo    *string `json:"taxNo" validate:"omitnil,max=200"`
	PONumber *string `json:"poNumber" validate:"omitnil,max=200"`
}

type ProgramPatch struct {
	Presenting *bool   `json:"presenting"`
	Type       *string `json:"type" validate:"omitnil,max=200"`
	Title      *string `json:"title" validate:"omitnil,max=200"`
	TopicArea  *string `json:"topicArea" validate:"omitnil,max=200"`
}

type StudentPatch struct {
	University       *string `json:"university" validate:"omitnil,min=1,max=200"`
	Level            *string `json:"level" validate:"omitnil,max=200"`
	ExpectedGradYear *int    `json:"expectedGradYear" validate:"omitnil,gradyear"`
}

type StudentProofPatch struct {
	Deferred *bool `json:"deferred"`
}

type ConsentsPatch struct {
	MarketingOptIn *bool `json:"marketingOptIn"`
}

// Patch is a registrant's amendment. A nil pointer leaves the field untouched.
type Patch struct {
	Personal     *PersonalPatch     `json:"personal"`
	Professional *ProfessionalPatch `json:"professional"`
	Address      *AddressPatch      `json:"address"`
	Billing      *BillingPatch      `json:"billing"`
	Program      *ProgramPatch      `json:"program"`
	Student      *StudentPatch      `json:"student"`
	StudentProof *StudentProofPatch `json:"studentProof"`
	Consents     *ConsentsPatch     `json:"consents"`
}

type AdminStudentProofPatch struct {
	Required *bool                      `json:"required"`
	Deferred *bool                      `json:"deferred"`
	Provided *bool                      `json:"provided"`
	Status   *domain.VerificationStatus `json:"status" validate:"omitnil,oneof=unverified verified rejected"`
}

type PaymentPatch struct {
	Method *string               `json:"method" validate:"omitnil,min=1,max=200"`
	Status *domain.PaymentStatus `json:"status" validate:"omitnil,oneof=pending paid failed refunded"`
}

// AdminPatch is an operator's amendment. On top of the registrant fields it
// can review the student proof and record payment state.
type AdminPatch struct {
	Patch

	StudentProof *AdminStudentProofPatch `json:"studentProof"`
	Payment      *PaymentPatch           `json:"payment"`
}

// identityKeys can never be patched, at any nesting level.
var identityKeys = []string{"id", "_id", "regCode", "email", "createdAt", "updatedAt"} //nolint: gochecknoglobals

// userFields is the registrant allow-list: section to editable keys.
var userFields = map[string][]string{ //nolint: gochecknoglobals
	"personal":     {"firstName", "lastName", "phone", "country"},
	"professional": {"affiliation", "department", "roleTitle"},
	"address":      {"line1", "line2", "city", "state", "postcode", "country"},
	"billing":      {"billTo", "taxNo", "poNumber"},
	"program":      {"presenting", "type", "title", "topicArea"},
	"student":      {"university", "level", "expectedGradYear"},
	"studentProof": {"deferred"},
	"consents":     {"marketingOptIn"},
}

// adminFields extends userFields for operators.
var adminFields = func() map[string][]string { //nolint: gochecknoglobals
	out := make(map[string][]string, len(userFields)+1)
	for k, v := range userFields {
		out[k] = v
	}
	out["studentProof"] = []string{"required", "deferred", "provided", "status"}
	out["payment"] = []string{"method", "status"}

	return out
}()

// DecodePatch parses a registrant patch. Identity keys and keys outside the
// allow-list are rejected with a validation error naming the key.
func DecodePatch(raw []byte) (Patch, error) {
	var p Patch
	if err := decodeAllowed(raw, userFields, &p); err != nil {
		return Patch{}, err
	}

	return p, nil
}

// DecodeAdminPatch parses an operator patch against the operator allow-list.
func DecodeAdminPatch(raw []byte) (AdminPatch, error) {
	var p AdminPatch
	if err := decodeAllowed(raw, adminFields, &p); err != nil {
		return AdminPatch{}, err
	}

	return p, nil
}

func decodeAllowed(raw []byte, allowed map[string][]string, out any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return serrors.Invalid("updates", "is required")
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return serrors.Invalid("updates", "must be an object")
	}
	if len(sections) == 0 {
		return serrors.Invalid("updates", "must not be empty")
	}

	for _, section := range sortedKeys(sections) {
		if slices.Contains(identityKeys, section) {
			return serrors.Invalid(section, "cannot be changed")
		}
		keys, ok := allowed[section]
		if !ok {
			return serrors.Invalid(section, "is not an editable field")
		}
		if string(bytes.TrimSpace(sections[section])) == "null" {
			continue
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(sections[section], &fields); err != nil {
			return serrors.Invalid(section, "must be an object")
		}
		for _, field := range sortedKeys(fields) {
			name := section + "." + field
			if slices.Contains(identityKeys, field) {
				return serrors.Invalid(name, "cannot be changed")
			}
			if !slices.Contains(keys, field) {
				return serrors.Invalid(name, "is not an editable field")
			}
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return serrors.Invalid(typeErr.Field, "must be a %s", typeErr.Type.Kind())
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "updates: malformed")
	}

	return nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// normalize trims every supplied string in place.
func (p Patch) normalize() {
	if s := p.Personal; s != nil {
		trimSet(s.FirstName, s.LastName, s.Phone, s.Country)
	}
	if s := p.Professional; s != nil {
		trimSet(s.Affiliation, s.Department, s.RoleTitle)
	}
	if s := p.Address; s != nil {
		trimSet(s.Line1, s.Line2, s.City, s.State, s.Postcode, s.Country)
	}
	if s := p.Billing; s != nil {
		trimSet(s.BillTo, s.TaxNo, s.PONumber)
	}
	if s := p.Program; s != nil {
		trimSet(s.Type, s.Title, s.TopicArea)
	}
	if s := p.Student; s != nil {
		trimSet(s.University, s.Level)
	}
}

// validate checks a normalized patch against the same rules as creation. The
// student section is only editable on student registrations.
func (p Patch) validate(category domain.Category, now time.Time) error {
	if p.Student != nil && category != domain.CategoryStudent {
		return serrors.Invalid("student", "only applies to the student category")
	}

	return validateStruct(now, p, "")
}

// apply merges the supplied fields into reg.
func (p Patch) apply(reg *domain.Registration) {
	if s := p.Personal; s != nil {
		set(&reg.Personal.FirstName, s.FirstName)
		set(&reg.Personal.LastName, s.LastName)
		set(&reg.Personal.Phone, s.Phone)
		set(&reg.Personal.Country, s.Country)
	}
	if s := p.Professional; s != nil {
		set(&reg.Professional.Affiliation, s.Affiliation)
		set(&reg.Professional.Department, s.Department)
		set(&reg.Professional.RoleTitle, s.RoleTitle)
	}
	if s := p.Address; s != nil {
		set(&reg.Address.Line1, s.Line1)
		set(&reg.Address.Line2, s.Line2)
		set(&reg.Address.City, s.City)
		set(&reg.Address.State, s.State)
		set(&reg.Address.Postcode, s.Postcode)
		set(&reg.Address.Country, s.Country)
	}
	if s := p.Billing; s != nil {
		set(&reg.Billing.BillTo, s.BillTo)
		set(&reg.Billing.TaxNo, s.TaxNo)
		set(&reg.Billing.PONumber, s.PONumber)
	}
	if s := p.Program; s != nil {
		setValue(&reg.Program.Presenting, s.Presenting)
		set(&reg.Program.Type, s.Type)
		set(&reg.Program.Title, s.Title)
		set(&reg.Program.TopicArea, s.TopicArea)
	}
	if s := p.Student; s != nil {
		set(&reg.Student.University, s.University)
		set(&reg.Student.Level, s.Level)
		setValue(&reg.Student.ExpectedGradYear, s.ExpectedGradYear)
	}
	if s := p.StudentProof; s != nil {
		setValue(&reg.StudentProof.Deferred, s.Deferred)
	}
	if s := p.Consents; s != nil {
		setValue(&reg.Consents.MarketingOptIn, s.MarketingOptIn)
	}
}

func (p AdminPatch) normalize() {
	p.Patch.normalize()
	if s := p.Payment; s != nil {
		trimSet(s.Method)
	}
}

func (p AdminPatch) validate(category domain.Category, now time.Time) error {
	if err := p.Patch.validate(category, now); err != nil {
		return err
	}
	if p.StudentProof != nil {
		if err := validateStruct(now, p.StudentProof, "studentProof"); err != nil {
			return err
		}
	}
	if p.Payment != nil {
		return validateStruct(now, p.Payment, "payment")
	}

	return nil
}

func (p AdminPatch) apply(reg *domain.Registration) {
	p.Patch.apply(reg)
	if s := p.StudentProof; s != nil {
		setValue(&reg.StudentProof.Required, s.Required)
		setValue(&reg.StudentProof.Deferred, s.Deferred)
		setValue(&reg.StudentProof.Provided, s.Provided)
		setValue(&reg.StudentProof.Status, s.Status)
	}
	if s := p.Payment; s != nil {
		set(&reg.Payment.Method, s.Method)
		setValue(&reg.Payment.Status, s.Status)
	}
}

func trimSet(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setValue[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
