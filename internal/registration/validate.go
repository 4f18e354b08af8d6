package registration

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"registrar/pkg/serrors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// gradYearTag checks an expected graduation year against the clock carried in
// the validation context: last year up to fifteen years ahead.
const gradYearTag = "gradyear"

type nowKey struct{}

var structValidator = newValidator() //nolint: gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	if err := v.RegisterValidationCtx(gradYearTag, validGradYear); err != nil {
		panic(err)
	}

	return v
}

func validGradYear(ctx context.Context, fl validator.FieldLevel) bool {
	now, ok := ctx.Value(nowKey{}).(time.Time)
	if !ok {
		now = time.Now()
	}
	year := int(fl.Field().Int())

	return year >= now.Year()-1 && year <= now.Year()+15
}

// validateStruct runs the struct tags of v and reports the first failure as a
// validation error named by its JSON path, prefixed with section when set.
func validateStruct(now time.Time, v any, section string) error {
	ctx := context.WithValue(context.Background(), nowKey{}, now)
	err := structValidator.StructCtx(ctx, v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("could not validate %T: %w", v, err)
	}

	fe := fieldErrs[0]
	// the namespace starts with the Go name of the validated struct
	_, name, _ := strings.Cut(fe.Namespace(), ".")
	if section != "" {
		name = section + "." + name
	}

	return serrors.Invalid(name, "%s", fieldMessage(fe))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String && fe.Param() == "1" {
			return "is required"
		}

		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "email":
		return "is not a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "eq":
		if fe.Kind() == reflect.Bool {
			return "must be accepted"
		}

		return "must equal " + fe.Param()
	case gradYearTag:
		return "is out of range"
	default:
		return "is invalid"
	}
}
