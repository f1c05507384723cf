package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ServiceNameChecker reports whether a value is an accepted service selection.
type ServiceNameChecker interface {
	HasServiceName(name string) bool
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate, services ServiceNameChecker) {
	_ = v.RegisterValidation("contact_service", ContactService(services))
}

// ContactService validates the service select against the catalog.
// Empty values pass so that "required" owns that message.
func ContactService(services ServiceNameChecker) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		if val == "" {
			return true
		}
		return services != nil && services.HasServiceName(val)
	}
}

// jsonFieldName reports fields by their json name so errors line up with form inputs.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// Validator checks request structs and returns per-field messages.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator with the custom rules registered.
func New(services ServiceNameChecker) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v, services)
	return &Validator{validate: v}
}

// Validate checks every field of s and aggregates all violations. It returns
// nil when s is valid. It never panics on a nil or non-struct input; those are
// reported under the "form" key.
func (v *Validator) Validate(s any) FieldErrors {
	if s == nil {
		return FieldErrors{"form": "Form data is missing"}
	}
	if err := v.validate.Struct(s); err != nil {
		return FormatValidationErrors(err)
	}
	return nil
}
