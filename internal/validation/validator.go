package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"quiz-room/internal/domain"
	"quiz-room/internal/util"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance reporting fields by their json names.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return &Validator{validate: v}
}

// Struct validates a tagged request struct. It returns nil when s is valid.
func (v *Validator) Struct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{domain.NewFieldError("request", err.Error())}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, toValidationError(fe))
	}
	return out
}

func toValidationError(fe validator.FieldError) domain.ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.NewMissingFieldError(field)
	case "email", "oneof", "uuid", "uuid4":
		return domain.NewInvalidFormatError(field, fe.Value())
	case "min":
		if fe.Kind() == reflect.String {
			return domain.NewFieldError(field, fmt.Sprintf("must be at least %s characters", fe.Param()))
		}
		return domain.NewFieldError(field, fmt.Sprintf("must be at least %s", fe.Param()))
	case "max":
		return domain.NewFieldError(field, fmt.Sprintf("must be at most %s", fe.Param()))
	case "eqfield":
		return domain.NewFieldError(field, "passwords do not match")
	case "ltefield":
		return domain.NewFieldError(field, fmt.Sprintf("must not exceed %s", fe.Param()))
	default:
		return domain.NewFieldError(field, fmt.Sprintf("failed %s validation", fe.Tag()))
	}
}

// ValidateUUID checks a path or query identifier issued by the backend.
func (v *Validator) ValidateUUID(field, value string) domain.ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if _, err := uuid.Parse(value); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, value)}
	}
	return nil
}

// ValidateULID checks a quiz session identifier.
func (v *Validator) ValidateULID(field, value string) domain.ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !util.IsULID(value) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, value)}
	}
	return nil
}
