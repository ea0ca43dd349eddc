package httpserver

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// errorResponse is the uniform error body. Details is populated only for
// request validation failures; internal errors carry a generic message and
// nothing else.
type errorResponse struct {
	Error   string           `json:"error"`
	Details []fieldViolation `json:"details,omitempty"`
}

type fieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// bindingViolations turns a gin binding error into field-level violations.
// Non-validator errors (malformed JSON, wrong types) collapse into a single
// body-level violation.
func bindingViolations(err error) []fieldViolation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldViolation{{Field: "body", Rule: "json", Message: "request body is not valid JSON for this endpoint"}}
	}
	out := make([]fieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: violationMessage(fe),
		})
	}
	return out
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}
