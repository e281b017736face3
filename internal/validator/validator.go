// Package validator translates go-playground validation failures into the
// ordered {param, msg} list the signup endpoint returns with 422.
package validator

import (
	"errors"
	"fmt"

	"myflix-api/pkg/response"

	"github.com/go-playground/validator/v10"
)

// Translate converts a gin binding error into the ordered field error list.
// Returns false when the error is not a validation failure (e.g. malformed
// JSON), in which case the caller should not answer 422. Violations are
// accumulated across fields in struct declaration order; per field only the
// first failing rule is reported.
func Translate(err error) ([]response.FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make([]response.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, response.FieldError{
			Param: fe.Field(),
			Msg:   message(fe),
		})
	}
	return out, true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "alphanum":
		return fmt.Sprintf("%s contains non alphanumeric characters - not allowed", fe.Field())
	case "email":
		return fmt.Sprintf("%s does not appear to be valid", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
