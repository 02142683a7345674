// SPDX-License-Identifier: MIT

package payload

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the package-wide validator; rules are registered once in init.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	validate.RegisterStructValidation(validateEdge, EdgeSpec{})
}

// validateEdge enforces the cross-field edge rules: an interval or a nominal
// duration must be present, an explicit interval must be finite and ordered,
// and minutes must be finite.
func validateEdge(sl validator.StructLevel) {
	e := sl.Current().Interface().(EdgeSpec)
	if e.Interval == nil && e.Minutes == nil {
		sl.ReportError(e.Interval, "interval", "Interval", "interval_or_minutes", "")
	}
	if e.Interval != nil && !e.Interval.Valid() {
		sl.ReportError(e.Interval, "interval", "Interval", "ordered_interval", e.Interval.String())
	}
	if e.Minutes != nil && (math.IsNaN(*e.Minutes) || math.IsInf(*e.Minutes, 0)) {
		sl.ReportError(e.Minutes, "minutes", "Minutes", "finite", "")
	}
}

// Validate checks req against the request rules. The returned error matches
// ErrMalformedInput and names the first offending field.
func Validate(req *Request) error {
	if req == nil {
		return malformedf("request is nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError converts validator errors into one readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	e := verrs[0]
	field := e.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	switch e.Tag() {
	case "required":
		return malformedf("%s: field is required", field)
	case "interval_or_minutes":
		return malformedf("%s: edge needs an interval or minutes", field)
	case "ordered_interval":
		return malformedf("%s: interval %s must be finite with lower <= upper", field, e.Param())
	case "finite":
		return malformedf("%s: must be finite", field)
	case "gte":
		return malformedf("%s: must be at least %s", field, e.Param())
	case "lte", "max":
		return malformedf("%s: must not exceed %s", field, e.Param())
	case "oneof":
		return malformedf("%s: must be one of [%s]", field, e.Param())
	default:
		return malformedf("%s: validation failed (%s)", field, e.Tag())
	}
}
