package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "meal-planner-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Preparation time bounds in minutes
const (
	MinPreparationMinutes = 1
	MaxPreparationMinutes = 360
)

var accentColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// NewValidator returns a validator that reports fields by their JSON names and knows the
// catalog-specific tags.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("accentcolor", func(fl validator.FieldLevel) bool {
		return accentColorPattern.MatchString(fl.Field().String())
	})
	return v
}

// validateInput runs struct validation and converts failures into a single ValidationError
// carrying one message per failing field.
func validateInput(v *validator.Validate, input interface{}) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fieldKey(fe)
		if _, seen := fields[key]; seen {
			continue
		}
		fields[key] = fieldMessage(fe)
	}
	return apperrors.NewFieldsValidationError(fields)
}

// fieldKey drops the struct name from the namespace, e.g. "products[0].quantity"
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "max":
		switch fe.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
			return fmt.Sprintf("must be between %d and %d", MinPreparationMinutes, MaxPreparationMinutes)
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "url":
		return "must be a valid URL"
	case "accentcolor":
		return "must be a hex color such as #F97316"
	default:
		return "is invalid"
	}
}

// trimOptional trims s and turns blank values into nil
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// dedupeIDs keeps the first occurrence of every id
func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// missingIDs returns the ids of want that are not in found, in request order
func missingIDs(want, found []uint) []uint {
	present := make(map[uint]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	var missing []uint
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
