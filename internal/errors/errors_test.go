package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "dish"}
		assert.Equal(t, "dish not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "dish"}
		err2 := &NotFoundError{Entity: "dish"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "dish"}
		err2 := &NotFoundError{Entity: "product"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrDishNotFound, ErrDishNotFound))
		assert.False(t, errors.Is(ErrDishNotFound, ErrProductNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrMealGroupNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrProductNotFound)))
		assert.False(t, IsNotFound(ErrDishNameTaken))
	})
}

func TestDuplicateNameError(t *testing.T) {
	t.Run("Error message with name", func(t *testing.T) {
		err := ErrProductNameTaken.WithName("Milk")
		assert.Equal(t, `product with name "Milk" already exists`, err.Error())
	})

	t.Run("Error message without name", func(t *testing.T) {
		assert.Equal(t, "meal group with this name already exists", ErrMealGroupNameTaken.Error())
	})

	t.Run("Field defaults to name", func(t *testing.T) {
		err := (&DuplicateNameError{Entity: "dish"}).WithName("Soup")
		assert.Equal(t, "name", err.Field)
	})

	t.Run("errors.Is compares entity only", func(t *testing.T) {
		assert.True(t, errors.Is(ErrDishNameTaken.WithName("Soup"), ErrDishNameTaken))
		assert.False(t, errors.Is(ErrDishNameTaken.WithName("Soup"), ErrProductNameTaken))
	})

	t.Run("IsDuplicateName helper", func(t *testing.T) {
		assert.True(t, IsDuplicateName(fmt.Errorf("create: %w", ErrProductNameTaken)))
		assert.False(t, IsDuplicateName(ErrProductNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "name", Message: "is required"}
		assert.Equal(t, "validation error: name - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid form"}
		assert.Equal(t, "validation error: invalid form", err.Error())
	})

	t.Run("Error message with several fields is sorted", func(t *testing.T) {
		err := &ValidationError{Fields: map[string]string{
			"notes": "must be at most 200 characters",
			"name":  "is required",
		}}
		assert.Equal(t, "validation error: name - is required; notes - must be at most 200 characters", err.Error())
	})

	t.Run("FieldMessages", func(t *testing.T) {
		single := &ValidationError{Field: "name", Message: "is required"}
		assert.Equal(t, map[string]string{"name": "is required"}, single.FieldMessages())

		multi := &ValidationError{Fields: map[string]string{"category": "too long"}}
		assert.Equal(t, map[string]string{"category": "too long"}, multi.FieldMessages())

		assert.Empty(t, (&ValidationError{Message: "x"}).FieldMessages())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "invalid")))
		assert.True(t, IsValidation(NewFieldsValidationError(map[string]string{"name": "invalid"})))
		assert.False(t, IsValidation(ErrDishNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}
