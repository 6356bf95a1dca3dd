package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeIngredientNotFound = "ING001"
	ErrCodeImportFailed       = "ING002"
)

// Errors
var (
	ErrIngredientNotFound = errors.New("ingredient not found")
)

// IngredientError custom error type
type IngredientError struct {
	Code    string
	Message string
	Err     error
}

func (e *IngredientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *IngredientError) Unwrap() error {
	return e.Err
}

func NewIngredientNotFoundError() *IngredientError {
	return &IngredientError{
		Code:    ErrCodeIngredientNotFound,
		Message: "Ingredient not found",
		Err:     ErrIngredientNotFound,
	}
}

func NewImportFailedError(err error) *IngredientError {
	return &IngredientError{
		Code:    ErrCodeImportFailed,
		Message: "Ingredient import failed",
		Err:     err,
	}
}
