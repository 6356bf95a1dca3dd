package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeRecipeNotFound    = "RCP001"
	ErrCodeRecipeValidation  = "RCP002"
	ErrCodeNotAuthor         = "RCP003"
	ErrCodeAlreadyInList     = "RCP004"
	ErrCodeNotInList         = "RCP005"
	ErrCodeUnknownIngredient = "RCP006"
	ErrCodeUnknownTag        = "RCP007"
	ErrCodeInvalidImage      = "RCP008"
)

// Errors
var (
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrNotAuthor         = errors.New("only the author can modify this recipe")
	ErrAlreadyInList     = errors.New("recipe is already in the list")
	ErrNotInList         = errors.New("recipe is not in the list")
	ErrUnknownIngredient = errors.New("unknown ingredient")
	ErrUnknownTag        = errors.New("unknown tag")
)

// RecipeError custom error type
type RecipeError struct {
	Code    string
	Message string
	Err     error
}

func (e *RecipeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RecipeError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewRecipeNotFoundError() *RecipeError {
	return &RecipeError{
		Code:    ErrCodeRecipeNotFound,
		Message: "Recipe not found",
		Err:     ErrRecipeNotFound,
	}
}

func NewRecipeValidationError(message string) *RecipeError {
	return &RecipeError{
		Code:    ErrCodeRecipeValidation,
		Message: message,
	}
}

func NewNotAuthorError() *RecipeError {
	return &RecipeError{
		Code:    ErrCodeNotAuthor,
		Message: "Only the author can modify this recipe",
		Err:     ErrNotAuthor,
	}
}

func NewAlreadyInListError(list string) *RecipeError {
	return &RecipeError{
		Code:    ErrCodeAlreadyInList,
		Message: fmt.Sprintf("Recipe is already in %s", list),
		Err:     ErrAlreadyInList,
	}
}

func NewNotInListError(list string) *RecipeError {
	return &RecipeError{
		Code:    ErrCodeNotInList,
		Message: fmt.Sprintf("Recipe is not in %s", list),
		Err:     ErrNotInList,
	}
}

func NewUnknownIngredientError() *RecipeError {
	return &RecipeError{
		Code:    ErrCodeUnknownIngredient,
		Message: "One or more ingredients do not exist",
		Err:     ErrUnknownIngredient,
	}
}

func NewUnknownTagError() *RecipeError {
	return &RecipeError{
		Code:    ErrCodeUnknownTag,
		Message: "One or more tags do not exist",
		Err:     ErrUnknownTag,
	}
}

func NewInvalidImageError(message string) *RecipeError {
	return &RecipeError{
		Code:    ErrCodeInvalidImage,
		Message: message,
	}
}
