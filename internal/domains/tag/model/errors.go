package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeTagNotFound = "TAG001"
	ErrCodeTagExists   = "TAG002"
)

// Errors
var (
	ErrTagNotFound = errors.New("tag not found")
	ErrTagExists   = errors.New("tag already exists")
)

// TagError custom error type
type TagError struct {
	Code    string
	Message string
	Err     error
}

func (e *TagError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TagError) Unwrap() error {
	return e.Err
}

func NewTagNotFoundError() *TagError {
	return &TagError{
		Code:    ErrCodeTagNotFound,
		Message: "Tag not found",
		Err:     ErrTagNotFound,
	}
}
