package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeAuthorNotFound    = "SUB001"
	ErrCodeAlreadySubscribed = "SUB002"
	ErrCodeSelfSubscribe     = "SUB003"
	ErrCodeNotSubscribed     = "SUB004"
)

// Errors
var (
	ErrAuthorNotFound    = errors.New("author not found")
	ErrAlreadySubscribed = errors.New("already subscribed to this author")
	ErrSelfSubscribe     = errors.New("cannot subscribe to yourself")
	ErrNotSubscribed     = errors.New("not subscribed to this author")
)

// SubscriptionError custom error type
type SubscriptionError struct {
	Code    string
	Message string
	Err     error
}

func (e *SubscriptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewAuthorNotFoundError() *SubscriptionError {
	return &SubscriptionError{
		Code:    ErrCodeAuthorNotFound,
		Message: "Author not found",
		Err:     ErrAuthorNotFound,
	}
}

func NewAlreadySubscribedError() *SubscriptionError {
	return &SubscriptionError{
		Code:    ErrCodeAlreadySubscribed,
		Message: "Already subscribed to this author",
		Err:     ErrAlreadySubscribed,
	}
}

func NewSelfSubscribeError() *SubscriptionError {
	return &SubscriptionError{
		Code:    ErrCodeSelfSubscribe,
		Message: "Cannot subscribe to yourself",
		Err:     ErrSelfSubscribe,
	}
}

func NewNotSubscribedError() *SubscriptionError {
	return &SubscriptionError{
		Code:    ErrCodeNotSubscribed,
		Message: "Not subscribed to this author",
		Err:     ErrNotSubscribed,
	}
}
