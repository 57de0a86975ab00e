package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput classifies validation failures
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound classifies missing documents or entries
	ErrNotFound = errors.New("not found")
)

// DomainError is a user facing error of a known kind
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// NewValidationError creates an ErrInvalidInput error with a user facing message
func NewValidationError(message string) error {
	return &DomainError{Kind: ErrInvalidInput, Message: message}
}

// NewNotFoundError creates an ErrNotFound error with a user facing message
func NewNotFoundError(message string) error {
	return &DomainError{Kind: ErrNotFound, Message: message}
}

// UpstreamError is returned when a third party API call fails
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// GroupDeleteError reports the documents of a group delete that could not be removed.
// Documents deleted before the failure stay deleted.
type GroupDeleteError struct {
	Message string
	Result  DeleteGroupResult
	Err     error
}

func (e *GroupDeleteError) Error() string {
	return e.Message
}

func (e *GroupDeleteError) Unwrap() error {
	return e.Err
}
