package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidPair indicates a quote whose origin and destination currencies are the same.
var ErrInvalidPair = errors.New("origin and destination currencies must differ")

// ErrInvalidState indicates that a resource exists but cannot take part in the requested operation
// (an annulled quote, a cancelled invoice).
var ErrInvalidState = errors.New("invalid state")

// ErrInvalidRate indicates a stored quote carrying a zero or negative rate.
var ErrInvalidRate = errors.New("invalid stored rate")

// ErrPairMismatch indicates that the requested currency pair matches the quote in neither direction.
var ErrPairMismatch = errors.New("currency pair does not match quote")

// ErrMissingBaseCurrency indicates an invoice without a base currency.
var ErrMissingBaseCurrency = errors.New("invoice has no base currency")

// ErrOverpayment indicates that a payment would push the paid total past the invoice total.
var ErrOverpayment = errors.New("payment exceeds invoice outstanding amount")

// AppError carries an HTTP-ish status code alongside an underlying infrastructure error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error that matches ErrNotFound with errors.Is.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewValidationError returns an error that matches ErrValidation with errors.Is.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}
