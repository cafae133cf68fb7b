package templates

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors for template operations. Messages are returned to clients.
var (
	ErrNotFound          = errors.New("Template not found for the given organization")
	ErrInvalidTemplateID = errors.New("Template ID must be a valid integer")
	ErrInvalidOrderNo    = errors.New("`orderno` must be a positive integer")
	ErrDuplicate         = errors.New("order number already in use")
	ErrOutOfRange        = errors.New("order number out of range")
	ErrBodyTooLarge      = errors.New("Request body too large")
)

// ConflictError reports an order number held by another live template.
// It matches ErrDuplicate.
type ConflictError struct {
	OrderNo int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Order number %d is already used by another template", e.OrderNo)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrDuplicate
}

// RangeError reports an order number beyond the next available one.
// It matches ErrOutOfRange.
type RangeError struct {
	OrderNo int
	Next    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("Cannot assign order number %d. The next available order number is %d", e.OrderNo, e.Next)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidTemplateID),
		errors.Is(err, ErrInvalidOrderNo),
		errors.Is(err, ErrOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
