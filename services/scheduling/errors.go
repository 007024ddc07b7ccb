package scheduling

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a domain error carrying the HTTP-equivalent status the controller
// layer maps straight to a response code.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSlotUnavailableError(msg string) error {
	return &Error{Code: "slotUnavailable", Status: http.StatusConflict, Message: msg}
}

func NewPaymentFailedError(msg string) error {
	return &Error{Code: "paymentFailed", Status: http.StatusPaymentRequired, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &Error{Code: "notFound", Status: http.StatusNotFound, Message: msg}
}

func NewUnauthorizedError(msg string) error {
	return &Error{Code: "unauthorized", Status: http.StatusUnauthorized, Message: msg}
}

// StatusOf returns the HTTP status for a domain error, or 500 for anything else.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}
