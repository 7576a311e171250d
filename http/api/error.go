package api

import (
	"fmt"
	"net/http"
)

// Error represents an error that is answered with a status code and a message
type Error struct {
	Code    int    `json:"code" jsonschema:"required" format:"int"`
	Message string `json:"message" jsonschema:""`
}

// Error returns the string representation of the error
func (e Error) Error() string {
	return fmt.Sprintf("code=%d, message=%s", e.Code, e.Message)
}

// Err creates a new error with the given HTTP status code. If message is empty, the default message
// for the given code is used.
func Err(code int, message string) Error {
	if len(message) == 0 {
		message = http.StatusText(code)
	}

	return Error{
		Code:    code,
		Message: message,
	}
}
