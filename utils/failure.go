package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure wraps an error message with the HTTP status code it should map to,
// so controllers can translate store errors without switching on sentinel
// values.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func BadRequestErr(err error) error {
	if err == nil {
		return nil
	}
	return &Failure{Code: http.StatusBadRequest, Message: err.Error()}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

func NotFound(entity, id string) error {
	return &Failure{Code: http.StatusNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

func InternalError(err error) error {
	if err == nil {
		return nil
	}
	return &Failure{Code: http.StatusInternalServerError, Message: err.Error()}
}

// GetCode returns the status code carried by err, or 500 for plain errors.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}
	return http.StatusInternalServerError
}
