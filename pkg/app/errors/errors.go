// Package errors defines the service error type handlers return to the HTTP
// layer, and the categories that decide the response status.
package errors

import (
	"errors"
	"net/http"
)

// Category classifies a ServiceError
type Category int

// Categories below CategoryDependencyFailure are caused by the client.
const (
	CategoryNoError Category = iota
	// CategoryDataError: invalid payload, parameters or form fields
	CategoryDataError
	CategoryResourceNotFound
	// CategoryDataConflict: the request conflicts with the resource state,
	// e.g. a second submit while a check is running
	CategoryDataConflict
	// CategoryPreconditionFailed: the client must act first, e.g. connect a wallet
	CategoryPreconditionFailed
	// CategoryDependencyFailure: the planner sidecar or status source failed
	CategoryDependencyFailure
	CategoryGeneralError
	// CategoryRecovering: not ready yet, expected to recover
	CategoryRecovering
	CategoryConnectionTimeout
)

type categoryInfo struct {
	name   string
	status int
}

var categories = map[Category]categoryInfo{
	CategoryNoError:            {"CategoryNoError", http.StatusOK},
	CategoryDataError:          {"CategoryDataError", http.StatusBadRequest},
	CategoryResourceNotFound:   {"CategoryResourceNotFound", http.StatusNotFound},
	CategoryDataConflict:       {"CategoryDataConflict", http.StatusConflict},
	CategoryPreconditionFailed: {"CategoryPreconditionFailed", http.StatusPreconditionFailed},
	CategoryDependencyFailure:  {"CategoryDependencyFailure", http.StatusBadGateway},
	CategoryGeneralError:       {"CategoryGeneralError", http.StatusInternalServerError},
	CategoryRecovering:         {"CategoryRecovering", http.StatusServiceUnavailable},
	CategoryConnectionTimeout:  {"CategoryConnectionTimeout", http.StatusGatewayTimeout},
}

func (c Category) String() string {
	if info, ok := categories[c]; ok {
		return info.name
	}
	return categories[CategoryGeneralError].name
}

// ServiceError is returned by services to the HTTP layer. Message and
// Details are sent to the client; Err is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Details  any
	Err      error
}

func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

func (err ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status of the error's category. A successful
// category never reaches the client as an error, so it maps to 500.
func (err ServiceError) StatusCode() int {
	if info, ok := categories[err.Category]; ok && err.Category != CategoryNoError {
		return info.status
	}
	return http.StatusInternalServerError
}

// Is reports whether err wraps a ServiceError of category cat
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err is anything but a client-caused ServiceError
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category < CategoryDependencyFailure {
		return false
	}
	return true
}

func newError(cat Category, err error, prefix, message string, details any) error {
	if err == nil {
		err = errors.New(prefix + message)
	}
	return &ServiceError{Category: cat, Message: message, Details: details, Err: err}
}

// GeneralError hides err from the client behind "Internal Server Error"
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{Category: CategoryGeneralError, Message: "Internal Server Error", Err: err}
}

func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, "bad request: ", message, nil)
}

// ValidationError is a DataError carrying per-field details for the client
func ValidationError(err error, message string, details any) error {
	return newError(CategoryDataError, err, "validation failed: ", message, details)
}

func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, "resource not found: ", message, nil)
}

func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, "conflict: ", message, nil)
}

func PreconditionFailedError(err error, message string) error {
	return newError(CategoryPreconditionFailed, err, "precondition failed: ", message, nil)
}

func DependencyError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, "dependency failure: ", message, nil)
}

func UnavailableError(err error, message string) error {
	return newError(CategoryRecovering, err, "unavailable: ", message, nil)
}
