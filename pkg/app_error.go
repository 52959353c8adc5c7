package pkg

import "fmt"

// AppError is the structured error handlers translate domain failures into.
// Code is a stable machine-readable identifier, Message is safe to show the
// caller, Err keeps the underlying cause for server-side logs only.

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
	HTTPStatus int    `json:"-"`
}

// HTTPError is the wire shape of a failed response.
type HTTPError struct {
	IsError bool   `json:"is_error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError without an underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError projects the error into its response body. The underlying
// cause never leaves the server.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{IsError: true, Code: e.Code, Message: e.Message}
}
