package errors

import "net/http"

// HTTPError is an error that carries the HTTP status the delivery layer must answer with.
type HTTPError struct {
	StatusCode int
	Message    string
	Data       map[string]interface{}
}

func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// WithData attaches extra fields rendered into the response body.
func (e *HTTPError) WithData(data map[string]interface{}) *HTTPError {
	e.Data = data
	return e
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
)
