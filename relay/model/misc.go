package model

import "net/http"

const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeProvider      = "provider_error"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypeTransport     = "transport_error"
	ErrorTypeInternal      = "internal_error"
)

type Error struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type ErrorWithStatusCode struct {
	Error
	StatusCode int `json:"status_code"`
}

func NewError(message string, errType string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Error: Error{
			Message: message,
			Type:    errType,
		},
		StatusCode: statusCode,
	}
}

func ErrorWrapper(err error, errType string, statusCode int) *ErrorWithStatusCode {
	return NewError(err.Error(), errType, statusCode)
}

func ValidationError(message string) *ErrorWithStatusCode {
	return NewError(message, ErrorTypeValidation, http.StatusBadRequest)
}

func ConfigurationError(message string) *ErrorWithStatusCode {
	return NewError(message, ErrorTypeConfiguration, http.StatusInternalServerError)
}

func ProviderError(message string) *ErrorWithStatusCode {
	return NewError(message, ErrorTypeProvider, http.StatusInternalServerError)
}

func NotFoundError(message string) *ErrorWithStatusCode {
	return NewError(message, ErrorTypeNotFound, http.StatusNotFound)
}

func TransportError(message string) *ErrorWithStatusCode {
	return NewError(message, ErrorTypeTransport, http.StatusInternalServerError)
}

func InternalError(message string) *ErrorWithStatusCode {
	return NewError(message, ErrorTypeInternal, http.StatusInternalServerError)
}
