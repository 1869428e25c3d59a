// Package apperrors define la taxonomía de errores del servicio de reportes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifica el tipo de error de forma legible por máquina
type ErrorCode string

const (
	ErrCodeUpstreamUnavailable      ErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrCodeMalformedUpstreamPayload ErrorCode = "MALFORMED_UPSTREAM_PAYLOAD"
	ErrCodeInvalidFilterKey         ErrorCode = "INVALID_FILTER_KEY"
	ErrCodeInvalidDateValue         ErrorCode = "INVALID_DATE_VALUE"
	ErrCodeMissingFieldValue        ErrorCode = "MISSING_FIELD_VALUE"
	ErrCodeInvalidQueryParameter    ErrorCode = "INVALID_QUERY_PARAMETER"
)

// Mensajes devueltos al cliente cuando falla el proveedor
const (
	MsgFetchFailed = "Failed to fetch data"
	MsgParseFailed = "Failed to parse upstream data"
)

// StandardError es un error estructurado de la aplicación.
// StatusCode es el código que acompaña al error: para errores del proveedor
// es el estado reportado por el proveedor, no el estado HTTP de la respuesta.
type StandardError struct {
	Code       ErrorCode
	Message    string
	Details    string
	StatusCode int
	Err        error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.Err
}

// InBand indica si el error se entrega dentro de un cuerpo 200 OK
func (e *StandardError) InBand() bool {
	return e.Code == ErrCodeUpstreamUnavailable || e.Code == ErrCodeMalformedUpstreamPayload
}

// HTTPStatus devuelve el estado HTTP de la respuesta para este error
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeUpstreamUnavailable, ErrCodeMalformedUpstreamPayload:
		return http.StatusOK
	case ErrCodeInvalidFilterKey:
		return http.StatusBadRequest
	case ErrCodeInvalidQueryParameter:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func NewUpstreamUnavailableError(statusCode int, err error) *StandardError {
	return &StandardError{
		Code:       ErrCodeUpstreamUnavailable,
		Message:    MsgFetchFailed,
		StatusCode: statusCode,
		Err:        err,
	}
}

func NewMalformedUpstreamPayloadError(err error) *StandardError {
	return &StandardError{
		Code:       ErrCodeMalformedUpstreamPayload,
		Message:    MsgParseFailed,
		StatusCode: http.StatusBadGateway,
		Err:        err,
	}
}

func NewInvalidFilterKeyError(key string) *StandardError {
	return &StandardError{
		Code:       ErrCodeInvalidFilterKey,
		Message:    fmt.Sprintf("unknown sort field %q", key),
		StatusCode: http.StatusBadRequest,
	}
}

func NewInvalidDateValueError(value string, err error) *StandardError {
	return &StandardError{
		Code:       ErrCodeInvalidDateValue,
		Message:    fmt.Sprintf("record date %q is not a valid YYYY-MM-DD date", value),
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewMissingFieldValueError(field string) *StandardError {
	return &StandardError{
		Code:       ErrCodeMissingFieldValue,
		Message:    fmt.Sprintf("record has no value for %q", field),
		StatusCode: http.StatusInternalServerError,
	}
}

func NewInvalidQueryParameterError(name, value string, err error) *StandardError {
	return &StandardError{
		Code:       ErrCodeInvalidQueryParameter,
		Message:    fmt.Sprintf("invalid value %q for query parameter %s", value, name),
		StatusCode: http.StatusUnprocessableEntity,
		Err:        err,
	}
}

// As extrae un StandardError de la cadena de errores
func As(err error) (*StandardError, bool) {
	var se *StandardError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// HasCode indica si err contiene un StandardError con el código dado
func HasCode(err error, code ErrorCode) bool {
	se, ok := As(err)
	return ok && se.Code == code
}
