package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable: no se obtuvo respuesta HTTP completa del proveedor
	ErrUnreachable = errors.New("data provider unreachable")
	// ErrMalformedPayload: el cuerpo no es una lista de estados de resultados
	ErrMalformedPayload = errors.New("malformed data provider payload")
)

// APIError es una respuesta no 2xx del proveedor
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("data provider error: status %d from %s", e.StatusCode, e.Endpoint)
}
