package models

import (
	"time"
)

// RequestLog es una fila de la tabla request_logs.
// Solo describe la petición entrante, nunca los datos obtenidos del proveedor.
type RequestLog struct {
	Method       string    `json:"method" db:"method"`
	Path         string    `json:"path" db:"path"`
	StatusCode   int       `json:"status_code" db:"status_code"`
	ResponseTime int       `json:"response_time" db:"response_time"`
	UserAgent    *string   `json:"user_agent" db:"user_agent"`
	IP           string    `json:"ip" db:"ip"`
	Query        *string   `json:"query" db:"query"`
	LogLevel     string    `json:"log_level" db:"log_level"`
	Environment  string    `json:"environment" db:"environment"`
	PID          int       `json:"pid" db:"pid"`
	URL          string    `json:"url" db:"url"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
}

// Constantes para niveles de log
const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
	LogLevelSuccess = "success"
)

// Constantes para ambientes
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
	EnvironmentTesting     = "testing"
)
