package middleware

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lizet96/financial-data-backend/models"
)

// LogStore guarda los logs de peticiones
type LogStore interface {
	Insert(ctx context.Context, entry models.RequestLog) error
}

const logWriteTimeout = 5 * time.Second

// LoggingMiddleware registra cada petición HTTP en store de forma asíncrona
func LoggingMiddleware(store LogStore, environment string, logger *zap.Logger) fiber.Handler {
	if environment == "" {
		environment = models.EnvironmentDevelopment
	}
	pid := os.Getpid()

	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Continuar con la petición
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// el ErrorHandler todavía no escribió la respuesta
			status = statusFromError(err)
		}

		entry := createLogEntry(c, status, int(time.Since(start).Milliseconds()), environment, pid)

		// Guardar en base de datos de forma asíncrona
		go saveLog(store, entry, logger)

		return err
	}
}

// createLogEntry copia los datos de la petición; c no se puede usar fuera del handler
func createLogEntry(c *fiber.Ctx, status, responseTime int, environment string, pid int) models.RequestLog {
	// Obtener IP real del cliente
	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		ip = realIP
	}

	var userAgentPtr *string
	if userAgent := strings.Clone(c.Get("User-Agent")); userAgent != "" {
		userAgentPtr = &userAgent
	}

	var queryPtr *string
	if queryStr := string(c.Request().URI().QueryString()); queryStr != "" {
		queryPtr = &queryStr
	}

	return models.RequestLog{
		Method:       strings.Clone(c.Method()),
		Path:         strings.Clone(c.Path()),
		StatusCode:   status,
		ResponseTime: responseTime,
		UserAgent:    userAgentPtr,
		IP:           strings.Clone(ip),
		Query:        queryPtr,
		LogLevel:     determineLogLevel(status),
		Environment:  environment,
		PID:          pid,
		URL:          strings.Clone(c.OriginalURL()),
		Timestamp:    time.Now().UTC(),
	}
}

func statusFromError(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	var se interface{ HTTPStatus() int }
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	return fiber.StatusInternalServerError
}

// determineLogLevel determina el nivel de log basado en el status code
func determineLogLevel(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return models.LogLevelSuccess
	case statusCode >= 300 && statusCode < 400:
		return models.LogLevelInfo
	case statusCode >= 400 && statusCode < 500:
		return models.LogLevelWarning
	case statusCode >= 500:
		return models.LogLevelError
	default:
		return models.LogLevelInfo
	}
}

func saveLog(store LogStore, entry models.RequestLog, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), logWriteTimeout)
	defer cancel()

	if err := store.Insert(ctx, entry); err != nil {
		logger.Warn("failed to persist request log",
			zap.String("path", entry.Path),
			zap.Error(err))
	}
}
