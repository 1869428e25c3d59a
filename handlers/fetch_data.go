package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lizet96/financial-data-backend/apperrors"
	"github.com/lizet96/financial-data-backend/metrics"
	"github.com/lizet96/financial-data-backend/models"
)

// ReportService es la consulta de estados de resultados usada por /fetch_data
type ReportService interface {
	FetchData(ctx context.Context, params models.QueryParameters) ([]models.ReportRecord, error)
}

type ReportHandler struct {
	service ReportService
	logger  *zap.Logger
}

func NewReportHandler(service ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{service: service, logger: logger}
}

// FetchData obtiene, filtra y ordena los estados de resultados anuales
func (h *ReportHandler) FetchData(c *fiber.Ctx) error {
	params, err := parseQueryParameters(c)
	if err != nil {
		metrics.ReportFailures.WithLabelValues(errorCode(err)).Inc()
		return err
	}

	records, err := h.service.FetchData(c.UserContext(), params)
	if err != nil {
		metrics.ReportFailures.WithLabelValues(errorCode(err)).Inc()

		// Los fallos del proveedor se entregan en el cuerpo con 200 OK
		if se, ok := apperrors.As(err); ok && se.InBand() {
			return c.Status(se.HTTPStatus()).JSON(ErrorResult{
				Error:      se.Message,
				StatusCode: se.StatusCode,
			})
		}
		return err
	}

	metrics.ReportRecordsReturned.Observe(float64(len(records)))
	h.logger.Debug("fetch_data served",
		zap.Int("records", len(records)),
		zap.String("sort_by", params.SortBy),
		zap.Bool("descending", params.Descending))

	return c.JSON(records)
}

func errorCode(err error) string {
	if se, ok := apperrors.As(err); ok {
		return string(se.Code)
	}
	return "UNKNOWN"
}

// ErrorHandler es el manejador de errores de la app Fiber
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if se, ok := apperrors.As(err); ok {
			status := se.HTTPStatus()
			if status >= fiber.StatusInternalServerError {
				logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			message := se.Message
			if se.Details != "" {
				message += " (" + se.Details + ")"
			}
			return c.Status(status).JSON(FatalErrorResponse{
				Error:   true,
				Code:    string(se.Code),
				Message: message,
			})
		}

		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		}
		return c.Status(code).JSON(FatalErrorResponse{
			Error:   true,
			Message: err.Error(),
		})
	}
}
