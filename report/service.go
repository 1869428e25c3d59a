package report

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/lizet96/financial-data-backend/apperrors"
	"github.com/lizet96/financial-data-backend/models"
	"github.com/lizet96/financial-data-backend/provider"
)

// QuoteProvider entrega los estados de resultados anuales del ticker configurado
type QuoteProvider interface {
	FetchIncomeStatements(ctx context.Context) ([]models.UpstreamRecord, error)
}

// Service implementa la consulta de /fetch_data
type Service struct {
	provider QuoteProvider
	logger   *zap.Logger
}

func NewService(p QuoteProvider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: p, logger: logger}
}

// FetchData hace una sola llamada al proveedor y aplica filtros y orden.
// Los fallos del proveedor se devuelven como *apperrors.StandardError entregable en banda.
func (s *Service) FetchData(ctx context.Context, params models.QueryParameters) ([]models.ReportRecord, error) {
	upstream, err := s.provider.FetchIncomeStatements(ctx)
	if err != nil {
		return nil, s.classify(err)
	}

	records, err := Apply(Project(upstream), params)
	if err != nil {
		s.logger.Warn("report query failed", zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (s *Service) classify(err error) error {
	var apiErr *provider.APIError
	switch {
	case errors.As(err, &apiErr):
		s.logger.Warn("data provider returned non-success status",
			zap.Int("status_code", apiErr.StatusCode),
			zap.String("endpoint", apiErr.Endpoint))
		return apperrors.NewUpstreamUnavailableError(apiErr.StatusCode, err)
	case errors.Is(err, provider.ErrMalformedPayload):
		s.logger.Warn("data provider payload could not be parsed", zap.Error(err))
		return apperrors.NewMalformedUpstreamPayloadError(err)
	default:
		s.logger.Error("data provider unreachable", zap.Error(err))
		return apperrors.NewUpstreamUnavailableError(http.StatusBadGateway, err)
	}
}
