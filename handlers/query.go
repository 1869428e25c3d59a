package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/financial-data-backend/apperrors"
	"github.com/lizet96/financial-data-backend/models"
	"github.com/lizet96/financial-data-backend/report"
)

// parseQueryParameters convierte los parámetros de /fetch_data a sus tipos.
// Solo se valida el tipo; un rango incompleto se ignora sin error.
func parseQueryParameters(c *fiber.Ctx) (models.QueryParameters, error) {
	params := models.DefaultQueryParameters()

	// Las fechas solo se interpretan si vienen ambas
	startStr, endStr := c.Query("start_date"), c.Query("end_date")
	if startStr != "" && endStr != "" {
		start, err := parseDate("start_date", startStr)
		if err != nil {
			return params, err
		}
		end, err := parseDate("end_date", endStr)
		if err != nil {
			return params, err
		}
		params.StartDate, params.EndDate = &start, &end
	}

	var err error
	if params.MinRevenue, err = parseFloat(c, "min_revenue"); err != nil {
		return params, err
	}
	if params.MaxRevenue, err = parseFloat(c, "max_revenue"); err != nil {
		return params, err
	}
	if params.MinNetIncome, err = parseFloat(c, "min_net_income"); err != nil {
		return params, err
	}
	if params.MaxNetIncome, err = parseFloat(c, "max_net_income"); err != nil {
		return params, err
	}

	// sort_by presente pero vacío desactiva el orden
	if c.Context().QueryArgs().Has("sort_by") {
		params.SortBy = c.Query("sort_by")
	}

	if raw := c.Query("descending"); raw != "" {
		desc, ok := parseBool(raw)
		if !ok {
			return params, apperrors.NewInvalidQueryParameterError("descending", raw, nil)
		}
		params.Descending = desc
	}

	return params, nil
}

func parseDate(name, value string) (time.Time, error) {
	d, err := report.ParseDate(value)
	if err != nil {
		return time.Time{}, apperrors.NewInvalidQueryParameterError(name, value, err)
	}
	return d, nil
}

func parseFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewInvalidQueryParameterError(name, raw, err)
	}
	return &v, nil
}

// parseBool acepta las mismas formas que los formularios del frontend
func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on", "y", "t":
		return true, true
	case "false", "0", "no", "off", "n", "f":
		return false, true
	}
	return false, false
}
