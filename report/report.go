// Package report proyecta, filtra y ordena los estados de resultados.
package report

import (
	"sort"
	"time"

	"github.com/lizet96/financial-data-backend/apperrors"
	"github.com/lizet96/financial-data-backend/models"
)

// DateLayout es el formato YYYY-MM-DD de fechas en registros y parámetros
const DateLayout = "2006-01-02"

// parseLayout acepta mes y día con o sin cero a la izquierda (2020-9-26)
const parseLayout = "2006-1-2"

// ParseDate interpreta una fecha YYYY-MM-DD; el relleno con ceros es opcional
func ParseDate(value string) (time.Time, error) {
	return time.Parse(parseLayout, value)
}

// Project convierte cada registro del proveedor, conservando el orden
func Project(upstream []models.UpstreamRecord) []models.ReportRecord {
	records := make([]models.ReportRecord, 0, len(upstream))
	for _, u := range upstream {
		records = append(records, u.ToReportRecord())
	}
	return records
}

// FilterByDate conserva los registros con Date en [start, end].
// Una fecha de registro ilegible o ausente hace fallar toda la petición.
func FilterByDate(records []models.ReportRecord, start, end time.Time) ([]models.ReportRecord, error) {
	out := make([]models.ReportRecord, 0, len(records))
	for _, r := range records {
		if r.Date == nil {
			return nil, apperrors.NewMissingFieldValueError(models.FieldDate)
		}
		d, err := ParseDate(*r.Date)
		if err != nil {
			return nil, apperrors.NewInvalidDateValueError(*r.Date, err)
		}
		if !d.Before(start) && !d.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

// FilterByRevenue conserva los registros con Revenue en [lo, hi]
func FilterByRevenue(records []models.ReportRecord, lo, hi float64) ([]models.ReportRecord, error) {
	return filterRange(records, models.FieldRevenue, func(r models.ReportRecord) *float64 { return r.Revenue }, lo, hi)
}

// FilterByNetIncome conserva los registros con Net Income en [lo, hi]
func FilterByNetIncome(records []models.ReportRecord, lo, hi float64) ([]models.ReportRecord, error) {
	return filterRange(records, models.FieldNetIncome, func(r models.ReportRecord) *float64 { return r.NetIncome }, lo, hi)
}

func filterRange(records []models.ReportRecord, name string, value func(models.ReportRecord) *float64, lo, hi float64) ([]models.ReportRecord, error) {
	out := make([]models.ReportRecord, 0, len(records))
	for _, r := range records {
		v := value(r)
		if v == nil {
			return nil, apperrors.NewMissingFieldValueError(name)
		}
		if lo <= *v && *v <= hi {
			out = append(out, r)
		}
	}
	return out, nil
}

// Sort ordena de forma estable por el campo indicado.
// En orden descendente los empates conservan su orden original.
func Sort(records []models.ReportRecord, sortBy string, descending bool) ([]models.ReportRecord, error) {
	f, err := lookupField(sortBy)
	if err != nil {
		return nil, err
	}

	out := make([]models.ReportRecord, len(records))
	copy(out, records)
	if len(out) < 2 {
		return out, nil
	}
	for _, r := range out {
		if !f.present(r) {
			return nil, apperrors.NewMissingFieldValueError(f.name)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return f.compare(out[i], out[j]) > 0
		}
		return f.compare(out[i], out[j]) < 0
	})
	return out, nil
}

// Apply aplica, en orden, el filtro de fechas, de ingresos, de utilidad neta y el orden
func Apply(records []models.ReportRecord, params models.QueryParameters) ([]models.ReportRecord, error) {
	var err error

	if params.HasDateRange() {
		if records, err = FilterByDate(records, *params.StartDate, *params.EndDate); err != nil {
			return nil, err
		}
	}

	if params.HasRevenueRange() {
		if records, err = FilterByRevenue(records, *params.MinRevenue, *params.MaxRevenue); err != nil {
			return nil, err
		}
	}

	if params.HasNetIncomeRange() {
		if records, err = FilterByNetIncome(records, *params.MinNetIncome, *params.MaxNetIncome); err != nil {
			return nil, err
		}
	}

	if params.SortBy != "" {
		if records, err = Sort(records, params.SortBy, params.Descending); err != nil {
			return nil, err
		}
	}

	return records, nil
}
