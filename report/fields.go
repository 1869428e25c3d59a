package report

import (
	"strings"

	"github.com/lizet96/financial-data-backend/apperrors"
	"github.com/lizet96/financial-data-backend/models"
)

// field es un accesor tipado para un campo de ReportRecord.
// Date se compara como texto; el resto como número.
type field struct {
	name    string
	text    func(models.ReportRecord) *string
	numeric func(models.ReportRecord) *float64
}

var sortFields = map[string]field{
	models.FieldDate: {
		name: models.FieldDate,
		text: func(r models.ReportRecord) *string { return r.Date },
	},
	models.FieldRevenue: {
		name:    models.FieldRevenue,
		numeric: func(r models.ReportRecord) *float64 { return r.Revenue },
	},
	models.FieldNetIncome: {
		name:    models.FieldNetIncome,
		numeric: func(r models.ReportRecord) *float64 { return r.NetIncome },
	},
	models.FieldGrossProfit: {
		name:    models.FieldGrossProfit,
		numeric: func(r models.ReportRecord) *float64 { return r.GrossProfit },
	},
	models.FieldEPS: {
		name:    models.FieldEPS,
		numeric: func(r models.ReportRecord) *float64 { return r.EPS },
	},
	models.FieldOperatingIncome: {
		name:    models.FieldOperatingIncome,
		numeric: func(r models.ReportRecord) *float64 { return r.OperatingIncome },
	},
}

// lookupField resuelve sort_by; los nombres distinguen mayúsculas
func lookupField(name string) (field, error) {
	f, ok := sortFields[name]
	if !ok {
		err := apperrors.NewInvalidFilterKeyError(name)
		err.Details = "allowed: " + strings.Join(SortFields(), ", ")
		return field{}, err
	}
	return f, nil
}

// compare devuelve -1, 0 o 1. Ambos valores deben estar presentes.
func (f field) compare(a, b models.ReportRecord) int {
	if f.text != nil {
		return strings.Compare(*f.text(a), *f.text(b))
	}
	x, y := *f.numeric(a), *f.numeric(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (f field) present(r models.ReportRecord) bool {
	if f.text != nil {
		return f.text(r) != nil
	}
	return f.numeric(r) != nil
}

// SortFields lista los nombres aceptados por sort_by
func SortFields() []string {
	return []string{
		models.FieldDate,
		models.FieldRevenue,
		models.FieldNetIncome,
		models.FieldGrossProfit,
		models.FieldEPS,
		models.FieldOperatingIncome,
	}
}
