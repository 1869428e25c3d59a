package models

import "time"

// QueryParameters son los filtros y el orden pedidos por el cliente.
// Un rango solo se aplica cuando sus dos extremos están presentes.
type QueryParameters struct {
	StartDate    *time.Time
	EndDate      *time.Time
	MinRevenue   *float64
	MaxRevenue   *float64
	MinNetIncome *float64
	MaxNetIncome *float64
	SortBy       string // vacío = sin orden
	Descending   bool
}

// DefaultQueryParameters devuelve los valores por defecto del endpoint
func DefaultQueryParameters() QueryParameters {
	return QueryParameters{SortBy: FieldDate}
}

func (q QueryParameters) HasDateRange() bool {
	return q.StartDate != nil && q.EndDate != nil
}

func (q QueryParameters) HasRevenueRange() bool {
	return q.MinRevenue != nil && q.MaxRevenue != nil
}

func (q QueryParameters) HasNetIncomeRange() bool {
	return q.MinNetIncome != nil && q.MaxNetIncome != nil
}
