package models

// UpstreamRecord es un estado de resultados anual tal como lo entrega el proveedor.
// Cualquier campo puede faltar o venir en null.
type UpstreamRecord struct {
	Date            *string  `json:"date"`
	Revenue         *float64 `json:"revenue"`
	NetIncome       *float64 `json:"netIncome"`
	GrossProfit     *float64 `json:"grossProfit"`
	EPS             *float64 `json:"eps"`
	OperatingIncome *float64 `json:"operatingIncome"`
}

// ReportRecord es la forma que recibe el cliente
type ReportRecord struct {
	Date            *string  `json:"Date"`
	Revenue         *float64 `json:"Revenue"`
	NetIncome       *float64 `json:"Net Income"`
	GrossProfit     *float64 `json:"Gross Profit"`
	EPS             *float64 `json:"Earnings Per Share (EPS)"`
	OperatingIncome *float64 `json:"Operating Income"`
}

// Nombres de campo aceptados por sort_by
const (
	FieldDate            = "Date"
	FieldRevenue         = "Revenue"
	FieldNetIncome       = "Net Income"
	FieldGrossProfit     = "Gross Profit"
	FieldEPS             = "Earnings Per Share (EPS)"
	FieldOperatingIncome = "Operating Income"
)

// ToReportRecord renombra los campos sin validar su contenido
func (u UpstreamRecord) ToReportRecord() ReportRecord {
	return ReportRecord{
		Date:            u.Date,
		Revenue:         u.Revenue,
		NetIncome:       u.NetIncome,
		GrossProfit:     u.GrossProfit,
		EPS:             u.EPS,
		OperatingIncome: u.OperatingIncome,
	}
}
