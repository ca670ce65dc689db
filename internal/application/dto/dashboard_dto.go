package dto

import "github.com/shopspring/decimal"

// SettlementQuery parámetros de GET /api/settlement.
type SettlementQuery struct {
	Range string `query:"range"`
	Start string `query:"start"` // YYYY-MM-DD, solo con range=Custom
	End   string `query:"end"`
}

// ProductPerformanceDTO fila del rendimiento por producto.
type ProductPerformanceDTO struct {
	ProductID    string          `json:"productId"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Stock        decimal.Decimal `json:"stock"`
	SoldInPeriod decimal.Decimal `json:"soldInPeriod"`
	LowStock     bool            `json:"lowStock"`
}

// SettlementResponse liquidación de un periodo. Los importes van redondeados a 2 decimales.
type SettlementResponse struct {
	Range        string                  `json:"range"`
	Start        string                  `json:"start,omitempty"`
	End          string                  `json:"end,omitempty"`
	GeneratedAt  string                  `json:"generatedAt"`
	InvoiceCount int                     `json:"invoiceCount"`
	PaidCount    int                     `json:"paidCount"`
	UnpaidCount  int                     `json:"unpaidCount"`
	Received     decimal.Decimal         `json:"received"`
	Pending      decimal.Decimal         `json:"pending"`
	Gross        decimal.Decimal         `json:"gross"`
	UnitsSold    decimal.Decimal         `json:"unitsSold"`
	Products     []ProductPerformanceDTO `json:"products,omitempty"`
}

// DashboardResponse métricas del panel más el listado filtrado por la búsqueda global.
type DashboardResponse struct {
	TotalRevenue   decimal.Decimal   `json:"totalRevenue"`
	InvoiceCount   int               `json:"invoiceCount"`
	PaidCount      int               `json:"paidCount"`
	DraftCount     int               `json:"draftCount"`
	CustomersCount int               `json:"customersCount"`
	Invoices       []InvoiceResponse `json:"invoices"`
}
