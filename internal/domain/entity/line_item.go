package entity

import "github.com/shopspring/decimal"

// LineItem representa una línea de detalle de una factura.
type LineItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Amount importe extendido de la línea (precio × cantidad). Se calcula, no se almacena.
func (li LineItem) Amount() decimal.Decimal {
	return li.Price.Mul(li.Quantity)
}
