package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// Name se compara sin distinguir mayúsculas contra los nombres de las líneas de factura.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock decimal.Decimal `json:"stock"`
}
