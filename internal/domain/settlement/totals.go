// Package settlement contiene los cálculos derivados sobre facturas y catálogo:
// totales, impuestos, filtro por período, conciliación pagado/pendiente,
// unidades vendidas, rendimiento por producto y búsqueda global.
//
// Todas las funciones son puras: no fallan, no modifican sus entradas y con
// colecciones vacías devuelven agregados en cero. No se valida que precios,
// cantidades o tasas sean no negativos; los valores se propagan tal cual.
package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Subtotal Σ(precio × cantidad) de las líneas de la factura.
func Subtotal(inv entity.Invoice) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(item.Amount())
	}
	return sum
}

// Tax subtotal × (taxRate / 100).
func Tax(inv entity.Invoice) decimal.Decimal {
	return taxOn(Subtotal(inv), inv.TaxRate)
}

// Total subtotal + impuesto.
func Total(inv entity.Invoice) decimal.Decimal {
	subtotal := Subtotal(inv)
	return subtotal.Add(taxOn(subtotal, inv.TaxRate))
}

func taxOn(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate).Div(hundred)
}

// RevenueTotal suma de los totales de todas las facturas.
func RevenueTotal(invoices []entity.Invoice) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		sum = sum.Add(Total(inv))
	}
	return sum
}

// UnitsSold Σ cantidades de todas las líneas, coincidan o no con un producto del catálogo.
func UnitsSold(invoices []entity.Invoice) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		for _, item := range inv.Items {
			sum = sum.Add(item.Quantity)
		}
	}
	return sum
}
