package settlement

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
)

// LowStockThreshold stock a partir del cual el reporte resalta el producto.
var LowStockThreshold = decimal.NewFromInt(10)

// Report conciliación pagado/pendiente de un conjunto (ya filtrado) de facturas.
type Report struct {
	Received  decimal.Decimal // total de facturas Paid
	Pending   decimal.Decimal // total del resto de estados (Draft incluido)
	Gross     decimal.Decimal // total de todas; siempre Received + Pending
	UnitsSold decimal.Decimal
	Paid      int // cantidad de facturas pagadas
	Unpaid    int
	Products  []ProductPerformance
}

// ProductPerformance unidades vendidas de un producto en el período, junto a su stock y precio actuales.
type ProductPerformance struct {
	ProductID    string
	Name         string
	Price        decimal.Decimal
	Stock        decimal.Decimal
	SoldInPeriod decimal.Decimal
	LowStock     bool
}

// PartitionByStatus separa las facturas en pagadas y no pagadas (cualquier estado distinto de Paid).
func PartitionByStatus(invoices []entity.Invoice) (paid, unpaid []entity.Invoice) {
	for _, inv := range invoices {
		if inv.IsPaid() {
			paid = append(paid, inv)
		} else {
			unpaid = append(unpaid, inv)
		}
	}
	return paid, unpaid
}

// Settle construye el reporte de liquidación sobre facturas ya filtradas por período.
func Settle(invoices []entity.Invoice, products []entity.Product) Report {
	paid, unpaid := PartitionByStatus(invoices)
	return Report{
		Received:  RevenueTotal(paid),
		Pending:   RevenueTotal(unpaid),
		Gross:     RevenueTotal(invoices),
		UnitsSold: UnitsSold(invoices),
		Paid:      len(paid),
		Unpaid:    len(unpaid),
		Products:  Performance(products, invoices),
	}
}

// Performance calcula, para cada producto del catálogo (en su orden), la suma de cantidades
// de las líneas cuyo nombre es igual al del producto tras pasar ambos a minúsculas.
// No hay coincidencia parcial: "Widget" y "Widgets" son productos distintos.
func Performance(products []entity.Product, invoices []entity.Invoice) []ProductPerformance {
	soldByName := make(map[string]decimal.Decimal)
	for _, inv := range invoices {
		for _, item := range inv.Items {
			key := strings.ToLower(item.Name)
			soldByName[key] = soldByName[key].Add(item.Quantity)
		}
	}
	out := make([]ProductPerformance, 0, len(products))
	for _, p := range products {
		sold, ok := soldByName[strings.ToLower(p.Name)]
		if !ok {
			sold = decimal.Zero
		}
		out = append(out, ProductPerformance{
			ProductID:    p.ID,
			Name:         p.Name,
			Price:        p.Price,
			Stock:        p.Stock,
			SoldInPeriod: sold,
			LowStock:     p.Stock.LessThanOrEqual(LowStockThreshold),
		})
	}
	return out
}

// FindProductByName primer producto cuyo nombre coincide sin distinguir mayúsculas.
func FindProductByName(products []entity.Product, name string) (entity.Product, bool) {
	key := strings.ToLower(name)
	for _, p := range products {
		if strings.ToLower(p.Name) == key {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Summary cifras del tablero principal.
type Summary struct {
	TotalRevenue   decimal.Decimal
	InvoiceCount   int
	PaidCount      int
	DraftCount     int
	CustomersCount int
}

// Dashboard resume todas las facturas (sin filtro de período).
func Dashboard(invoices []entity.Invoice, customersCount int) Summary {
	s := Summary{
		TotalRevenue:   RevenueTotal(invoices),
		InvoiceCount:   len(invoices),
		CustomersCount: customersCount,
	}
	for _, inv := range invoices {
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			s.PaidCount++
		case entity.InvoiceStatusDraft:
			s.DraftCount++
		}
	}
	return s
}
