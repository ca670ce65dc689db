package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Estados de una factura. Cualquier otro valor almacenado se trata como no pagado.
const (
	InvoiceStatusDraft = "Draft"
	InvoiceStatusPaid  = "Paid"
)

// Moneda por defecto del negocio (taka de Bangladesh).
const DefaultCurrency = "BDT"

// Invoice representa una factura con copias (snapshots) del negocio y del cliente.
// Los snapshots no se actualizan cuando cambian los registros originales: conservan
// la fidelidad histórica del documento emitido.
type Invoice struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoiceNumber"` // "#0001"
	Date          CalendarDate     `json:"date"`
	Business      BusinessInfo     `json:"business"`
	Customer      CustomerSnapshot `json:"customer"`
	Items         []LineItem       `json:"items"`
	Currency      string           `json:"currency"`
	TaxRate       decimal.Decimal  `json:"taxRate"` // porcentaje, ej: 10 = 10%
	Status        string           `json:"status"`
	Notes         string           `json:"notes"` // número de móvil del cliente
}

// IsPaid indica si la factura está liquidada.
func (inv *Invoice) IsPaid() bool {
	return inv.Status == InvoiceStatusPaid
}

// CustomerSnapshot datos del cliente copiados en la factura al momento de guardarla.
type CustomerSnapshot struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Clone devuelve una copia profunda (Items incluidos).
func (inv Invoice) Clone() Invoice {
	out := inv
	if inv.Items != nil {
		out.Items = make([]LineItem, len(inv.Items))
		copy(out.Items, inv.Items)
	}
	return out
}

// FormatInvoiceNumber formato visible del consecutivo: 1 → "#0001".
func FormatInvoiceNumber(n int) string {
	return fmt.Sprintf("#%04d", n)
}
