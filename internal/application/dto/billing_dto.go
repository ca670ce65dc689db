package dto

import "github.com/shopspring/decimal"

// CustomerRequest body para POST/PUT /api/customers.
type CustomerRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Phone   string `json:"phone" validate:"required,max=40"`
	Address string `json:"address,omitempty" validate:"max=500"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// InvoiceCustomerRequest datos del cliente copiados en la factura.
type InvoiceCustomerRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// LineItemRequest línea de factura. Precio cero con nombre de catálogo toma el precio del producto.
type LineItemRequest struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name" validate:"max=200"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// InvoiceRequest body para POST/PUT /api/invoices y PUT /api/invoices/draft.
// Notes es el número móvil del cliente.
type InvoiceRequest struct {
	Date     string                 `json:"date,omitempty"` // YYYY-MM-DD; vacío = hoy
	Customer InvoiceCustomerRequest `json:"customer"`
	Items    []LineItemRequest      `json:"items" validate:"dive"`
	Currency string                 `json:"currency,omitempty" validate:"omitempty,max=8"`
	TaxRate  decimal.Decimal        `json:"taxRate"`
	Status   string                 `json:"status,omitempty" validate:"max=20"`
	Notes    string                 `json:"notes" validate:"required,max=40"`
}

// LineItemResponse línea con su importe calculado.
type LineItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
}

// InvoiceCustomerResponse copia del cliente dentro de la factura.
type InvoiceCustomerResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// InvoiceResponse factura con totales para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID            string                  `json:"id"`
	InvoiceNumber string                  `json:"invoiceNumber"`
	Date          string                  `json:"date"`
	Business      BusinessResponse        `json:"business"`
	Customer      InvoiceCustomerResponse `json:"customer"`
	Items         []LineItemResponse      `json:"items"`
	Currency      string                  `json:"currency"`
	TaxRate       decimal.Decimal         `json:"taxRate"`
	Status        string                  `json:"status"`
	Notes         string                  `json:"notes"`
	Subtotal      decimal.Decimal         `json:"subtotal"`
	Tax           decimal.Decimal         `json:"tax"`
	Total         decimal.Decimal         `json:"total"`
}

// ShareResponse resumen para compartir una factura.
type ShareResponse struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
	// FallbackURL enlace wa.me o mailto según el contacto del cliente.
	FallbackURL string `json:"fallbackUrl"`
}
