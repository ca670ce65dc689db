package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
)

// InvoicePDFGenerator genera el PDF A4 de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(inv entity.Invoice) ([]byte, error)
}

// CustomerPDFGenerator genera la ficha de un cliente y el índice de todos los clientes.
type CustomerPDFGenerator interface {
	GenerateCustomerProfilePDF(customer entity.Customer, exportedAt time.Time) ([]byte, error)
	GenerateCustomerIndexPDF(customers []entity.Customer, exportedAt time.Time) ([]byte, error)
}

// InvoiceXMLEncoder serializa una factura como XML tipo UBL.
type InvoiceXMLEncoder interface {
	EncodeInvoice(inv entity.Invoice) ([]byte, error)
}

// CustomerDirectory puerto mínimo que usa InvoiceUseCase para resolver el cliente de una factura.
type CustomerDirectory interface {
	ResolveOrCreate(ctx context.Context, name, address, phone string) (entity.Customer, bool, error)
}
