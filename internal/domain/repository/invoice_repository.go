package repository

import (
	"context"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// La colección completa se reescribe en cada mutación.
type InvoiceRepository interface {
	// List devuelve una copia de todas las facturas (más recientes primero).
	List(ctx context.Context) ([]entity.Invoice, error)
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// Create inserta la factura al inicio de la colección.
	Create(ctx context.Context, invoice entity.Invoice) error
	Update(ctx context.Context, invoice entity.Invoice) error
	Delete(ctx context.Context, id string) error
}

// DraftRepository guarda el borrador de factura aún no emitido.
type DraftRepository interface {
	// Get devuelve el borrador guardado; nil si no hay uno (o si el blob está corrupto).
	Get(ctx context.Context) (*entity.Invoice, error)
	Save(ctx context.Context, draft entity.Invoice) error
	Clear(ctx context.Context) error
}

// SequenceRepository contador monótono para la numeración de facturas.
type SequenceRepository interface {
	Current(ctx context.Context) (int, error)
	// Next incrementa, persiste y devuelve el nuevo valor.
	Next(ctx context.Context) (int, error)
}
