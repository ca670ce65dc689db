package kvstore

import (
	"context"

	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre la colección warrick_invoices.
type InvoiceRepo struct {
	c *Collection[entity.Invoice]
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(c *Collection[entity.Invoice]) *InvoiceRepo {
	return &InvoiceRepo{c: c}
}

// List devuelve copias profundas de las facturas.
func (r *InvoiceRepo) List(_ context.Context) ([]entity.Invoice, error) {
	items := r.c.Items()
	for i := range items {
		items[i] = items[i].Clone()
	}
	return items, nil
}

// GetByID obtiene una factura por ID; nil si no existe.
func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	for _, inv := range r.c.Items() {
		if inv.ID == id {
			out := inv.Clone()
			return &out, nil
		}
	}
	return nil, nil
}

// Create inserta la factura al inicio (más recientes primero).
func (r *InvoiceRepo) Create(ctx context.Context, invoice entity.Invoice) error {
	return r.c.Mutate(ctx, func(items []entity.Invoice) ([]entity.Invoice, error) {
		return append([]entity.Invoice{invoice.Clone()}, items...), nil
	})
}

// Update reemplaza la factura con el mismo ID.
func (r *InvoiceRepo) Update(ctx context.Context, invoice entity.Invoice) error {
	return r.c.Mutate(ctx, func(items []entity.Invoice) ([]entity.Invoice, error) {
		for i := range items {
			if items[i].ID == invoice.ID {
				items[i] = invoice.Clone()
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// Delete elimina la factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	return r.c.Mutate(ctx, func(items []entity.Invoice) ([]entity.Invoice, error) {
		return removeWhere(items, func(inv entity.Invoice) bool { return inv.ID == id })
	})
}

// removeWhere filtra los elementos que cumplen match; ErrNotFound si ninguno cumple.
func removeWhere[T any](items []T, match func(T) bool) ([]T, error) {
	out := items[:0]
	removed := false
	for _, it := range items {
		if match(it) {
			removed = true
			continue
		}
		out = append(out, it)
	}
	if !removed {
		return nil, domain.ErrNotFound
	}
	return out, nil
}
