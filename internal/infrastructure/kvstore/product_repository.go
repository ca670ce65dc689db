package kvstore

import (
	"context"

	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre warrick_products.
type ProductRepo struct {
	c *Collection[entity.Product]
}

// NewProductRepository construye el adaptador.
func NewProductRepository(c *Collection[entity.Product]) *ProductRepo {
	return &ProductRepo{c: c}
}

// List lista los productos (más recientes primero).
func (r *ProductRepo) List(_ context.Context) ([]entity.Product, error) {
	return r.c.Items(), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.c.Items() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

// Create inserta el producto al inicio.
func (r *ProductRepo) Create(ctx context.Context, product entity.Product) error {
	return r.c.Mutate(ctx, func(items []entity.Product) ([]entity.Product, error) {
		return append([]entity.Product{product}, items...), nil
	})
}

// Update reemplaza el producto con el mismo ID.
func (r *ProductRepo) Update(ctx context.Context, product entity.Product) error {
	return r.c.Mutate(ctx, func(items []entity.Product) ([]entity.Product, error) {
		for i := range items {
			if items[i].ID == product.ID {
				items[i] = product
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.c.Mutate(ctx, func(items []entity.Product) ([]entity.Product, error) {
		return removeWhere(items, func(p entity.Product) bool { return p.ID == id })
	})
}
