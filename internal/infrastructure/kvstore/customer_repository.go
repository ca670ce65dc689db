package kvstore

import (
	"context"

	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre warrick_customers.
type CustomerRepo struct {
	c *Collection[entity.Customer]
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(c *Collection[entity.Customer]) *CustomerRepo {
	return &CustomerRepo{c: c}
}

// List lista los clientes (más recientes primero).
func (r *CustomerRepo) List(_ context.Context) ([]entity.Customer, error) {
	return r.c.Items(), nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	for _, c := range r.c.Items() {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

// Create inserta el cliente al inicio.
func (r *CustomerRepo) Create(ctx context.Context, customer entity.Customer) error {
	return r.c.Mutate(ctx, func(items []entity.Customer) ([]entity.Customer, error) {
		return append([]entity.Customer{customer}, items...), nil
	})
}

// Update reemplaza el cliente con el mismo ID.
func (r *CustomerRepo) Update(ctx context.Context, customer entity.Customer) error {
	return r.c.Mutate(ctx, func(items []entity.Customer) ([]entity.Customer, error) {
		for i := range items {
			if items[i].ID == customer.ID {
				items[i] = customer
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	return r.c.Mutate(ctx, func(items []entity.Customer) ([]entity.Customer, error) {
		return removeWhere(items, func(c entity.Customer) bool { return c.ID == id })
	})
}
