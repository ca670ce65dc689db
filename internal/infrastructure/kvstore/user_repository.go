package kvstore

import (
	"context"

	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre warrick_app_users.
type UserRepo struct {
	c *Collection[entity.User]
}

// NewUserRepository construye el adaptador.
func NewUserRepository(c *Collection[entity.User]) *UserRepo {
	return &UserRepo{c: c}
}

// List lista los usuarios en orden de alta.
func (r *UserRepo) List(_ context.Context) ([]entity.User, error) {
	return r.c.Items(), nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.c.Items() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

// FindByIdentifier usuarios cuyo username, móvil o email es igual al identificador.
func (r *UserRepo) FindByIdentifier(_ context.Context, identifier string) ([]entity.User, error) {
	if identifier == "" {
		return nil, nil
	}
	var out []entity.User
	for _, u := range r.c.Items() {
		if u.Username == identifier || (u.Mobile != "" && u.Mobile == identifier) || (u.Email != "" && u.Email == identifier) {
			out = append(out, u)
		}
	}
	return out, nil
}

// Create agrega el usuario al final.
func (r *UserRepo) Create(ctx context.Context, user entity.User) error {
	return r.c.Mutate(ctx, func(items []entity.User) ([]entity.User, error) {
		return append(items, user), nil
	})
}

// Update reemplaza el usuario con el mismo ID.
func (r *UserRepo) Update(ctx context.Context, user entity.User) error {
	return r.c.Mutate(ctx, func(items []entity.User) ([]entity.User, error) {
		for i := range items {
			if items[i].ID == user.ID {
				items[i] = user
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return r.c.Mutate(ctx, func(items []entity.User) ([]entity.User, error) {
		return removeWhere(items, func(u entity.User) bool { return u.ID == id })
	})
}
