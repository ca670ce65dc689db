package repository

import (
	"context"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByIdentifier devuelve los usuarios cuyo username, móvil o email coincide
	// (los usernames no son únicos).
	FindByIdentifier(ctx context.Context, identifier string) ([]entity.User, error)
	// Create agrega el usuario al final de la colección.
	Create(ctx context.Context, user entity.User) error
	Update(ctx context.Context, user entity.User) error
	Delete(ctx context.Context, id string) error
}
