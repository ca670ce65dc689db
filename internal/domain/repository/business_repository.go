package repository

import (
	"context"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
)

// BusinessRepository perfil del negocio emisor (documento único).
type BusinessRepository interface {
	Get(ctx context.Context) (entity.BusinessInfo, error)
	Save(ctx context.Context, info entity.BusinessInfo) error
}

// PreferencesRepository preferencias de la consola (modo oscuro).
type PreferencesRepository interface {
	Get(ctx context.Context) (entity.Preferences, error)
	Save(ctx context.Context, prefs entity.Preferences) error
}
