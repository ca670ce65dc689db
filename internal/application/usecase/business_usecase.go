package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
)

// BusinessUseCase perfil del negocio emisor y preferencias de la consola.
type BusinessUseCase struct {
	repo  repository.BusinessRepository
	prefs repository.PreferencesRepository
}

// NewBusinessUseCase construye el caso de uso con los puertos de persistencia.
func NewBusinessUseCase(repo repository.BusinessRepository, prefs repository.PreferencesRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, prefs: prefs}
}

// Get devuelve el perfil actual.
func (uc *BusinessUseCase) Get(ctx context.Context) (*dto.BusinessResponse, error) {
	info, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewBusinessResponse(info)
	return &out, nil
}

// Update sobrescribe el perfil. Las facturas ya emitidas conservan su copia anterior.
func (uc *BusinessUseCase) Update(ctx context.Context, in dto.BusinessRequest) (*dto.BusinessResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	info := entity.BusinessInfo{Name: in.Name, Email: in.Email, Phone: in.Phone, Address: in.Address}
	if err := uc.repo.Save(ctx, info); err != nil {
		return nil, err
	}
	out := dto.NewBusinessResponse(info)
	return &out, nil
}

// GetPreferences devuelve las preferencias actuales.
func (uc *BusinessUseCase) GetPreferences(ctx context.Context) (*dto.PreferencesDTO, error) {
	p, err := uc.prefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PreferencesDTO{DarkMode: p.DarkMode}, nil
}

// SetDarkMode persiste el modo oscuro.
func (uc *BusinessUseCase) SetDarkMode(ctx context.Context, on bool) (*dto.PreferencesDTO, error) {
	if err := uc.prefs.Save(ctx, entity.Preferences{DarkMode: on}); err != nil {
		return nil, err
	}
	return &dto.PreferencesDTO{DarkMode: on}, nil
}
