package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/application/usecase"
	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/kvstore"
)

func newBusiness(t *testing.T) (*usecase.BusinessUseCase, kvstore.Backend) {
	t.Helper()
	backend := kvstore.NewMemoryBackend()
	store, err := kvstore.Open(context.Background(), backend, nil, nil)
	require.NoError(t, err)
	return usecase.NewBusinessUseCase(store.Business, store.Preferences), backend
}

func TestBusiness_PerfilPorDefectoYActualizacion(t *testing.T) {
	uc, backend := newBusiness(t)
	ctx := context.Background()

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Warrick Studios", got.Name)

	_, err = uc.Update(ctx, dto.BusinessRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, dto.BusinessRequest{Name: "X", Email: "no-es-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	upd, err := uc.Update(ctx, dto.BusinessRequest{Name: " Warrick Print ", Email: "hi@warrick.io"})
	require.NoError(t, err)
	assert.Equal(t, "Warrick Print", upd.Name)

	raw, found, err := backend.Get(ctx, kvstore.KeyBusiness)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, raw, `"name":"Warrick Print"`)
}

func TestBusiness_ModoOscuro(t *testing.T) {
	uc, backend := newBusiness(t)
	ctx := context.Background()

	p, err := uc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.False(t, p.DarkMode)

	_, err = uc.SetDarkMode(ctx, true)
	require.NoError(t, err)
	p, err = uc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.True(t, p.DarkMode)

	raw, found, err := backend.Get(ctx, kvstore.KeyDarkMode)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "true", raw)
}
