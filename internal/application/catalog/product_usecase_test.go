package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Warrick-api/internal/application/catalog"
	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/kvstore"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newCatalog(t *testing.T) *catalog.ProductUseCase {
	t.Helper()
	store, err := kvstore.Open(context.Background(), kvstore.NewMemoryBackend(), nil, nil)
	require.NoError(t, err)
	return catalog.NewProductUseCase(store.Products)
}

func TestCreate_InsertaAlInicio(t *testing.T) {
	uc := newCatalog(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.ProductRequest{Name: "Logo", Price: d("100"), Stock: d("5")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.ProductRequest{Name: " Banner ", Price: d("50"), Stock: d("20")})
	require.NoError(t, err)

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Banner", all[0].Name)
	assert.Equal(t, "Logo", all[1].Name)

	_, err = uc.Create(ctx, dto.ProductRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateYDelete(t *testing.T) {
	uc := newCatalog(t)
	ctx := context.Background()
	p, err := uc.Create(ctx, dto.ProductRequest{Name: "Logo", Price: d("100"), Stock: d("5")})
	require.NoError(t, err)

	upd, err := uc.Update(ctx, p.ID, dto.ProductRequest{Name: "Logo Pro", Price: d("150"), Stock: d("4")})
	require.NoError(t, err)
	assert.Equal(t, p.ID, upd.ID)
	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, d("150").Equal(got.Price))

	_, err = uc.Update(ctx, "x", dto.ProductRequest{Name: "Logo"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, p.ID, false), domain.ErrConfirmationRequired)
	require.NoError(t, uc.Delete(ctx, p.ID, true))
	_, err = uc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_Busqueda(t *testing.T) {
	uc := newCatalog(t)
	ctx := context.Background()
	for _, n := range []string{"Logo Design", "Banner", "Business Card"} {
		_, err := uc.Create(ctx, dto.ProductRequest{Name: n})
		require.NoError(t, err)
	}
	found, err := uc.List(ctx, "B")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestImport_ActualizaPorNombreSinMayusculas(t *testing.T) {
	uc := newCatalog(t)
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.ProductRequest{Name: "Logo", Price: d("100"), Stock: d("5")})
	require.NoError(t, err)

	created, updated, err := uc.Import(ctx, []dto.ProductRequest{
		{Name: "LOGO", Price: d("120"), Stock: d("8")},
		{Name: "Banner", Price: d("50"), Stock: d("2")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, updated)

	all, err := uc.List(ctx, "logo")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Logo", all[0].Name, "se conserva el nombre original")
	assert.True(t, d("120").Equal(all[0].Price))

	_, _, err = uc.Import(ctx, []dto.ProductRequest{{Name: ""}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
