package kvstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/kvstore"
)

// failingBackend envuelve un MemoryBackend y falla las escrituras cuando failSet es true.
type failingBackend struct {
	*kvstore.MemoryBackend
	failSet bool
}

var errDiskFull = errors.New("disk full")

func (b *failingBackend) Set(ctx context.Context, key, value string) error {
	if b.failSet {
		return errDiskFull
	}
	return b.MemoryBackend.Set(ctx, key, value)
}

func seedAdmin() []entity.User {
	return []entity.User{{ID: "admin-01", Role: entity.RoleAdmin, Name: "Admin", Username: "admin"}}
}

func TestOpen_ClavesAusentes_UsaDefaultsYPersiste(t *testing.T) {
	ctx := context.Background()
	backend := kvstore.NewMemoryBackend()

	store, err := kvstore.Open(ctx, backend, seedAdmin(), nil)
	require.NoError(t, err)

	users, err := store.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin-01", users[0].ID)

	raw, found, _ := backend.Get(ctx, kvstore.KeyUsers)
	assert.True(t, found, "el usuario sembrado se persiste al cargar")
	assert.Contains(t, raw, "admin-01")

	raw, found, _ = backend.Get(ctx, kvstore.KeyInvoices)
	assert.True(t, found)
	assert.Equal(t, "[]", raw)

	biz, err := store.Business.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultBusiness(), biz)

	draft, err := store.Drafts.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, draft)

	n, err := store.Sequence.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestOpen_BlobCorrupto_UsaDefault(t *testing.T) {
	ctx := context.Background()
	backend := kvstore.NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, kvstore.KeyCustomers, "{not json"))
	require.NoError(t, backend.Set(ctx, kvstore.KeyUsers, "[broken"))
	require.NoError(t, backend.Set(ctx, kvstore.KeyInvoiceCounter, "abc"))
	require.NoError(t, backend.Set(ctx, kvstore.KeyBusiness, "nope"))

	store, err := kvstore.Open(ctx, backend, seedAdmin(), nil)
	require.NoError(t, err, "un blob corrupto no es un error de carga")

	customers, err := store.Customers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)

	users, _ := store.Users.List(ctx)
	assert.Len(t, users, 1, "usuarios corruptos vuelven a la semilla")

	n, _ := store.Sequence.Current(ctx)
	assert.Equal(t, 0, n)

	biz, _ := store.Business.Get(ctx)
	assert.Equal(t, "Warrick Studios", biz.Name)
}

func TestOpen_RecargaEstadoPersistido(t *testing.T) {
	ctx := context.Background()
	backend := kvstore.NewMemoryBackend()

	store, err := kvstore.Open(ctx, backend, seedAdmin(), nil)
	require.NoError(t, err)
	require.NoError(t, store.Customers.Create(ctx, entity.Customer{ID: "c1", Name: "Rahim", Phone: "017"}))
	require.NoError(t, store.Preferences.Save(ctx, entity.Preferences{DarkMode: true}))
	_, err = store.Sequence.Next(ctx)
	require.NoError(t, err)

	raw, _, _ := backend.Get(ctx, kvstore.KeyDarkMode)
	assert.Equal(t, "true", raw)
	raw, _, _ = backend.Get(ctx, kvstore.KeyInvoiceCounter)
	assert.Equal(t, "1", raw)

	reopened, err := kvstore.Open(ctx, backend, nil, nil)
	require.NoError(t, err)
	c, err := reopened.Customers.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Rahim", c.Name)
	prefs, _ := reopened.Preferences.Get(ctx)
	assert.True(t, prefs.DarkMode)
	n, _ := reopened.Sequence.Current(ctx)
	assert.Equal(t, 1, n)
	users, _ := reopened.Users.List(ctx)
	assert.Len(t, users, 1, "los usuarios existentes no se vuelven a sembrar")
}

func TestInvoiceRepo_CreateAntepone(t *testing.T) {
	ctx := context.Background()
	store, err := kvstore.Open(ctx, kvstore.NewMemoryBackend(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, store.Invoices.Create(ctx, entity.Invoice{ID: "a", InvoiceNumber: "#0001"}))
	require.NoError(t, store.Invoices.Create(ctx, entity.Invoice{ID: "b", InvoiceNumber: "#0002"}))

	list, err := store.Invoices.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "la más reciente va primero")
	assert.Equal(t, "a", list[1].ID)
}

func TestInvoiceRepo_CopiasIndependientes(t *testing.T) {
	ctx := context.Background()
	store, err := kvstore.Open(ctx, kvstore.NewMemoryBackend(), nil, nil)
	require.NoError(t, err)

	inv := entity.Invoice{ID: "a", Items: []entity.LineItem{{ID: "i1", Name: "Logo", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(100)}}}
	require.NoError(t, store.Invoices.Create(ctx, inv))

	got, err := store.Invoices.GetByID(ctx, "a")
	require.NoError(t, err)
	got.Items[0].Name = "mutado"

	again, _ := store.Invoices.GetByID(ctx, "a")
	assert.Equal(t, "Logo", again.Items[0].Name, "modificar la copia no altera el almacén")
}

func TestUserRepo_CreateAgregaAlFinal(t *testing.T) {
	ctx := context.Background()
	store, err := kvstore.Open(ctx, kvstore.NewMemoryBackend(), seedAdmin(), nil)
	require.NoError(t, err)

	require.NoError(t, store.Users.Create(ctx, entity.User{ID: "u2", Role: entity.RoleStaff, Username: "staff", Mobile: "0170", Email: "s@x.io"}))
	users, _ := store.Users.List(ctx)
	require.Len(t, users, 2)
	assert.Equal(t, "u2", users[1].ID)

	for _, ident := range []string{"staff", "0170", "s@x.io"} {
		found, err := store.Users.FindByIdentifier(ctx, ident)
		require.NoError(t, err)
		require.Len(t, found, 1, ident)
		assert.Equal(t, "u2", found[0].ID)
	}
	found, _ := store.Users.FindByIdentifier(ctx, "")
	assert.Empty(t, found)
}

func TestMutate_FalloDeEscritura_NoAlteraInstantanea(t *testing.T) {
	ctx := context.Background()
	backend := &failingBackend{MemoryBackend: kvstore.NewMemoryBackend()}
	store, err := kvstore.Open(ctx, backend, nil, nil)
	require.NoError(t, err)
	require.NoError(t, store.Products.Create(ctx, entity.Product{ID: "p1", Name: "Logo"}))

	backend.failSet = true
	err = store.Products.Create(ctx, entity.Product{ID: "p2", Name: "Banner"})
	require.ErrorIs(t, err, errDiskFull)

	list, _ := store.Products.List(ctx)
	require.Len(t, list, 1, "la colección en memoria no cambia si la escritura falla")
	assert.Equal(t, "p1", list[0].ID)

	_, err = store.Sequence.Next(ctx)
	require.Error(t, err)
	n, _ := store.Sequence.Current(ctx)
	assert.Equal(t, 0, n)
}

func TestRepos_UpdateDeleteInexistente(t *testing.T) {
	ctx := context.Background()
	store, err := kvstore.Open(ctx, kvstore.NewMemoryBackend(), nil, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, store.Customers.Update(ctx, entity.Customer{ID: "x"}), domain.ErrNotFound)
	assert.ErrorIs(t, store.Customers.Delete(ctx, "x"), domain.ErrNotFound)
	assert.ErrorIs(t, store.Products.Delete(ctx, "x"), domain.ErrNotFound)
	assert.ErrorIs(t, store.Invoices.Update(ctx, entity.Invoice{ID: "x"}), domain.ErrNotFound)
	assert.ErrorIs(t, store.Users.Delete(ctx, "x"), domain.ErrNotFound)

	c, err := store.Customers.GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestDraftRepo_GuardarYDescartar(t *testing.T) {
	ctx := context.Background()
	backend := kvstore.NewMemoryBackend()
	store, err := kvstore.Open(ctx, backend, nil, nil)
	require.NoError(t, err)

	require.NoError(t, store.Drafts.Save(ctx, entity.Invoice{ID: "d1", Currency: "BDT"}))
	d, err := store.Drafts.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "d1", d.ID)

	require.NoError(t, store.Drafts.Clear(ctx))
	d, _ = store.Drafts.Get(ctx)
	assert.Nil(t, d)
	_, found, _ := backend.Get(ctx, kvstore.KeyDraft)
	assert.False(t, found)
}

func TestProductRepo_ImportesComoNumerosJSON(t *testing.T) {
	ctx := context.Background()
	backend := kvstore.NewMemoryBackend()
	store, err := kvstore.Open(ctx, backend, seedAdmin(), nil)
	require.NoError(t, err)

	require.NoError(t, store.Products.Create(ctx, entity.Product{
		ID: "p1", Name: "Widget", Price: decimal.RequireFromString("12.5"), Stock: decimal.NewFromInt(3),
	}))

	raw, found, err := backend.Get(ctx, kvstore.KeyProducts)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id":"p1","name":"Widget","price":12.5,"stock":3}]`, raw)
	assert.NotContains(t, raw, `"12.5"`)
}
