package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Warrick-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/postgres"
)

// fakeQuerier emula kv_store en memoria reconociendo las sentencias por prefijo.
type fakeQuerier struct {
	rows  map[string]string
	execs []string
	fail  error
}

func newFake() *fakeQuerier { return &fakeQuerier{rows: map[string]string{}} }

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.fail != nil {
		return pgconn.CommandTag{}, f.fail
	}
	sql = strings.TrimSpace(sql)
	f.execs = append(f.execs, sql)
	switch {
	case strings.HasPrefix(sql, "INSERT"):
		f.rows[args[0].(string)] = args[1].(string)
	case strings.HasPrefix(sql, "DELETE"):
		delete(f.rows, args[0].(string))
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no usado")
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	v, ok := f.rows[args[0].(string)]
	return fakeRow{value: v, ok: ok, fail: f.fail}
}

type fakeRow struct {
	value string
	ok    bool
	fail  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.fail != nil {
		return r.fail
	}
	if !r.ok {
		return pgx.ErrNoRows
	}
	*(dest[0].(*string)) = r.value
	return nil
}

func TestKVBackend_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	q := newFake()
	b := postgres.NewKVBackend(q)

	require.NoError(t, b.EnsureSchema(ctx))
	assert.Contains(t, q.execs[0], "CREATE TABLE IF NOT EXISTS kv_store")

	_, ok, err := b.Get(ctx, kvstore.KeyInvoices)
	require.NoError(t, err)
	assert.False(t, ok, "clave ausente no es error")

	require.NoError(t, b.Set(ctx, kvstore.KeyInvoices, `[]`))
	v, ok, err := b.Get(ctx, kvstore.KeyInvoices)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)

	require.NoError(t, b.Delete(ctx, kvstore.KeyInvoices))
	_, ok, err = b.Get(ctx, kvstore.KeyInvoices)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVBackend_ErroresEnvueltos(t *testing.T) {
	ctx := context.Background()
	q := newFake()
	q.fail = errors.New("conexión cerrada")
	b := postgres.NewKVBackend(q)

	_, _, err := b.Get(ctx, kvstore.KeyProducts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), kvstore.KeyProducts)

	err = b.Set(ctx, kvstore.KeyProducts, "[]")
	require.Error(t, err)
	assert.ErrorIs(t, err, q.fail)
}

func TestKVBackend_AbreStore(t *testing.T) {
	ctx := context.Background()
	q := newFake()
	store, err := kvstore.Open(ctx, postgres.NewKVBackend(q), nil, nil)
	require.NoError(t, err)

	n, err := store.Sequence.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "1", q.rows[kvstore.KeyInvoiceCounter])
}
