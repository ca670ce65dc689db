package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/bootstrap"
	"github.com/jhoicas/Warrick-api/pkg/config"
	"github.com/jhoicas/Warrick-api/pkg/logger"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	v := viper.New()
	v.Set("JWT_SECRET", "test")
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	store, closeFn, err := bootstrap.OpenStore(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(closeFn)
	return &app{log: logger.Nop(), svc: bootstrap.NewServices(store, cfg, logger.Nop())}
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func seedInvoice(t *testing.T, a *app, name, mobile string) {
	t.Helper()
	_, err := a.svc.Invoices.Create(context.Background(), dto.InvoiceRequest{
		Customer: dto.InvoiceCustomerRequest{Name: name},
		Items: []dto.LineItemRequest{{
			Name: "Logo", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(100),
		}},
		Status: "Paid",
		Notes:  mobile,
	})
	require.NoError(t, err)
}

func TestSettlement_ImprimeTotales(t *testing.T) {
	a := newTestApp(t)
	seedInvoice(t, a, "Rahim", "01711111111")

	out, err := run(t, a, "settlement")
	require.NoError(t, err)
	assert.Contains(t, out, "Periodo: Lifetime")
	assert.Contains(t, out, "Facturas: 1 (pagadas 1, pendientes 0)")
	assert.Contains(t, out, "Bruto:     200.00")
}

func TestSettlement_RangoInvalido(t *testing.T) {
	a := newTestApp(t)
	_, err := run(t, a, "settlement", "--range", "2W")
	assert.Error(t, err)
}

func TestSettlement_ExportaArchivos(t *testing.T) {
	a := newTestApp(t)
	seedInvoice(t, a, "Rahim", "01711111111")
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "r.pdf")
	xlsxPath := filepath.Join(dir, "r.xlsx")

	_, err := run(t, a, "settlement", "--pdf", pdfPath, "--xlsx", xlsxPath)
	require.NoError(t, err)

	raw, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestInvoices_BuscaPorCliente(t *testing.T) {
	a := newTestApp(t)
	seedInvoice(t, a, "Rahim", "01711111111")
	seedInvoice(t, a, "Karim", "01822222222")

	out, err := run(t, a, "invoices", "-q", "karim")
	require.NoError(t, err)
	assert.Contains(t, out, "Karim")
	assert.NotContains(t, out, "Rahim")

	out, err = run(t, a, "invoices", "-q", "nadie")
	require.NoError(t, err)
	assert.Contains(t, out, "Sin facturas")
}

func TestProductsImport_Latin1(t *testing.T) {
	a := newTestApp(t)
	// "Café" en ISO-8859-1: é = 0xE9
	csvData := []byte("name,price,stock\nCaf\xe9,120,5\nBanner,50,\n")
	path := filepath.Join(t.TempDir(), "p.csv")
	require.NoError(t, os.WriteFile(path, csvData, 0o644))

	out, err := run(t, a, "products", "import", path, "--charset", "latin1")
	require.NoError(t, err)
	assert.Contains(t, out, "2 nuevos, 0 actualizados")

	list, err := a.svc.Products.List(context.Background(), "café")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Café", list[0].Name)

	out, err = run(t, a, "products", "import", path, "--charset", "latin1")
	require.NoError(t, err)
	assert.Contains(t, out, "0 nuevos, 2 actualizados")
}

func TestParseProductsCSV_ErrorDeFormato(t *testing.T) {
	_, err := parseProductsCSV(strings.NewReader("Logo,abc,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "línea 1")
}

func TestDecodeCharset_Desconocido(t *testing.T) {
	_, err := decodeCharset(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}
