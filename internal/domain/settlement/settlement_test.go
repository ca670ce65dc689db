package settlement_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func item(name string, price, qty int64) entity.LineItem {
	return entity.LineItem{ID: name, Name: name, Price: dec(price), Quantity: dec(qty)}
}

func invoice(number, status string, taxRate int64, date time.Time, items ...entity.LineItem) entity.Invoice {
	return entity.Invoice{
		ID:            number,
		InvoiceNumber: number,
		Date:          entity.NewCalendarDate(date),
		Status:        status,
		TaxRate:       dec(taxRate),
		Items:         items,
	}
}

func daysAgo(n int) time.Time { return testNow.AddDate(0, 0, -n) }

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

func TestSettle_EscenarioPagadoYBorrador(t *testing.T) {
	invs := []entity.Invoice{
		invoice("#0001", entity.InvoiceStatusPaid, 10, daysAgo(1), item("Diseño", 100, 2)),
		invoice("#0002", entity.InvoiceStatusDraft, 0, daysAgo(1), item("Hosting", 50, 1)),
	}

	r := settlement.Settle(invs, nil)

	assert.True(t, dec(220).Equal(r.Received), "received = 200 + 10%% = 220, obtenido %s", r.Received)
	assert.True(t, dec(50).Equal(r.Pending), "pending = 50, obtenido %s", r.Pending)
	assert.True(t, dec(270).Equal(r.Gross), "gross = 270, obtenido %s", r.Gross)
	assert.Equal(t, 1, r.Paid)
	assert.Equal(t, 1, r.Unpaid)
}

func TestTotal_TasaCeroIgualASubtotal(t *testing.T) {
	inv := invoice("#0003", entity.InvoiceStatusDraft, 0, testNow,
		entity.LineItem{Name: "a", Price: decimal.RequireFromString("19.99"), Quantity: dec(3)},
		entity.LineItem{Name: "b", Price: decimal.RequireFromString("0.01"), Quantity: dec(7)},
	)
	assert.True(t, settlement.Subtotal(inv).Equal(settlement.Total(inv)))
	assert.Equal(t, "60.04", settlement.Total(inv).String())
}

func TestTotal_ValoresNegativosSePropagan(t *testing.T) {
	inv := invoice("#0004", entity.InvoiceStatusPaid, -10, testNow, item("ajuste", -100, 1))
	assert.Equal(t, "-90", settlement.Total(inv).String())
}

func TestSettle_ColeccionesVacias(t *testing.T) {
	r := settlement.Settle(nil, nil)
	assert.True(t, r.Received.IsZero())
	assert.True(t, r.Pending.IsZero())
	assert.True(t, r.Gross.IsZero())
	assert.True(t, r.UnitsSold.IsZero())
	assert.Empty(t, r.Products)
}

// La suma pagado + pendiente debe coincidir con el bruto para cualquier mezcla de estados.
func TestSettle_RecibidoMasPendienteIgualBruto(t *testing.T) {
	statuses := []string{entity.InvoiceStatusPaid, entity.InvoiceStatusDraft, "Overdue", ""}
	var invs []entity.Invoice
	for i := 0; i < 40; i++ {
		invs = append(invs, invoice("#x", statuses[i%len(statuses)], int64(i%15), daysAgo(i),
			entity.LineItem{Name: "p", Price: decimal.New(int64(1234+i*37), -2), Quantity: dec(int64(1 + i%4))},
		))
	}
	r := settlement.Settle(invs, nil)
	assert.True(t, r.Received.Add(r.Pending).Equal(r.Gross),
		"received (%s) + pending (%s) debe ser gross (%s)", r.Received, r.Pending, r.Gross)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro por período
// ──────────────────────────────────────────────────────────────────────────────

func sampleInvoices() []entity.Invoice {
	return []entity.Invoice{
		invoice("#0001", entity.InvoiceStatusPaid, 0, daysAgo(0), item("a", 1, 1)),
		invoice("#0002", entity.InvoiceStatusPaid, 0, daysAgo(3), item("a", 1, 1)),
		invoice("#0003", entity.InvoiceStatusPaid, 0, daysAgo(10), item("a", 1, 1)),
		invoice("#0004", entity.InvoiceStatusPaid, 0, daysAgo(45), item("a", 1, 1)),
		invoice("#0005", entity.InvoiceStatusPaid, 0, daysAgo(120), item("a", 1, 1)),
		invoice("#0006", entity.InvoiceStatusPaid, 0, daysAgo(300), item("a", 1, 1)),
		invoice("#0007", entity.InvoiceStatusPaid, 0, daysAgo(1000), item("a", 1, 1)),
		invoice("#0008", entity.InvoiceStatusPaid, 0, daysAgo(4000), item("a", 1, 1)),
	}
}

func numbers(invs []entity.Invoice) []string {
	out := make([]string, 0, len(invs))
	for _, inv := range invs {
		out = append(out, inv.InvoiceNumber)
	}
	return out
}

func TestFilterByRange_Lifetime_DevuelveTodo(t *testing.T) {
	invs := sampleInvoices()
	got := settlement.FilterByRange(invs, settlement.RangeFilter{Range: settlement.RangeLifetime}, testNow)
	assert.Equal(t, invs, got)
}

func TestFilterByRange_PeriodosConNombre(t *testing.T) {
	cases := []struct {
		r    settlement.Range
		want []string
	}{
		{settlement.Range7Days, []string{"#0001", "#0002"}},
		{settlement.Range15Days, []string{"#0001", "#0002", "#0003"}},
		{settlement.Range30Days, []string{"#0001", "#0002", "#0003"}},
		{settlement.Range90Days, []string{"#0001", "#0002", "#0003", "#0004"}},
		{settlement.Range180Days, []string{"#0001", "#0002", "#0003", "#0004", "#0005"}},
		{settlement.RangeOneYear, []string{"#0001", "#0002", "#0003", "#0004", "#0005", "#0006"}},
		{settlement.RangeFiveYears, []string{"#0001", "#0002", "#0003", "#0004", "#0005", "#0006", "#0007"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.r), func(t *testing.T) {
			got := settlement.FilterByRange(sampleInvoices(), settlement.RangeFilter{Range: tc.r}, testNow)
			assert.Equal(t, tc.want, numbers(got))
		})
	}
}

// Un período más estrecho siempre es subconjunto de uno más amplio.
func TestFilterByRange_Monotono(t *testing.T) {
	named := settlement.Ranges[:len(settlement.Ranges)-1] // sin Custom
	invs := sampleInvoices()
	for i := 1; i < len(named); i++ {
		narrow := numbers(settlement.FilterByRange(invs, settlement.RangeFilter{Range: named[i-1]}, testNow))
		wide := numbers(settlement.FilterByRange(invs, settlement.RangeFilter{Range: named[i]}, testNow))
		assert.Subset(t, wide, narrow, "%s debe estar contenido en %s", named[i-1], named[i])
	}
}

func TestFilterByRange_Custom(t *testing.T) {
	invs := sampleInvoices()
	start := daysAgo(50)
	end := daysAgo(3)

	got := settlement.FilterByRange(invs, settlement.RangeFilter{Range: settlement.RangeCustom, Start: &start, End: &end}, testNow)
	assert.Equal(t, []string{"#0002", "#0003", "#0004"}, numbers(got), "los extremos son inclusivos")

	got = settlement.FilterByRange(invs, settlement.RangeFilter{Range: settlement.RangeCustom, Start: &start}, testNow)
	assert.Equal(t, []string{"#0001", "#0002", "#0003", "#0004"}, numbers(got), "sin End se usa now")

	got = settlement.FilterByRange(invs, settlement.RangeFilter{Range: settlement.RangeCustom}, testNow)
	assert.Equal(t, invs, got, "sin Start se devuelve todo")
}

func TestFilterByRange_CustomPosteriorATodo_TotalesEnCero(t *testing.T) {
	start := testNow.AddDate(0, 0, 1)
	filtered := settlement.FilterByRange(sampleInvoices(),
		settlement.RangeFilter{Range: settlement.RangeCustom, Start: &start}, testNow)
	require.Empty(t, filtered)

	r := settlement.Settle(filtered, nil)
	assert.True(t, r.Received.IsZero())
	assert.True(t, r.Pending.IsZero())
	assert.True(t, r.Gross.IsZero())
}

func TestParseRange(t *testing.T) {
	r, ok := settlement.ParseRange("")
	assert.True(t, ok)
	assert.Equal(t, settlement.RangeLifetime, r)

	r, ok = settlement.ParseRange("7d")
	assert.True(t, ok)
	assert.Equal(t, settlement.Range7Days, r)

	r, ok = settlement.ParseRange(" Custom ")
	assert.True(t, ok)
	assert.Equal(t, settlement.RangeCustom, r)

	_, ok = settlement.ParseRange("fortnight")
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Unidades y rendimiento por producto
// ──────────────────────────────────────────────────────────────────────────────

func TestPerformance_CoincidenciaExactaSinMayusculas(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Name: "Widget", Price: dec(10), Stock: dec(5)},
		{ID: "p2", Name: "Gadget", Price: dec(20), Stock: dec(50)},
		{ID: "p3", Name: "Gizmo", Price: dec(30), Stock: dec(11)},
	}
	invs := []entity.Invoice{
		invoice("#0001", entity.InvoiceStatusPaid, 0, testNow, item("WIDGET", 10, 2), item("widgets", 10, 4)),
		invoice("#0002", entity.InvoiceStatusDraft, 0, testNow, item("gadget", 20, 3), item("Widget", 10, 1)),
	}

	perf := settlement.Performance(products, invs)
	require.Len(t, perf, 3)
	assert.Equal(t, "p1", perf[0].ProductID)
	assert.True(t, dec(3).Equal(perf[0].SoldInPeriod), "WIDGET + Widget, sin 'widgets'")
	assert.True(t, perf[0].LowStock)
	assert.True(t, dec(3).Equal(perf[1].SoldInPeriod))
	assert.False(t, perf[1].LowStock)
	assert.True(t, perf[2].SoldInPeriod.IsZero(), "sin líneas coincidentes reporta cero")
	assert.False(t, perf[2].LowStock)

	// Las unidades totales incluyen líneas sin producto ("widgets").
	assert.True(t, dec(10).Equal(settlement.UnitsSold(invs)))
	var perProduct decimal.Decimal
	for _, p := range perf {
		perProduct = perProduct.Add(p.SoldInPeriod)
	}
	assert.True(t, dec(6).Equal(perProduct))
}

func TestFindProductByName(t *testing.T) {
	products := []entity.Product{{ID: "p1", Name: "Logo Design", Price: dec(500)}}
	p, ok := settlement.FindProductByName(products, "logo design")
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID)

	_, ok = settlement.FindProductByName(products, "logo")
	assert.False(t, ok)
}

func TestDashboard(t *testing.T) {
	invs := []entity.Invoice{
		invoice("#0001", entity.InvoiceStatusPaid, 10, testNow, item("a", 100, 2)),
		invoice("#0002", entity.InvoiceStatusDraft, 0, testNow, item("b", 50, 1)),
		invoice("#0003", "Overdue", 0, testNow, item("c", 5, 1)),
	}
	s := settlement.Dashboard(invs, 7)
	assert.True(t, dec(275).Equal(s.TotalRevenue))
	assert.Equal(t, 3, s.InvoiceCount)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 1, s.DraftCount)
	assert.Equal(t, 7, s.CustomersCount)
}
