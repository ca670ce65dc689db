package pdf_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Warrick-api/internal/application/billing"
	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/application/reports"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/pdf"
)

var (
	_ billing.InvoicePDFGenerator    = (*pdf.MarotoPDFGenerator)(nil)
	_ billing.CustomerPDFGenerator   = (*pdf.MarotoPDFGenerator)(nil)
	_ reports.SettlementPDFGenerator = (*pdf.MarotoPDFGenerator)(nil)
)

func isPDF(t *testing.T, b []byte) {
	t.Helper()
	require.NotEmpty(t, b)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "el documento debe empezar con la firma %PDF")
}

func sampleInvoice(items int) entity.Invoice {
	inv := entity.Invoice{
		ID:            "a",
		InvoiceNumber: "#0001",
		Date:          entity.NewCalendarDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)),
		Business:      entity.DefaultBusiness(),
		Customer:      entity.CustomerSnapshot{Name: "Rahim Uddin", Address: "Dhanmondi"},
		Currency:      "BDT",
		TaxRate:       decimal.NewFromInt(10),
		Status:        entity.InvoiceStatusPaid,
		Notes:         "01711-111111",
	}
	for i := 0; i < items; i++ {
		inv.Items = append(inv.Items, entity.LineItem{
			ID: fmt.Sprint(i), Name: fmt.Sprintf("Item %d", i+1),
			Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(1250),
		})
	}
	return inv
}

func TestGenerateInvoicePDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()

	b, err := g.GenerateInvoicePDF(sampleInvoice(3))
	require.NoError(t, err)
	isPDF(t, b)

	inv := sampleInvoice(pdf.MaxInvoiceItems + 3)
	inv.TaxRate = decimal.Zero
	inv.Currency = "USD"
	b, err = g.GenerateInvoicePDF(inv)
	require.NoError(t, err, "más líneas que el máximo se truncan sin error")
	isPDF(t, b)
}

func TestGenerateCustomerPDFs(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	exported := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	c := entity.Customer{ID: "c1", Name: "Rahim Uddin", Phone: "01711-111111", CreatedAt: exported}

	b, err := g.GenerateCustomerProfilePDF(c, exported)
	require.NoError(t, err)
	isPDF(t, b)

	b, err = g.GenerateCustomerIndexPDF([]entity.Customer{c, {ID: "c2", Name: "Karim", Phone: "018"}}, exported)
	require.NoError(t, err)
	isPDF(t, b)
}

func TestGenerateSettlementPDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	rep := dto.SettlementResponse{
		Range: "Custom", Start: "2026-03-01", GeneratedAt: "2026-03-15T12:00:00Z",
		InvoiceCount: 2, PaidCount: 1, UnpaidCount: 1,
		Received: decimal.NewFromInt(220), Pending: decimal.NewFromInt(50), Gross: decimal.NewFromInt(270),
		UnitsSold: decimal.NewFromInt(3),
		Products: []dto.ProductPerformanceDTO{
			{ProductID: "p1", Name: "Logo", Price: decimal.NewFromInt(100), Stock: decimal.NewFromInt(3), SoldInPeriod: decimal.NewFromInt(2), LowStock: true},
			{ProductID: "p2", Name: "Banner", Price: decimal.NewFromInt(50), Stock: decimal.NewFromInt(40), SoldInPeriod: decimal.Zero},
		},
	}
	b, err := g.GenerateSettlementPDF(rep, dto.BusinessResponse{Name: "Warrick Studios"})
	require.NoError(t, err)
	isPDF(t, b)
}
