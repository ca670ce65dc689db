package ublxml_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Warrick-api/internal/application/billing"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/ublxml"
)

var _ billing.InvoiceXMLEncoder = (*ublxml.Encoder)(nil)

func TestEncodeInvoice(t *testing.T) {
	inv := entity.Invoice{
		ID:            "uuid-1",
		InvoiceNumber: "#0007",
		Date:          entity.NewCalendarDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)),
		Business:      entity.DefaultBusiness(),
		Customer:      entity.CustomerSnapshot{Name: "Rahim & Sons", Email: "rahim@example.com"},
		Items: []entity.LineItem{
			{ID: "i1", Name: "Logo", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(100)},
			{ID: "i2", Name: "Banner", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(50)},
		},
		Currency: "BDT",
		TaxRate:  decimal.NewFromInt(10),
		Status:   entity.InvoiceStatusPaid,
		Notes:    "01711-111111",
	}

	b, err := ublxml.NewEncoder().EncodeInvoice(inv)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(b))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Invoice", root.Tag)
	assert.Equal(t, ublxml.NsInvoice, root.SelectAttrValue("xmlns", ""))

	assert.Equal(t, "0007", root.FindElement("./cbc:ID").Text())
	assert.Equal(t, "2026-03-15", root.FindElement("./cbc:IssueDate").Text())
	assert.Equal(t, "2", root.FindElement("./cbc:LineCountNumeric").Text())

	payable := root.FindElement("./cac:LegalMonetaryTotal/cbc:PayableAmount")
	require.NotNil(t, payable)
	assert.Equal(t, "275.00", payable.Text())
	assert.Equal(t, "BDT", payable.SelectAttrValue("currencyID", ""))

	assert.Equal(t, "25.00", root.FindElement("./cac:TaxTotal/cbc:TaxAmount").Text())
	assert.Len(t, root.FindElements("./cac:InvoiceLine"), 2)
	assert.Equal(t, "Rahim & Sons",
		root.FindElement("./cac:AccountingCustomerParty/cac:Party/cac:PartyName/cbc:Name").Text(),
		"los caracteres especiales se escapan y se recuperan")
}

func TestEncodeInvoice_SinNumero(t *testing.T) {
	_, err := ublxml.NewEncoder().EncodeInvoice(entity.Invoice{})
	assert.Error(t, err)
}
