// Package ublxml serializa facturas como XML con la estructura de UBL 2.1 Invoice
// (sin extensiones fiscales ni firma).
package ublxml

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
)

// Namespaces UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// Encoder implementa billing.InvoiceXMLEncoder.
type Encoder struct{}

// NewEncoder crea el encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// EncodeInvoice genera el documento <Invoice>: cabecera, emisor, cliente, impuesto,
// totales y una InvoiceLine por ítem. El ID es el número de factura sin "#".
func (e *Encoder) EncodeInvoice(inv entity.Invoice) ([]byte, error) {
	if inv.InvoiceNumber == "" {
		return nil, fmt.Errorf("ublxml: factura sin número")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cbc(root, "UBLVersionID", "2.1")
	cbc(root, "ID", trimHash(inv.InvoiceNumber))
	cbc(root, "UUID", inv.ID)
	cbc(root, "IssueDate", inv.Date.String())
	cbc(root, "InvoiceTypeCode", "380")
	if inv.Notes != "" {
		cbc(root, "Note", inv.Notes)
	}
	cbc(root, "DocumentCurrencyCode", inv.Currency)
	cbc(root, "LineCountNumeric", strconv.Itoa(len(inv.Items)))
	cbc(root, "PaymentStatus", inv.Status)

	supplier := cac(cac(root, "AccountingSupplierParty"), "Party")
	partyName(supplier, inv.Business.Name)
	postalAddress(supplier, inv.Business.Address)
	contact(supplier, inv.Business.Phone, inv.Business.Email)

	customer := cac(cac(root, "AccountingCustomerParty"), "Party")
	partyName(customer, inv.Customer.Name)
	postalAddress(customer, inv.Customer.Address)
	contact(customer, inv.Notes, inv.Customer.Email)

	subtotal := settlement.Subtotal(inv)
	tax := settlement.Tax(inv)
	total := settlement.Total(inv)

	taxTotal := cac(root, "TaxTotal")
	amount(taxTotal, "TaxAmount", tax, inv.Currency)
	sub := cac(taxTotal, "TaxSubtotal")
	amount(sub, "TaxableAmount", subtotal, inv.Currency)
	amount(sub, "TaxAmount", tax, inv.Currency)
	category := cac(sub, "TaxCategory")
	cbc(category, "Percent", inv.TaxRate.String())
	cbc(cac(category, "TaxScheme"), "ID", "VAT")

	monetary := cac(root, "LegalMonetaryTotal")
	amount(monetary, "LineExtensionAmount", subtotal, inv.Currency)
	amount(monetary, "TaxExclusiveAmount", subtotal, inv.Currency)
	amount(monetary, "TaxInclusiveAmount", total, inv.Currency)
	amount(monetary, "PayableAmount", total, inv.Currency)

	for i, it := range inv.Items {
		line := cac(root, "InvoiceLine")
		cbc(line, "ID", strconv.Itoa(i+1))
		cbc(line, "InvoicedQuantity", it.Quantity.String())
		amount(line, "LineExtensionAmount", it.Amount(), inv.Currency)
		item := cac(line, "Item")
		cbc(item, "Name", it.Name)
		if it.ID != "" {
			cbc(cac(item, "SellersItemIdentification"), "ID", it.ID)
		}
		amount(cac(line, "Price"), "PriceAmount", it.Price, inv.Currency)
	}

	doc.Indent(2)
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("ublxml: escribir documento: %w", err)
	}
	return b, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cbc(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + tag)
	el.SetText(value)
	return el
}

func cac(parent *etree.Element, tag string) *etree.Element {
	return parent.CreateElement("cac:" + tag)
}

func amount(parent *etree.Element, tag string, v decimal.Decimal, currency string) {
	el := cbc(parent, tag, v.StringFixed(2))
	el.CreateAttr("currencyID", currency)
}

func partyName(party *etree.Element, name string) {
	cbc(cac(party, "PartyName"), "Name", name)
}

func postalAddress(party *etree.Element, address string) {
	if address == "" {
		return
	}
	cbc(cac(cac(party, "PostalAddress"), "AddressLine"), "Line", address)
}

func contact(party *etree.Element, phone, email string) {
	if phone == "" && email == "" {
		return
	}
	c := cac(party, "Contact")
	if phone != "" {
		cbc(c, "Telephone", phone)
	}
	if email != "" {
		cbc(c, "ElectronicMail", email)
	}
}

func trimHash(number string) string {
	if len(number) > 0 && number[0] == '#' {
		return number[1:]
	}
	return number
}
