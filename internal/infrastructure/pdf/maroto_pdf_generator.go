// Package pdf genera los documentos A4 de la consola con Maroto v2:
// factura, ficha de cliente, índice de clientes y reporte de liquidación.
//
// Layout de la factura:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio emisor      │  INVOICE + N° + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Invoice To: cliente         │  Invoice From: negocio       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: No. | Descripción | Precio | Cant. | Total          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Notas                       │  Subtotal / Vat / Net Total  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Tel + Email + "Thank you for choosing us"          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
	"github.com/jhoicas/Warrick-api/pkg/money"
)

// MaxInvoiceItems líneas que caben en una factura de una sola página A4.
const MaxInvoiceItems = 12

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 152, Green: 192, Blue: 61}
	colorDark    = &props.Color{Red: 31, Green: 41, Blue: 55}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight   = &props.Color{Red: 244, Green: 244, Blue: 244}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorRed     = &props.Color{Red: 239, Green: 68, Blue: 68}
	colorGreen   = &props.Color{Red: 22, Green: 163, Blue: 74}
	colorOrange  = &props.Color{Red: 234, Green: 88, Blue: 12}
	colorBlue    = &props.Color{Red: 37, Green: 99, Blue: 235}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa los puertos de PDF de billing y reports usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// newDocument A4 vertical con márgenes de 10 mm.
func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

func render(m core.Maroto, what string) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar %s: %w", what, err)
	}
	return doc.GetBytes(), nil
}

// GenerateInvoicePDF genera el PDF de la factura y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(inv entity.Invoice) ([]byte, error) {
	m := newDocument("Invoice "+inv.InvoiceNumber, inv.Business.Name)

	m.AddRows(invoiceHeaderRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.8}))
	m.AddRows(partiesRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	m.AddRows(itemRows(inv)...)
	if len(inv.Items) > MaxInvoiceItems {
		m.AddRows(text.NewRow(5, "* Some items truncated to fit A4 page limit.", props.Text{
			Size: 7, Style: fontstyle.Italic, Color: colorGray, Top: 1,
		}))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(inv))
	m.AddRows(row.New(10))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(invoiceFooterRow(inv.Business))

	return render(m, "factura")
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// invoiceHeaderRow: negocio (izq) e INVOICE + número + fecha (der).
func invoiceHeaderRow(inv entity.Invoice) core.Row {
	number := inv.InvoiceNumber
	if number == "" {
		number = "#0000"
	}
	return row.New(22).Add(
		col.New(7).Add(
			text.New(inv.Business.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorDark, Top: 2,
			}),
			text.New(nonEmpty(inv.Business.Email, "-"), props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 20, Align: align.Right, Color: colorPrimary,
			}),
			text.New("Invoice No: "+number, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 10,
			}),
			text.New("Date: "+longDate(inv.Date), props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

// partiesRow: receptor y emisor.
func partiesRow(inv entity.Invoice) core.Row {
	return row.New(26).Add(
		col.New(6).Add(
			text.New("INVOICE TO:", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
			text.New(inv.Customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7,
			}),
			text.New(nonEmpty(inv.Customer.Address, "No address provided"), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
			text.New("Phone: "+nonEmpty(inv.Notes, "N/A"), props.Text{
				Size: 8, Top: 19, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("INVOICE FROM:", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
			text.New(inv.Business.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New(inv.Business.Address, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
			text.New("Tel: "+inv.Business.Phone, props.Text{
				Size: 8, Align: align.Right, Top: 19, Color: colorGray,
			}),
		),
	)
}

// itemsHeaderRow: cabecera de la tabla con fondo oscuro.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("NO.", 1, align.Center),
		h("ITEM DESCRIPTION", 5, align.Left),
		h("PRICE", 2, align.Right),
		h("QTY", 1, align.Center),
		h("TOTAL", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorDark})
}

// itemRows: una fila por línea (máximo MaxInvoiceItems), con bandas alternas.
func itemRows(inv entity.Invoice) []core.Row {
	items := inv.Items
	if len(items) > MaxInvoiceItems {
		items = items[:MaxInvoiceItems]
	}
	out := make([]core.Row, 0, len(items))
	for i, it := range items {
		r := row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%02d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(it.Name,
				props.Text{Size: 8, Style: fontstyle.Bold, Top: 1, Left: 1})),
			col.New(2).Add(text.New(amount(inv.Currency, it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(money.Quantity(it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(amount(inv.Currency, it.Amount()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorLight})
		}
		out = append(out, r)
	}
	return out
}

// summaryRow: notas (izq) y totales (der). La línea de Vat solo aparece con tasa > 0.
func summaryRow(inv entity.Invoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	labels := []core.Component{label("Subtotal:", 2)}
	values := []core.Component{value(amount(inv.Currency, settlement.Subtotal(inv)), 2)}
	top := 8.0
	if inv.TaxRate.IsPositive() {
		labels = append(labels, label("Vat ("+inv.TaxRate.String()+"%):", top))
		values = append(values, value(amount(inv.Currency, settlement.Tax(inv)), top))
		top += 6
	}
	labels = append(labels, text.New("NET TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 2, Top: top,
	}))
	values = append(values, text.New(amount(inv.Currency, settlement.Total(inv)), props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 1, Top: top,
	}))

	notes := col.New(6)
	if inv.Notes != "" {
		notes.Add(
			text.New("TERMS & NOTES:", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
			text.New(inv.Notes, props.Text{Size: 8, Top: 7, Color: colorGray}),
		)
	}

	return row.New(30).Add(
		notes,
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
	)
}

func invoiceFooterRow(biz entity.BusinessInfo) core.Row {
	return row.New(14).Add(
		col.New(4).Add(text.New("Tel: "+biz.Phone, props.Text{Size: 8, Top: 3, Color: colorGray})),
		col.New(4).Add(text.New(biz.Email, props.Text{Size: 8, Top: 3, Align: align.Center, Color: colorGray})),
		col.New(4).Add(text.New("Thank you for choosing us", props.Text{
			Style: fontstyle.BoldItalic, Size: 8, Top: 3, Align: align.Right, Color: colorPrimary,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// amount importe con símbolo. Las fuentes estándar del PDF no tienen el glifo ৳:
// los símbolos fuera de Latin-1 se reemplazan por el código de la moneda.
func amount(currency string, d decimal.Decimal) string {
	sym := money.Symbol(currency)
	for _, r := range sym {
		if r > 0xFF {
			sym = currency
			break
		}
	}
	return sym + " " + money.Format(d)
}

// longDate "March 15, 2026"; vacío si la fecha es cero.
func longDate(d entity.CalendarDate) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("January 2, 2006")
}
