package pdf

import (
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/linestyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/pkg/money"
)

// GenerateSettlementPDF reporte de conciliación: filtro aplicado, tarjetas recibido/pendiente/bruto
// y tabla de ventas e inventario por producto (stock bajo en rojo).
func (g *MarotoPDFGenerator) GenerateSettlementPDF(rep dto.SettlementResponse, biz dto.BusinessResponse) ([]byte, error) {
	m := newDocument("Settlement Report", biz.Name)

	m.AddRows(
		text.NewRow(12, "SETTLEMENT RECONCILIATION REPORT", props.Text{Style: fontstyle.Bold, Size: 16, Top: 2}),
		text.NewRow(6, "FILTER: "+filterLabel(rep), props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
		text.NewRow(5, "GENERATE DATE: "+rep.GeneratedAt+"   |   "+biz.Name, props.Text{Size: 7, Color: colorGray}),
		line.NewRow(4, props.Line{Color: colorDark, Thickness: 0.6}),
	)

	m.AddRows(row.New(20).Add(
		statCard("TOTAL RECEIVED", rep.Received, colorGreen),
		statCard("PENDING BALANCE", rep.Pending, colorOrange),
		statCard("GROSS BILLING", rep.Gross, colorBlue),
	))
	m.AddRows(text.NewRow(7, "Invoices: "+strconv.Itoa(rep.InvoiceCount)+"   Paid: "+strconv.Itoa(rep.PaidCount)+
		"   Unpaid: "+strconv.Itoa(rep.UnpaidCount)+"   Units sold: "+money.Quantity(rep.UnitsSold),
		props.Text{Size: 8, Color: colorGray, Top: 1}))

	m.AddRows(row.New(4))
	m.AddRows(text.NewRow(8, "PRODUCT SALES & INVENTORY BREAKDOWN", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}))
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1}))
	}
	m.AddRows(row.New(8).Add(
		h("PRODUCT NAME", 5, align.Left),
		h("UNITS SOLD", 2, align.Center),
		h("CURRENT STOCK", 2, align.Center),
		h("UNIT PRICE", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorLight}))

	for _, p := range rep.Products {
		stock := props.Text{Size: 8, Align: align.Center, Top: 1}
		if p.LowStock {
			stock.Style = fontstyle.Bold
			stock.Color = colorRed
		}
		m.AddRows(row.New(7).Add(
			col.New(5).Add(text.New(strings.ToUpper(p.Name), props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(money.Quantity(p.SoldInPeriod), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(money.Quantity(p.Stock), stock)),
			col.New(3).Add(text.New(amount(entity.DefaultCurrency, p.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}

	m.AddRows(row.New(8))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2, Style: linestyle.Dashed}))
	m.AddRows(text.NewRow(8, brandFooter+" • SECURED DOCUMENT", props.Text{
		Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 2,
	}))

	return render(m, "reporte de liquidación")
}

func statCard(label string, value decimal.Decimal, color *props.Color) core.Col {
	return col.New(4).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 2, Left: 2}),
		text.New(amount(entity.DefaultCurrency, value), props.Text{Style: fontstyle.Bold, Size: 13, Color: color, Top: 8, Left: 2}),
	)
}

// filterLabel "7D" o "Custom (2026-01-01 to Today)".
func filterLabel(rep dto.SettlementResponse) string {
	if rep.Range != "Custom" {
		return rep.Range
	}
	end := rep.End
	if end == "" {
		end = "Today"
	}
	return rep.Range + " (" + nonEmpty(rep.Start, "...") + " to " + end + ")"
}
