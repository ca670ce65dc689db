package pdf

import (
	"time"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/linestyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Warrick-api/internal/domain/entity"
)

const brandFooter = "WARRICK INTELLIGENCE SYSTEM"

// GenerateCustomerProfilePDF ficha de un cliente: nombre, contacto, ubicación, ID y fecha de exportación.
func (g *MarotoPDFGenerator) GenerateCustomerProfilePDF(c entity.Customer, exportedAt time.Time) ([]byte, error) {
	m := newDocument("Client Profile "+c.Name, brandFooter)

	m.AddRows(
		text.NewRow(14, "WARRICK CLIENT PROFILE", props.Text{
			Style: fontstyle.Bold, Size: 20, Align: align.Center, Top: 2,
		}),
		text.NewRow(8, "SECURE DATA EXPORT", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray,
		}),
		row.New(8),
	)
	m.AddRows(profileField("FULL NAME", c.Name, 16)...)
	m.AddRows(profileField("CONTACT NUMBER", c.Phone, 13)...)
	m.AddRows(profileField("REGISTERED LOCATION", nonEmpty(c.Address, "Not Provided"), 11)...)
	if c.Email != "" {
		m.AddRows(profileField("EMAIL", c.Email, 11)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2, Style: linestyle.Dashed}))
	m.AddRows(row.New(12).Add(
		col.New(6).Add(
			text.New("RECORD ID", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 2}),
			text.New(c.ID, props.Text{Style: fontstyle.Bold, Size: 8, Top: 6}),
		),
		col.New(6).Add(
			text.New("EXPORT DATE", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Align: align.Right, Top: 2}),
			text.New(exportedAt.Format("2006-01-02 15:04"), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 6}),
		),
	))
	m.AddRows(row.New(20))
	m.AddRows(line.NewRow(1, props.Line{Color: colorDark, Thickness: 0.6}))
	m.AddRows(text.NewRow(8, brandFooter, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 2,
	}))

	return render(m, "ficha de cliente")
}

func profileField(label, value string, size float64) []core.Row {
	return []core.Row{
		text.NewRow(5, label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray}),
		text.NewRow(size/2+4, value, props.Text{Style: fontstyle.Bold, Size: size}),
		line.NewRow(4, props.Line{Color: colorLight, Thickness: 0.3}),
	}
}

// GenerateCustomerIndexPDF tabla NAME | PHONE | ADDRESS con todos los clientes.
func (g *MarotoPDFGenerator) GenerateCustomerIndexPDF(customers []entity.Customer, exportedAt time.Time) ([]byte, error) {
	m := newDocument("Customer Index", brandFooter)

	m.AddRows(
		text.NewRow(12, "WARRICK CUSTOMER INDEX", props.Text{Style: fontstyle.Bold, Size: 18, Top: 2}),
		text.NewRow(7, "DATABASE EXPORT • "+exportedAt.Format("2006-01-02"), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray,
		}),
		line.NewRow(3, props.Line{Color: colorDark, Thickness: 0.6}),
	)

	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Top: 2, Left: 1}))
	}
	m.AddRows(row.New(8).Add(h("NAME", 4), h("PHONE", 3), h("ADDRESS", 5)).
		WithStyle(&props.Cell{BackgroundColor: colorLight}))

	for _, c := range customers {
		m.AddRows(row.New(7).Add(
			col.New(4).Add(text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(c.Phone, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(nonEmpty(c.Address, "N/A"), props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}

	m.AddRows(row.New(8))
	m.AddRows(text.NewRow(6, "GENERATED BY "+brandFooter, props.Text{
		Style: fontstyle.Bold, Size: 7, Align: align.Center, Color: colorGray,
	}))

	return render(m, "índice de clientes")
}
