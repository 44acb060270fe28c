// Package pdf renders the quotation export document using maroto/v2:
// company header, customer block, line-item table, summary, and the standard
// terms and conditions, with a repeating page footer.
package pdf

import (
	"fmt"
	"strconv"

	"quotechat/internal/domain/entities"
	"quotechat/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorPrimary   = &props.Color{Red: 17, Green: 24, Blue: 39}    // near-black
	colorSecondary = &props.Color{Red: 107, Green: 114, Blue: 128} // gray
	colorNavy      = &props.Color{Red: 30, Green: 58, Blue: 138}
	colorTableHead = &props.Color{Red: 241, Green: 245, Blue: 249}
	colorTableAlt  = &props.Color{Red: 249, Green: 250, Blue: 251}
	colorBorder    = &props.Color{Red: 226, Green: 232, Blue: 240}
)

var termsAndConditions = []string{
	"1.  This quotation is valid for 30 days from the date of issue.",
	"2.  Payment terms: 50% advance, balance upon completion.",
	"3.  Warranty: All services carry a 90-day warranty unless otherwise specified.",
	"4.  Additional charges may apply for work outside the scope of this quotation.",
	"5.  Cancellation policy: 24-hour notice required to avoid cancellation fees.",
}

// Renderer generates the quotation PDF.
type Renderer struct{}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RenderPDF(doc entities.QuotationDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(buildFooter(doc)); err != nil {
		return nil, fmt.Errorf("register footer: %w", err)
	}

	m.AddRows(buildHeader()...)
	m.AddRows(row.New(4))
	m.AddRows(buildCustomerBlock(doc)...)
	m.AddRows(row.New(2))
	m.AddRows(row.New(1).WithStyle(&props.Cell{
		BorderType:  border.Bottom,
		BorderColor: colorBorder,
	}))
	m.AddRows(row.New(4))
	m.AddRows(buildItemsTable(doc)...)

	if len(doc.Lines) > 1 {
		m.AddRows(row.New(6))
		m.AddRows(buildSummary(doc)...)
	}

	m.AddRows(row.New(8))
	m.AddRows(buildTerms()...)

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}
	return generated.GetBytes(), nil
}

func buildHeader() []core.Row {
	return []core.Row{
		row.New(10).Add(
			col.New(12).Add(text.New("Service Quotation System", props.Text{
				Size:  18,
				Style: fontstyle.Bold,
				Align: align.Center,
				Color: colorPrimary,
			})),
		),
		row.New(5).Add(
			col.New(12).Add(text.New("123 Service Road, Business District", props.Text{
				Size:  10,
				Align: align.Center,
				Color: colorSecondary,
			})),
		),
		row.New(5).Add(
			col.New(12).Add(text.New("Phone: +123-456-7890 | Email: info@servicequotation.com", props.Text{
				Size:  10,
				Align: align.Center,
				Color: colorSecondary,
			})),
		),
	}
}

func buildCustomerBlock(doc entities.QuotationDocument) []core.Row {
	rows := []core.Row{
		row.New(7).Add(
			col.New(12).Add(text.New("Customer Information:", props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Color: colorNavy,
			})),
		),
	}

	rows = append(rows, customerLine("Name:", doc.Customer.Name))
	rows = append(rows, customerLine("Email:", doc.Customer.Email))
	if doc.Customer.Phone != "" {
		rows = append(rows, customerLine("Phone:", doc.Customer.Phone))
	}
	rows = append(rows, customerLine("Date:", doc.GeneratedAt.Format("2006-01-02")))
	rows = append(rows, customerLine("Quotation:", doc.Number))

	return rows
}

func customerLine(label, value string) core.Row {
	return row.New(5).Add(
		col.New(2).Add(text.New(label, props.Text{Size: 10, Style: fontstyle.Bold, Color: colorPrimary})),
		col.New(10).Add(text.New(value, props.Text{Size: 10, Color: colorPrimary})),
	)
}

func buildItemsTable(doc entities.QuotationDocument) []core.Row {
	headerStyle := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Top: 1.5}
	headerStyleRight := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right, Top: 1.5}

	rows := []core.Row{
		row.New(8).Add(
			col.New(1).Add(text.New("Item", headerStyle)),
			col.New(4).Add(text.New("Service Description", headerStyle)),
			col.New(1).Add(text.New("Qty", headerStyleRight)),
			col.New(2).Add(text.New("Unit Price (RM)", headerStyleRight)),
			col.New(2).Add(text.New("Subtotal", headerStyleRight)),
			col.New(1).Add(text.New("Tax (8%)", headerStyleRight)),
			col.New(1).Add(text.New("Total", headerStyleRight)),
		).WithStyle(&props.Cell{
			BackgroundColor: colorTableHead,
			BorderType:      border.Bottom,
			BorderColor:     colorBorder,
		}),
	}

	for i, l := range doc.Lines {
		rows = append(rows, buildItemRow(l, i))
	}

	return rows
}

func buildItemRow(l entities.QuotationLine, idx int) core.Row {
	normal := props.Text{Size: 8, Color: colorPrimary, Top: 1}
	right := props.Text{Size: 8, Color: colorPrimary, Align: align.Right, Top: 1}

	r := row.New(9).Add(
		col.New(1).Add(text.New(strconv.Itoa(idx+1), normal)),
		col.New(4).Add(text.New(l.Description, normal)),
		col.New(1).Add(text.New(strconv.Itoa(l.Quantity), right)),
		col.New(2).Add(text.New(formatAmount(l.UnitPrice), right)),
		col.New(2).Add(text.New(formatAmount(l.Subtotal), right)),
		col.New(1).Add(text.New(formatAmount(l.Tax), right)),
		col.New(1).Add(text.New(formatAmount(l.Total), right)),
	)

	if idx%2 == 0 {
		r.WithStyle(&props.Cell{BackgroundColor: colorTableAlt})
	}
	return r
}

func buildSummary(doc entities.QuotationDocument) []core.Row {
	headerStyle := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Center, Top: 1.5}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Center, Top: 1}

	return []core.Row{
		row.New(7).Add(
			col.New(6).Add(text.New("Total Quotations", headerStyle)),
			col.New(6).Add(text.New("Total Amount (RM)", headerStyle)),
		).WithStyle(&props.Cell{
			BackgroundColor: colorTableHead,
			BorderType:      border.Bottom,
			BorderColor:     colorBorder,
		}),
		row.New(7).Add(
			col.New(6).Add(text.New(strconv.Itoa(len(doc.Lines)), valueStyle)),
			col.New(6).Add(text.New(formatAmount(doc.TotalAmount()), valueStyle)),
		),
	}
}

func buildTerms() []core.Row {
	rows := []core.Row{
		row.New(1).WithStyle(&props.Cell{
			BorderType:  border.Bottom,
			BorderColor: colorBorder,
		}),
		row.New(3),
		row.New(6).Add(
			col.New(12).Add(text.New("Terms and Conditions", props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Color: colorNavy,
			})),
		),
	}

	for _, term := range termsAndConditions {
		rows = append(rows, row.New(4).Add(
			col.New(12).Add(text.New(term, props.Text{Size: 8, Color: colorSecondary})),
		))
	}

	rows = append(rows,
		row.New(4),
		row.New(4).Add(
			col.New(12).Add(text.New("Note: All prices are subject to 8% tax as shown in the quotation.", props.Text{
				Size:  7,
				Color: colorSecondary,
			})),
		),
	)

	return rows
}

func buildFooter(doc entities.QuotationDocument) core.Row {
	return row.New(10).Add(
		col.New(4).Add(text.New("Generated on: "+doc.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
			Size:  7,
			Color: colorSecondary,
			Top:   4,
		})),
		col.New(8).Add(text.New("Generated by Service Quotation System | www.servicequotation.com", props.Text{
			Size:  7,
			Color: colorSecondary,
			Align: align.Right,
			Top:   4,
		})),
	).WithStyle(&props.Cell{
		BorderType:  border.Top,
		BorderColor: colorBorder,
	})
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
