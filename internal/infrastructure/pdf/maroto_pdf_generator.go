// Package pdf renders the printable documents: the bill (tax invoice
// style, A4) and the QC sticker label for one serialized unit.
//
// A4 bill layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: shop name  │  Bill number + bill date              │
//	│  ───────────────────────────────────────────────────────── │
//	│  CUSTOMER: contact + tax-invoice identity (when present)    │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Qty | Item | Unit price | Discount | Line total     │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTALS: Subtotal / VAT / GRAND TOTAL                       │
//	│  FOOTER: QR of the bill number                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const shopName = "168 Interior Lighting"

// Generator renders documents with Maroto v2.
type Generator struct{}

// NewGenerator builds the generator.
func NewGenerator() *Generator { return &Generator{} }

// BillDocument renders the bill with its line items and totals. Customer is
// required; tax may be nil when the customer has no tax-invoice identity.
func (g *Generator) BillDocument(
	bill *entity.Bill,
	customer *entity.Customer,
	tax *entity.TaxProfile,
	sales []*entity.Sale,
	totals entity.BillTotals,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Bill "+bill.BID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(billHeaderRow(bill))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer, tax))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(lineTableHeaderRow())
	for _, r := range lineTableRows(sales) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(bill, totals))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(30).Add(
		col.New(3).Add(code.NewQr(bill.BID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(text.New("Thank you for your purchase.", props.Text{
			Size: 9, Top: 12, Left: 3, Color: colorGray,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate bill: %w", err)
	}
	return doc.GetBytes(), nil
}

func billHeaderRow(bill *entity.Bill) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("BILL / TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(bill.BID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+nonEmpty(bill.BillDate, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(customer *entity.Customer, tax *entity.TaxProfile) core.Row {
	name := customer.ContractName
	contact := fmt.Sprintf("Tel: %s   |   Company: %s",
		nonEmpty(customer.ContractTel, "—"),
		nonEmpty(customer.ContractCompany, "—"))
	taxLine := ""
	if tax != nil {
		taxLine = fmt.Sprintf("Tax: %s   |   Tax no: %s   |   %s",
			tax.TaxName, tax.TaxNumber, nonEmpty(tax.TaxAddress, "—"))
	}
	cols := []core.Component{
		text.New("CUSTOMER", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
	}
	if taxLine != "" {
		cols = append(cols, text.New(taxLine, props.Text{Size: 8, Top: 17, Color: colorGray}))
	}
	return row.New(22).Add(col.New(12).Add(cols...))
}

func lineTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Item", 5, align.Left),
		h("Unit price", 2, align.Right),
		h("Discount", 2, align.Right),
		h("Line total", 2, align.Right),
	)
}

func lineTableRows(sales []*entity.Sale) []core.Row {
	result := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		desc := s.PID
		if s.Dimention != "" {
			desc += "  " + s.Dimention
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", s.Qty),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				desc,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				s.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				s.Discount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				s.SumPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(bill *entity.Bill, totals entity.BillTotals) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("VAT %s%%:", bill.VatRate.StringFixed(0))),
			grandLabel("GRAND TOTAL:"),
		),
		col.New(4).Add(
			value(totals.Subtotal.StringFixed(2)),
			value(totals.VatAmount.StringFixed(2)),
			grandValue(totals.Total.StringFixed(2)),
		),
		col.New(1),
	)
}

// QCLabel renders the sticker label for one inspected unit: serial number as
// QR plus the identifying fields.
func (g *Generator) QCLabel(rec *entity.QC) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle("QC "+rec.SN, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(shopName, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}),
	)))
	m.AddRows(row.New(28).Add(
		col.New(5).Add(code.NewQr(rec.SN, props.Rect{Percent: 95, Center: true})),
		col.New(7).Add(
			text.New(rec.SN, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
			text.New(nonEmpty(rec.ProductType, "—"), props.Text{Size: 7, Top: 9, Color: colorGray}),
			text.New(fmt.Sprintf("Body: %s  Bulb: %s %s",
				nonEmpty(rec.BodyColor, "—"),
				nonEmpty(rec.BulbType, "—"),
				rec.BulbColor,
			), props.Text{Size: 7, Top: 14, Color: colorGray}),
			text.New(fmt.Sprintf("QC: %s  by %s", nonEmpty(rec.QCDate, "—"), rec.Staff),
				props.Text{Size: 7, Top: 19, Color: colorGray}),
		),
	))
	if rec.QCPass != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("PASS: "+rec.QCPass, props.Text{Style: fontstyle.Bold, Size: 8}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate qc label: %w", err)
	}
	return doc.GetBytes(), nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
