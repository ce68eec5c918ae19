package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxBillLines caps the number of sale rows one bill may aggregate.
const MaxBillLines = 20

// Bill is a commercial document over a set of Sale rows. The association is
// realized by Sale rows carrying the bill's key, the bill embeds nothing.
type Bill struct {
	BID       string
	Timestamp time.Time
	RecBy     string
	DelDate   string
	BillDate  string
	CID       string
	Seller    string
	VatRate   decimal.Decimal // percent, e.g. 7 for 7%
}

// BillTotals are derived values, recomputed from the working set on every
// change and never stored independently.
type BillTotals struct {
	Subtotal  decimal.Decimal
	VatAmount decimal.Decimal
	Total     decimal.Decimal
}

// ComputeTotals sums the materialized SumPrice of the working set and applies
// the bill's VAT rate.
func (b *Bill) ComputeTotals(workingSet []*Sale) BillTotals {
	var subtotal decimal.Decimal
	for _, s := range workingSet {
		subtotal = subtotal.Add(s.SumPrice)
	}
	vat := subtotal.Mul(b.VatRate).Div(decimal.NewFromInt(100))
	return BillTotals{
		Subtotal:  subtotal,
		VatAmount: vat,
		Total:     subtotal.Add(vat),
	}
}
