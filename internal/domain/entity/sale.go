package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one sold line item. BID is nil while the sale is not attached to
// any bill; an unbilled sale is a normal, queryable state.
type Sale struct {
	SID       string
	Timestamp time.Time
	RecBy     string
	DelDate   string
	BID       *string
	PID       string
	Dimention string
	ItemColor string
	BulbColor string // column "BulbCollor", the typo lives in the hosted schema
	Remote    string
	Remark    string
	Action    string

	Price             decimal.Decimal
	Qty               int64
	Discount          decimal.Decimal
	ShipPrice         decimal.Decimal
	InstallationPrice decimal.Decimal
	SumPrice          decimal.Decimal

	Pay1Date     string
	Pay1Price    decimal.Decimal
	Pay1Ch       string
	TAX1ShipDate string
	Pay2Date     string
	Pay2Price    decimal.Decimal
	Pay2Ch       string
	TAX2ShipDate string
	CommissionID string
	Profit       decimal.Decimal
}

// LineTotal computes Price×Qty − Discount + ShipPrice + InstallationPrice.
// It is a pure function of its four inputs, so the result is the same no
// matter which field was edited last.
func (s *Sale) LineTotal() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(s.Qty)).
		Sub(s.Discount).
		Add(s.ShipPrice).
		Add(s.InstallationPrice)
}

// RecomputeSumPrice refreshes the materialized SumPrice column. Must be
// called whenever Price, Qty, Discount, ShipPrice or InstallationPrice
// changes.
func (s *Sale) RecomputeSumPrice() {
	s.SumPrice = s.LineTotal()
}

// Billed reports whether the sale is attached to a bill.
func (s *Sale) Billed() bool {
	return s.BID != nil && *s.BID != ""
}
