package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommitBillRequest is one bill form submission: the header fields, the
// working set of sale lines (existing lines carry their SID, new lines leave
// it empty), and the SIDs linked to the bill when the form opened.
type CommitBillRequest struct {
	BID        string            `json:"bid"`
	BillDate   string            `json:"bill_date"`
	CID        string            `json:"cid" validate:"required"`
	Seller     string            `json:"seller"`
	VatRate    decimal.Decimal   `json:"vat_rate"`
	WorkingSet []SaveSaleRequest `json:"working_set"`
	PrevLinked []string          `json:"prev_linked"`
	Baseline   *time.Time        `json:"baseline,omitempty"`
}

// BillTotalsResponse carries the derived amounts.
type BillTotalsResponse struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	VatAmount decimal.Decimal `json:"vat_amount"`
	Total     decimal.Decimal `json:"total"`
}

// BillResponse is one bill header.
type BillResponse struct {
	BID       string          `json:"bid"`
	Timestamp time.Time       `json:"timestamp"`
	RecBy     string          `json:"rec_by"`
	BillDate  string          `json:"bill_date"`
	CID       string          `json:"cid"`
	Seller    string          `json:"seller"`
	VatRate   decimal.Decimal `json:"vat_rate"`
}

// BillDetailResponse is a bill with its lines and recomputed totals.
type BillDetailResponse struct {
	Bill   BillResponse       `json:"bill"`
	Sales  []SaleResponse     `json:"sales"`
	Totals BillTotalsResponse `json:"totals"`
}
