package entity

import "time"

// TaxProfile (CTax) is a tax-invoice identity owned by exactly one Customer.
// A customer may keep several; the UI picks the current one per bill.
type TaxProfile struct {
	CTaxID     string
	CID        string
	Timestamp  time.Time
	RecBy      string
	TaxName    string
	TaxNumber  string
	TaxTel     string
	TaxAddress string
	TaxShip    string
}
