package entity

import "time"

// Customer is a contact identity row. Shipping addresses and tax profiles
// hang off it by CID, they are never embedded.
type Customer struct {
	CID             string
	Timestamp       time.Time
	RecBy           string
	DelDate         string
	ContractName    string
	ContractTel     string
	ContractCompany string
	ContractCh      string
	LineID          string
	Facebook        string
	Instagram       string
	Other           string
	ComeFrom        string // acquisition channel: Facebook, LineOA, Google, Walkin, ...
	WelcomeBy       string
	WelcomeDate     string
	ContractPic     string
	CIDImportBy     string
}
