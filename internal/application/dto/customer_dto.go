package dto

import "time"

// SaveCustomerRequest is one customer form submission. Baseline is the
// timestamp the edit form loaded with; omit it when creating.
type SaveCustomerRequest struct {
	CID             string     `json:"cid"`
	ContractName    string     `json:"contract_name" validate:"required"`
	ContractTel     string     `json:"contract_tel" validate:"required"`
	ContractCompany string     `json:"contract_company"`
	ContractCh      string     `json:"contract_ch"`
	LineID          string     `json:"line_id"`
	Facebook        string     `json:"facebook"`
	Instagram       string     `json:"instagram"`
	Other           string     `json:"other"`
	ComeFrom        string     `json:"come_from"`
	WelcomeBy       string     `json:"welcome_by"`
	WelcomeDate     string     `json:"welcome_date"`
	ContractPic     string     `json:"contract_pic"`
	CIDImportBy     string     `json:"cid_import_by"`
	Baseline        *time.Time `json:"baseline,omitempty"`
}

// CustomerResponse is one customer row.
type CustomerResponse struct {
	CID             string    `json:"cid"`
	Timestamp       time.Time `json:"timestamp"`
	RecBy           string    `json:"rec_by"`
	ContractName    string    `json:"contract_name"`
	ContractTel     string    `json:"contract_tel"`
	ContractCompany string    `json:"contract_company"`
	ContractCh      string    `json:"contract_ch"`
	LineID          string    `json:"line_id"`
	Facebook        string    `json:"facebook"`
	Instagram       string    `json:"instagram"`
	Other           string    `json:"other"`
	ComeFrom        string    `json:"come_from"`
	WelcomeBy       string    `json:"welcome_by"`
	WelcomeDate     string    `json:"welcome_date"`
	ContractPic     string    `json:"contract_pic"`
	CIDImportBy     string    `json:"cid_import_by"`
}

// SaveShippingAddressRequest is one delivery-address form submission.
type SaveShippingAddressRequest struct {
	CShipID     string     `json:"cship_id"`
	CID         string     `json:"cid" validate:"required"`
	ShipName    string     `json:"ship_name" validate:"required"`
	ShipTel     string     `json:"ship_tel"`
	ShipAddress string     `json:"ship_address" validate:"required"`
	ShipMap     string     `json:"ship_map"`
	Baseline    *time.Time `json:"baseline,omitempty"`
}

// ShippingAddressResponse is one delivery-address row.
type ShippingAddressResponse struct {
	CShipID     string    `json:"cship_id"`
	CID         string    `json:"cid"`
	Timestamp   time.Time `json:"timestamp"`
	RecBy       string    `json:"rec_by"`
	ShipName    string    `json:"ship_name"`
	ShipTel     string    `json:"ship_tel"`
	ShipAddress string    `json:"ship_address"`
	ShipMap     string    `json:"ship_map"`
}

// SaveTaxProfileRequest is one tax-invoice identity form submission.
type SaveTaxProfileRequest struct {
	CTaxID     string     `json:"ctax_id"`
	CID        string     `json:"cid" validate:"required"`
	TaxName    string     `json:"tax_name" validate:"required"`
	TaxNumber  string     `json:"tax_number" validate:"required"`
	TaxTel     string     `json:"tax_tel"`
	TaxAddress string     `json:"tax_address"`
	TaxShip    string     `json:"tax_ship"`
	Baseline   *time.Time `json:"baseline,omitempty"`
}

// TaxProfileResponse is one tax-invoice identity row.
type TaxProfileResponse struct {
	CTaxID     string    `json:"ctax_id"`
	CID        string    `json:"cid"`
	Timestamp  time.Time `json:"timestamp"`
	RecBy      string    `json:"rec_by"`
	TaxName    string    `json:"tax_name"`
	TaxNumber  string    `json:"tax_number"`
	TaxTel     string    `json:"tax_tel"`
	TaxAddress string    `json:"tax_address"`
	TaxShip    string    `json:"tax_ship"`
}
