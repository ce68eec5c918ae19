package entity

import "time"

// ShippingAddress (CShip) is a delivery address owned by exactly one Customer.
type ShippingAddress struct {
	CShipID     string
	CID         string
	Timestamp   time.Time
	RecBy       string
	ShipName    string
	ShipTel     string
	ShipAddress string
	ShipMap     string
}
