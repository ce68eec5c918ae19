package usecase

import (
	"fmt"
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/dto"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/events"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/id"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
)

// CustomerUseCase covers customers and their owned shipping addresses and
// tax profiles. Deleting a customer removes the owned rows too so nothing
// is orphaned.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	addresses repository.ShippingAddressRepository
	taxes     repository.TaxProfileRepository
	hub       *events.Hub
}

// NewCustomerUseCase wires the use case.
func NewCustomerUseCase(
	customers repository.CustomerRepository,
	addresses repository.ShippingAddressRepository,
	taxes repository.TaxProfileRepository,
	hub *events.Hub,
) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, addresses: addresses, taxes: taxes, hub: hub}
}

// List returns customers matching the query.
func (uc *CustomerUseCase) List(q string) ([]dto.CustomerResponse, error) {
	list, err := uc.customers.List(q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// GetByID returns one customer, nil when absent.
func (uc *CustomerUseCase) GetByID(cid string) (*dto.CustomerResponse, error) {
	c, err := uc.customers.GetByID(cid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// Save creates (empty CID, no baseline) or updates a customer. On update the
// baseline timestamp guards against a concurrent edit.
func (uc *CustomerUseCase) Save(actor string, in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	if in.ContractName == "" || in.ContractTel == "" {
		return nil, fmt.Errorf("%w: contract name and tel are required", domain.ErrInvalidInput)
	}
	now := time.Now()
	isNew := in.CID == ""
	if isNew {
		in.CID = id.Customer(now)
		in.Baseline = nil
	}
	c := &entity.Customer{
		CID:             in.CID,
		Timestamp:       now,
		RecBy:           actor,
		ContractName:    in.ContractName,
		ContractTel:     in.ContractTel,
		ContractCompany: in.ContractCompany,
		ContractCh:      in.ContractCh,
		LineID:          in.LineID,
		Facebook:        in.Facebook,
		Instagram:       in.Instagram,
		Other:           in.Other,
		ComeFrom:        in.ComeFrom,
		WelcomeBy:       in.WelcomeBy,
		WelcomeDate:     in.WelcomeDate,
		ContractPic:     in.ContractPic,
		CIDImportBy:     in.CIDImportBy,
	}
	if err := uc.customers.Save(c, in.Baseline); err != nil {
		return nil, err
	}
	uc.publish("Customer", isNew, c.CID)
	resp := toCustomerResponse(c)
	return &resp, nil
}

// Delete removes the customer and its owned shipping addresses and tax
// profiles.
func (uc *CustomerUseCase) Delete(cid string) error {
	ships, err := uc.addresses.ListByCustomer(cid)
	if err != nil {
		return err
	}
	for _, s := range ships {
		if err := uc.addresses.Delete(s.CShipID); err != nil {
			return err
		}
	}
	taxes, err := uc.taxes.ListByCustomer(cid)
	if err != nil {
		return err
	}
	for _, t := range taxes {
		if err := uc.taxes.Delete(t.CTaxID); err != nil {
			return err
		}
	}
	if err := uc.customers.Delete(cid); err != nil {
		return err
	}
	uc.hub.Publish(events.Event{Table: "Customer", Action: "delete", ID: cid})
	return nil
}

// ListAddresses returns the customer's delivery addresses.
func (uc *CustomerUseCase) ListAddresses(cid string) ([]dto.ShippingAddressResponse, error) {
	list, err := uc.addresses.ListByCustomer(cid)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShippingAddressResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toShippingAddressResponse(s))
	}
	return out, nil
}

// SaveAddress creates or updates one delivery address.
func (uc *CustomerUseCase) SaveAddress(actor string, in dto.SaveShippingAddressRequest) (*dto.ShippingAddressResponse, error) {
	if in.CID == "" || in.ShipName == "" || in.ShipAddress == "" {
		return nil, fmt.Errorf("%w: customer, name and address are required", domain.ErrInvalidInput)
	}
	now := time.Now()
	isNew := in.CShipID == ""
	if isNew {
		in.CShipID = "CS" + now.Format("060102150405")
		in.Baseline = nil
	}
	s := &entity.ShippingAddress{
		CShipID:     in.CShipID,
		CID:         in.CID,
		Timestamp:   now,
		RecBy:       actor,
		ShipName:    in.ShipName,
		ShipTel:     in.ShipTel,
		ShipAddress: in.ShipAddress,
		ShipMap:     in.ShipMap,
	}
	if err := uc.addresses.Save(s, in.Baseline); err != nil {
		return nil, err
	}
	uc.publish("CShip", isNew, s.CShipID)
	resp := toShippingAddressResponse(s)
	return &resp, nil
}

// DeleteAddress removes one delivery address.
func (uc *CustomerUseCase) DeleteAddress(cshipID string) error {
	if err := uc.addresses.Delete(cshipID); err != nil {
		return err
	}
	uc.hub.Publish(events.Event{Table: "CShip", Action: "delete", ID: cshipID})
	return nil
}

// ListTaxProfiles returns the customer's tax-invoice identities.
func (uc *CustomerUseCase) ListTaxProfiles(cid string) ([]dto.TaxProfileResponse, error) {
	list, err := uc.taxes.ListByCustomer(cid)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaxProfileResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTaxProfileResponse(t))
	}
	return out, nil
}

// SaveTaxProfile creates or updates one tax-invoice identity.
func (uc *CustomerUseCase) SaveTaxProfile(actor string, in dto.SaveTaxProfileRequest) (*dto.TaxProfileResponse, error) {
	if in.CID == "" || in.TaxName == "" || in.TaxNumber == "" {
		return nil, fmt.Errorf("%w: customer, tax name and tax number are required", domain.ErrInvalidInput)
	}
	now := time.Now()
	isNew := in.CTaxID == ""
	if isNew {
		in.CTaxID = "CT" + now.Format("060102150405")
		in.Baseline = nil
	}
	t := &entity.TaxProfile{
		CTaxID:     in.CTaxID,
		CID:        in.CID,
		Timestamp:  now,
		RecBy:      actor,
		TaxName:    in.TaxName,
		TaxNumber:  in.TaxNumber,
		TaxTel:     in.TaxTel,
		TaxAddress: in.TaxAddress,
		TaxShip:    in.TaxShip,
	}
	if err := uc.taxes.Save(t, in.Baseline); err != nil {
		return nil, err
	}
	uc.publish("CTax", isNew, t.CTaxID)
	resp := toTaxProfileResponse(t)
	return &resp, nil
}

// DeleteTaxProfile removes one tax-invoice identity.
func (uc *CustomerUseCase) DeleteTaxProfile(ctaxID string) error {
	if err := uc.taxes.Delete(ctaxID); err != nil {
		return err
	}
	uc.hub.Publish(events.Event{Table: "CTax", Action: "delete", ID: ctaxID})
	return nil
}

func (uc *CustomerUseCase) publish(table string, isNew bool, id string) {
	action := "update"
	if isNew {
		action = "insert"
	}
	uc.hub.Publish(events.Event{Table: table, Action: action, ID: id})
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		CID:             c.CID,
		Timestamp:       c.Timestamp,
		RecBy:           c.RecBy,
		ContractName:    c.ContractName,
		ContractTel:     c.ContractTel,
		ContractCompany: c.ContractCompany,
		ContractCh:      c.ContractCh,
		LineID:          c.LineID,
		Facebook:        c.Facebook,
		Instagram:       c.Instagram,
		Other:           c.Other,
		ComeFrom:        c.ComeFrom,
		WelcomeBy:       c.WelcomeBy,
		WelcomeDate:     c.WelcomeDate,
		ContractPic:     c.ContractPic,
		CIDImportBy:     c.CIDImportBy,
	}
}

func toShippingAddressResponse(s *entity.ShippingAddress) dto.ShippingAddressResponse {
	return dto.ShippingAddressResponse{
		CShipID:     s.CShipID,
		CID:         s.CID,
		Timestamp:   s.Timestamp,
		RecBy:       s.RecBy,
		ShipName:    s.ShipName,
		ShipTel:     s.ShipTel,
		ShipAddress: s.ShipAddress,
		ShipMap:     s.ShipMap,
	}
}

func toTaxProfileResponse(t *entity.TaxProfile) dto.TaxProfileResponse {
	return dto.TaxProfileResponse{
		CTaxID:     t.CTaxID,
		CID:        t.CID,
		Timestamp:  t.Timestamp,
		RecBy:      t.RecBy,
		TaxName:    t.TaxName,
		TaxNumber:  t.TaxNumber,
		TaxTel:     t.TaxTel,
		TaxAddress: t.TaxAddress,
		TaxShip:    t.TaxShip,
	}
}
