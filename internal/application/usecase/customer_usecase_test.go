package usecase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/dto"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/events"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

// In-memory fakes that enforce the same save semantics as the store: nil
// baseline inserts, a non-nil baseline is rejected once the stored Timestamp
// has moved more than a second past it.

type memCustomers struct {
	rows map[string]*entity.Customer
}

func newMemCustomers() *memCustomers {
	return &memCustomers{rows: map[string]*entity.Customer{}}
}

func (m *memCustomers) List(q string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range m.rows {
		if q == "" || strings.Contains(c.ContractName, q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCustomers) GetByID(id string) (*entity.Customer, error) {
	return m.rows[id], nil
}

func (m *memCustomers) GetTimestamp(id string) (time.Time, error) {
	c, ok := m.rows[id]
	if !ok {
		return time.Time{}, domain.ErrNotFound
	}
	return c.Timestamp, nil
}

func (m *memCustomers) Save(c *entity.Customer, baseline *time.Time) error {
	existing, ok := m.rows[c.CID]
	if baseline == nil {
		if ok {
			return fmt.Errorf("%w: customer %s", domain.ErrDuplicate, c.CID)
		}
		m.rows[c.CID] = c
		return nil
	}
	if !ok {
		return fmt.Errorf("%w: customer %s", domain.ErrNotFound, c.CID)
	}
	if existing.Timestamp.After(baseline.Add(time.Second)) {
		return fmt.Errorf("%w: customer %s", domain.ErrConflict, c.CID)
	}
	m.rows[c.CID] = c
	return nil
}

func (m *memCustomers) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

type memAddresses struct {
	rows map[string]*entity.ShippingAddress
}

func newMemAddresses() *memAddresses {
	return &memAddresses{rows: map[string]*entity.ShippingAddress{}}
}

func (m *memAddresses) ListByCustomer(cid string) ([]*entity.ShippingAddress, error) {
	var out []*entity.ShippingAddress
	for _, s := range m.rows {
		if s.CID == cid {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memAddresses) GetByID(id string) (*entity.ShippingAddress, error) {
	return m.rows[id], nil
}

func (m *memAddresses) GetTimestamp(id string) (time.Time, error) {
	s, ok := m.rows[id]
	if !ok {
		return time.Time{}, domain.ErrNotFound
	}
	return s.Timestamp, nil
}

func (m *memAddresses) Save(s *entity.ShippingAddress, baseline *time.Time) error {
	m.rows[s.CShipID] = s
	return nil
}

func (m *memAddresses) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

type memTaxes struct {
	rows map[string]*entity.TaxProfile
}

func newMemTaxes() *memTaxes {
	return &memTaxes{rows: map[string]*entity.TaxProfile{}}
}

func (m *memTaxes) ListByCustomer(cid string) ([]*entity.TaxProfile, error) {
	var out []*entity.TaxProfile
	for _, t := range m.rows {
		if t.CID == cid {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTaxes) GetByID(id string) (*entity.TaxProfile, error) {
	return m.rows[id], nil
}

func (m *memTaxes) GetTimestamp(id string) (time.Time, error) {
	t, ok := m.rows[id]
	if !ok {
		return time.Time{}, domain.ErrNotFound
	}
	return t.Timestamp, nil
}

func (m *memTaxes) Save(t *entity.TaxProfile, baseline *time.Time) error {
	m.rows[t.CTaxID] = t
	return nil
}

func (m *memTaxes) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

func newCustomerFixture() (*CustomerUseCase, *memCustomers, *memAddresses, *memTaxes) {
	customers := newMemCustomers()
	addresses := newMemAddresses()
	taxes := newMemTaxes()
	uc := NewCustomerUseCase(customers, addresses, taxes, events.NewHub())
	return uc, customers, addresses, taxes
}

func TestSaveNewCustomerGeneratesKey(t *testing.T) {
	uc, customers, _, _ := newCustomerFixture()

	resp, err := uc.Save("Nok", dto.SaveCustomerRequest{
		ContractName: "Somchai",
		ContractTel:  "0812345678",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.CID, "C"))
	assert.Len(t, resp.CID, 13)
	assert.Equal(t, "Nok", resp.RecBy)
	require.NotNil(t, customers.rows[resp.CID])
}

func TestSaveRejectsMissingContact(t *testing.T) {
	uc, _, _, _ := newCustomerFixture()

	_, err := uc.Save("Nok", dto.SaveCustomerRequest{ContractName: "Somchai"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaveStaleBaselineConflicts(t *testing.T) {
	uc, customers, _, _ := newCustomerFixture()

	// Someone else saved two minutes after the baseline this form loaded.
	baseline := time.Now().Add(-3 * time.Minute)
	customers.rows["C250101120000"] = &entity.Customer{
		CID:          "C250101120000",
		Timestamp:    baseline.Add(2 * time.Minute),
		RecBy:        "Somying",
		ContractName: "Somchai",
		ContractTel:  "0812345678",
	}

	_, err := uc.Save("Nok", dto.SaveCustomerRequest{
		CID:          "C250101120000",
		Baseline:     &baseline,
		ContractName: "Somchai (edited)",
		ContractTel:  "0812345678",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Somying", customers.rows["C250101120000"].RecBy,
		"conflicting save must leave the row untouched")
}

func TestSaveFreshBaselineAccepted(t *testing.T) {
	uc, customers, _, _ := newCustomerFixture()

	baseline := time.Now().Add(-time.Minute)
	customers.rows["C250101120000"] = &entity.Customer{
		CID:          "C250101120000",
		Timestamp:    baseline,
		RecBy:        "Somying",
		ContractName: "Somchai",
		ContractTel:  "0812345678",
	}

	resp, err := uc.Save("Nok", dto.SaveCustomerRequest{
		CID:          "C250101120000",
		Baseline:     &baseline,
		ContractName: "Somchai (edited)",
		ContractTel:  "0812345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nok", resp.RecBy)
	assert.True(t, resp.Timestamp.After(baseline))
	assert.Equal(t, "Somchai (edited)", customers.rows["C250101120000"].ContractName)
}

func TestDeleteCascadesOwnedRows(t *testing.T) {
	uc, customers, addresses, taxes := newCustomerFixture()

	customers.rows["C1"] = &entity.Customer{CID: "C1", ContractName: "Somchai"}
	addresses.rows["CS1"] = &entity.ShippingAddress{CShipID: "CS1", CID: "C1"}
	addresses.rows["CS2"] = &entity.ShippingAddress{CShipID: "CS2", CID: "C1"}
	addresses.rows["CS9"] = &entity.ShippingAddress{CShipID: "CS9", CID: "C2"}
	taxes.rows["CT1"] = &entity.TaxProfile{CTaxID: "CT1", CID: "C1"}

	require.NoError(t, uc.Delete("C1"))

	assert.Nil(t, customers.rows["C1"])
	assert.Nil(t, addresses.rows["CS1"])
	assert.Nil(t, addresses.rows["CS2"])
	assert.NotNil(t, addresses.rows["CS9"], "other customers' addresses stay")
	assert.Nil(t, taxes.rows["CT1"])
}
