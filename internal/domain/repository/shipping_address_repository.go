package repository

import (
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

// ShippingAddressRepository is the persistence port for CShip rows.
type ShippingAddressRepository interface {
	ListByCustomer(cid string) ([]*entity.ShippingAddress, error)
	GetByID(id string) (*entity.ShippingAddress, error)
	GetTimestamp(id string) (time.Time, error)
	Save(a *entity.ShippingAddress, baseline *time.Time) error
	Delete(id string) error
}
