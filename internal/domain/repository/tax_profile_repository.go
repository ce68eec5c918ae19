package repository

import (
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

// TaxProfileRepository is the persistence port for CTax rows.
type TaxProfileRepository interface {
	ListByCustomer(cid string) ([]*entity.TaxProfile, error)
	GetByID(id string) (*entity.TaxProfile, error)
	GetTimestamp(id string) (time.Time, error)
	Save(p *entity.TaxProfile, baseline *time.Time) error
	Delete(id string) error
}
