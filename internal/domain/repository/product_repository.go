package repository

import (
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
)

// ProductRepository is the persistence port for Product.
type ProductRepository interface {
	List(q string) ([]*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	GetTimestamp(id string) (time.Time, error)
	Save(p *entity.Product, baseline *time.Time) error
	Delete(id string) error
}
