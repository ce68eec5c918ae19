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

// ProductUseCase covers the catalog.
type ProductUseCase struct {
	repo repository.ProductRepository
	hub  *events.Hub
}

// NewProductUseCase wires the use case.
func NewProductUseCase(repo repository.ProductRepository, hub *events.Hub) *ProductUseCase {
	return &ProductUseCase{repo: repo, hub: hub}
}

// List returns catalog items matching the query.
func (uc *ProductUseCase) List(q string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetByID returns one catalog item, nil when absent.
func (uc *ProductUseCase) GetByID(pid string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(pid)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Save creates or updates a catalog item. A provided PID with no baseline is
// an explicit-key insert and fails with ErrDuplicate when the key exists.
func (uc *ProductUseCase) Save(actor string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if in.PDName == "" || in.PDType == "" {
		return nil, fmt.Errorf("%w: product name and type are required", domain.ErrInvalidInput)
	}
	if len(in.Pics) > entity.MaxProductImages {
		return nil, fmt.Errorf("%w: at most %d images", domain.ErrInvalidInput, entity.MaxProductImages)
	}
	now := time.Now()
	isNew := in.Baseline == nil
	if in.PID == "" {
		in.PID = id.Product(now)
		isNew = true
	}
	p := &entity.Product{
		PID:       in.PID,
		Timestamp: now,
		RecBy:     actor,
		PIDSub:    in.PIDSub,
		PDType:    in.PDType,
		PDName:    in.PDName,
		PDDetrail: in.PDDetrail,
		PDPrice:   in.PDPrice,
	}
	copy(p.Pics[:], in.Pics)
	if err := uc.repo.Save(p, in.Baseline); err != nil {
		return nil, err
	}
	action := "update"
	if isNew {
		action = "insert"
	}
	uc.hub.Publish(events.Event{Table: "Product", Action: action, ID: p.PID})
	resp := toProductResponse(p)
	return &resp, nil
}

// Delete removes one catalog item.
func (uc *ProductUseCase) Delete(pid string) error {
	if err := uc.repo.Delete(pid); err != nil {
		return err
	}
	uc.hub.Publish(events.Event{Table: "Product", Action: "delete", ID: pid})
	return nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	pics := make([]string, 0, len(p.Pics))
	for _, pic := range p.Pics {
		if pic != "" {
			pics = append(pics, pic)
		}
	}
	return dto.ProductResponse{
		PID:       p.PID,
		Timestamp: p.Timestamp,
		RecBy:     p.RecBy,
		PIDSub:    p.PIDSub,
		PDType:    p.PDType,
		PDName:    p.PDName,
		PDDetrail: p.PDDetrail,
		PDPrice:   p.PDPrice,
		Pics:      pics,
	}
}
