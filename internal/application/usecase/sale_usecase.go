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

// SaleUseCase covers sale line items outside the bill flow. The bill link is
// never edited here, only by the billing service.
type SaleUseCase struct {
	repo repository.SaleRepository
	hub  *events.Hub
}

// NewSaleUseCase wires the use case.
func NewSaleUseCase(repo repository.SaleRepository, hub *events.Hub) *SaleUseCase {
	return &SaleUseCase{repo: repo, hub: hub}
}

// List returns sales matching the filter.
func (uc *SaleUseCase) List(f repository.SaleFilter) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// GetByID returns one sale, nil when absent.
func (uc *SaleUseCase) GetByID(sid string) (*dto.SaleResponse, error) {
	s, err := uc.repo.GetByID(sid)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	resp := toSaleResponse(s)
	return &resp, nil
}

// Save creates or updates a sale. SumPrice is recomputed from the pricing
// inputs, never trusted from the client. On update the existing bill link is
// preserved.
func (uc *SaleUseCase) Save(actor string, in dto.SaveSaleRequest) (*dto.SaleResponse, error) {
	if in.PID == "" {
		return nil, fmt.Errorf("%w: sale needs a product", domain.ErrInvalidInput)
	}
	if in.Qty < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	}
	now := time.Now()
	isNew := in.SID == ""
	var bid *string
	if isNew {
		in.SID = id.Sale(now)
		in.Baseline = nil
	} else {
		existing, err := uc.repo.GetByID(in.SID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		bid = existing.BID
	}
	s := &entity.Sale{
		SID:               in.SID,
		Timestamp:         now,
		RecBy:             actor,
		BID:               bid,
		PID:               in.PID,
		Dimention:         in.Dimention,
		ItemColor:         in.ItemColor,
		BulbColor:         in.BulbColor,
		Remote:            in.Remote,
		Remark:            in.Remark,
		Action:            in.Action,
		Price:             in.Price,
		Qty:               in.Qty,
		Discount:          in.Discount,
		ShipPrice:         in.ShipPrice,
		InstallationPrice: in.InstallationPrice,
		Pay1Date:          in.Pay1Date,
		Pay1Price:         in.Pay1Price,
		Pay1Ch:            in.Pay1Ch,
		TAX1ShipDate:      in.TAX1ShipDate,
		Pay2Date:          in.Pay2Date,
		Pay2Price:         in.Pay2Price,
		Pay2Ch:            in.Pay2Ch,
		TAX2ShipDate:      in.TAX2ShipDate,
		CommissionID:      in.CommissionID,
		Profit:            in.Profit,
	}
	s.RecomputeSumPrice()
	if err := uc.repo.Save(s, in.Baseline); err != nil {
		return nil, err
	}
	action := "update"
	if isNew {
		action = "insert"
	}
	uc.hub.Publish(events.Event{Table: "Sale", Action: action, ID: s.SID})
	resp := toSaleResponse(s)
	return &resp, nil
}

// Delete removes one sale.
func (uc *SaleUseCase) Delete(sid string) error {
	if err := uc.repo.Delete(sid); err != nil {
		return err
	}
	uc.hub.Publish(events.Event{Table: "Sale", Action: "delete", ID: sid})
	return nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		SID:               s.SID,
		Timestamp:         s.Timestamp,
		RecBy:             s.RecBy,
		BID:               s.BID,
		PID:               s.PID,
		Dimention:         s.Dimention,
		ItemColor:         s.ItemColor,
		BulbColor:         s.BulbColor,
		Remote:            s.Remote,
		Remark:            s.Remark,
		Action:            s.Action,
		Price:             s.Price,
		Qty:               s.Qty,
		Discount:          s.Discount,
		ShipPrice:         s.ShipPrice,
		InstallationPrice: s.InstallationPrice,
		SumPrice:          s.SumPrice,
		Pay1Date:          s.Pay1Date,
		Pay1Price:         s.Pay1Price,
		Pay1Ch:            s.Pay1Ch,
		TAX1ShipDate:      s.TAX1ShipDate,
		Pay2Date:          s.Pay2Date,
		Pay2Price:         s.Pay2Price,
		Pay2Ch:            s.Pay2Ch,
		TAX2ShipDate:      s.TAX2ShipDate,
		CommissionID:      s.CommissionID,
		Profit:            s.Profit,
	}
}
