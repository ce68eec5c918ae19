package usecase

import (
	"fmt"
	"time"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/dto"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/events"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
)

// QCUseCase covers quality-control inspections. The serial number comes from
// the physical unit, it is never generated.
type QCUseCase struct {
	repo repository.QCRepository
	hub  *events.Hub
}

// NewQCUseCase wires the use case.
func NewQCUseCase(repo repository.QCRepository, hub *events.Hub) *QCUseCase {
	return &QCUseCase{repo: repo, hub: hub}
}

// List returns inspections matching the query.
func (uc *QCUseCase) List(q string) ([]dto.QCResponse, error) {
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QCResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toQCResponse(r))
	}
	return out, nil
}

// GetBySN returns one inspection, nil when absent.
func (uc *QCUseCase) GetBySN(sn string) (*dto.QCResponse, error) {
	r, err := uc.repo.GetBySN(sn)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	resp := toQCResponse(r)
	return &resp, nil
}

// Save creates (no baseline) or updates an inspection.
func (uc *QCUseCase) Save(actor string, in dto.SaveQCRequest) (*dto.QCResponse, error) {
	if in.SN == "" || in.Staff == "" {
		return nil, fmt.Errorf("%w: serial number and staff are required", domain.ErrInvalidInput)
	}
	if len(in.PicQC) > entity.MaxQCPics {
		return nil, fmt.Errorf("%w: at most %d inspection photos", domain.ErrInvalidInput, entity.MaxQCPics)
	}
	now := time.Now()
	r := &entity.QC{
		SN:          in.SN,
		Timestamp:   now,
		RecBy:       actor,
		QCDate:      in.QCDate,
		Staff:       in.Staff,
		ShopLabel:   in.ShopLabel,
		QCPass:      in.QCPass,
		YDLabel:     in.YDLabel,
		ProductType: in.ProductType,
		BodyColor:   in.BodyColor,
		BulbType:    in.BulbType,
		BulbColor:   in.BulbColor,
		Dimention:   in.Dimention,
		QCRemark:    in.QCRemark,
		QCQty:       in.QCQty,
		PicLabel1:   in.PicLabel1,
		PicLabel2:   in.PicLabel2,
		PicManual1:  in.PicManual1,
		PicManual2:  in.PicManual2,
		PicDriver:   in.PicDriver,
		PicRemote:   in.PicRemote,
		ShipID:      in.ShipID,
	}
	copy(r.PicQC[:], in.PicQC)
	if err := uc.repo.Save(r, in.Baseline); err != nil {
		return nil, err
	}
	action := "update"
	if in.Baseline == nil {
		action = "insert"
	}
	uc.hub.Publish(events.Event{Table: "QC", Action: action, ID: r.SN})
	resp := toQCResponse(r)
	return &resp, nil
}

// Delete removes one inspection.
func (uc *QCUseCase) Delete(sn string) error {
	if err := uc.repo.Delete(sn); err != nil {
		return err
	}
	uc.hub.Publish(events.Event{Table: "QC", Action: "delete", ID: sn})
	return nil
}

func toQCResponse(r *entity.QC) dto.QCResponse {
	pics := make([]string, 0, len(r.PicQC))
	for _, p := range r.PicQC {
		if p != "" {
			pics = append(pics, p)
		}
	}
	return dto.QCResponse{
		SN:          r.SN,
		Timestamp:   r.Timestamp,
		RecBy:       r.RecBy,
		QCDate:      r.QCDate,
		Staff:       r.Staff,
		ShopLabel:   r.ShopLabel,
		QCPass:      r.QCPass,
		YDLabel:     r.YDLabel,
		ProductType: r.ProductType,
		BodyColor:   r.BodyColor,
		BulbType:    r.BulbType,
		BulbColor:   r.BulbColor,
		Dimention:   r.Dimention,
		QCRemark:    r.QCRemark,
		QCQty:       r.QCQty,
		PicLabel1:   r.PicLabel1,
		PicLabel2:   r.PicLabel2,
		PicManual1:  r.PicManual1,
		PicManual2:  r.PicManual2,
		PicQC:       pics,
		PicDriver:   r.PicDriver,
		PicRemote:   r.PicRemote,
		ShipID:      r.ShipID,
	}
}
