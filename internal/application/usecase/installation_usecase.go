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

// InstallationUseCase covers installation and shipping jobs.
type InstallationUseCase struct {
	repo repository.InstallationRepository
	hub  *events.Hub
}

// NewInstallationUseCase wires the use case.
func NewInstallationUseCase(repo repository.InstallationRepository, hub *events.Hub) *InstallationUseCase {
	return &InstallationUseCase{repo: repo, hub: hub}
}

// List returns jobs matching the query.
func (uc *InstallationUseCase) List(q string) ([]dto.InstallationResponse, error) {
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InstallationResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toInstallationResponse(i))
	}
	return out, nil
}

// GetByID returns one job, nil when absent.
func (uc *InstallationUseCase) GetByID(iid string) (*dto.InstallationResponse, error) {
	i, err := uc.repo.GetByID(iid)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, nil
	}
	resp := toInstallationResponse(i)
	return &resp, nil
}

// Save creates or updates a job. New jobs take the next sequential key.
func (uc *InstallationUseCase) Save(actor string, in dto.SaveInstallationRequest) (*dto.InstallationResponse, error) {
	if in.SID == "" {
		return nil, fmt.Errorf("%w: installation needs a sale", domain.ErrInvalidInput)
	}
	if !entity.ValidInstallationStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	}
	now := time.Now()
	isNew := in.IID == ""
	if isNew {
		latest, err := uc.repo.MaxID()
		if err != nil {
			return nil, err
		}
		in.IID = id.Installation(latest)
		in.Baseline = nil
	}
	i := &entity.Installation{
		IID:               in.IID,
		Timestamp:         now,
		RecBy:             actor,
		SID:               in.SID,
		InstallationTeam:  in.InstallationTeam,
		Status:            in.Status,
		PlanDate:          in.PlanDate,
		CompleteDate:      in.CompleteDate,
		ShipTravelPrice:   in.ShipTravelPrice,
		InstallationPrice: in.InstallationPrice,
		Remark:            in.Remark,
		QCDefect:          in.QCDefect,
	}
	if err := uc.repo.Save(i, in.Baseline); err != nil {
		return nil, err
	}
	action := "update"
	if isNew {
		action = "insert"
	}
	uc.hub.Publish(events.Event{Table: "Installation_Ship", Action: action, ID: i.IID})
	resp := toInstallationResponse(i)
	return &resp, nil
}

// Delete removes one job.
func (uc *InstallationUseCase) Delete(iid string) error {
	if err := uc.repo.Delete(iid); err != nil {
		return err
	}
	uc.hub.Publish(events.Event{Table: "Installation_Ship", Action: "delete", ID: iid})
	return nil
}

func toInstallationResponse(i *entity.Installation) dto.InstallationResponse {
	return dto.InstallationResponse{
		IID:               i.IID,
		Timestamp:         i.Timestamp,
		RecBy:             i.RecBy,
		SID:               i.SID,
		InstallationTeam:  i.InstallationTeam,
		Status:            i.Status,
		PlanDate:          i.PlanDate,
		CompleteDate:      i.CompleteDate,
		ShipTravelPrice:   i.ShipTravelPrice,
		InstallationPrice: i.InstallationPrice,
		Remark:            i.Remark,
		QCDefect:          i.QCDefect,
	}
}
