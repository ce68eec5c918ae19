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

// TeamUseCase covers staff records.
type TeamUseCase struct {
	repo repository.TeamRepository
	hub  *events.Hub
}

// NewTeamUseCase wires the use case.
func NewTeamUseCase(repo repository.TeamRepository, hub *events.Hub) *TeamUseCase {
	return &TeamUseCase{repo: repo, hub: hub}
}

// List returns staff matching the filter.
func (uc *TeamUseCase) List(f repository.TeamFilter) ([]dto.TeamResponse, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTeamResponse(t))
	}
	return out, nil
}

// GetByID returns one staff record, nil when absent.
func (uc *TeamUseCase) GetByID(eid string) (*dto.TeamResponse, error) {
	t, err := uc.repo.GetByID(eid)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	resp := toTeamResponse(t)
	return &resp, nil
}

// Save creates or updates a staff record. New employees take the next key in
// the EID sequence.
func (uc *TeamUseCase) Save(actor string, in dto.SaveTeamRequest) (*dto.TeamResponse, error) {
	if in.NickName == "" || in.FullName == "" {
		return nil, fmt.Errorf("%w: nickname and full name are required", domain.ErrInvalidInput)
	}
	now := time.Now()
	isNew := in.EID == ""
	if isNew {
		latest, err := uc.repo.MaxEID()
		if err != nil {
			return nil, err
		}
		in.EID = id.Team(latest)
		in.Baseline = nil
	}
	t := &entity.Team{
		EID:           in.EID,
		Timestamp:     now,
		RecBy:         actor,
		TeamName:      in.TeamName,
		TeamType:      in.TeamType,
		UserType:      in.UserType,
		Email:         in.Email,
		NickName:      in.NickName,
		FullName:      in.FullName,
		LastName:      in.LastName,
		CitizenID:     in.CitizenID,
		Bank:          in.Bank,
		ACNumber:      in.ACNumber,
		BirthDay:      in.BirthDay,
		StartDate:     in.StartDate,
		Address:       in.Address,
		Tel1:          in.Tel1,
		Tel2:          in.Tel2,
		Job:           in.Job,
		Level:         in.Level,
		WorkType:      in.WorkType,
		PayType:       in.PayType,
		PayRate:       in.PayRate,
		IncentiveRate: in.IncentiveRate,
		Pic:           in.Pic,
		CitizenIDPic:  in.CitizenIDPic,
		HouseRegPic:   in.HouseRegPic,
		EndDate:       in.EndDate,
	}
	if err := uc.repo.Save(t, in.Baseline); err != nil {
		return nil, err
	}
	action := "update"
	if isNew {
		action = "insert"
	}
	uc.hub.Publish(events.Event{Table: "Team", Action: action, ID: t.EID})
	resp := toTeamResponse(t)
	return &resp, nil
}

// Delete removes one staff record.
func (uc *TeamUseCase) Delete(eid string) error {
	if err := uc.repo.Delete(eid); err != nil {
		return err
	}
	uc.hub.Publish(events.Event{Table: "Team", Action: "delete", ID: eid})
	return nil
}

func toTeamResponse(t *entity.Team) dto.TeamResponse {
	return dto.TeamResponse{
		EID:           t.EID,
		Timestamp:     t.Timestamp,
		RecBy:         t.RecBy,
		TeamName:      t.TeamName,
		TeamType:      t.TeamType,
		UserType:      t.UserType,
		Email:         t.Email,
		NickName:      t.NickName,
		FullName:      t.FullName,
		LastName:      t.LastName,
		CitizenID:     t.CitizenID,
		Bank:          t.Bank,
		ACNumber:      t.ACNumber,
		BirthDay:      t.BirthDay,
		StartDate:     t.StartDate,
		Address:       t.Address,
		Tel1:          t.Tel1,
		Tel2:          t.Tel2,
		Job:           t.Job,
		Level:         t.Level,
		WorkType:      t.WorkType,
		PayType:       t.PayType,
		PayRate:       t.PayRate,
		IncentiveRate: t.IncentiveRate,
		Pic:           t.Pic,
		CitizenIDPic:  t.CitizenIDPic,
		HouseRegPic:   t.HouseRegPic,
		EndDate:       t.EndDate,
		Active:        t.Active(),
	}
}
