package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/aggregation"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
)

// ILaunchRepository é a persistência de lançamentos vista pelo caso de uso.
type ILaunchRepository interface {
	FindAll() ([]entities.Launch, error)
	FindByID(id string) (entities.Launch, error)
	FindByShareToken(token string) (entities.Launch, error)
	Create(launch *entities.Launch) error
	Update(launch *entities.Launch) error
	Delete(id string) error
}

// LaunchUseCase implementa o planejamento de lançamentos e o cálculo de
// progresso real a partir das campanhas vinculadas.
type LaunchUseCase struct {
	repo    ILaunchRepository
	traffic *TrafficUseCase
}

func NewLaunchUseCase(repo ILaunchRepository, traffic *TrafficUseCase) *LaunchUseCase {
	return &LaunchUseCase{repo: repo, traffic: traffic}
}

func (u *LaunchUseCase) GetLaunches() ([]entities.Launch, error) {
	return u.repo.FindAll()
}

func (u *LaunchUseCase) GetLaunch(id string) (entities.Launch, error) {
	return u.repo.FindByID(id)
}

// CreateLaunch gera id e token de compartilhamento e grava o lançamento.
func (u *LaunchUseCase) CreateLaunch(launch entities.Launch) (entities.Launch, error) {
	launch.ID = uuid.NewString()
	launch.ShareToken = uuid.NewString()
	if err := u.repo.Create(&launch); err != nil {
		return entities.Launch{}, err
	}
	return launch, nil
}

// UpdateLaunch regrava os campos editáveis preservando id e token.
func (u *LaunchUseCase) UpdateLaunch(id string, updated entities.Launch) (entities.Launch, error) {
	existing, err := u.repo.FindByID(id)
	if err != nil {
		return entities.Launch{}, err
	}

	existing.Name = updated.Name
	existing.Budget = updated.Budget
	existing.LeadGoal = updated.LeadGoal
	existing.CplAggressive = updated.CplAggressive
	existing.CplStandard = updated.CplStandard
	existing.CplConservative = updated.CplConservative
	existing.ConversionGoal = updated.ConversionGoal
	existing.AverageTicket = updated.AverageTicket
	existing.LinkedCampaignIDs = updated.LinkedCampaignIDs

	if err := u.repo.Update(&existing); err != nil {
		return entities.Launch{}, err
	}
	return existing, nil
}

func (u *LaunchUseCase) DeleteLaunch(id string) error {
	return u.repo.Delete(id)
}

// GetProgress calcula o progresso real do lançamento contra as campanhas
// atuais da planilha de tráfego.
func (u *LaunchUseCase) GetProgress(ctx context.Context, id string, refresh bool) (entities.LaunchProgress, error) {
	launch, err := u.repo.FindByID(id)
	if err != nil {
		return entities.LaunchProgress{}, err
	}
	return u.progressFor(ctx, launch, refresh)
}

// SharedView é a visão pública somente leitura de um lançamento.
type SharedView struct {
	Launch   entities.Launch         `json:"launch"`
	Progress entities.LaunchProgress `json:"progress"`
}

// GetSharedView resolve o token público e devolve lançamento + progresso.
func (u *LaunchUseCase) GetSharedView(ctx context.Context, token string) (SharedView, error) {
	launch, err := u.repo.FindByShareToken(token)
	if err != nil {
		return SharedView{}, fmt.Errorf("lançamento não encontrado para o token: %w", err)
	}
	progress, err := u.progressFor(ctx, launch, false)
	if err != nil {
		return SharedView{}, err
	}
	return SharedView{Launch: launch, Progress: progress}, nil
}

func (u *LaunchUseCase) progressFor(ctx context.Context, launch entities.Launch, refresh bool) (entities.LaunchProgress, error) {
	data, err := u.traffic.GetTraffic(ctx, refresh)
	if err != nil {
		return entities.LaunchProgress{}, err
	}
	return aggregation.ComputeLaunchProgress(launch, data.Campaigns), nil
}
