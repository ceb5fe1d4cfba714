package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/aggregation"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/sheets"
)

// TrafficSheetURLs são as três exportações CSV independentes de tráfego.
type TrafficSheetURLs struct {
	Campaigns string
	AdSets    string
	Ads       string
}

// TrafficUseCase implementa o ciclo fetch → parse → aggregate das entidades de
// tráfego. As três abas são buscadas concorrentemente; o parser não tem
// estado compartilhado e cada aba é processada em isolamento.
type TrafficUseCase struct {
	source     SheetSource
	configRepo IConfigRepository
	parser     *sheets.TrafficParser
	urls       TrafficSheetURLs
}

func NewTrafficUseCase(source SheetSource, configRepo IConfigRepository, urls TrafficSheetURLs) *TrafficUseCase {
	return &TrafficUseCase{
		source:     source,
		configRepo: configRepo,
		parser:     sheets.NewTrafficParser(),
		urls:       urls,
	}
}

// GetTraffic reconstrói as três coleções por inteiro a partir das planilhas.
func (u *TrafficUseCase) GetTraffic(ctx context.Context, refresh bool) (entities.TrafficData, error) {
	data, _, err := u.fetchTraffic(ctx, refresh)
	return data, err
}

// fetchTraffic carrega a configuração uma única vez e busca as três abas
// concorrentemente. Os campos customizados retornam junto para que GetKPIs
// não precise reconsultar a configuração na mesma requisição.
func (u *TrafficUseCase) fetchTraffic(ctx context.Context, refresh bool) (entities.TrafficData, []entities.CustomField, error) {
	mapping, err := u.configRepo.GetTrafficMapping()
	if err != nil {
		return entities.TrafficData{}, nil, err
	}
	fields, err := u.configRepo.GetCustomFields()
	if err != nil {
		return entities.TrafficData{}, nil, err
	}

	var data entities.TrafficData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := u.source.FetchRows(ctx, u.urls.Campaigns, refresh)
		if err != nil {
			return err
		}
		data.Campaigns = u.parser.ParseCampaigns(rows, mapping.Campaigns, fields)
		return nil
	})
	g.Go(func() error {
		rows, err := u.source.FetchRows(ctx, u.urls.AdSets, refresh)
		if err != nil {
			return err
		}
		data.AdSets = u.parser.ParseAdSets(rows, mapping.AdSets, fields)
		return nil
	})
	g.Go(func() error {
		rows, err := u.source.FetchRows(ctx, u.urls.Ads, refresh)
		if err != nil {
			return err
		}
		data.Ads = u.parser.ParseAds(rows, mapping.Ads, fields)
		return nil
	})

	if err := g.Wait(); err != nil {
		return entities.TrafficData{}, nil, err
	}
	return data, fields, nil
}

// KPIResult é a resposta consolidada do dashboard de tráfego.
type KPIResult struct {
	KPIs         entities.DashboardKPIs      `json:"kpis"`
	CustomValues []entities.CustomFieldValue `json:"custom_values"`
}

// GetKPIs filtra as campanhas e reduz ao rollup do dashboard, incluindo os
// campos customizados agregados sobre a mesma coleção filtrada.
func (u *TrafficUseCase) GetKPIs(ctx context.Context, filter aggregation.KPIFilter, refresh bool) (KPIResult, error) {
	data, fields, err := u.fetchTraffic(ctx, refresh)
	if err != nil {
		return KPIResult{}, err
	}

	items := make([]entities.MetricEntity, 0, len(data.Campaigns))
	for i := range data.Campaigns {
		items = append(items, &data.Campaigns[i])
	}

	filtered := aggregation.FilterEntities(items, filter)
	return KPIResult{
		KPIs:         aggregation.ComputeKPIs(filtered, aggregation.KPIFilter{}),
		CustomValues: aggregation.AggregateFields(filtered, fields),
	}, nil
}
