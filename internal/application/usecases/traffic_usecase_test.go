package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/aggregation"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
)

type matrixSource struct {
	rows map[string][][]string
}

func (s *matrixSource) FetchRows(_ context.Context, url string, _ bool) ([][]string, error) {
	return s.rows[url], nil
}

type countingConfigRepo struct {
	mapping          entities.TrafficMapping
	fields           []entities.CustomField
	customFieldCalls int
}

func (r *countingConfigRepo) GetLeadMapping() ([]entities.ColumnMapping, error) {
	return nil, nil
}

func (r *countingConfigRepo) GetTrafficMapping() (entities.TrafficMapping, error) {
	return r.mapping, nil
}

func (r *countingConfigRepo) GetSegmentation() (entities.SegmentationConfig, error) {
	return entities.DefaultSegmentationConfig(), nil
}

func (r *countingConfigRepo) GetCustomFields() ([]entities.CustomField, error) {
	r.customFieldCalls++
	return r.fields, nil
}

func campaignSheetFixture() (*matrixSource, *countingConfigRepo) {
	source := &matrixSource{rows: map[string][][]string{
		"campaigns": {
			{"Campanha", "Status", "Investimento", "Leads"},
			{"Captação A", "Ativa", "R$ 100,00", "50"},
			{"Captação B", "Pausada", "R$ 40,00", "10"},
		},
		"adsets": {{"Conjunto"}},
		"ads":    {{"Anúncio"}},
	}}
	repo := &countingConfigRepo{
		mapping: entities.TrafficMapping{
			Campaigns: entities.SheetMapping{Columns: []entities.ColumnMapping{
				{RowIndex: 0, TargetField: "name"},
				{RowIndex: 1, TargetField: "status"},
				{RowIndex: 2, TargetField: "spend"},
				{RowIndex: 3, TargetField: "leads"},
			}},
		},
	}
	return source, repo
}

func newTestTrafficUseCase(source *matrixSource, repo *countingConfigRepo) *TrafficUseCase {
	return NewTrafficUseCase(source, repo, TrafficSheetURLs{
		Campaigns: "campaigns",
		AdSets:    "adsets",
		Ads:       "ads",
	})
}

func TestGetKPIsLoadsCustomFieldsOnce(t *testing.T) {
	source, repo := campaignSheetFixture()
	uc := newTestTrafficUseCase(source, repo)

	result, err := uc.GetKPIs(context.Background(), aggregation.KPIFilter{}, false)
	require.NoError(t, err)

	// A configuração é carregada uma vez por requisição, não por etapa
	assert.Equal(t, 1, repo.customFieldCalls)
	assert.Equal(t, 140.0, result.KPIs.TotalSpend)
}

func TestGetKPIsAppliesFilterToCustomValues(t *testing.T) {
	source, repo := campaignSheetFixture()
	repo.fields = []entities.CustomField{
		{Key: "leads_planilha", SourceIndex: 3, Aggregation: entities.AggSum, Format: entities.FormatNumber},
	}
	uc := newTestTrafficUseCase(source, repo)

	result, err := uc.GetKPIs(context.Background(), aggregation.KPIFilter{Statuses: []string{"active"}}, false)
	require.NoError(t, err)

	// Campos customizados agregam sobre a mesma coleção filtrada dos KPIs
	assert.Equal(t, 100.0, result.KPIs.TotalSpend)
	require.Len(t, result.CustomValues, 1)
	assert.Equal(t, 50.0, result.CustomValues[0].Value)
}

func TestGetTrafficParsesAllThreeSheets(t *testing.T) {
	source, repo := campaignSheetFixture()
	uc := newTestTrafficUseCase(source, repo)

	data, err := uc.GetTraffic(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, data.Campaigns, 2)
	assert.Equal(t, "cmp-captacao-a", data.Campaigns[0].ID)
	assert.Empty(t, data.AdSets)
	assert.Empty(t, data.Ads)
}
