package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
)

var campaignMapping = entities.SheetMapping{
	SheetName: "Campanhas",
	Columns: []entities.ColumnMapping{
		{RowIndex: 0, TargetField: "name"},
		{RowIndex: 1, TargetField: "status"},
		{RowIndex: 2, TargetField: "spend"},
		{RowIndex: 3, TargetField: "leads"},
		{RowIndex: 4, TargetField: "impressions"},
		{RowIndex: 5, TargetField: "clicks"},
	},
}

func TestParseCampaignsDerivedRatios(t *testing.T) {
	p := NewTrafficParser()
	rows := [][]string{
		{"Campanha", "Status", "Investimento", "Leads", "Impressões", "Cliques"},
		{"Captação A", "Ativa", "R$ 100,00", "50", "10000", "200"},
	}

	campaigns := p.ParseCampaigns(rows, campaignMapping, nil)
	require.Len(t, campaigns, 1)

	c := campaigns[0]
	assert.Equal(t, 100.0, c.Spend)
	assert.Equal(t, 2.0, c.CPL)  // 100/50
	assert.Equal(t, 2.0, c.CTR)  // 200/10000*100
	assert.Equal(t, 0.5, c.CPC)  // 100/200
	assert.Equal(t, 10.0, c.CPM) // 100*1000/10000
}

func TestParseCampaignsDivideByZeroSafety(t *testing.T) {
	p := NewTrafficParser()
	rows := [][]string{
		{"Campanha", "Status", "Investimento", "Leads", "Impressões", "Cliques"},
		{"Sem tráfego", "Ativa", "R$ 100,00", "0", "0", "5"},
	}

	campaigns := p.ParseCampaigns(rows, campaignMapping, nil)
	require.Len(t, campaigns, 1)

	c := campaigns[0]
	assert.Equal(t, 0.0, c.CTR, "impressions=0 deve produzir ctr=0")
	assert.Equal(t, 0.0, c.CPL, "leads=0 deve produzir cpl=0")
	assert.Equal(t, 0.0, c.CPM)
	assert.Equal(t, 20.0, c.CPC)
}

func TestParseCampaignsSlugID(t *testing.T) {
	p := NewTrafficParser()
	rows := [][]string{
		{"Campanha"},
		{"Lançamento Março 2025"},
		{"Lançamento Março 2025"},
	}
	mapping := entities.SheetMapping{Columns: []entities.ColumnMapping{
		{RowIndex: 0, TargetField: "name"},
	}}

	campaigns := p.ParseCampaigns(rows, mapping, nil)
	require.Len(t, campaigns, 2)

	// Mesmo nome sempre produz o mesmo id entre refreshes
	assert.Equal(t, "cmp-lancamento-marco-2025", campaigns[0].ID)
	assert.Equal(t, campaigns[0].ID, campaigns[1].ID)
}

func TestParseCampaignsMissingColumnsDefaultToZero(t *testing.T) {
	p := NewTrafficParser()
	rows := [][]string{
		{"Campanha"},
		{"Curta"},
	}

	campaigns := p.ParseCampaigns(rows, campaignMapping, nil)
	require.Len(t, campaigns, 1)
	assert.Equal(t, 0.0, campaigns[0].Spend)
	assert.Equal(t, 0, campaigns[0].Leads)
	assert.Equal(t, 0, campaigns[0].Impressions)
}

func TestParseAdSetsPositionalIDsAndUnknownParent(t *testing.T) {
	p := NewTrafficParser()
	rows := [][]string{
		{"Conjunto"},
		{"Conjunto 1"},
		{"Conjunto 2"},
	}
	mapping := entities.SheetMapping{Columns: []entities.ColumnMapping{
		{RowIndex: 0, TargetField: "name"},
	}}

	adSets := p.ParseAdSets(rows, mapping, nil)
	require.Len(t, adSets, 2)
	assert.Equal(t, "as-0", adSets[0].ID)
	assert.Equal(t, "as-1", adSets[1].ID)
	// A planilha não codifica o vínculo com a campanha
	assert.Equal(t, entities.UnknownParent, adSets[0].CampaignID)
}

func TestParseAdsParentReferences(t *testing.T) {
	p := NewTrafficParser()
	rows := [][]string{
		{"Anúncio", "Campanha"},
		{"Ad azul", "cmp-captacao-a"},
	}
	mapping := entities.SheetMapping{Columns: []entities.ColumnMapping{
		{RowIndex: 0, TargetField: "name"},
		{RowIndex: 1, TargetField: "campaign_id"},
	}}

	ads := p.ParseAds(rows, mapping, nil)
	require.Len(t, ads, 1)
	assert.Equal(t, "ad-0", ads[0].ID)
	assert.Equal(t, "cmp-captacao-a", ads[0].CampaignID)
	assert.Equal(t, entities.UnknownParent, ads[0].AdSetID)
}

func TestParseCampaignsCustomFields(t *testing.T) {
	p := NewTrafficParser()
	rows := [][]string{
		{"Campanha", "ROAS", "Criativo"},
		{"Captação A", "2,5", "vídeo depoimento"},
		{"Captação B", "", "—"},
	}
	mapping := entities.SheetMapping{Columns: []entities.ColumnMapping{
		{RowIndex: 0, TargetField: "name"},
	}}
	fields := []entities.CustomField{
		{Key: "roas", SourceIndex: 1, Aggregation: entities.AggAvg, Format: entities.FormatNumber},
		{Key: "criativo", SourceIndex: 2, Aggregation: entities.AggFirst, Format: entities.FormatText},
	}

	campaigns := p.ParseCampaigns(rows, mapping, fields)
	require.Len(t, campaigns, 2)

	// Coerção numérica quando possível; texto e vazio ficam como string bruta
	assert.Equal(t, 2.5, campaigns[0].CustomFields["roas"])
	assert.Equal(t, "vídeo depoimento", campaigns[0].CustomFields["criativo"])
	assert.Equal(t, "", campaigns[1].CustomFields["roas"])
	assert.Equal(t, "—", campaigns[1].CustomFields["criativo"])
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Ativa", entities.StatusActive},
		{"Pausada", entities.StatusPaused},
		{"PAUSED", entities.StatusPaused},
		{"Encerrada", entities.StatusEnded},
		{"Arquivada", entities.StatusArchived},
		{"", entities.StatusActive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeStatus(tt.raw), "raw=%q", tt.raw)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lançamento Março", "lancamento-marco"},
		{"Captação A", "captacao-a"},
		{"  VENDA!!! 2x ", "venda-2x"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
}
