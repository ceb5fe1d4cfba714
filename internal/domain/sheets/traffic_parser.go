package sheets

import (
	"fmt"
	"strings"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/utils"
)

// TrafficParser converte as matrizes brutas das três abas de tráfego em
// entidades tipadas de métrica. As três abas são operações independentes de
// fetch+parse sem exigência de consistência cruzada; o único acoplamento são
// os ids desnormalizados, que podem referenciar linhas inexistentes na aba
// irmã (ou valer "unknown" quando a origem não codifica o vínculo).
type TrafficParser struct{}

func NewTrafficParser() *TrafficParser {
	return &TrafficParser{}
}

// ParseCampaigns produz uma campanha por linha de dados. O id deriva do slug
// do nome para que Launch.LinkedCampaignIDs permaneça válido entre refreshes.
func (p *TrafficParser) ParseCampaigns(rows [][]string, mapping entities.SheetMapping, fields []entities.CustomField) []entities.Campaign {
	out := make([]entities.Campaign, 0)
	for _, row := range dataRows(rows) {
		base := p.parseBase(row, mapping.Columns, fields)
		base.ID = "cmp-" + Slugify(base.Name)
		out = append(out, entities.Campaign{BaseEntity: base})
	}
	return out
}

// ParseAdSets produz um conjunto de anúncios por linha, com id posicional.
func (p *TrafficParser) ParseAdSets(rows [][]string, mapping entities.SheetMapping, fields []entities.CustomField) []entities.AdSet {
	out := make([]entities.AdSet, 0)
	for i, row := range dataRows(rows) {
		base := p.parseBase(row, mapping.Columns, fields)
		base.ID = fmt.Sprintf("as-%d", i)
		out = append(out, entities.AdSet{
			BaseEntity: base,
			CampaignID: parentRef(row, mapping.Columns, "campaign_id"),
		})
	}
	return out
}

// ParseAds produz um anúncio por linha, com id posicional e referências
// desnormalizadas ao conjunto e à campanha.
func (p *TrafficParser) ParseAds(rows [][]string, mapping entities.SheetMapping, fields []entities.CustomField) []entities.Ad {
	out := make([]entities.Ad, 0)
	for i, row := range dataRows(rows) {
		base := p.parseBase(row, mapping.Columns, fields)
		base.ID = fmt.Sprintf("ad-%d", i)
		out = append(out, entities.Ad{
			BaseEntity: base,
			AdSetID:    parentRef(row, mapping.Columns, "ad_set_id"),
			CampaignID: parentRef(row, mapping.Columns, "campaign_id"),
		})
	}
	return out
}

func dataRows(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}

// parseBase monta a forma comum da entidade. Campos numéricos ausentes ou
// inválidos viram 0; as razões derivadas são calculadas aqui, no parse, nunca
// de forma preguiçosa.
func (p *TrafficParser) parseBase(row []string, columns []entities.ColumnMapping, fields []entities.CustomField) entities.BaseEntity {
	base := entities.BaseEntity{Status: entities.StatusActive}

	for _, cm := range columns {
		if cm.TargetField == entities.FieldIgnore {
			continue
		}
		raw := cell(row, cm.RowIndex)
		switch cm.TargetField {
		case "name":
			base.Name = strings.TrimSpace(raw)
		case "status":
			base.Status = normalizeStatus(raw)
		case "objective":
			base.Objective = strings.TrimSpace(raw)
		case "impressions":
			base.Impressions = int(utils.ParseNumber(raw))
		case "reach":
			base.Reach = int(utils.ParseNumber(raw))
		case "clicks":
			base.Clicks = int(utils.ParseNumber(raw))
		case "link_clicks":
			base.LinkClicks = int(utils.ParseNumber(raw))
		case "page_views":
			base.PageViews = int(utils.ParseNumber(raw))
		case "spend":
			base.Spend = utils.ParseCurrency(raw)
		case "leads":
			base.Leads = int(utils.ParseNumber(raw))
		case "conversions":
			base.Conversions = int(utils.ParseNumber(raw))
		case "organic_leads":
			base.OrganicLeads = int(utils.ParseNumber(raw))
		case "hot_leads":
			base.HotLeads = int(utils.ParseNumber(raw))
		case "cold_leads":
			base.ColdLeads = int(utils.ParseNumber(raw))
		case "direct_leads":
			base.DirectLeads = int(utils.ParseNumber(raw))
		case "survey_responses":
			base.SurveyResponses = int(utils.ParseNumber(raw))
		case "landing_page":
			base.LandingPage = strings.TrimSpace(raw)
		case "landing_page_leads":
			base.LandingPageLeads = int(utils.ParseNumber(raw))
		}
	}

	if len(fields) > 0 {
		base.CustomFields = make(map[string]any, len(fields))
		for _, f := range fields {
			base.CustomFields[f.Key] = customValue(cell(row, f.SourceIndex))
		}
	}

	base.ComputeDerived()
	return base
}

// customValue tenta coerção numérica; valor vazio ou não numérico é mantido
// como a string bruta; métricas customizadas aceitam número ou texto sem
// esquema fixo.
func customValue(raw string) any {
	if raw == "" {
		return raw
	}
	if n, ok := utils.TryParseNumber(raw); ok {
		return n
	}
	return raw
}

// parentRef lê a referência à entidade pai quando o mapeamento a vincula;
// planilhas que não codificam a hierarquia produzem o placeholder "unknown".
func parentRef(row []string, columns []entities.ColumnMapping, field string) string {
	for _, cm := range columns {
		if cm.TargetField == field {
			if v := strings.TrimSpace(cell(row, cm.RowIndex)); v != "" {
				return v
			}
		}
	}
	return entities.UnknownParent
}

func normalizeStatus(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "paus"):
		return entities.StatusPaused
	case strings.Contains(s, "encerr"), strings.Contains(s, "ended"), strings.Contains(s, "finaliz"):
		return entities.StatusEnded
	case strings.Contains(s, "arquiv"), strings.Contains(s, "archiv"):
		return entities.StatusArchived
	default:
		return entities.StatusActive
	}
}
