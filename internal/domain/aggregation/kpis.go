package aggregation

import "github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"

// KPIFilter restringe a coleção antes da agregação. Filtro vazio é no-op.
// A ordem é sempre filtrar-depois-reduzir, nunca o inverso.
type KPIFilter struct {
	Statuses   []string `json:"statuses"`
	Objectives []string `json:"objectives"`
}

// FilterEntities aplica o filtro de status e objetivo sobre a coleção.
func FilterEntities(items []entities.MetricEntity, f KPIFilter) []entities.MetricEntity {
	if len(f.Statuses) == 0 && len(f.Objectives) == 0 {
		return items
	}
	statuses := toSet(f.Statuses)
	objectives := toSet(f.Objectives)

	out := make([]entities.MetricEntity, 0, len(items))
	for _, it := range items {
		m := it.Metrics()
		if len(statuses) > 0 {
			if _, ok := statuses[m.Status]; !ok {
				continue
			}
		}
		if len(objectives) > 0 {
			if _, ok := objectives[m.Objective]; !ok {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// ComputeKPIs filtra a coleção e reduz os contadores brutos ao rollup do
// dashboard, derivando as taxas com divisão segura.
func ComputeKPIs(items []entities.MetricEntity, f KPIFilter) entities.DashboardKPIs {
	filtered := FilterEntities(items, f)

	var kpis entities.DashboardKPIs
	for _, it := range filtered {
		m := it.Metrics()
		kpis.TotalSpend += m.Spend
		kpis.TotalLeads += m.Leads
		kpis.TotalImpressions += m.Impressions
		kpis.TotalReach += m.Reach
		kpis.TotalClicks += m.Clicks
		kpis.TotalLinkClicks += m.LinkClicks
		kpis.TotalPageViews += m.PageViews
		kpis.TotalConversions += m.Conversions
		kpis.OrganicLeads += m.OrganicLeads
		kpis.HotLeads += m.HotLeads
		kpis.ColdLeads += m.ColdLeads
		kpis.DirectLeads += m.DirectLeads
		kpis.SurveyResponses += m.SurveyResponses
	}

	kpis.AverageCpl = safeDiv(kpis.TotalSpend, float64(kpis.TotalLeads))
	kpis.AverageCtr = safeDiv(float64(kpis.TotalClicks), float64(kpis.TotalImpressions)) * 100
	kpis.ConnectRate = safeDiv(float64(kpis.TotalPageViews), float64(kpis.TotalLinkClicks)) * 100
	kpis.ConversionRate = safeDiv(float64(kpis.TotalLeads), float64(kpis.TotalPageViews)) * 100
	kpis.CPA = safeDiv(kpis.TotalSpend, float64(kpis.TotalConversions))

	kpis.BestLandingPage, kpis.BestLandingPageLeads = bestLandingPage(filtered)
	return kpis
}

// bestLandingPage escolhe a entidade com mais leads de landing page; quando
// nenhuma qualifica, devolve a primeira da coleção.
func bestLandingPage(items []entities.MetricEntity) (string, int) {
	if len(items) == 0 {
		return "", 0
	}
	best := items[0].Metrics()
	for _, it := range items[1:] {
		if m := it.Metrics(); m.LandingPageLeads > best.LandingPageLeads {
			best = m
		}
	}
	return best.LandingPage, best.LandingPageLeads
}

// ComputeLaunchProgress calcula o progresso real de um lançamento filtrando as
// campanhas vinculadas e somando spend/leads; aplicação direta do padrão de
// soma do motor de agregação.
func ComputeLaunchProgress(launch entities.Launch, campaigns []entities.Campaign) entities.LaunchProgress {
	linked := toSet(launch.LinkedCampaignIDs)

	var progress entities.LaunchProgress
	for i := range campaigns {
		if _, ok := linked[campaigns[i].ID]; !ok {
			continue
		}
		progress.Invested += campaigns[i].Spend
		progress.RealLeads += campaigns[i].Leads
	}
	progress.RealCpl = safeDiv(progress.Invested, float64(progress.RealLeads))
	progress.BudgetUsed = safeDiv(progress.Invested, launch.Budget) * 100
	progress.GoalProgress = safeDiv(float64(progress.RealLeads), float64(launch.LeadGoal)) * 100
	return progress
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
