package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
)

func metricEntity(status, objective string, spend float64, leads, impressions, clicks int) entities.MetricEntity {
	return &entities.BaseEntity{
		Status:      status,
		Objective:   objective,
		Spend:       spend,
		Leads:       leads,
		Impressions: impressions,
		Clicks:      clicks,
	}
}

func TestFilterEntitiesEmptyFilterIsNoOp(t *testing.T) {
	items := []entities.MetricEntity{
		metricEntity("active", "leads", 10, 5, 0, 0),
		metricEntity("paused", "sales", 20, 2, 0, 0),
	}
	assert.Len(t, FilterEntities(items, KPIFilter{}), 2)
}

func TestFilterEntitiesByStatusAndObjective(t *testing.T) {
	items := []entities.MetricEntity{
		metricEntity("active", "leads", 10, 5, 0, 0),
		metricEntity("paused", "leads", 20, 2, 0, 0),
		metricEntity("active", "sales", 30, 1, 0, 0),
	}

	byStatus := FilterEntities(items, KPIFilter{Statuses: []string{"active"}})
	assert.Len(t, byStatus, 2)

	both := FilterEntities(items, KPIFilter{Statuses: []string{"active"}, Objectives: []string{"leads"}})
	assert.Len(t, both, 1)
	assert.Equal(t, 10.0, both[0].Metrics().Spend)
}

func TestComputeKPIsFiltersBeforeReducing(t *testing.T) {
	items := []entities.MetricEntity{
		metricEntity("active", "leads", 100, 50, 10000, 200),
		metricEntity("paused", "leads", 999, 999, 1, 1),
	}

	kpis := ComputeKPIs(items, KPIFilter{Statuses: []string{"active"}})

	// A campanha pausada não contamina nenhum total
	assert.Equal(t, 100.0, kpis.TotalSpend)
	assert.Equal(t, 50, kpis.TotalLeads)
	assert.Equal(t, 2.0, kpis.AverageCpl)
	assert.Equal(t, 2.0, kpis.AverageCtr)
}

func TestComputeKPIsSafeDivision(t *testing.T) {
	kpis := ComputeKPIs(nil, KPIFilter{})
	assert.Equal(t, 0.0, kpis.AverageCpl)
	assert.Equal(t, 0.0, kpis.AverageCtr)
	assert.Equal(t, 0.0, kpis.ConnectRate)
	assert.Equal(t, 0.0, kpis.ConversionRate)
	assert.Equal(t, 0.0, kpis.CPA)
}

func TestComputeKPIsDerivedRates(t *testing.T) {
	item := &entities.BaseEntity{
		Status:     "active",
		Spend:      500,
		Leads:      50,
		LinkClicks: 200,
		PageViews:  100,
	}
	kpis := ComputeKPIs([]entities.MetricEntity{item}, KPIFilter{})

	assert.Equal(t, 10.0, kpis.AverageCpl)
	assert.Equal(t, 50.0, kpis.ConnectRate)
	assert.Equal(t, 50.0, kpis.ConversionRate)
}

func TestBestLandingPageDefaultsToFirst(t *testing.T) {
	items := []entities.MetricEntity{
		&entities.BaseEntity{LandingPage: "lp-a"},
		&entities.BaseEntity{LandingPage: "lp-b"},
	}
	kpis := ComputeKPIs(items, KPIFilter{})
	// Empate em zero: a primeira da coleção vence
	assert.Equal(t, "lp-a", kpis.BestLandingPage)
	assert.Equal(t, 0, kpis.BestLandingPageLeads)
}

func TestBestLandingPagePicksMostLeads(t *testing.T) {
	items := []entities.MetricEntity{
		&entities.BaseEntity{LandingPage: "lp-a", LandingPageLeads: 3},
		&entities.BaseEntity{LandingPage: "lp-b", LandingPageLeads: 9},
		&entities.BaseEntity{LandingPage: "lp-c", LandingPageLeads: 5},
	}
	kpis := ComputeKPIs(items, KPIFilter{})
	assert.Equal(t, "lp-b", kpis.BestLandingPage)
	assert.Equal(t, 9, kpis.BestLandingPageLeads)
}

func TestComputeLaunchProgress(t *testing.T) {
	launch := entities.Launch{
		Budget:            1000,
		LeadGoal:          100,
		LinkedCampaignIDs: []string{"cmp-a", "cmp-c"},
	}
	campaigns := []entities.Campaign{
		{BaseEntity: entities.BaseEntity{ID: "cmp-a", Spend: 300, Leads: 30}},
		{BaseEntity: entities.BaseEntity{ID: "cmp-b", Spend: 999, Leads: 999}},
		{BaseEntity: entities.BaseEntity{ID: "cmp-c", Spend: 200, Leads: 20}},
	}

	progress := ComputeLaunchProgress(launch, campaigns)

	assert.Equal(t, 500.0, progress.Invested)
	assert.Equal(t, 50, progress.RealLeads)
	assert.Equal(t, 10.0, progress.RealCpl)
	assert.Equal(t, 50.0, progress.BudgetUsed)
	assert.Equal(t, 50.0, progress.GoalProgress)
}

func TestComputeLaunchProgressNoLinkedCampaigns(t *testing.T) {
	launch := entities.Launch{Budget: 1000, LeadGoal: 100}
	progress := ComputeLaunchProgress(launch, []entities.Campaign{
		{BaseEntity: entities.BaseEntity{ID: "cmp-a", Spend: 300, Leads: 30}},
	})

	assert.Equal(t, 0.0, progress.Invested)
	assert.Equal(t, 0, progress.RealLeads)
	assert.Equal(t, 0.0, progress.RealCpl)
	assert.Equal(t, 0.0, progress.BudgetUsed)
}
