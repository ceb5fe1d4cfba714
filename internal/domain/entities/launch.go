package entities

import "time"

// Launch é uma entidade de planejamento: orçamento, meta de leads e cenários
// de CPL. LinkedCampaignIDs funciona apenas como chave de filtro sobre a
// coleção de campanhas para o cálculo de progresso em tempo real.
type Launch struct {
	ID   string `json:"id" gorm:"primaryKey;type:uuid"`
	Name string `json:"name"`

	Budget   float64 `json:"budget"`
	LeadGoal int     `json:"lead_goal"`

	// Cenários de CPL usados no planejamento
	CplAggressive   float64 `json:"cpl_aggressive"`
	CplStandard     float64 `json:"cpl_standard"`
	CplConservative float64 `json:"cpl_conservative"`

	// Meta opcional de conversão
	ConversionGoal int     `json:"conversion_goal"`
	AverageTicket  float64 `json:"average_ticket"`

	LinkedCampaignIDs []string `json:"linked_campaign_ids" gorm:"serializer:json"`

	// Token da visão pública somente leitura
	ShareToken string `json:"share_token" gorm:"uniqueIndex"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Launch) TableName() string { return "launches" }

// LaunchProgress é o progresso real de um lançamento, calculado filtrando as
// campanhas vinculadas e somando spend/leads.
type LaunchProgress struct {
	Invested     float64 `json:"invested"`
	RealLeads    int     `json:"real_leads"`
	RealCpl      float64 `json:"real_cpl"`
	BudgetUsed   float64 `json:"budget_used_pct"`
	GoalProgress float64 `json:"lead_goal_pct"`
}
