package entities

// Status de ciclo de vida das entidades de tráfego.
const (
	StatusActive   = "active"
	StatusPaused   = "paused"
	StatusEnded    = "ended"
	StatusArchived = "archived"
)

// UnknownParent é o placeholder gravado quando a planilha de origem não
// codifica a relação com a entidade pai; as três abas são independentes e o
// vínculo entre elas é apenas consultivo.
const UnknownParent = "unknown"

// BaseEntity é a forma comum de Campaign, AdSet e Ad: identidade, contadores
// brutos e razões derivadas. As razões são calculadas no parse (nunca de forma
// preguiçosa) com a convenção de divisão segura: denominador 0 produz 0.
type BaseEntity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Objective string `json:"objective"`

	Impressions int     `json:"impressions"`
	Reach       int     `json:"reach"`
	Clicks      int     `json:"clicks"`
	LinkClicks  int     `json:"link_clicks"`
	PageViews   int     `json:"page_views"`
	Spend       float64 `json:"spend"`
	Leads       int     `json:"leads"`
	Conversions int     `json:"conversions"`

	// Contadores específicos do domínio, alimentados por colunas opcionais.
	OrganicLeads     int    `json:"organic_leads"`
	HotLeads         int    `json:"hot_leads"`
	ColdLeads        int    `json:"cold_leads"`
	DirectLeads      int    `json:"direct_leads"`
	SurveyResponses  int    `json:"survey_responses"`
	LandingPage      string `json:"landing_page"`
	LandingPageLeads int    `json:"landing_page_leads"`

	// Razões derivadas
	CTR float64 `json:"ctr"`
	CPC float64 `json:"cpc"`
	CPM float64 `json:"cpm"`
	CPL float64 `json:"cpl"`

	// Métricas extras definidas pelo usuário: numéricas (float64) ou texto
	// (string), validadas na borda onde as linhas são lidas.
	CustomFields map[string]any `json:"custom_fields,omitempty"`
}

// ComputeDerived calcula as razões derivadas a partir dos contadores brutos.
func (b *BaseEntity) ComputeDerived() {
	b.CTR = safePct(float64(b.Clicks), float64(b.Impressions))
	b.CPC = safeDiv(b.Spend, float64(b.Clicks))
	b.CPM = safeDiv(b.Spend*1000, float64(b.Impressions))
	b.CPL = safeDiv(b.Spend, float64(b.Leads))
}

// Metrics satisfaz MetricEntity.
func (b *BaseEntity) Metrics() *BaseEntity { return b }

// MetricEntity é a visão comum que o motor de agregação tem sobre as três
// variantes de entidade de tráfego.
type MetricEntity interface {
	Metrics() *BaseEntity
}

// Campaign é uma campanha de anúncios. O id deriva do slug do nome, então o
// mesmo nome sempre produz o mesmo id entre refreshes; é isso que permite o
// vínculo estável a partir de Launch.LinkedCampaignIDs.
type Campaign struct {
	BaseEntity
}

// AdSet é um conjunto de anúncios; referencia a campanha pai quando a planilha
// codifica esse vínculo.
type AdSet struct {
	BaseEntity
	CampaignID string `json:"campaign_id"`
}

// Ad é um anúncio individual; referencia o conjunto pai e, desnormalizada, a
// campanha.
type Ad struct {
	BaseEntity
	AdSetID    string `json:"ad_set_id"`
	CampaignID string `json:"campaign_id"`
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func safePct(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}
