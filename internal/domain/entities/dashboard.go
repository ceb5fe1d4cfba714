package entities

// DashboardKPIs é o rollup consolidado de tráfego exibido no dashboard.
// Todos os contadores são somas sobre a coleção filtrada; as taxas derivadas
// seguem a convenção de divisão segura (denominador 0 produz 0).
type DashboardKPIs struct {
	TotalSpend       float64 `json:"total_spend"`
	TotalLeads       int     `json:"total_leads"`
	TotalImpressions int     `json:"total_impressions"`
	TotalReach       int     `json:"total_reach"`
	TotalClicks      int     `json:"total_clicks"`
	TotalLinkClicks  int     `json:"total_link_clicks"`
	TotalPageViews   int     `json:"total_page_views"`
	TotalConversions int     `json:"total_conversions"`

	OrganicLeads    int `json:"organic_leads"`
	HotLeads        int `json:"hot_leads"`
	ColdLeads       int `json:"cold_leads"`
	DirectLeads     int `json:"direct_leads"`
	SurveyResponses int `json:"survey_responses"`

	AverageCpl     float64 `json:"average_cpl"`
	AverageCtr     float64 `json:"average_ctr"`
	ConnectRate    float64 `json:"connect_rate"`
	ConversionRate float64 `json:"conversion_rate"`
	CPA            float64 `json:"cpa"`

	BestLandingPage      string `json:"best_landing_page"`
	BestLandingPageLeads int    `json:"best_landing_page_leads"`
}

// CustomFieldValue é o resultado agregado e formatado de um campo customizado.
type CustomFieldValue struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Section   string `json:"section"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Value     any    `json:"value"`
	Formatted string `json:"formatted"`
}

// TrafficData reúne as três coleções de entidades de tráfego de um refresh.
// As coleções são reconstruídas por inteiro a cada fetch; sem updates parciais.
type TrafficData struct {
	Campaigns []Campaign `json:"campaigns"`
	AdSets    []AdSet    `json:"ad_sets"`
	Ads       []Ad       `json:"ads"`
}
