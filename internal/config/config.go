package config

import (
	"os"
	"time"
)

// Config concentra tudo que o serviço lê do ambiente. O core de transformação
// nunca consulta o ambiente diretamente; os handlers injetam esta
// configuração como dado explícito.
type Config struct {
	Port              string
	SupabaseJWTSecret string

	// Exportações CSV publicadas das planilhas
	LeadsSheetURL     string
	CampaignsSheetURL string
	AdSetsSheetURL    string
	AdsSheetURL       string

	HTTPTimeout   time.Duration
	SheetCacheTTL time.Duration
}

// FromEnv monta a configuração a partir das variáveis de ambiente.
func FromEnv() Config {
	return Config{
		Port:              envOr("PORT", "8080"),
		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		LeadsSheetURL:     os.Getenv("LEADS_SHEET_URL"),
		CampaignsSheetURL: os.Getenv("TRAFFIC_CAMPAIGNS_SHEET_URL"),
		AdSetsSheetURL:    os.Getenv("TRAFFIC_ADSETS_SHEET_URL"),
		AdsSheetURL:       os.Getenv("TRAFFIC_ADS_SHEET_URL"),
		HTTPTimeout:       durationOr("HTTP_TIMEOUT_SECONDS", 15*time.Second),
		SheetCacheTTL:     durationOr("SHEET_CACHE_TTL_SECONDS", 2*time.Minute),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func durationOr(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v + "s")
	if err != nil {
		return def
	}
	return d
}
