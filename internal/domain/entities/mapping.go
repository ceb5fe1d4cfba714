package entities

import "time"

// MatchType define como o valor de uma ScoreRule é comparado com a célula.
type MatchType string

const (
	MatchEquals   MatchType = "equals"
	MatchContains MatchType = "contains"
	MatchNotEmpty MatchType = "not_empty"
)

// NotEmptySentinel é o valor de regra usado internamente para representar
// "qualquer célula não vazia".
const NotEmptySentinel = "*"

// FieldIgnore marca uma coluna mapeada que não deve ser atribuída a nenhum
// campo do lead.
const FieldIgnore = "ignore"

// ScoreRule é uma regra de pontuação associada a uma coluna. As regras são
// avaliadas na ordem de inserção e a primeira que casar encerra a avaliação
// da coluna.
type ScoreRule struct {
	Value     string    `json:"value"`
	Score     int       `json:"score"`
	MatchType MatchType `json:"match_type"`
}

// ColumnMapping vincula uma coluna da planilha (RowIndex) a um campo interno
// (TargetField, ou o sentinela "ignore"), com uma lista ordenada de regras de
// pontuação.
type ColumnMapping struct {
	RowIndex    int         `json:"row_index"`
	TargetField string      `json:"target_field"`
	ScoreRules  []ScoreRule `json:"score_rules,omitempty"`
}

// SheetMapping descreve uma aba de planilha: nome e vínculo de colunas.
type SheetMapping struct {
	SheetName string          `json:"sheet_name"`
	Columns   []ColumnMapping `json:"columns"`
}

// TrafficMapping reúne as três seções independentes de tráfego.
type TrafficMapping struct {
	Campaigns SheetMapping `json:"campaigns"`
	AdSets    SheetMapping `json:"ad_sets"`
	Ads       SheetMapping `json:"ads"`
}

// LeadMappingRecord persiste a configuração de mapeamento de leads no backend
// hospedado. Configuração autoral do usuário: carregada uma vez por sessão e
// gravada apenas em ações explícitas de salvar.
type LeadMappingRecord struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Columns   []ColumnMapping `json:"columns" gorm:"serializer:json"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (LeadMappingRecord) TableName() string { return "lead_mappings" }

// TrafficMappingRecord persiste a configuração de mapeamento de tráfego.
type TrafficMappingRecord struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Mapping   TrafficMapping `json:"mapping" gorm:"serializer:json"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (TrafficMappingRecord) TableName() string { return "traffic_mappings" }
