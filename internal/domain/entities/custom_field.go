package entities

import "time"

// AggregationKind é o operador de agregação de um campo customizado.
type AggregationKind string

const (
	AggSum   AggregationKind = "sum"
	AggAvg   AggregationKind = "avg"
	AggMax   AggregationKind = "max"
	AggMin   AggregationKind = "min"
	AggCount AggregationKind = "count"
	AggFirst AggregationKind = "first"
)

// FormatKind é o formato de exibição de um valor agregado.
type FormatKind string

const (
	FormatCurrency   FormatKind = "currency"
	FormatNumber     FormatKind = "number"
	FormatPercentage FormatKind = "percentage"
	FormatText       FormatKind = "text"
)

// Seções de exibição do dashboard onde um campo customizado pode aparecer.
const (
	SectionKPIs      = "kpis"
	SectionSecondary = "secondary"
	SectionSources   = "sources"
	SectionTable     = "table"
)

// CustomField descreve uma métrica definida pelo usuário: de qual coluna da
// planilha ela vem, como agregar e como exibir. Agregação e formato são eixos
// independentes; qualquer combinação é válida.
type CustomField struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Key            string          `json:"key" gorm:"uniqueIndex"`
	Label          string          `json:"label"`
	SourceIndex    int             `json:"index" gorm:"column:source_index"`
	DisplaySection string          `json:"display_section"`
	Aggregation    AggregationKind `json:"aggregation"`
	Format         FormatKind      `json:"format"`
	Icon           string          `json:"icon"`
	Color          string          `json:"color"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (CustomField) TableName() string { return "custom_fields" }
