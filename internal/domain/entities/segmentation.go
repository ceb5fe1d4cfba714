package entities

import (
	"fmt"
	"time"
)

// Cortes padrão de segmentação, usados quando não há configuração persistida
// ou quando a configuração carregada é inconsistente.
const (
	DefaultSuperQualifiedCutoff = 700
	DefaultQualifiedCutoff      = 400
)

// SegmentationConfig guarda os dois cortes inteiros de segmentação.
// Invariante: SuperQualified > Qualified; imposto no construtor; registros
// carregados do banco passam pela mesma validação.
type SegmentationConfig struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	SuperQualified int       `json:"super_qualified"`
	Qualified      int       `json:"qualified"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (SegmentationConfig) TableName() string { return "segmentation_configs" }

// NewSegmentationConfig valida e constrói uma configuração de cortes.
func NewSegmentationConfig(superQualified, qualified int) (SegmentationConfig, error) {
	if superQualified <= qualified {
		return SegmentationConfig{}, fmt.Errorf(
			"corte super qualificado (%d) deve ser maior que o corte qualificado (%d)",
			superQualified, qualified,
		)
	}
	return SegmentationConfig{SuperQualified: superQualified, Qualified: qualified}, nil
}

// DefaultSegmentationConfig retorna os cortes padrão 700/400.
func DefaultSegmentationConfig() SegmentationConfig {
	return SegmentationConfig{
		SuperQualified: DefaultSuperQualifiedCutoff,
		Qualified:      DefaultQualifiedCutoff,
	}
}

// Valid informa se os cortes respeitam a ordenação exigida.
func (c SegmentationConfig) Valid() bool {
	return c.SuperQualified > c.Qualified
}
