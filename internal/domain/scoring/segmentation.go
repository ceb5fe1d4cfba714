package scoring

import "github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"

// GetSegmentation classifica um score na faixa correspondente aos cortes
// ativos. Score igual ao corte pertence à faixa superior (limite superior
// inclusivo). Configurações inconsistentes caem nos cortes padrão para que a
// classificação nunca fique indefinida.
func GetSegmentation(score int, cfg entities.SegmentationConfig) string {
	if !cfg.Valid() {
		cfg = entities.DefaultSegmentationConfig()
	}
	switch {
	case score >= cfg.SuperQualified:
		return entities.TierSuperQualified
	case score >= cfg.Qualified:
		return entities.TierQualified
	default:
		return entities.TierUnqualified
	}
}
