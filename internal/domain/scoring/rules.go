package scoring

import (
	"strings"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
)

// Normalize aplica a normalização usada em toda comparação de regra:
// trim + lowercase. Célula e valor de regra passam pela mesma normalização.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ScoreCell avalia as regras de uma coluna contra o valor bruto da célula e
// retorna a pontuação da primeira regra que casar. No máximo uma regra dispara
// por coluna por linha; as regras são avaliadas na ordem da lista e as
// seguintes não são consultadas após o primeiro match.
func ScoreCell(raw string, rules []entities.ScoreRule) int {
	if len(rules) == 0 {
		return 0
	}
	cell := Normalize(raw)
	for _, r := range rules {
		if ruleMatches(cell, r) {
			return r.Score
		}
	}
	return 0
}

func ruleMatches(cell string, r entities.ScoreRule) bool {
	// O sentinela "*" representa not_empty independente do MatchType gravado.
	if r.MatchType == entities.MatchNotEmpty || r.Value == entities.NotEmptySentinel {
		return cell != ""
	}
	value := Normalize(r.Value)
	switch r.MatchType {
	case entities.MatchEquals:
		return cell == value
	case entities.MatchContains:
		return value != "" && strings.Contains(cell, value)
	default:
		return false
	}
}
