package aggregation

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/utils"
)

// Placeholder exibido para valores ausentes, independente do formato.
const Placeholder = "-"

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatValue formata um valor agregado para exibição no locale pt-BR.
// Nil e string vazia viram o placeholder antes de qualquer ramificação por
// tipo de formato. Formato desconhecido cai na coerção de texto; nunca erro.
func FormatValue(v any, format entities.FormatKind) string {
	if v == nil {
		return Placeholder
	}
	if s, ok := v.(string); ok && s == "" {
		return Placeholder
	}

	switch format {
	case entities.FormatCurrency:
		return ptBR.Sprintf("R$ %.2f", toFloat(v))
	case entities.FormatNumber:
		f := toFloat(v)
		if f == float64(int64(f)) {
			return ptBR.Sprintf("%d", int64(f))
		}
		return ptBR.Sprintf("%.2f", f)
	case entities.FormatPercentage:
		return ptBR.Sprintf("%.2f%%", toFloat(v))
	default:
		return fmt.Sprint(v)
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, _ := utils.TryParseNumber(n)
		return f
	default:
		return 0
	}
}
