package aggregation

import (
	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/utils"
)

// Aggregate reduz o campo customizado informado sobre a coleção usando o
// operador declarado no próprio campo.
//
// Política de valores ausentes: sum/avg/max/min operam apenas sobre valores
// presentes e numericamente coercíveis; uma entidade sem valor para o campo
// NÃO conta como zero no denominador de avg. Isso difere deliberadamente da
// política "default 0" do parser e precisa ser preservado. count conta valores
// presentes independente de validade numérica; first retorna o primeiro valor
// presente sem transformação (pode ser string). Entrada vazia ou totalmente
// excluída produz 0. Operador desconhecido também produz 0; nunca erro.
func Aggregate(items []entities.MetricEntity, field entities.CustomField) any {
	switch field.Aggregation {
	case entities.AggSum:
		sum, _ := numericValues(items, field.Key)
		return sum
	case entities.AggAvg:
		sum, n := numericValues(items, field.Key)
		if n == 0 {
			return float64(0)
		}
		return sum / float64(n)
	case entities.AggMax:
		return extreme(items, field.Key, func(v, best float64) bool { return v > best })
	case entities.AggMin:
		return extreme(items, field.Key, func(v, best float64) bool { return v < best })
	case entities.AggCount:
		count := 0
		for _, it := range items {
			if _, ok := presentValue(it, field.Key); ok {
				count++
			}
		}
		return count
	case entities.AggFirst:
		for _, it := range items {
			if v, ok := presentValue(it, field.Key); ok {
				return v
			}
		}
		return 0
	default:
		return 0
	}
}

// presentValue informa se a entidade carrega um valor presente (não nulo, não
// string vazia) para a chave.
func presentValue(it entities.MetricEntity, key string) (any, bool) {
	m := it.Metrics()
	if m == nil || m.CustomFields == nil {
		return nil, false
	}
	v, ok := m.CustomFields[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return nil, false
	}
	return v, true
}

// coerce converte um valor presente para float64, rejeitando os não numéricos.
func coerce(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		return utils.TryParseNumber(n)
	default:
		return 0, false
	}
}

func numericValues(items []entities.MetricEntity, key string) (sum float64, n int) {
	for _, it := range items {
		v, ok := presentValue(it, key)
		if !ok {
			continue
		}
		f, ok := coerce(v)
		if !ok {
			continue
		}
		sum += f
		n++
	}
	return sum, n
}

func extreme(items []entities.MetricEntity, key string, better func(v, best float64) bool) float64 {
	var best float64
	found := false
	for _, it := range items {
		v, ok := presentValue(it, key)
		if !ok {
			continue
		}
		f, ok := coerce(v)
		if !ok {
			continue
		}
		if !found || better(f, best) {
			best = f
			found = true
		}
	}
	if !found {
		return 0
	}
	return best
}

// AggregateFields aplica Aggregate a cada campo declarado e devolve os valores
// prontos para exibição, já formatados.
func AggregateFields(items []entities.MetricEntity, fields []entities.CustomField) []entities.CustomFieldValue {
	out := make([]entities.CustomFieldValue, 0, len(fields))
	for _, f := range fields {
		v := Aggregate(items, f)
		out = append(out, entities.CustomFieldValue{
			Key:       f.Key,
			Label:     f.Label,
			Section:   f.DisplaySection,
			Icon:      f.Icon,
			Color:     f.Color,
			Value:     v,
			Formatted: FormatValue(v, f.Format),
		})
	}
	return out
}
