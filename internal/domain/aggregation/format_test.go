package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
)

func TestFormatValuePlaceholder(t *testing.T) {
	// Ausência vence o formato: nil e string vazia viram "-" mesmo em currency
	assert.Equal(t, "-", FormatValue(nil, entities.FormatCurrency))
	assert.Equal(t, "-", FormatValue("", entities.FormatCurrency))
	assert.Equal(t, "-", FormatValue(nil, entities.FormatText))
	assert.Equal(t, "-", FormatValue("", entities.FormatPercentage))
}

func TestFormatValueCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatValue(1234.56, entities.FormatCurrency))
	assert.Equal(t, "R$ 0,00", FormatValue(float64(0), entities.FormatCurrency))
}

func TestFormatValueNumber(t *testing.T) {
	// Inteiros sem casa decimal, fracionários com duas
	assert.Equal(t, "42", FormatValue(42.0, entities.FormatNumber))
	assert.Equal(t, "1.500", FormatValue(1500.0, entities.FormatNumber))
	assert.Equal(t, "3,14", FormatValue(3.14, entities.FormatNumber))
}

func TestFormatValuePercentage(t *testing.T) {
	assert.Equal(t, "12,35%", FormatValue(12.345, entities.FormatPercentage))
	assert.Equal(t, "0,00%", FormatValue(float64(0), entities.FormatPercentage))
}

func TestFormatValueText(t *testing.T) {
	assert.Equal(t, "vídeo depoimento", FormatValue("vídeo depoimento", entities.FormatText))
	assert.Equal(t, "7", FormatValue(7, entities.FormatText))
}

func TestFormatValueUnknownFormat(t *testing.T) {
	// Formato desconhecido degrada para texto
	assert.Equal(t, "123", FormatValue(123, entities.FormatKind("weird")))
}

func TestFormatValueNumericString(t *testing.T) {
	// Strings numéricas pt-BR passam pela coerção antes de formatar
	assert.Equal(t, "R$ 2,50", FormatValue("2,5", entities.FormatCurrency))
}
