package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"valor com símbolo e milhar", "R$ 1.234,56", 1234.56},
		{"valor simples", "R$ 1.200,50", 1200.50},
		{"sem símbolo", "350,00", 350},
		{"inteiro", "500", 500},
		{"negativo", "-10,50", -10.50},
		{"vazio", "", 0},
		{"não numérico", "abc", 0},
		{"só símbolo", "R$", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCurrency(tt.input))
		})
	}
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 1234.56, ParseNumber("1.234,56"))
	assert.Equal(t, 10.0, ParseNumber("10"))
	assert.Equal(t, 0.0, ParseNumber(""))
	assert.Equal(t, 0.0, ParseNumber("n/a"))
}

func TestTryParseNumber(t *testing.T) {
	v, ok := TryParseNumber("2,5")
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	_, ok = TryParseNumber("alto")
	assert.False(t, ok)

	_, ok = TryParseNumber("")
	assert.False(t, ok)
}

func TestParseDateAt(t *testing.T) {
	fallback := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ISO", func(t *testing.T) {
		got := ParseDateAt("2025-01-15", fallback)
		assert.Equal(t, 2025, got.Year())
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 15, got.Day())
	})

	t.Run("formato brasileiro com hora", func(t *testing.T) {
		got := ParseDateAt("25/12/2024 10:30:00", fallback)
		assert.Equal(t, 25, got.Day())
		assert.Equal(t, time.December, got.Month())
		assert.Equal(t, 10, got.Hour())
	})

	t.Run("formato brasileiro sem hora", func(t *testing.T) {
		got := ParseDateAt("01/02/2024", fallback)
		assert.Equal(t, 1, got.Day())
		assert.Equal(t, time.February, got.Month())
	})

	// Contrato "nunca falha": entrada inválida cai no fallback, não em erro
	t.Run("fallback", func(t *testing.T) {
		assert.Equal(t, fallback, ParseDateAt("ontem", fallback))
		assert.Equal(t, fallback, ParseDateAt("", fallback))
	})
}
