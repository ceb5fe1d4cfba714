package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseCurrency converte valores monetários no formato brasileiro ("R$ 1.200,50")
// para float64. Remove qualquer caractere que não seja dígito, vírgula, ponto ou
// sinal negativo, descarta os pontos (separador de milhar) e troca a vírgula pelo
// ponto decimal. Entrada inválida retorna 0; esta função nunca falha.
//
// Limitação documentada: assume formatação pt-BR; valores em outros locales são
// interpretados incorretamente de forma silenciosa.
func ParseCurrency(input string) float64 {
	var b strings.Builder
	for _, r := range input {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return parseBrazilianNumber(b.String())
}

// ParseNumber converte números no formato brasileiro ("1.234,56") para float64,
// sem remover símbolos de moeda. Entrada inválida retorna 0.
func ParseNumber(input string) float64 {
	v, _ := TryParseNumber(input)
	return v
}

// TryParseNumber tenta a conversão numérica pt-BR e informa se houve sucesso.
// Usado pelo parser de campos customizados, que precisa distinguir "não numérico"
// de "zero".
func TryParseNumber(input string) (float64, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}
	cleaned := strings.ReplaceAll(s, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseBrazilianNumber(s string) float64 {
	cleaned := strings.ReplaceAll(s, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseDate interpreta datas em ISO 8601 ou no formato brasileiro
// "dd/mm/yyyy" (com hora opcional). Quando nenhum formato casa, retorna o
// instante atual; o contrato é "nunca falha", e os consumidores não devem
// depender de observar falha de parse.
func ParseDate(input string) time.Time {
	return ParseDateAt(input, time.Now())
}

// ParseDateAt é a variante com fallback injetável, usada para manter os testes
// determinísticos.
func ParseDateAt(input string, fallback time.Time) time.Time {
	s := strings.TrimSpace(input)
	if s == "" {
		return fallback
	}

	isoFormats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range isoFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	brFormats := []string{
		"02/01/2006 15:04:05",
		"02/01/2006 15:04",
		"02/01/2006",
	}
	loc := GetBrasilLocation()
	for _, layout := range brFormats {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t
		}
	}

	return fallback
}
