package sheets

import "strings"

var accents = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n',
}

// Slugify converte um nome de campanha em um identificador estável:
// minúsculas sem acento, qualquer sequência não alfanumérica vira um único
// hífen. O mesmo nome sempre produz o mesmo slug entre refreshes.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // suprime hífen inicial
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if mapped, ok := accents[r]; ok {
			r = mapped
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
