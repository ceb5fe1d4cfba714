package utils

import "time"

// GetBrasilLocation retorna a localização de São Paulo, o fuso assumido para
// datas "dd/mm/yyyy" vindas das planilhas (que não carregam offset).
func GetBrasilLocation() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// Sem tzdata no ambiente, cai no offset fixo UTC-3
		loc = time.FixedZone("BRT", -3*60*60)
	}
	return loc
}
