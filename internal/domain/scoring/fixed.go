package scoring

import (
	"strings"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
)

// CalculateScore é o pontuador fixo usado pelas planilhas legadas (anteriores
// ao mapeamento configurável). Cada verificação é independente e aditiva: não
// há normalização, teto nem exclusividade entre categorias; campo vazio ou não
// reconhecido contribui 0.
//
// Os valores de pontos e os gatilhos de substring foram calibrados nas
// importações originais e precisam ser reproduzidos exatamente para manter a
// compatibilidade com as configurações de corte existentes; tratar a tabela
// como constante literal.
func CalculateScore(l *entities.Lead) int {
	score := 0

	// Faixa etária
	age := Normalize(l.Age)
	switch {
	case strings.Contains(age, "25 a 32"):
		score += 40
	case strings.Contains(age, "33 a 42"):
		score += 60
	case strings.Contains(age, "43 a 52"):
		score += 45
	case strings.Contains(age, "acima de 53"):
		score += 20
	case strings.Contains(age, "18 a 24"):
		score += 10
	}

	// Tem filhos
	if Normalize(l.HasChildren) == "sim" {
		score += 20
	}

	// Gênero
	switch Normalize(l.Gender) {
	case "feminino":
		score += 15
	case "masculino":
		score += 10
	}

	// Escolaridade
	education := Normalize(l.Education)
	switch {
	case strings.Contains(education, "pós"):
		score += 25
	case strings.Contains(education, "superior"):
		score += 20
	case strings.Contains(education, "médio"):
		score += 10
	}

	// Estado civil
	marital := Normalize(l.MaritalStatus)
	switch {
	case strings.Contains(marital, "casad"):
		score += 20
	case strings.Contains(marital, "solteir"):
		score += 10
	}

	// Tempo acompanhando o conteúdo
	follow := Normalize(l.FollowTime)
	switch {
	case strings.Contains(follow, "mais de 1 ano"):
		score += 30
	case strings.Contains(follow, "6 meses"):
		score += 20
	case strings.Contains(follow, "menos"):
		score += 5
	}

	// Já tem loja
	if Normalize(l.HasStore) == "sim" {
		score += 80
	}

	// Tipo de loja
	storeType := Normalize(l.StoreType)
	switch {
	case strings.Contains(storeType, "física e online"):
		score += 60
	case strings.Contains(storeType, "física"):
		score += 40
	case strings.Contains(storeType, "online"):
		score += 30
	}

	// Segmento
	segment := Normalize(l.Segment)
	switch {
	case strings.Contains(segment, "moda"):
		score += 25
	case strings.Contains(segment, "cosmé"):
		score += 20
	case strings.Contains(segment, "acessório"):
		score += 15
	}

	// Maior dificuldade
	difficulty := Normalize(l.Difficulty)
	switch {
	case strings.Contains(difficulty, "vend"):
		score += 30
	case strings.Contains(difficulty, "divulga"):
		score += 25
	case strings.Contains(difficulty, "gest"):
		score += 20
	}

	// Faturamento mensal
	revenue := Normalize(l.Revenue)
	switch {
	case strings.Contains(revenue, "acima de r$ 50"):
		score += 90
	case strings.Contains(revenue, "20.001"):
		score += 70
	case strings.Contains(revenue, "10.001"):
		score += 50
	case strings.Contains(revenue, "5.001"):
		score += 35
	case strings.Contains(revenue, "até r$ 5.000"):
		score += 15
	}

	// Tempo de loja
	storeTime := Normalize(l.StoreTime)
	switch {
	case strings.Contains(storeTime, "mais de 3 anos"):
		score += 40
	case strings.Contains(storeTime, "1 a 3"):
		score += 30
	case strings.Contains(storeTime, "menos de 1"):
		score += 10
	}

	// Maturidade de gestão
	management := Normalize(l.Management)
	switch {
	case strings.Contains(management, "sistema"):
		score += 35
	case strings.Contains(management, "planilha"):
		score += 25
	case strings.Contains(management, "caderno"):
		score += 10
	}

	// Presença digital
	digital := Normalize(l.DigitalPresence)
	switch {
	case strings.Contains(digital, "loja virtual"):
		score += 30
	case strings.Contains(digital, "redes sociais"):
		score += 20
	case strings.Contains(digital, "instagram"):
		score += 20
	}

	// Estrutura de equipe
	team := Normalize(l.TeamStructure)
	switch {
	case strings.Contains(team, "funcionário"):
		score += 30
	case strings.Contains(team, "família"):
		score += 15
	case strings.Contains(team, "sozinh"):
		score += 10
	}

	// Autoavaliação de vendas
	sales := Normalize(l.SalesOpinion)
	switch {
	case strings.Contains(sales, "poderiam melhorar"):
		score += 30
	case strings.Contains(sales, "ruins"):
		score += 40
	case strings.Contains(sales, "ótim"):
		score += 25
	case strings.Contains(sales, "boas"):
		score += 15
	}

	// Já é aluno
	if Normalize(l.IsStudent) == "não" {
		score += 25
	}

	return score
}
