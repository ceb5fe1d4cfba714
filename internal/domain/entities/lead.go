package entities

import "time"

// Rótulos das três faixas de qualificação. A ordenação (super > qualificado >
// desqualificado) e a semântica dos cortes vivem em scoring.GetSegmentation.
const (
	TierSuperQualified = "Super Qualificado"
	TierQualified      = "Qualificado"
	TierUnqualified    = "Desqualificado"
)

// Lead representa um contato capturado da planilha de leads.
// O conjunto inteiro é reconstruído a cada ciclo de fetch/parse e substituído
// de forma atômica; leads individuais nunca são mutados nem deletados; a
// fonte de verdade é a planilha externa.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Timestamp time.Time `json:"timestamp"`

	// Atributos brutos da planilha: sempre strings, atribuídos verbatim pelo
	// mapper (nenhuma coerção de tipo nesta camada).
	Age             string `json:"age"`
	Gender          string `json:"gender"`
	HasChildren     string `json:"has_children"`
	MaritalStatus   string `json:"marital_status"`
	Education       string `json:"education"`
	IsStudent       string `json:"is_student"`
	FollowTime      string `json:"follow_time"`
	HasStore        string `json:"has_store"`
	StoreType       string `json:"store_type"`
	StoreTime       string `json:"store_time"`
	Segment         string `json:"segment"`
	Revenue         string `json:"revenue"`
	TeamStructure   string `json:"team_structure"`
	Management      string `json:"management"`
	DigitalPresence string `json:"digital_presence"`
	SalesOpinion    string `json:"sales_opinion"`

	// Campos de texto livre
	Difficulty string `json:"difficulty"`
	Dream      string `json:"dream"`
	Question   string `json:"question"`

	// Colunas mapeadas para campos fora do conjunto fixo
	Extra map[string]string `json:"extra,omitempty"`

	// Derivados: sempre consistentes com os cortes ativos no momento do
	// cálculo (nunca cacheados entre configurações diferentes).
	Score        int    `json:"score"`
	Segmentation string `json:"segmentation"`
}

// SetField atribui o valor bruto da célula ao campo interno indicado pelo
// mapeamento de coluna. Campos desconhecidos vão para o mapa Extra.
func (l *Lead) SetField(field, value string) {
	switch field {
	case "name":
		l.Name = value
	case "email":
		l.Email = value
	case "phone":
		l.Phone = value
	case "age":
		l.Age = value
	case "gender":
		l.Gender = value
	case "has_children":
		l.HasChildren = value
	case "marital_status":
		l.MaritalStatus = value
	case "education":
		l.Education = value
	case "is_student":
		l.IsStudent = value
	case "follow_time":
		l.FollowTime = value
	case "has_store":
		l.HasStore = value
	case "store_type":
		l.StoreType = value
	case "store_time":
		l.StoreTime = value
	case "segment":
		l.Segment = value
	case "revenue":
		l.Revenue = value
	case "team_structure":
		l.TeamStructure = value
	case "management":
		l.Management = value
	case "digital_presence":
		l.DigitalPresence = value
	case "sales_opinion":
		l.SalesOpinion = value
	case "difficulty":
		l.Difficulty = value
	case "dream":
		l.Dream = value
	case "question":
		l.Question = value
	default:
		if l.Extra == nil {
			l.Extra = make(map[string]string)
		}
		l.Extra[field] = value
	}
}

// LeadSummary agrega a visão resumida da lista de leads para o dashboard.
type LeadSummary struct {
	Total          int     `json:"total"`
	SuperQualified int     `json:"super_qualified"`
	Qualified      int     `json:"qualified"`
	Unqualified    int     `json:"unqualified"`
	AverageScore   float64 `json:"average_score"`
}
