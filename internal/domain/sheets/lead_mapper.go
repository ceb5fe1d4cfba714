package sheets

import (
	"fmt"
	"time"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/scoring"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/utils"
)

// Índices fixos do layout legado, anteriores ao mapeamento configurável.
// Planilhas antigas não migradas dependem destas posições exatas; não alterar.
const (
	legacyColTimestamp       = 0
	legacyColName            = 1
	legacyColEmail           = 2
	legacyColPhone           = 3
	legacyColAge             = 4
	legacyColGender          = 5
	legacyColHasChildren     = 6
	legacyColMaritalStatus   = 7
	legacyColEducation       = 8
	legacyColIsStudent       = 9
	legacyColFollowTime      = 10
	legacyColHasStore        = 11
	legacyColStoreType       = 12
	legacyColStoreTime       = 13
	legacyColSegment         = 14
	legacyColRevenue         = 15
	legacyColTeamStructure   = 16
	legacyColManagement      = 17
	legacyColDigitalPresence = 18
	legacyColSalesOpinion    = 19
	legacyColDifficulty      = 20
	legacyColDream           = 21
	legacyColQuestion        = 22
)

// LeadMapper converte a matriz bruta de linhas da planilha em registros Lead
// tipados, aplicando o motor de pontuação por linha. Puro e sem estado
// compartilhado; o relógio é injetável para manter os testes determinísticos.
type LeadMapper struct {
	Clock func() time.Time
}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{Clock: time.Now}
}

// MapRows produz um Lead por linha de dados (a primeira linha é o cabeçalho e
// é descartada). Com mapeamento configurado usa o pontuador por regras; sem
// mapeamento cai no layout legado com o pontuador fixo. A ordem das linhas de
// origem é preservada; sem ordenação, deduplicação ou filtragem nesta etapa.
func (m *LeadMapper) MapRows(rows [][]string, columns []entities.ColumnMapping, cfg entities.SegmentationConfig) []entities.Lead {
	if len(rows) <= 1 {
		return []entities.Lead{}
	}
	data := rows[1:]
	leads := make([]entities.Lead, 0, len(data))

	for i, row := range data {
		var lead entities.Lead
		if len(columns) > 0 {
			lead = m.mapConfigured(row, columns)
		} else {
			lead = m.mapLegacy(row)
		}
		// Ids são posicionais dentro das linhas de dados: reordenar a planilha
		// muda os ids. Comportamento aceito; a planilha é a fonte de verdade.
		lead.ID = fmt.Sprintf("sheet-%d", i)
		lead.Segmentation = scoring.GetSegmentation(lead.Score, cfg)
		leads = append(leads, lead)
	}
	return leads
}

func (m *LeadMapper) mapConfigured(row []string, columns []entities.ColumnMapping) entities.Lead {
	// Quirk documentado: sem coluna de timestamp mapeada, o lead recebe o
	// instante do refresh, não o horário original da linha.
	lead := entities.Lead{Timestamp: m.Clock()}
	score := 0

	for _, cm := range columns {
		if cm.TargetField == entities.FieldIgnore {
			continue
		}
		if cm.RowIndex < 0 || cm.RowIndex >= len(row) {
			continue
		}
		raw := row[cm.RowIndex]
		if cm.TargetField == "timestamp" {
			lead.Timestamp = utils.ParseDateAt(raw, m.Clock())
		} else {
			lead.SetField(cm.TargetField, raw)
		}
		score += scoring.ScoreCell(raw, cm.ScoreRules)
	}

	lead.Score = score
	return lead
}

func (m *LeadMapper) mapLegacy(row []string) entities.Lead {
	lead := entities.Lead{
		Timestamp:       utils.ParseDateAt(cell(row, legacyColTimestamp), m.Clock()),
		Name:            cell(row, legacyColName),
		Email:           cell(row, legacyColEmail),
		Phone:           cell(row, legacyColPhone),
		Age:             cell(row, legacyColAge),
		Gender:          cell(row, legacyColGender),
		HasChildren:     cell(row, legacyColHasChildren),
		MaritalStatus:   cell(row, legacyColMaritalStatus),
		Education:       cell(row, legacyColEducation),
		IsStudent:       cell(row, legacyColIsStudent),
		FollowTime:      cell(row, legacyColFollowTime),
		HasStore:        cell(row, legacyColHasStore),
		StoreType:       cell(row, legacyColStoreType),
		StoreTime:       cell(row, legacyColStoreTime),
		Segment:         cell(row, legacyColSegment),
		Revenue:         cell(row, legacyColRevenue),
		TeamStructure:   cell(row, legacyColTeamStructure),
		Management:      cell(row, legacyColManagement),
		DigitalPresence: cell(row, legacyColDigitalPresence),
		SalesOpinion:    cell(row, legacyColSalesOpinion),
		Difficulty:      cell(row, legacyColDifficulty),
		Dream:           cell(row, legacyColDream),
		Question:        cell(row, legacyColQuestion),
	}
	lead.Score = scoring.CalculateScore(&lead)
	return lead
}

// cell lê a coluna com tolerância a linhas curtas; célula ausente vira "".
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
