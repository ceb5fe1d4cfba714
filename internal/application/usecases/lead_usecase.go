package usecases

import (
	"context"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/sheets"
)

// SheetSource é a capacidade opaca de "buscar linhas"; a única borda
// assíncrona do sistema. A implementação real fica em
// infrastructure/sheetsource; os testes injetam uma matriz fixa.
type SheetSource interface {
	FetchRows(ctx context.Context, url string, refresh bool) ([][]string, error)
}

// IConfigRepository expõe a configuração persistida que os casos de uso
// consomem como dado explícito.
type IConfigRepository interface {
	GetLeadMapping() ([]entities.ColumnMapping, error)
	GetTrafficMapping() (entities.TrafficMapping, error)
	GetSegmentation() (entities.SegmentationConfig, error)
	GetCustomFields() ([]entities.CustomField, error)
}

// LeadUseCase implementa o ciclo fetch → map → score dos leads. Cada chamada
// reconstrói o conjunto inteiro a partir da planilha.
type LeadUseCase struct {
	source     SheetSource
	configRepo IConfigRepository
	mapper     *sheets.LeadMapper
	sheetURL   string
}

func NewLeadUseCase(source SheetSource, configRepo IConfigRepository, sheetURL string) *LeadUseCase {
	return &LeadUseCase{
		source:     source,
		configRepo: configRepo,
		mapper:     sheets.NewLeadMapper(),
		sheetURL:   sheetURL,
	}
}

// GetLeads busca as linhas da planilha e produz os leads pontuados e
// segmentados com a configuração ativa.
func (u *LeadUseCase) GetLeads(ctx context.Context, refresh bool) ([]entities.Lead, error) {
	rows, err := u.source.FetchRows(ctx, u.sheetURL, refresh)
	if err != nil {
		return nil, err
	}

	columns, err := u.configRepo.GetLeadMapping()
	if err != nil {
		return nil, err
	}
	cfg, err := u.configRepo.GetSegmentation()
	if err != nil {
		return nil, err
	}

	return u.mapper.MapRows(rows, columns, cfg), nil
}

// GetSummary reduz a lista de leads às contagens por faixa e ao score médio.
func (u *LeadUseCase) GetSummary(ctx context.Context, refresh bool) (entities.LeadSummary, error) {
	leads, err := u.GetLeads(ctx, refresh)
	if err != nil {
		return entities.LeadSummary{}, err
	}

	summary := entities.LeadSummary{Total: len(leads)}
	totalScore := 0
	for _, l := range leads {
		totalScore += l.Score
		switch l.Segmentation {
		case entities.TierSuperQualified:
			summary.SuperQualified++
		case entities.TierQualified:
			summary.Qualified++
		default:
			summary.Unqualified++
		}
	}
	if summary.Total > 0 {
		summary.AverageScore = float64(totalScore) / float64(summary.Total)
	}
	return summary, nil
}
