package usecases

import "github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"

// IConfigWriter complementa IConfigRepository com as ações explícitas de
// salvar; a configuração nunca é gravada por efeito colateral.
type IConfigWriter interface {
	SaveLeadMapping(columns []entities.ColumnMapping) error
	SaveTrafficMapping(mapping entities.TrafficMapping) error
	SaveSegmentation(superQualified, qualified int) (entities.SegmentationConfig, error)
	SaveCustomFields(fields []entities.CustomField) error
}

// ConfigUseCase expõe leitura e escrita da configuração autoral do usuário.
type ConfigUseCase struct {
	reader IConfigRepository
	writer IConfigWriter
}

func NewConfigUseCase(reader IConfigRepository, writer IConfigWriter) *ConfigUseCase {
	return &ConfigUseCase{reader: reader, writer: writer}
}

func (u *ConfigUseCase) GetLeadMapping() ([]entities.ColumnMapping, error) {
	return u.reader.GetLeadMapping()
}

func (u *ConfigUseCase) SaveLeadMapping(columns []entities.ColumnMapping) error {
	return u.writer.SaveLeadMapping(columns)
}

func (u *ConfigUseCase) GetTrafficMapping() (entities.TrafficMapping, error) {
	return u.reader.GetTrafficMapping()
}

func (u *ConfigUseCase) SaveTrafficMapping(mapping entities.TrafficMapping) error {
	return u.writer.SaveTrafficMapping(mapping)
}

func (u *ConfigUseCase) GetSegmentation() (entities.SegmentationConfig, error) {
	return u.reader.GetSegmentation()
}

func (u *ConfigUseCase) SaveSegmentation(superQualified, qualified int) (entities.SegmentationConfig, error) {
	return u.writer.SaveSegmentation(superQualified, qualified)
}

func (u *ConfigUseCase) GetCustomFields() ([]entities.CustomField, error) {
	return u.reader.GetCustomFields()
}

func (u *ConfigUseCase) SaveCustomFields(fields []entities.CustomField) error {
	return u.writer.SaveCustomFields(fields)
}
