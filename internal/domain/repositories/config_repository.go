package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
)

// ConfigRepository persiste a configuração autoral do usuário: mapeamentos de
// coluna, cortes de segmentação e campos customizados. A configuração é
// carregada uma vez por sessão e gravada apenas em ações explícitas de salvar.
type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// GetLeadMapping retorna o mapeamento de leads ativo; ausência de registro
// retorna colunas vazias (o mapper cai no layout legado).
func (r *ConfigRepository) GetLeadMapping() ([]entities.ColumnMapping, error) {
	var record entities.LeadMappingRecord
	err := r.db.Order("id").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.Columns, nil
}

// SaveLeadMapping substitui o mapeamento de leads ativo.
func (r *ConfigRepository) SaveLeadMapping(columns []entities.ColumnMapping) error {
	var record entities.LeadMappingRecord
	err := r.db.Order("id").First(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	record.Columns = columns
	return r.db.Save(&record).Error
}

// GetTrafficMapping retorna o mapeamento das três abas de tráfego.
func (r *ConfigRepository) GetTrafficMapping() (entities.TrafficMapping, error) {
	var record entities.TrafficMappingRecord
	err := r.db.Order("id").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.TrafficMapping{}, nil
	}
	if err != nil {
		return entities.TrafficMapping{}, err
	}
	return record.Mapping, nil
}

// SaveTrafficMapping substitui o mapeamento de tráfego ativo.
func (r *ConfigRepository) SaveTrafficMapping(mapping entities.TrafficMapping) error {
	var record entities.TrafficMappingRecord
	err := r.db.Order("id").First(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	record.Mapping = mapping
	return r.db.Save(&record).Error
}

// GetSegmentation retorna os cortes ativos; registro ausente ou inconsistente
// cai nos padrões 700/400.
func (r *ConfigRepository) GetSegmentation() (entities.SegmentationConfig, error) {
	var cfg entities.SegmentationConfig
	err := r.db.Order("id").First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.DefaultSegmentationConfig(), nil
	}
	if err != nil {
		return entities.SegmentationConfig{}, err
	}
	if !cfg.Valid() {
		return entities.DefaultSegmentationConfig(), nil
	}
	return cfg, nil
}

// SaveSegmentation valida e grava os cortes.
func (r *ConfigRepository) SaveSegmentation(superQualified, qualified int) (entities.SegmentationConfig, error) {
	cfg, err := entities.NewSegmentationConfig(superQualified, qualified)
	if err != nil {
		return entities.SegmentationConfig{}, err
	}

	var existing entities.SegmentationConfig
	dbErr := r.db.Order("id").First(&existing).Error
	if dbErr != nil && !errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return entities.SegmentationConfig{}, dbErr
	}
	existing.SuperQualified = cfg.SuperQualified
	existing.Qualified = cfg.Qualified
	if err := r.db.Save(&existing).Error; err != nil {
		return entities.SegmentationConfig{}, err
	}
	return existing, nil
}

// GetCustomFields retorna os campos customizados declarados, em ordem estável.
func (r *ConfigRepository) GetCustomFields() ([]entities.CustomField, error) {
	var fields []entities.CustomField
	err := r.db.Order("id").Find(&fields).Error
	return fields, err
}

// SaveCustomFields substitui o conjunto inteiro de campos customizados.
func (r *ConfigRepository) SaveCustomFields(fields []entities.CustomField) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.CustomField{}).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		for i := range fields {
			fields[i].ID = 0
		}
		return tx.Create(&fields).Error
	})
}
