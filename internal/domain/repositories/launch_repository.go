package repositories

import (
	"gorm.io/gorm"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
)

// LaunchRepository persiste os lançamentos no backend hospedado.
type LaunchRepository struct {
	db *gorm.DB
}

func NewLaunchRepository(db *gorm.DB) *LaunchRepository {
	return &LaunchRepository{db: db}
}

// FindAll retorna todos os lançamentos, mais recentes primeiro.
func (r *LaunchRepository) FindAll() ([]entities.Launch, error) {
	var launches []entities.Launch
	err := r.db.Order("created_at DESC").Find(&launches).Error
	return launches, err
}

// FindByID busca um lançamento pelo id.
func (r *LaunchRepository) FindByID(id string) (entities.Launch, error) {
	var launch entities.Launch
	err := r.db.Where("id = ?", id).First(&launch).Error
	return launch, err
}

// FindByShareToken busca um lançamento pelo token público de compartilhamento.
func (r *LaunchRepository) FindByShareToken(token string) (entities.Launch, error) {
	var launch entities.Launch
	err := r.db.Where("share_token = ?", token).First(&launch).Error
	return launch, err
}

// Create grava um novo lançamento.
func (r *LaunchRepository) Create(launch *entities.Launch) error {
	return r.db.Create(launch).Error
}

// Update regrava um lançamento existente.
func (r *LaunchRepository) Update(launch *entities.Launch) error {
	return r.db.Save(launch).Error
}

// Delete remove um lançamento pelo id.
func (r *LaunchRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entities.Launch{}).Error
}
