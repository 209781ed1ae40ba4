package repository

import (
	"water_store/internal/models"

	"gorm.io/gorm"
)

type StateRepository interface {
	Create(state *models.State) error
	GetByID(id uint) (*models.State, error)
	GetActive() ([]models.State, error)
	GetAll(limit, offset int) ([]models.State, error)
	Update(state *models.State) error
	Delete(id uint) error
}

type stateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) Create(state *models.State) error {
	return r.db.Create(state).Error
}

func (r *stateRepository) GetByID(id uint) (*models.State, error) {
	var state models.State
	err := r.db.First(&state, id).Error
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *stateRepository) GetActive() ([]models.State, error) {
	var states []models.State
	err := r.db.Where("is_active = ?", true).Order("name asc").Find(&states).Error
	return states, err
}

func (r *stateRepository) GetAll(limit, offset int) ([]models.State, error) {
	var states []models.State
	err := r.db.Order("name asc").Limit(limit).Offset(offset).Find(&states).Error
	return states, err
}

func (r *stateRepository) Update(state *models.State) error {
	return r.db.Save(state).Error
}

func (r *stateRepository) Delete(id uint) error {
	return r.db.Delete(&models.State{}, id).Error
}
