package repository

import (
	"water_store/internal/models"

	"gorm.io/gorm"
)

type BranchRepository interface {
	Create(branch *models.Branch) error
	GetByID(id uint) (*models.Branch, error)
	GetActiveByID(id uint) (*models.Branch, error)
	GetActiveByState(stateID uint) ([]models.Branch, error)
	GetAll(limit, offset int) ([]models.Branch, error)
	Update(branch *models.Branch) error
	Delete(id uint) error
}

type branchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(branch *models.Branch) error {
	return r.db.Create(branch).Error
}

func (r *branchRepository) GetByID(id uint) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) GetActiveByID(id uint) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&branch).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) GetActiveByState(stateID uint) ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Where("state_id = ? AND is_active = ?", stateID, true).
		Order("name asc").Find(&branches).Error
	return branches, err
}

func (r *branchRepository) GetAll(limit, offset int) ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Preload("State").Order("name asc").
		Limit(limit).Offset(offset).Find(&branches).Error
	return branches, err
}

func (r *branchRepository) Update(branch *models.Branch) error {
	return r.db.Save(branch).Error
}

func (r *branchRepository) Delete(id uint) error {
	return r.db.Delete(&models.Branch{}, id).Error
}
