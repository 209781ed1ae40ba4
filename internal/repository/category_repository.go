package repository

import (
	"water_store/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetActiveBySlug(slug string) (*models.Category, error)
	GetActive() ([]models.Category, error)
	GetAll(limit, offset int) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetActiveBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ? AND is_active = ?", slug, true).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetActive() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("is_active = ?", true).
		Order("sort_order asc, name asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetAll(limit, offset int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("sort_order asc, name asc").
		Limit(limit).Offset(offset).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}
