package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"water_store/internal/models"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uuid.UUID) (*models.Product, error)
	GetActiveByID(id uuid.UUID) (*models.Product, error)
	GetActiveBySlug(slug string) (*models.Product, error)
	GetActive(categoryID *uint, limit int) ([]models.Product, error)
	GetAll(limit, offset int) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uuid.UUID) error
	BulkSetActive(ids []uuid.UUID, active bool) (int64, error)
	AddImage(image *models.ProductImage) error
	GetImage(id uint) (*models.ProductImage, error)
	DeleteImage(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// withImages preloads images in display order so the first primary-flagged
// image (or the oldest one) is the effective image.
func withImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("is_primary desc, id asc")
	})
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := withImages(r.db).First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetActiveByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := withImages(r.db).
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetActiveBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := withImages(r.db).Preload("Category").
		Joins("JOIN categories ON categories.id = products.category_id AND categories.is_active = ?", true).
		Where("products.slug = ? AND products.is_active = ?", slug, true).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetActive(categoryID *uint, limit int) ([]models.Product, error) {
	query := withImages(r.db).Preload("Category").
		Joins("JOIN categories ON categories.id = products.category_id AND categories.is_active = ?", true).
		Where("products.is_active = ?", true).
		Order("products.sort_order asc, products.created_at desc")
	if categoryID != nil {
		query = query.Where("products.category_id = ?", *categoryID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var products []models.Product
	err := query.Find(&products).Error
	return products, err
}

func (r *productRepository) GetAll(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	err := withImages(r.db).Preload("Category").
		Order("sort_order asc, created_at desc").
		Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Product{}, "id = ?", id).Error
}

func (r *productRepository) BulkSetActive(ids []uuid.UUID, active bool) (int64, error) {
	result := r.db.Model(&models.Product{}).
		Where("id IN ?", ids).
		Update("is_active", active)
	return result.RowsAffected, result.Error
}

func (r *productRepository) AddImage(image *models.ProductImage) error {
	return r.db.Create(image).Error
}

func (r *productRepository) GetImage(id uint) (*models.ProductImage, error) {
	var image models.ProductImage
	err := r.db.First(&image, id).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *productRepository) DeleteImage(id uint) error {
	return r.db.Delete(&models.ProductImage{}, id).Error
}
