package services

import (
	"water_store/internal/models"
	"water_store/internal/repository"
)

// homeProductLimit caps the featured products on the home page.
const homeProductLimit = 12

type CatalogService interface {
	HomePage() ([]models.Category, []models.Product, error)
	ServicesPage(categorySlug string) ([]models.Category, *models.Category, []models.Product, error)
	CategoryDetail(slug string) (*models.Category, []models.Product, error)
	ProductDetail(slug string) (*models.Product, error)
	ActiveStates() ([]models.State, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	stateRepo    repository.StateRepository
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	stateRepo repository.StateRepository,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		stateRepo:    stateRepo,
	}
}

func (s *catalogService) HomePage() ([]models.Category, []models.Product, error) {
	categories, err := s.categoryRepo.GetActive()
	if err != nil {
		return nil, nil, err
	}

	products, err := s.productRepo.GetActive(nil, homeProductLimit)
	if err != nil {
		return nil, nil, err
	}

	return categories, products, nil
}

// ServicesPage lists active products, optionally narrowed to one active
// category. An unknown or inactive category slug is a not-found.
func (s *catalogService) ServicesPage(categorySlug string) ([]models.Category, *models.Category, []models.Product, error) {
	categories, err := s.categoryRepo.GetActive()
	if err != nil {
		return nil, nil, nil, err
	}

	var activeCategory *models.Category
	var categoryID *uint
	if categorySlug != "" {
		activeCategory, err = s.categoryRepo.GetActiveBySlug(categorySlug)
		if err != nil {
			return nil, nil, nil, ErrNotFound
		}
		categoryID = &activeCategory.ID
	}

	products, err := s.productRepo.GetActive(categoryID, 0)
	if err != nil {
		return nil, nil, nil, err
	}

	return categories, activeCategory, products, nil
}

func (s *catalogService) CategoryDetail(slug string) (*models.Category, []models.Product, error) {
	category, err := s.categoryRepo.GetActiveBySlug(slug)
	if err != nil {
		return nil, nil, ErrNotFound
	}

	products, err := s.productRepo.GetActive(&category.ID, 0)
	if err != nil {
		return nil, nil, err
	}

	return category, products, nil
}

func (s *catalogService) ProductDetail(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetActiveBySlug(slug)
	if err != nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *catalogService) ActiveStates() ([]models.State, error) {
	return s.stateRepo.GetActive()
}
