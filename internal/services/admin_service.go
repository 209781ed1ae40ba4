package services

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"water_store/internal/models"
	"water_store/internal/repository"
)

// AdminService backs the tabular CRUD of the back office. Writes against
// branches and products drop the related AJAX cache entries.
type AdminService interface {
	CreateState(state *models.State) error
	GetState(id uint) (*models.State, error)
	ListStates(limit, offset int) ([]models.State, error)
	UpdateState(state *models.State) error
	DeleteState(id uint) error

	CreateBranch(branch *models.Branch) error
	GetBranch(id uint) (*models.Branch, error)
	ListBranches(limit, offset int) ([]models.Branch, error)
	UpdateBranch(branch *models.Branch) error
	DeleteBranch(id uint) error

	CreateCategory(category *models.Category) error
	GetCategory(id uint) (*models.Category, error)
	ListCategories(limit, offset int) ([]models.Category, error)
	UpdateCategory(category *models.Category) error
	DeleteCategory(id uint) error

	CreateProduct(product *models.Product) error
	GetProduct(id string) (*models.Product, error)
	ListProducts(limit, offset int) ([]models.Product, error)
	UpdateProduct(product *models.Product) error
	DeleteProduct(id string) error
	BulkSetProductsActive(ids []string, active bool) (int64, error)
	AddProductImage(image *models.ProductImage) error
	DeleteProductImage(id uint) error
}

type adminService struct {
	stateRepo    repository.StateRepository
	branchRepo   repository.BranchRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	cache        Cache
}

func NewAdminService(
	stateRepo repository.StateRepository,
	branchRepo repository.BranchRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	cache Cache,
) AdminService {
	return &adminService{
		stateRepo:    stateRepo,
		branchRepo:   branchRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cache:        cache,
	}
}

// States

func (s *adminService) CreateState(state *models.State) error {
	return s.stateRepo.Create(state)
}

func (s *adminService) GetState(id uint) (*models.State, error) {
	return s.stateRepo.GetByID(id)
}

func (s *adminService) ListStates(limit, offset int) ([]models.State, error) {
	return s.stateRepo.GetAll(limit, offset)
}

func (s *adminService) UpdateState(state *models.State) error {
	return s.stateRepo.Update(state)
}

func (s *adminService) DeleteState(id uint) error {
	return s.stateRepo.Delete(id)
}

// Branches

func (s *adminService) CreateBranch(branch *models.Branch) error {
	if err := s.branchRepo.Create(branch); err != nil {
		return err
	}
	s.invalidateBranches(branch.StateID)
	return nil
}

func (s *adminService) GetBranch(id uint) (*models.Branch, error) {
	return s.branchRepo.GetByID(id)
}

func (s *adminService) ListBranches(limit, offset int) ([]models.Branch, error) {
	return s.branchRepo.GetAll(limit, offset)
}

func (s *adminService) UpdateBranch(branch *models.Branch) error {
	if err := s.branchRepo.Update(branch); err != nil {
		return err
	}
	s.invalidateBranches(branch.StateID)
	return nil
}

func (s *adminService) DeleteBranch(id uint) error {
	branch, err := s.branchRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.branchRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateBranches(branch.StateID)
	return nil
}

// Categories

func (s *adminService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}

func (s *adminService) GetCategory(id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

func (s *adminService) ListCategories(limit, offset int) ([]models.Category, error) {
	return s.categoryRepo.GetAll(limit, offset)
}

func (s *adminService) UpdateCategory(category *models.Category) error {
	return s.categoryRepo.Update(category)
}

func (s *adminService) DeleteCategory(id uint) error {
	return s.categoryRepo.Delete(id)
}

// Products

func (s *adminService) CreateProduct(product *models.Product) error {
	return s.productRepo.Create(product)
}

func (s *adminService) GetProduct(id string) (*models.Product, error) {
	productID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrNotFound
	}
	return s.productRepo.GetByID(productID)
}

func (s *adminService) ListProducts(limit, offset int) ([]models.Product, error) {
	return s.productRepo.GetAll(limit, offset)
}

func (s *adminService) UpdateProduct(product *models.Product) error {
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	s.invalidateProduct(product.ID)
	return nil
}

func (s *adminService) DeleteProduct(id string) error {
	productID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return ErrNotFound
	}
	if err := s.productRepo.Delete(productID); err != nil {
		return err
	}
	s.invalidateProduct(productID)
	return nil
}

// BulkSetProductsActive flips the active flag on a selection and reports the
// number of affected rows.
func (s *adminService) BulkSetProductsActive(ids []string, active bool) (int64, error) {
	productIDs := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return 0, newValidationError("Invalid product id: " + raw)
		}
		productIDs = append(productIDs, id)
	}
	if len(productIDs) == 0 {
		return 0, nil
	}

	affected, err := s.productRepo.BulkSetActive(productIDs, active)
	if err != nil {
		return 0, err
	}
	for _, id := range productIDs {
		s.invalidateProduct(id)
	}
	return affected, nil
}

func (s *adminService) AddProductImage(image *models.ProductImage) error {
	if err := s.productRepo.AddImage(image); err != nil {
		return err
	}
	s.invalidateProduct(image.ProductID)
	return nil
}

func (s *adminService) DeleteProductImage(id uint) error {
	image, err := s.productRepo.GetImage(id)
	if err != nil {
		return err
	}
	if err := s.productRepo.DeleteImage(id); err != nil {
		return err
	}
	s.invalidateProduct(image.ProductID)
	return nil
}

func (s *adminService) invalidateBranches(stateID uint) {
	if s.cache != nil {
		s.cache.InvalidateBranchesByState(strconv.FormatUint(uint64(stateID), 10))
	}
}

func (s *adminService) invalidateProduct(id uuid.UUID) {
	if s.cache != nil {
		s.cache.InvalidateProductInfo(id.String())
	}
}
