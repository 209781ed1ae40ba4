package services

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"water_store/internal/models"
	"water_store/internal/repository"
)

func newCatalogServiceForTest(db *gorm.DB) CatalogService {
	return NewCatalogService(
		repository.NewCategoryRepository(db),
		repository.NewProductRepository(db),
		repository.NewStateRepository(db),
	)
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, name, sku string, active bool) *models.Product {
	t.Helper()

	product := models.Product{
		CategoryID: categoryID,
		Name:       name,
		SKU:        sku,
		Price:      decimal.NewFromInt(24),
		IsActive:   active,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func TestProductDetailInactiveIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogServiceForTest(db)

	category := models.Category{Name: "Bottled Water", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	active := seedProduct(t, db, category.ID, "Visible Water", "SKU-1", true)
	inactive := seedProduct(t, db, category.ID, "Hidden Water", "SKU-2", false)

	found, err := svc.ProductDetail(active.Slug)
	require.NoError(t, err)
	assert.Equal(t, active.ID, found.ID)

	_, err = svc.ProductDetail(inactive.Slug)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ProductDetail("no-such-slug")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductDetailInactiveCategoryHidesProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogServiceForTest(db)

	category := models.Category{Name: "Retired Line", IsActive: false}
	require.NoError(t, db.Create(&category).Error)
	product := seedProduct(t, db, category.ID, "Orphan Water", "SKU-3", true)

	_, err := svc.ProductDetail(product.Slug)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHomePageCapsFeaturedProducts(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogServiceForTest(db)

	category := models.Category{Name: "Bottled Water", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	for i := 0; i < 15; i++ {
		seedProduct(t, db, category.ID, fmt.Sprintf("Water %d", i), fmt.Sprintf("SKU-%d", i), true)
	}

	_, products, err := svc.HomePage()
	require.NoError(t, err)
	assert.Len(t, products, homeProductLimit)
}

func TestServicesPageCategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogServiceForTest(db)

	bottled := models.Category{Name: "Bottled Water", IsActive: true}
	gallons := models.Category{Name: "Water Gallons", IsActive: true}
	require.NoError(t, db.Create(&bottled).Error)
	require.NoError(t, db.Create(&gallons).Error)

	seedProduct(t, db, bottled.ID, "Bottle A", "SKU-A", true)
	seedProduct(t, db, gallons.ID, "Gallon B", "SKU-B", true)

	categories, activeCategory, products, err := svc.ServicesPage(bottled.Slug)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	require.NotNil(t, activeCategory)
	assert.Equal(t, bottled.ID, activeCategory.ID)
	require.Len(t, products, 1)
	assert.Equal(t, "Bottle A", products[0].Name)

	// No filter lists everything active.
	_, activeCategory, products, err = svc.ServicesPage("")
	require.NoError(t, err)
	assert.Nil(t, activeCategory)
	assert.Len(t, products, 2)

	// Unknown category slug is a not-found, not an empty page.
	_, _, _, err = svc.ServicesPage("no-such-category")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEffectiveImageSelection(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogServiceForTest(db)

	category := models.Category{Name: "Bottled Water", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	product := seedProduct(t, db, category.ID, "Pictured Water", "SKU-IMG", true)
	images := []models.ProductImage{
		{ProductID: product.ID, ImageURL: "/img/first.jpg"},
		{ProductID: product.ID, ImageURL: "/img/primary.jpg", IsPrimary: true},
	}
	require.NoError(t, db.Create(&images).Error)

	found, err := svc.ProductDetail(product.Slug)
	require.NoError(t, err)

	url := found.EffectiveImageURL()
	require.NotNil(t, url)
	assert.Equal(t, "/img/primary.jpg", *url)
}

func TestEffectiveImageFallsBackToFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogServiceForTest(db)

	category := models.Category{Name: "Bottled Water", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	product := seedProduct(t, db, category.ID, "Plain Water", "SKU-PLAIN", true)
	images := []models.ProductImage{
		{ProductID: product.ID, ImageURL: "/img/a.jpg"},
		{ProductID: product.ID, ImageURL: "/img/b.jpg"},
	}
	require.NoError(t, db.Create(&images).Error)

	found, err := svc.ProductDetail(product.Slug)
	require.NoError(t, err)

	url := found.EffectiveImageURL()
	require.NotNil(t, url)
	assert.Equal(t, "/img/a.jpg", *url)

	// And no images at all yields nil.
	bare := seedProduct(t, db, category.ID, "Bare Water", "SKU-BARE", true)
	foundBare, err := svc.ProductDetail(bare.Slug)
	require.NoError(t, err)
	assert.Nil(t, foundBare.EffectiveImageURL())
}
