package services

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"water_store/internal/models"
	"water_store/internal/redis"
	"water_store/internal/repository"
)

// fakeCache implements Cache in memory so tests can observe sets and
// invalidations.
type fakeCache struct {
	branches map[string][]byte
	products map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		branches: map[string][]byte{},
		products: map[string][]byte{},
	}
}

func (f *fakeCache) SetBranchesByState(stateID string, payload interface{}, _ time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	f.branches[stateID] = data
	return nil
}

func (f *fakeCache) GetBranchesByState(stateID string, dest interface{}) error {
	data, ok := f.branches[stateID]
	if !ok {
		return redis.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) InvalidateBranchesByState(stateID string) error {
	delete(f.branches, stateID)
	return nil
}

func (f *fakeCache) SetProductInfo(productID string, payload interface{}, _ time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	f.products[productID] = data
	return nil
}

func (f *fakeCache) GetProductInfo(productID string, dest interface{}) error {
	data, ok := f.products[productID]
	if !ok {
		return redis.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) InvalidateProductInfo(productID string) error {
	delete(f.products, productID)
	return nil
}

func newAdminServiceForTest(db *gorm.DB, cache Cache) AdminService {
	return NewAdminService(
		repository.NewStateRepository(db),
		repository.NewBranchRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewProductRepository(db),
		cache,
	)
}

func TestProductImageWritesDropCachedInfo(t *testing.T) {
	db := setupTestDB(t)
	cache := newFakeCache()
	svc := newAdminServiceForTest(db, cache)
	fixtures := seedCatalog(t, db, "24.00", true, 10)
	key := fixtures.product.ID.String()

	cache.products[key] = []byte(`{}`)
	image := &models.ProductImage{ProductID: fixtures.product.ID, ImageURL: "/img/a.jpg", IsPrimary: true}
	require.NoError(t, svc.AddProductImage(image))
	assert.NotContains(t, cache.products, key)

	cache.products[key] = []byte(`{}`)
	require.NoError(t, svc.DeleteProductImage(image.ID))
	assert.NotContains(t, cache.products, key)

	var count int64
	db.Model(&models.ProductImage{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestDeleteProductImageUnknownID(t *testing.T) {
	db := setupTestDB(t)
	svc := newAdminServiceForTest(db, newFakeCache())

	assert.Error(t, svc.DeleteProductImage(12345))
}

func TestUpdateProductDropsCachedInfo(t *testing.T) {
	db := setupTestDB(t)
	cache := newFakeCache()
	svc := newAdminServiceForTest(db, cache)
	fixtures := seedCatalog(t, db, "24.00", true, 10)
	key := fixtures.product.ID.String()

	cache.products[key] = []byte(`{}`)
	fixtures.product.StockQty = 99
	require.NoError(t, svc.UpdateProduct(fixtures.product))
	assert.NotContains(t, cache.products, key)
}

func TestBranchWritesDropCachedBranches(t *testing.T) {
	db := setupTestDB(t)
	cache := newFakeCache()
	svc := newAdminServiceForTest(db, cache)

	state := models.State{Name: "Riyadh", Code: "RUH", IsActive: true}
	require.NoError(t, db.Create(&state).Error)
	stateKey := strconv.FormatUint(uint64(state.ID), 10)

	cache.branches[stateKey] = []byte(`[]`)
	branch := &models.Branch{StateID: state.ID, Name: "Olaya Branch", IsActive: true}
	require.NoError(t, svc.CreateBranch(branch))
	assert.NotContains(t, cache.branches, stateKey)

	cache.branches[stateKey] = []byte(`[]`)
	require.NoError(t, svc.DeleteBranch(branch.ID))
	assert.NotContains(t, cache.branches, stateKey)
}
