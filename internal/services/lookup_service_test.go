package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"water_store/internal/models"
	"water_store/internal/repository"
)

func newLookupServiceForTest(db *gorm.DB) LookupService {
	return NewLookupService(
		repository.NewBranchRepository(db),
		repository.NewProductRepository(db),
		nil,
		time.Minute,
	)
}

func TestBranchesByStateNeverErrors(t *testing.T) {
	db := setupTestDB(t)
	svc := newLookupServiceForTest(db)

	for _, raw := range []string{"", "abc", "9999", "-1"} {
		results, err := svc.BranchesByState(raw)
		require.NoError(t, err, "state_id %q", raw)
		assert.NotNil(t, results, "state_id %q", raw)
		assert.Empty(t, results, "state_id %q", raw)
	}
}

func TestBranchesByStateListsActiveOrdered(t *testing.T) {
	db := setupTestDB(t)
	svc := newLookupServiceForTest(db)

	state := models.State{Name: "Riyadh", Code: "RUH", IsActive: true}
	require.NoError(t, db.Create(&state).Error)

	branches := []models.Branch{
		{StateID: state.ID, Name: "Zulfi Branch", IsActive: true},
		{StateID: state.ID, Name: "Alma Branch", IsActive: true},
		{StateID: state.ID, Name: "Closed Branch", IsActive: false},
	}
	require.NoError(t, db.Create(&branches).Error)

	results, err := svc.BranchesByState(fmt.Sprintf("%d", state.ID))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Alma Branch", results[0].Name)
	assert.Equal(t, "Zulfi Branch", results[1].Name)
}

func TestProductInfo(t *testing.T) {
	db := setupTestDB(t)
	svc := newLookupServiceForTest(db)
	fixtures := seedCatalog(t, db, "150.00", true, 7)

	info, err := svc.ProductInfo(fixtures.product.ID.String())
	require.NoError(t, err)

	assert.Equal(t, fixtures.product.ID.String(), info.ID)
	assert.Equal(t, "Still Water", info.Name)
	assert.Equal(t, "150.00", info.Price)
	assert.True(t, info.TrackInventory)
	assert.Equal(t, 7, info.StockQty)
	assert.Nil(t, info.ImageURL)
}

func TestProductInfoCacheKeyIsCanonical(t *testing.T) {
	db := setupTestDB(t)
	cache := newFakeCache()
	svc := NewLookupService(
		repository.NewBranchRepository(db),
		repository.NewProductRepository(db),
		cache,
		time.Minute,
	)
	fixtures := seedCatalog(t, db, "24.00", true, 5)
	canonical := fixtures.product.ID.String()

	// A non-canonical spelling of the id must still land on the canonical
	// cache key, or invalidation could never hit the entry.
	_, err := svc.ProductInfo(strings.ToUpper(canonical))
	require.NoError(t, err)

	assert.Contains(t, cache.products, canonical)
	assert.Len(t, cache.products, 1)

	require.NoError(t, cache.InvalidateProductInfo(canonical))
	assert.Empty(t, cache.products)
}

func TestProductInfoNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newLookupServiceForTest(db)
	fixtures := seedCatalog(t, db, "24.00", true, 1)

	_, err := svc.ProductInfo("not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, db.Model(fixtures.product).Update("is_active", false).Error)
	_, err = svc.ProductInfo(fixtures.product.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
}
