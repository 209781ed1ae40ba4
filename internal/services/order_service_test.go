package services

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"water_store/internal/database"
	"water_store/internal/models"
	"water_store/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newOrderServiceForTest(db *gorm.DB) OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewBranchRepository(db),
		nil,
	)
}

type orderFixtures struct {
	product *models.Product
	branch  *models.Branch
}

func seedCatalog(t *testing.T, db *gorm.DB, price string, trackInventory bool, stockQty int) orderFixtures {
	t.Helper()

	state := models.State{Name: "Riyadh", Code: "RUH", IsActive: true}
	require.NoError(t, db.Create(&state).Error)

	branch := models.Branch{StateID: state.ID, Name: "Olaya Branch", IsActive: true}
	require.NoError(t, db.Create(&branch).Error)

	category := models.Category{Name: "Bottled Water", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{
		CategoryID:     category.ID,
		Name:           "Still Water",
		SKU:            "WTR-1",
		Price:          decimal.RequireFromString(price),
		TrackInventory: trackInventory,
		StockQty:       stockQty,
		IsActive:       true,
	}
	require.NoError(t, db.Create(&product).Error)

	return orderFixtures{product: &product, branch: &branch}
}

func validOrderInput(f orderFixtures) PlaceOrderInput {
	return PlaceOrderInput{
		ProductID:       f.product.ID.String(),
		BranchID:        fmt.Sprintf("%d", f.branch.ID),
		Quantity:        "2",
		CustomerName:    "Ahmed",
		CustomerEmail:   "ahmed@example.com",
		CustomerMobile:  "+966500000000",
		DeliveryAddress: "King Fahd Rd, Riyadh",
	}
}

func TestCalculateTotals(t *testing.T) {
	svc := newOrderServiceForTest(setupTestDB(t))

	tests := []struct {
		name        string
		price       string
		qty         int
		subtotal    string
		deliveryFee string
		total       string
	}{
		{"below threshold pays flat fee", "50.00", 1, "50", "20", "70"},
		{"above threshold is free", "150.00", 2, "300", "0", "300"},
		{"exactly at threshold is free", "100.00", 2, "200", "0", "200"},
		{"just below threshold pays fee", "199.99", 1, "199.99", "20", "219.99"},
		{"subtotal rounds to two decimals", "33.333", 3, "100", "20", "120"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, fee, total := svc.CalculateTotals(decimal.RequireFromString(tt.price), tt.qty)
			assert.True(t, subtotal.Equal(decimal.RequireFromString(tt.subtotal)), "subtotal = %s", subtotal)
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.deliveryFee)), "fee = %s", fee)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.total)), "total = %s", total)
		})
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderServiceForTest(db)
	fixtures := seedCatalog(t, db, "24.00", true, 10)

	order, err := svc.PlaceOrder(validOrderInput(fixtures))
	require.NoError(t, err)

	assert.Equal(t, string(models.OrderPending), order.Status)
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("48")))
	assert.True(t, order.DeliveryFee.Equal(decimal.RequireFromString("20")))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("68")))

	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", fixtures.product.ID).Error)
	assert.Equal(t, 8, product.StockQty)
}

func TestPlaceOrderValidationOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderServiceForTest(db)
	fixtures := seedCatalog(t, db, "24.00", true, 10)

	tests := []struct {
		name    string
		mutate  func(*PlaceOrderInput)
		message string
	}{
		{"missing name", func(in *PlaceOrderInput) { in.CustomerName = "  " }, "Customer name is required."},
		{"missing email", func(in *PlaceOrderInput) { in.CustomerEmail = "" }, "Email is required."},
		{"missing mobile", func(in *PlaceOrderInput) { in.CustomerMobile = "" }, "Mobile is required."},
		{"missing address", func(in *PlaceOrderInput) { in.DeliveryAddress = "" }, "Delivery address is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validOrderInput(fixtures)
			tt.mutate(&input)

			_, err := svc.PlaceOrder(input)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}

	// Nothing was persisted and stock is untouched.
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.EqualValues(t, 0, count)

	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", fixtures.product.ID).Error)
	assert.Equal(t, 10, product.StockQty)
}

func TestPlaceOrderQuantityCoercion(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderServiceForTest(db)
	fixtures := seedCatalog(t, db, "24.00", true, 10)

	for _, raw := range []string{"", "abc", "0", "-3"} {
		input := validOrderInput(fixtures)
		input.Quantity = raw

		order, err := svc.PlaceOrder(input)
		require.NoError(t, err, "quantity %q", raw)
		assert.Equal(t, 1, order.Quantity, "quantity %q", raw)
	}
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderServiceForTest(db)
	fixtures := seedCatalog(t, db, "24.00", true, 1)

	input := validOrderInput(fixtures)
	input.Quantity = "5"

	_, err := svc.PlaceOrder(input)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Not enough stock available.", validationErr.Message)

	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", fixtures.product.ID).Error)
	assert.Equal(t, 1, product.StockQty)
}

func TestPlaceOrderUntrackedInventory(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderServiceForTest(db)
	fixtures := seedCatalog(t, db, "24.00", false, 0)

	input := validOrderInput(fixtures)
	input.Quantity = "50"

	order, err := svc.PlaceOrder(input)
	require.NoError(t, err)
	assert.Equal(t, 50, order.Quantity)

	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", fixtures.product.ID).Error)
	assert.Equal(t, 0, product.StockQty)
}

func TestPlaceOrderUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderServiceForTest(db)
	fixtures := seedCatalog(t, db, "24.00", true, 10)

	t.Run("malformed product id", func(t *testing.T) {
		input := validOrderInput(fixtures)
		input.ProductID = "not-a-uuid"
		_, err := svc.PlaceOrder(input)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown branch", func(t *testing.T) {
		input := validOrderInput(fixtures)
		input.BranchID = "9999"
		_, err := svc.PlaceOrder(input)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPlaceOrderInactiveProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderServiceForTest(db)
	fixtures := seedCatalog(t, db, "24.00", true, 10)

	require.NoError(t, db.Model(fixtures.product).Update("is_active", false).Error)

	_, err := svc.PlaceOrder(validOrderInput(fixtures))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaceOrderDropsCachedProductInfo(t *testing.T) {
	db := setupTestDB(t)
	cache := newFakeCache()
	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewBranchRepository(db),
		cache,
	)
	fixtures := seedCatalog(t, db, "24.00", true, 10)
	key := fixtures.product.ID.String()

	cache.products[key] = []byte(`{}`)

	_, err := svc.PlaceOrder(validOrderInput(fixtures))
	require.NoError(t, err)

	// Stock changed, so the cached quick info must be gone.
	assert.NotContains(t, cache.products, key)
}

func TestBulkUpdateStatusValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderServiceForTest(db)

	_, err := svc.BulkUpdateStatus([]string{}, "shipped")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	affected, err := svc.BulkUpdateStatus([]string{}, string(models.OrderConfirmed))
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}
