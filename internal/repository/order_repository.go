package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"water_store/internal/models"
)

// ErrInsufficientStock is returned when the guarded stock decrement matches
// no row, i.e. the stored quantity dropped below the requested one between
// the service-level check and the commit.
var ErrInsufficientStock = errors.New("not enough stock available")

type OrderRepository interface {
	CreateWithStockDecrement(order *models.Order, decrementStock bool) error
	GetByID(id uuid.UUID) (*models.Order, error)
	GetAll(limit, offset int) ([]models.Order, error)
	Update(order *models.Order) error
	BulkUpdateStatus(ids []uuid.UUID, status models.OrderStatus) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithStockDecrement persists the order and, when the product tracks
// inventory, decrements its stock in the same transaction. The decrement is
// a relative update guarded by a stock_qty >= quantity predicate, so two
// competing placements can never drive stock negative: the loser matches no
// row and the whole unit of work rolls back.
func (r *orderRepository) CreateWithStockDecrement(order *models.Order, decrementStock bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if decrementStock {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock_qty >= ?", order.ProductID, order.Quantity).
				Update("stock_qty", gorm.Expr("stock_qty - ?", order.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}

		return nil
	})
}

func (r *orderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Product").Preload("Branch").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll(limit, offset int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Product").Preload("Branch").
		Order("created_at desc").
		Limit(limit).Offset(offset).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) BulkUpdateStatus(ids []uuid.UUID, status models.OrderStatus) (int64, error) {
	result := r.db.Model(&models.Order{}).
		Where("id IN ?", ids).
		Update("status", string(status))
	return result.RowsAffected, result.Error
}
