package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"water_store/internal/models"
	"water_store/internal/repository"
)

// Delivery is free at or above this subtotal, otherwise the flat fee applies.
var (
	freeDeliveryThreshold = decimal.NewFromInt(200)
	flatDeliveryFee       = decimal.NewFromInt(20)
)

// PlaceOrderInput carries the raw form fields of an order submission.
type PlaceOrderInput struct {
	ProductID       string
	BranchID        string
	Quantity        string
	CustomerName    string
	CustomerEmail   string
	CustomerMobile  string
	DeliveryAddress string
	Note            string
}

type OrderService interface {
	PlaceOrder(input PlaceOrderInput) (*models.Order, error)
	GetOrderByID(id uuid.UUID) (*models.Order, error)
	GetAllOrders(limit, offset int) ([]models.Order, error)
	BulkUpdateStatus(ids []string, status string) (int64, error)
	CalculateTotals(price decimal.Decimal, qty int) (subtotal, deliveryFee, total decimal.Decimal)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
	cache       Cache
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	cache Cache,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		branchRepo:  branchRepo,
		cache:       cache,
	}
}

// PlaceOrder validates the submission, re-reads authoritative price and
// stock, computes the totals and persists the order together with the stock
// decrement in one transaction. A returned *ValidationError is safe to show
// to the customer; any other error must be masked.
func (s *orderService) PlaceOrder(input PlaceOrderInput) (*models.Order, error) {
	// A bad quantity alone never fails a submission.
	qty, err := strconv.Atoi(strings.TrimSpace(input.Quantity))
	if err != nil || qty < 1 {
		qty = 1
	}

	customerName := strings.TrimSpace(input.CustomerName)
	customerEmail := strings.TrimSpace(input.CustomerEmail)
	customerMobile := strings.TrimSpace(input.CustomerMobile)
	deliveryAddress := strings.TrimSpace(input.DeliveryAddress)
	note := strings.TrimSpace(input.Note)

	if customerName == "" {
		return nil, newValidationError("Customer name is required.")
	}
	if customerEmail == "" {
		return nil, newValidationError("Email is required.")
	}
	if customerMobile == "" {
		return nil, newValidationError("Mobile is required.")
	}
	if deliveryAddress == "" {
		return nil, newValidationError("Delivery address is required.")
	}

	productID, err := uuid.Parse(strings.TrimSpace(input.ProductID))
	if err != nil {
		return nil, ErrNotFound
	}
	product, err := s.productRepo.GetActiveByID(productID)
	if err != nil {
		return nil, ErrNotFound
	}

	branchID, err := strconv.ParseUint(strings.TrimSpace(input.BranchID), 10, 32)
	if err != nil {
		return nil, ErrNotFound
	}
	branch, err := s.branchRepo.GetActiveByID(uint(branchID))
	if err != nil {
		return nil, ErrNotFound
	}

	// Advisory stock check; the transactional decrement is the real guard.
	if product.TrackInventory && product.StockQty < qty {
		return nil, newValidationError("Not enough stock available.")
	}

	subtotal, deliveryFee, total := s.CalculateTotals(product.Price, qty)

	order := &models.Order{
		CustomerName:    customerName,
		CustomerEmail:   customerEmail,
		CustomerMobile:  customerMobile,
		ProductID:       product.ID,
		BranchID:        branch.ID,
		Quantity:        qty,
		DeliveryAddress: deliveryAddress,
		Status:          string(models.OrderPending),
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		TotalAmount:     total,
	}
	if note != "" {
		order.Note = &note
	}

	if err := s.orderRepo.CreateWithStockDecrement(order, product.TrackInventory); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, newValidationError("Not enough stock available.")
		}
		return nil, err
	}

	// Stock changed, drop the cached quick info.
	if s.cache != nil && product.TrackInventory {
		s.cache.InvalidateProductInfo(product.ID.String())
	}

	return order, nil
}

func (s *orderService) GetOrderByID(id uuid.UUID) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetAllOrders(limit, offset int) ([]models.Order, error) {
	return s.orderRepo.GetAll(limit, offset)
}

// BulkUpdateStatus moves the given orders to the target status and reports
// how many rows were touched.
func (s *orderService) BulkUpdateStatus(ids []string, status string) (int64, error) {
	if !models.ValidOrderStatus(status) {
		return 0, newValidationError("Unknown order status: " + status)
	}

	orderIDs := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return 0, newValidationError("Invalid order id: " + raw)
		}
		orderIDs = append(orderIDs, id)
	}
	if len(orderIDs) == 0 {
		return 0, nil
	}

	return s.orderRepo.BulkUpdateStatus(orderIDs, models.OrderStatus(status))
}

// CalculateTotals is the pricing rule: subtotal rounded to 2 decimals, a
// flat 20.00 delivery fee strictly below a 200.00 subtotal, free otherwise.
func (s *orderService) CalculateTotals(price decimal.Decimal, qty int) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	if qty < 1 {
		qty = 1
	}

	subtotal := price.Mul(decimal.NewFromInt(int64(qty))).Round(2)

	deliveryFee := decimal.Zero
	if subtotal.LessThan(freeDeliveryThreshold) {
		deliveryFee = flatDeliveryFee
	}

	total := subtotal.Add(deliveryFee).Round(2)
	return subtotal, deliveryFee, total
}
