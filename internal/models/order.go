package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerName    string          `json:"customer_name" gorm:"size:200;not null"`
	CustomerEmail   string          `json:"customer_email" gorm:"not null;index"`
	CustomerMobile  string          `json:"customer_mobile" gorm:"size:20;not null"`
	ProductID       uuid.UUID       `json:"product_id" gorm:"type:uuid;not null;index"`
	Product         Product         `json:"product,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	BranchID        uint            `json:"branch_id" gorm:"not null;index"`
	Branch          Branch          `json:"branch,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Quantity        int             `json:"quantity" gorm:"default:1;not null;check:quantity >= 1"`
	DeliveryAddress string          `json:"delivery_address" gorm:"size:255;not null"`
	Note            *string         `json:"note" gorm:"type:text"`
	Status          string          `json:"status" gorm:"size:20;default:'pending';index"`
	Subtotal        decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee" gorm:"type:decimal(10,2);not null"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt       time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
