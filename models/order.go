package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the canonical closed set of order states. Every use site
// (persistence, admin updates, sales filters) draws from this enumeration.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is a member of the enumeration.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPaid, StatusPreparing, StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OrderType distinguishes delivery orders from pickup orders
type OrderType string

const (
	TypeDelivery OrderType = "delivery"
	TypePickup   OrderType = "pickup"
)

// DeliveryDetails is only populated for delivery orders
type DeliveryDetails struct {
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
	Allergies string `json:"allergies"`
}

type Order struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	UserID           uint            `json:"user_id" gorm:"not null"`
	User             User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items            []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	TotalAmount      decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Type             OrderType       `json:"type" gorm:"not null"`
	DeliveryDetails  DeliveryDetails `json:"delivery_details" gorm:"embedded;embeddedPrefix:delivery_"`
	Status           OrderStatus     `json:"status" gorm:"not null;default:'pending'"`
	AssignedWorkerID *uint           `json:"assigned_worker_id"`
	AssignedWorker   *Worker         `json:"assigned_worker,omitempty" gorm:"foreignKey:AssignedWorkerID"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	FoodItemID uint     `json:"food_item_id" gorm:"not null"`
	FoodItem   FoodItem `json:"food_item,omitempty" gorm:"foreignKey:FoodItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
}
